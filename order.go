// SPDX-License-Identifier: MIT
package ordery

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// Clause is a single sort key.
	Clause struct {
		Target    *Target   `json:"target" yaml:"target"`
		Direction Direction `json:"direction" yaml:"direction"`
	}

	// Order is an append only list of sort clauses.
	//
	// The first Clause is the primary sort key.
	Order struct {
		clauses []Clause
	}
)

const (
	clauseSeparator    = ","
	directionSeparator = ":"
)

// Seed creates an Order holding a single clause.
func Seed(dir Direction, target interface{}) (*Order, error) {
	return Append(&Order{}, dir, target)
}

// Append adds a clause to o, returning o for further use.
//
// target has to be a string or *Target.
func Append(o *Order, dir Direction, target interface{}) (*Order, error) {
	if o == nil {
		return nil, ErrNilOrder
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidDirection, string(dir))
	}

	t, err := clauseTarget(target)
	if err != nil {
		return nil, err
	}
	o.clauses = append(o.clauses, Clause{Target: t, Direction: dir})

	return o, nil
}

// clauseTarget restricts Resolve to the types an Order accepts.
func clauseTarget(target interface{}) (*Target, error) {
	switch target.(type) {
	case string, *Target, Target:
		return Resolve(target)
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}
}

// Ascending creates an Order seeded with an ascending clause for target.
func Ascending(target interface{}) (*Order, error) { return Seed(Asc, target) }

// Descending creates an Order seeded with a descending clause for target.
func Descending(target interface{}) (*Order, error) { return Seed(Desc, target) }

// Asc appends an ascending clause for target.
func (o *Order) Asc(target interface{}) (*Order, error) { return Append(o, Asc, target) }

// Desc appends a descending clause for target.
func (o *Order) Desc(target interface{}) (*Order, error) { return Append(o, Desc, target) }

// Clauses obtains a copy of the Order's clauses, in precedence order.
func (o *Order) Clauses() []Clause { return slices.Clone(o.clauses) }

// Len obtains the number of clauses.
func (o *Order) Len() int { return len(o.clauses) }

// String renders the Order as an expression, each clause carrying an explicit direction.
func (o *Order) String() string {
	var b strings.Builder
	for index, c := range o.clauses {
		if index > 0 {
			b.WriteString(clauseSeparator)
		}
		b.WriteString(c.Target.Value())
		b.WriteString(directionSeparator)
		b.WriteString(string(c.Direction))
	}

	return b.String()
}

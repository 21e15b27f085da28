// SPDX-License-Identifier: MIT
package ordery

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

type (
	// targetDoc is the serialized form of a Target.
	targetDoc struct {
		Path  []Segment `json:"path" yaml:"path"`
		Value string    `json:"value" yaml:"value"`
	}
)

// MarshalJSON encodes the Segment as a JSON string or number.
func (s Segment) MarshalJSON() ([]byte, error) { return json.Marshal(s.Value()) }

// MarshalYAML encodes the Segment as a YAML string or integer.
func (s Segment) MarshalYAML() (interface{}, error) { return s.Value(), nil }

// MarshalJSON encodes the Target as {"path": [...], "value": "..."}.
func (t *Target) MarshalJSON() ([]byte, error) { return json.Marshal(t.doc()) }

// MarshalYAML emits the Target's path & value mapping.
func (t *Target) MarshalYAML() (interface{}, error) { return t.doc(), nil }

func (t *Target) doc() targetDoc { return targetDoc{Path: t.path, Value: t.value} }

// MarshalJSON encodes the Order as its list of clauses.
func (o *Order) MarshalJSON() ([]byte, error) { return json.Marshal(o.list()) }

// MarshalYAML emits the Order's clause sequence.
func (o *Order) MarshalYAML() (interface{}, error) { return o.list(), nil }

// list obtains the clauses, never nil so that an empty Order encodes as an empty list.
func (o *Order) list() []Clause {
	if o.clauses == nil {
		return []Clause{}
	}

	return o.clauses
}

// UnmarshalText parses an order expression into o, replacing its clauses.
//
// This allows an Order to be read from JSON strings, query parameters & flags.
func (o *Order) UnmarshalText(text []byte) error {
	result, err := ParseExpression(string(text))
	if err != nil {
		return err
	}

	parsed, err := result.Unwrap()
	if err != nil {
		return err
	}
	o.clauses = parsed.clauses

	return nil
}

// MarshalText encodes the Order as an expression.
func (o *Order) MarshalText() ([]byte, error) {
	if len(o.clauses) < 1 {
		return nil, fmt.Errorf("%w: order has no clauses", ErrInvalidArgument)
	}

	return []byte(o.String()), nil
}

// ToYAML encodes the Order as a YAML sequence of clauses.
func ToYAML(o *Order) (out []byte, err error) {
	if o == nil {
		err = ErrNilOrder
		return
	}

	return yaml.Marshal(o)
}

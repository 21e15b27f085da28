// SPDX-License-Identifier: MIT
package ordery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/ordery/lexer"
)

type (
	// Segment is a Target path element: a field name or a non-negative index.
	Segment struct {
		name    string
		index   int
		isIndex bool
	}

	// Target locates a field using a JSON pointer like path.
	//
	// A Target is immutable, the path has at least one Segment.
	Target struct {
		path  []Segment
		value string
	}
)

const pathSeparator = "/"

// FieldSegment creates a named Segment.
func FieldSegment(name string) Segment { return Segment{name: name} }

// IndexSegment creates an index Segment.
func IndexSegment(index int) Segment { return Segment{index: index, isIndex: true} }

// IsIndex reports whether the Segment is an index.
func (s Segment) IsIndex() bool { return s.isIndex }

// Name obtains the Segment's field name, empty for indices.
func (s Segment) Name() string { return s.name }

// Index obtains the Segment's index, 0 for field names.
func (s Segment) Index() int { return s.index }

// Value obtains the Segment as an int for indices & a string otherwise.
func (s Segment) Value() interface{} {
	if s.isIndex {
		return s.index
	}

	return s.name
}

// String is the fmt.Stringer implementation for Segment.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}

	return s.name
}

func (s Segment) validate() (err error) {
	switch {
	case s.isIndex && s.index < 0:
		err = fmt.Errorf("%w: negative index %d", ErrInvalidSegment, s.index)
	case !s.isIndex && s.name == "":
		err = fmt.Errorf("%w: empty field name", ErrInvalidSegment)
	case !s.isIndex && strings.ContainsAny(s.name, "/:,"):
		err = fmt.Errorf("%w: field name %q has a reserved character", ErrInvalidSegment, s.name)
	case !s.isIndex && isDigits(s.name):
		// Would be read back as an index.
		err = fmt.Errorf("%w: field name %q is numeric, use IndexSegment", ErrInvalidSegment, s.name)
	}

	return
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}

func segmentOf(item lexer.Item) Segment {
	if item.IsIndex {
		return IndexSegment(item.Index)
	}

	return FieldSegment(item.Val)
}

// NewTarget creates a Target from path segments, synthesizing its pointer value.
func NewTarget(path ...Segment) (t *Target, err error) {
	if len(path) < 1 {
		err = ErrEmptyPath
		return
	}

	for _, s := range path {
		if err = s.validate(); err != nil {
			return
		}
	}

	t = newTarget(slices.Clone(path))

	return
}

func newTarget(path []Segment) *Target {
	var b strings.Builder
	for _, s := range path {
		b.WriteString(pathSeparator)
		b.WriteString(s.String())
	}

	return &Target{path: path, value: b.String()}
}

// Path obtains a copy of the Target's segments.
func (t *Target) Path() []Segment { return slices.Clone(t.path) }

// Value obtains the Target's pointer string.
func (t *Target) Value() string { return t.value }

// String is the fmt.Stringer implementation for Target.
func (t *Target) String() string { return t.value }

// Resolve obtains a Target from a *Target, Target, string or positioned *lexer.Lexer.
//
// A *Target is returned as is, the zero Target is rejected. Strings are resolved by ResolveStandalone & lexers by
// ResolveFromCursor.
func Resolve(source interface{}) (t *Target, err error) {
	switch s := source.(type) {
	case *Target:
		if s == nil || len(s.path) < 1 {
			err = fmt.Errorf("%w, got an empty *Target", ErrInvalidTarget)
			return
		}
		t = s
	case Target:
		if len(s.path) < 1 {
			err = fmt.Errorf("%w, got an empty Target", ErrInvalidTarget)
			return
		}
		t = &s
	case string:
		t, err = ResolveStandalone(s)
	case *lexer.Lexer:
		if s == nil {
			err = ErrInvalidTarget
			return
		}
		t, err = ResolveFromCursor(s)
	default:
		err = fmt.Errorf("%w, got %T", ErrInvalidTarget, source)
	}

	return
}

// ResolveStandalone parses a pointer string such as "/a/b/3".
//
// The text must consist of path segments only; the resulting Target's value is text.
func ResolveStandalone(text string, opts ...lexer.Option) (t *Target, err error) {
	if text == "" {
		err = ErrEmptyTarget
		return
	}

	var l *lexer.Lexer
	if l, err = lexer.New(text, opts...); err != nil {
		return
	}
	if err = l.ExpectAdvance(); err != nil {
		return
	}

	var path []Segment
	if path, err = resolvePath(l, true); err != nil {
		return
	}
	t = &Target{path: path, value: text}

	return
}

// ResolveFromCursor parses a pointer from a Lexer positioned at a "/" token.
//
// Parsing stops without error at the first token following a field that is not a "/", leaving
// the Lexer positioned there for the caller.
func ResolveFromCursor(l *lexer.Lexer) (t *Target, err error) {
	var path []Segment
	if path, err = resolvePath(l, false); err != nil {
		return
	}
	t = newTarget(path)

	if l.Debug() {
		l.Logger().Debugf("resolved target: %s", spew.Sprint(t.path))
	}

	return
}

// resolvePath collects segments from a Lexer positioned at a "/" token.
//
// In strict mode every field has to be followed by another "/" or the end of the source.
func resolvePath(l *lexer.Lexer, strict bool) (path []Segment, err error) {
	if err = l.Expect(lexer.TokenFieldIndicator); err != nil {
		return
	}

	for {
		if err = l.ExpectAdvance(); err != nil {
			return
		}
		if err = l.Expect(lexer.TokenField); err != nil {
			return
		}
		path = append(path, segmentOf(l.Current()))

		var ok bool
		if ok, err = l.Advance(); err != nil || !ok {
			return
		}

		if strict {
			if err = l.Expect(lexer.TokenFieldIndicator); err != nil {
				return
			}
			continue
		}

		if !l.Accept(lexer.TokenFieldIndicator) {
			return
		}
	}
}

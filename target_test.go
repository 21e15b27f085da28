// SPDX-License-Identifier: MIT
package ordery

import (
	"errors"
	"reflect"
	"testing"

	"gitlab.com/fisherprime/ordery/lexer"
)

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name      string
		path      []Segment
		wantValue string
		wantErr   error
	}{
		{
			name:      "valid",
			path:      []Segment{FieldSegment("foo"), FieldSegment("bar")},
			wantValue: "/foo/bar",
		},
		{
			name:      "valid with index",
			path:      []Segment{FieldSegment("foo"), IndexSegment(3)},
			wantValue: "/foo/3",
		},
		{
			name:    "empty path",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "empty field name",
			path:    []Segment{FieldSegment("")},
			wantErr: ErrInvalidSegment,
		},
		{
			name:    "negative index",
			path:    []Segment{IndexSegment(-1)},
			wantErr: ErrInvalidSegment,
		},
		{
			name:    "numeric field name",
			path:    []Segment{FieldSegment("foo"), FieldSegment("42")},
			wantErr: ErrInvalidSegment,
		},
		{
			name:    "zero padded numeric field name",
			path:    []Segment{FieldSegment("007")},
			wantErr: ErrInvalidSegment,
		},
		{
			name:      "alphanumeric field name",
			path:      []Segment{FieldSegment("42abc")},
			wantValue: "/42abc",
		},
		{
			name:    "reserved character",
			path:    []Segment{FieldSegment("a:b")},
			wantErr: ErrInvalidSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTarget(tt.path...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTarget() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewTarget() error = %v, want %v", err, ErrInvalidArgument)
				}
				return
			}

			if got.Value() != tt.wantValue {
				t.Errorf("Target.Value() = %v, want %v", got.Value(), tt.wantValue)
			}
			if !reflect.DeepEqual(got.Path(), tt.path) {
				t.Errorf("Target.Path() = %v, want %v", got.Path(), tt.path)
			}
		})
	}
}

func TestNewTarget_RoundTrip(t *testing.T) {
	want := []Segment{FieldSegment("items"), IndexSegment(42), FieldSegment("42abc")}

	target, err := NewTarget(want...)
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}

	got, err := ResolveStandalone(target.Value())
	if err != nil {
		t.Fatalf("ResolveStandalone() error = %v", err)
	}
	if !reflect.DeepEqual(got.Path(), want) {
		t.Errorf("ResolveStandalone(%q).Path() = %v, want %v", target.Value(), got.Path(), want)
	}
}

func TestTarget_PathIsCopied(t *testing.T) {
	target, _ := NewTarget(FieldSegment("foo"))

	path := target.Path()
	path[0] = FieldSegment("bar")

	if got := target.Path()[0].Name(); got != "foo" {
		t.Errorf("Target.Path()[0] = %v, want foo", got)
	}
}

func TestResolve(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		target, _ := NewTarget(FieldSegment("foo"), FieldSegment("bar"))

		got, err := Resolve(target)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got != target {
			t.Errorf("Resolve() = %p, want %p", got, target)
		}
	})

	t.Run("target value", func(t *testing.T) {
		target, _ := NewTarget(FieldSegment("foo"))

		got, err := Resolve(*target)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got.Value() != "/foo" {
			t.Errorf("Resolve() = %v, want /foo", got)
		}
	})

	invalid := []struct {
		name   string
		source interface{}
	}{
		{"int", 42},
		{"empty string", ""},
		{"nil", nil},
		{"nil target", (*Target)(nil)},
		{"zero target", Target{}},
		{"empty target ptr", &Target{}},
		{"nil lexer", (*lexer.Lexer)(nil)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve(tt.source); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Resolve() error = %v, want %v", err, ErrInvalidArgument)
			}
		})
	}
}

func TestResolveStandalone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantPath []Segment
		wantErr  bool
	}{
		{"field", "/foo", []Segment{FieldSegment("foo")}, false},
		{"two subfields", "/foo/bar", []Segment{FieldSegment("foo"), FieldSegment("bar")}, false},
		{"integer", "/42", []Segment{IndexSegment(42)}, false},
		{"downstream integer", "/foo/42", []Segment{FieldSegment("foo"), IndexSegment(42)}, false},
		{"multiple integers", "/1/42", []Segment{IndexSegment(1), IndexSegment(42)}, false},
		{"no field", "/", nil, true},
		{"no field indicator", "foo", nil, true},
		{"no downstream field", "/foo/", nil, true},
		{"double field indicator", "//", nil, true},
		{"/ succeeded by :", "/:", nil, true},
		{"/ succeeded by ,", "/,", nil, true},
		{"field succeeded by :", "/foo:", nil, true},
		{"field succeeded by ,", "/foo,", nil, true},
		{"field with direction", "/foo:asc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStandalone(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveStandalone() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				var pErr *ParseError
				if !errors.As(err, &pErr) {
					t.Errorf("ResolveStandalone() error = %v, want *ParseError", err)
				}
				return
			}

			if !reflect.DeepEqual(got.Path(), tt.wantPath) {
				t.Errorf("Target.Path() = %v, want %v", got.Path(), tt.wantPath)
			}
			if got.Value() != tt.text {
				t.Errorf("Target.Value() = %v, want %v", got.Value(), tt.text)
			}
		})
	}
}

func TestResolveFromCursor(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantPath []Segment
		wantNext lexer.TokenID
	}{
		{"field", "/foo", []Segment{FieldSegment("foo")}, lexer.TokenField},
		{"two subfields", "/foo/bar", []Segment{FieldSegment("foo"), FieldSegment("bar")}, lexer.TokenField},
		{"integer", "/4", []Segment{IndexSegment(4)}, lexer.TokenField},
		{"downstream integer", "/foo/7", []Segment{FieldSegment("foo"), IndexSegment(7)}, lexer.TokenField},
		{"multiple integers", "/42/6", []Segment{IndexSegment(42), IndexSegment(6)}, lexer.TokenField},
		{"field terminated with ,", "/foo,", []Segment{FieldSegment("foo")}, lexer.TokenConcat},
		{"subfield terminated with ,", "/foo/bar,", []Segment{FieldSegment("foo"), FieldSegment("bar")}, lexer.TokenConcat},
		{"integers terminated with ,", "/3/5678,", []Segment{IndexSegment(3), IndexSegment(5678)}, lexer.TokenConcat},
		{"field terminated with :", "/foo:", []Segment{FieldSegment("foo")}, lexer.TokenDirIndicator},
		{"integers terminated with :", "/1/2:", []Segment{IndexSegment(1), IndexSegment(2)}, lexer.TokenDirIndicator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := lexer.New(tt.source)
			_, _ = l.Advance()

			got, err := ResolveFromCursor(l)
			if err != nil {
				t.Fatalf("ResolveFromCursor() error = %v", err)
			}
			if !reflect.DeepEqual(got.Path(), tt.wantPath) {
				t.Errorf("Target.Path() = %v, want %v", got.Path(), tt.wantPath)
			}
			if l.Current().ID != tt.wantNext {
				t.Errorf("Lexer.Current() = %v, want %v", l.Current(), tt.wantNext)
			}
		})
	}

	t.Run("synthesized value", func(t *testing.T) {
		l, _ := lexer.New("/foo/7:desc")
		_, _ = l.Advance()

		got, _ := ResolveFromCursor(l)
		if got.Value() != "/foo/7" {
			t.Errorf("Target.Value() = %v, want /foo/7", got.Value())
		}
	})

	t.Run("unpositioned", func(t *testing.T) {
		l, _ := lexer.New("/foo")

		var pErr *ParseError
		if _, err := ResolveFromCursor(l); !errors.As(err, &pErr) {
			t.Errorf("ResolveFromCursor() error = %v, want *ParseError", err)
		}
	})
}

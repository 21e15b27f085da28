// SPDX-License-Identifier: MIT
package ordery

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestParseAll(t *testing.T) {
	expressions := []string{"/a", "/b:desc", "/c:bork", "/d/1,/e"}

	results, err := ParseAll(context.Background(), expressions, WithPoolSize(2))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(results) != len(expressions) {
		t.Fatalf("ParseAll() = %d results, want %d", len(results), len(expressions))
	}

	wantOutput := []string{"/a:asc", "/b:desc", "", "/d/1:asc,/e:asc"}
	for index, result := range results {
		if wantOutput[index] == "" {
			if result.Err == nil || result.Value != nil {
				t.Errorf("ParseAll()[%d] = %+v, want a *ParseError", index, result)
			}
			continue
		}

		if result.Err != nil {
			t.Errorf("ParseAll()[%d] Result.Err = %v", index, result.Err)
			continue
		}
		if got := result.Value.String(); got != wantOutput[index] {
			t.Errorf("ParseAll()[%d] = %v, want %v", index, got, wantOutput[index])
		}
	}
}

func TestParseAll_Large(t *testing.T) {
	expressions := make([]string, 500)
	for index := range expressions {
		expressions[index] = fmt.Sprintf("/items/%d:desc", index)
	}

	results, err := ParseAll(context.Background(), expressions, WithPoolSize(8))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}

	for index, result := range results {
		if want := fmt.Sprintf("/items/%d:desc", index); result.Value == nil || result.Value.String() != want {
			t.Errorf("ParseAll()[%d] = %+v, want %v", index, result, want)
		}
	}
}

func TestParseAll_Invalid(t *testing.T) {
	t.Run("empty expression", func(t *testing.T) {
		results, err := ParseAll(context.Background(), []string{"/a", ""})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseAll() error = %v, want %v", err, ErrInvalidArgument)
		}
		if results != nil {
			t.Errorf("ParseAll() = %v, want nil", results)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := ParseAll(ctx, []string{"/a", "/b"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ParseAll() error = %v, want %v", err, context.Canceled)
		}
		if results != nil {
			t.Errorf("ParseAll() = %v, want nil", results)
		}
	})

	t.Run("no expressions", func(t *testing.T) {
		results, err := ParseAll(context.Background(), nil)
		if err != nil || results != nil {
			t.Errorf("ParseAll() = %v, %v, want nil, nil", results, err)
		}
	})
}

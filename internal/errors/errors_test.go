package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMalformedQueryError(t *testing.T) {
	err := NewMalformedQueryError("data mining 3", "expected the form 'term1 term2 / k'")

	if !errors.Is(err, ErrMalformedQuery) {
		t.Error("MalformedQueryError should match ErrMalformedQuery")
	}
	if errors.Is(err, ErrUnknownQueryType) {
		t.Error("MalformedQueryError should not match ErrUnknownQueryType")
	}

	wrapped := fmt.Errorf("search failed: %w", err)
	if !errors.Is(wrapped, ErrMalformedQuery) {
		t.Error("wrapped MalformedQueryError should still match ErrMalformedQuery")
	}
}

func TestUnknownQueryTypeError(t *testing.T) {
	err := NewUnknownQueryTypeError("fuzzy")

	if !errors.Is(err, ErrUnknownQueryType) {
		t.Error("UnknownQueryTypeError should match ErrUnknownQueryType")
	}
	want := "unknown query type 'fuzzy' (expected 'boolean' or 'proximity')"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

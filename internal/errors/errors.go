package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrMalformedQuery is returned when a query does not match the shape
	// its evaluator requires.
	ErrMalformedQuery = errors.New("malformed query")

	// ErrStopwordsUnavailable is returned when the stopword list cannot be
	// loaded. The engine cannot start without it.
	ErrStopwordsUnavailable = errors.New("stopword list unavailable")

	// ErrDocumentsUnavailable is returned when the document directory
	// cannot be read. The engine cannot start without it.
	ErrDocumentsUnavailable = errors.New("document collection unavailable")

	// ErrUnknownQueryType is returned for a query type selector that is
	// neither boolean nor proximity.
	ErrUnknownQueryType = errors.New("unknown query type")
)

// MalformedQueryError reports a query rejected before evaluation, with the
// offending query text and the reason.
type MalformedQueryError struct {
	Query  string
	Reason string
}

func (e *MalformedQueryError) Error() string {
	return fmt.Sprintf("malformed query %q: %s", e.Query, e.Reason)
}

func (e *MalformedQueryError) Is(target error) bool {
	return target == ErrMalformedQuery
}

// NewMalformedQueryError creates a new MalformedQueryError
func NewMalformedQueryError(query, reason string) *MalformedQueryError {
	return &MalformedQueryError{Query: query, Reason: reason}
}

// UnknownQueryTypeError reports an unrecognized query type selector.
type UnknownQueryTypeError struct {
	Type string
}

func (e *UnknownQueryTypeError) Error() string {
	return fmt.Sprintf("unknown query type '%s' (expected 'boolean' or 'proximity')", e.Type)
}

func (e *UnknownQueryTypeError) Is(target error) bool {
	return target == ErrUnknownQueryType
}

// NewUnknownQueryTypeError creates a new UnknownQueryTypeError
func NewUnknownQueryTypeError(queryType string) *UnknownQueryTypeError {
	return &UnknownQueryTypeError{Type: queryType}
}

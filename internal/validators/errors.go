package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every ValidationErrors value via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// Locations of a validated value inside the request.
const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

// Error types reported in FieldError.Type.
const (
	TypeValueError   = "value_error"
	TypeMissing      = "missing"
	TypeTooShort     = "string_too_short"
	TypeTooLong      = "string_too_long"
	TypeGreaterEqual = "greater_than_equal"
	TypeIntParsing   = "int_parsing"
)

// FieldError describes one rejected field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// NewFieldError builds a FieldError located at loc/field.
func NewFieldError(loc, field, msg, errType string) FieldError {
	return FieldError{Loc: []string{loc, field}, Msg: msg, Type: errType}
}

// ValidationErrors is the list of problems found in one request. It is
// rendered as the "detail" array of a 422 response.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}

// orNil returns nil for an empty list so callers can `return errs.orNil()`.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

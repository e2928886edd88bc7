package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/diewo77/indh-market/validation"
)

// Sentinel errors shared by the gateway, the stores and the HTTP edge.
var (
	ErrAuth       = errors.New("not authenticated")
	ErrValidation = errors.New("validation failed")
	ErrNetwork    = errors.New("gateway error")
	ErrNotFound   = errors.New("not found")
)

// ValidationError carries per-field codes. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Message    string
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	fields := e.Violations.Fields()
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Violations[f])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError wraps v, or returns nil when v is empty.
func NewValidationError(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, code, format string, args ...any) error {
	return &ValidationError{
		Message:    fmt.Sprintf(format, args...),
		Violations: validation.Violations{field: code},
	}
}

// NetworkError wraps a backend failure, keeping its message verbatim.
func NetworkError(msg string) error { return fmt.Errorf("%w: %s", ErrNetwork, msg) }

// NotFound reports an operation on an id the backend no longer has.
func NotFound(table, id string) error { return fmt.Errorf("%w: %s %s", ErrNotFound, table, id) }

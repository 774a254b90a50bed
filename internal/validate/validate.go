// Package validate enforces the structural and semantic invariants of the
// coaching domain on both sides of the persistence boundary. Single-entity
// validators fail on the first violation; batch entry points collect every
// per-item failure into one aggregate error so bulk-import callers get the
// full list of problems in one pass.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// ErrValidation is the sentinel every validation failure matches via
// errors.Is, regardless of which entity or batch produced it.
var ErrValidation = fmt.Errorf("validation failed")

// ValidationError is a field-attributed invariant violation. Callers can
// build user-facing messages from Field and Value without parsing Error().
type ValidationError struct {
	Field   string
	Value   any
	Message string
	cause   error
}

// Errorf builds a field-attributed validation error. Exposed for the few
// hard domain rules baked into the mapping layer itself.
func Errorf(field string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

func newError(field string, value any, format string, args ...any) *ValidationError {
	return Errorf(field, value, format, args...)
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// WrapExternal re-wraps a non-validation failure (typically a JSON parse
// error at the import boundary) so callers see one consistent error kind.
func WrapExternal(field string, err error) *ValidationError {
	if err == nil {
		return nil
	}
	return &ValidationError{
		Field:   field,
		Message: err.Error(),
		cause:   err,
	}
}

// Legacy client ids look like player_1700000000000_abc123: a kind prefix, a
// millisecond timestamp and an optional random suffix. Server-assigned ids
// are opaque. Both formats stay valid keys for cross-references; the mapping
// layer branches on the distinction, the validator does not reject either.
var legacyIDPattern = regexp.MustCompile(`^[a-z]+_\d+(_[A-Za-z0-9]+)?$`)

// LegacyClientID reports whether id uses the old client-generated format.
func LegacyClientID(id string) bool {
	return legacyIDPattern.MatchString(id)
}

func checkID(field, id string, allowEmpty bool) error {
	if id == "" && !allowEmpty {
		return newError(field, id, "id is required")
	}
	return nil
}

func checkRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newError(field, value, "must not be empty")
	}
	return nil
}

// checkCoordinate enforces the relative field coordinate range. Both bounds
// are inclusive.
func checkCoordinate(field string, v float64) error {
	if v < 0 || v > 1 {
		return newError(field, v, "relative coordinate %v outside [0,1]", v)
	}
	return nil
}

// checkRating enforces the assessment rating range. Both bounds inclusive.
func checkRating(field string, v int) error {
	if v < 1 || v > 10 {
		return newError(field, v, "rating %d outside [1,10]", v)
	}
	return nil
}

func checkNonNegative(field string, v int) error {
	if v < 0 {
		return newError(field, v, "must not be negative")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

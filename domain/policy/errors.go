package policy

import (
	"errors"
	"fmt"
)

// ErrInvalidOverride marks caller contract violations on request overrides
var ErrInvalidOverride = errors.New("invalid policy override")

// OverrideError describes a rejected per-request override field
type OverrideError struct {
	Field  string
	Detail string
}

func NewOverrideError(field, detail string) *OverrideError {
	return &OverrideError{Field: field, Detail: detail}
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

func (e *OverrideError) Unwrap() error {
	return ErrInvalidOverride
}

// IsOverrideError reports whether err stems from an override contract violation
func IsOverrideError(err error) bool {
	return errors.Is(err, ErrInvalidOverride)
}

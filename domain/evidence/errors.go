package evidence

import (
	"errors"
	"fmt"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

// ErrInvalidEvidence marks caller contract violations on the evidence input.
// Distinguishable from policy refusals, which are ordinary return values.
var ErrInvalidEvidence = errors.New("invalid evidence input")

// ValidationError describes a single field violation on an evidence record
type ValidationError struct {
	Field  string
	Detail string
}

func NewValidationError(field, detail string) *ValidationError {
	return &ValidationError{Field: field, Detail: detail}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEvidence
}

// WrapRecordError annotates a validation error with its position in the batch
func WrapRecordError(index int, chunkID core.ChunkID, err error) error {
	return fmt.Errorf("record %d (chunk %q): %w", index, chunkID.String(), err)
}

// IsValidationError reports whether err stems from an evidence contract violation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEvidence)
}

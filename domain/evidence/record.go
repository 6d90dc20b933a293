package evidence

import (
	"strings"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

// Record is one retrieved snippet with a relevance score and provenance flags.
// Records are produced upstream by the retrieval subsystem, already deduplicated
// by chunk ID, and are never mutated by the policy engine.
type Record struct {
	ChunkID         core.ChunkID  `json:"chunk_id" db:"chunk_id"`
	SourceID        core.SourceID `json:"source_id" db:"source_id"`
	Score           float64       `json:"score" db:"score"`
	HasText         bool          `json:"has_text" db:"has_text"`
	IsPrimarySource bool          `json:"is_primary_source" db:"is_primary_source"`

	// Provenance passthrough. Forwarded for downstream rendering, never
	// inspected by any gate.
	SourceOrg    string   `json:"source_org,omitempty"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
	License      string   `json:"license,omitempty"`
	Year         int      `json:"year,omitempty"`
	ContentType  string   `json:"content_type,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Validate checks the caller contract for a single record. A violation here is
// a caller bug, not a policy outcome.
func (r Record) Validate() error {
	if r.Score < 0.0 || r.Score > 1.0 {
		return NewValidationError("score", "score must be within [0.0, 1.0]")
	}
	if r.HasText && strings.TrimSpace(r.SourceID.String()) == "" {
		return NewValidationError("source_id", "citeable record must carry a source_id")
	}
	return nil
}

// ValidateBatch validates every record in a retrieval batch. An empty batch is
// valid: insufficient retrieval is a policy outcome, not an input error.
func ValidateBatch(records []Record) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return WrapRecordError(i, r.ChunkID, err)
		}
	}
	return nil
}

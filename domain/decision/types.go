package decision

import (
	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// RefusalReason explains why a cited answer was not permitted
type RefusalReason string

const (
	ReasonNone                  RefusalReason = "NONE"
	ReasonInsufficientRetrieval RefusalReason = "INSUFFICIENT_RETRIEVAL"
	ReasonNoCiteableContent     RefusalReason = "NO_CITEABLE_CONTENT"
	ReasonLowSimilarityScore    RefusalReason = "LOW_SIMILARITY_SCORE"
	ReasonBelowMinSources       RefusalReason = "BELOW_MIN_SOURCES"
	ReasonNoPrimarySources      RefusalReason = "NO_PRIMARY_SOURCES"
)

// RefusalReasons lists every non-NONE reason in rule-chain order
func RefusalReasons() []RefusalReason {
	return []RefusalReason{
		ReasonInsufficientRetrieval,
		ReasonNoCiteableContent,
		ReasonLowSimilarityScore,
		ReasonBelowMinSources,
		ReasonNoPrimarySources,
	}
}

// QueryClass labels the intent of an incoming question
type QueryClass string

const (
	ClassFactual    QueryClass = "FACTUAL"
	ClassCreative   QueryClass = "CREATIVE"
	ClassAnalytical QueryClass = "ANALYTICAL"
)

// Decision is the terminal outcome of one evaluation. A refusal is a normal,
// successful result, distinct from an input validation error.
type Decision struct {
	// Fingerprint is a canonical hash of the inputs and outcome. Byte-identical
	// arguments always produce byte-identical decisions, so equal inputs yield
	// equal fingerprints; only log-entry IDs and timestamps may vary.
	Fingerprint       core.Hash         `json:"fingerprint"`
	ShouldRefuse      bool              `json:"should_refuse"`
	Reason            RefusalReason     `json:"reason"`
	QueryClass        QueryClass        `json:"query_class"`
	Measured          evidence.Measured `json:"measured"`
	ThresholdsApplied policy.Profile    `json:"thresholds_applied"`
	Message           string            `json:"message,omitempty"`
	Gaps              []string          `json:"gaps,omitempty"`
	Suggestions       []string          `json:"suggestions,omitempty"`
}

// Allowed reports whether the caller may assert a cited answer
func (d Decision) Allowed() bool {
	return !d.ShouldRefuse
}

// LogEntry is one append-only record of an evaluation. Entries are written
// once and never mutated or deleted by this engine.
type LogEntry struct {
	ID         core.DecisionID   `json:"id" db:"id"`
	Timestamp  core.Timestamp    `json:"timestamp" db:"timestamp"`
	Query      string            `json:"query" db:"query"`
	Persona    core.PersonaKey   `json:"persona" db:"persona"`
	Reason     RefusalReason     `json:"reason" db:"reason"`
	Refused    bool              `json:"refused" db:"refused"`
	QueryClass QueryClass        `json:"query_class" db:"query_class"`
	Measured   evidence.Measured `json:"measured"`
	Thresholds policy.Profile    `json:"thresholds"`
}

package app

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/engine"
	apperrors "github.com/AINative-Studio/kwanzaa-sub004/internal/errors"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/synthesizer"
	"github.com/AINative-Studio/kwanzaa-sub004/ports"
)

// EvaluationService orchestrates one answer-policy evaluation: resolve the
// effective policy, classify the query, measure the evidence, run the rule
// chain, synthesize the refusal diagnostic, and append to the decision log.
// Evaluation itself is pure in-memory computation and safe for concurrent use.
type EvaluationService struct {
	registry   *policy.Registry
	classifier ports.ClassifierPort
	logWriter  ports.DecisionLogWriterPort

	// Count of best-effort log writes that failed, surfaced as an
	// out-of-band health signal. Never affects a returned Decision.
	logFailures atomic.Int64
}

// EvaluateRequest defines the inputs for one evaluation
type EvaluateRequest struct {
	Query     string
	Persona   core.PersonaKey
	Toggles   policy.Toggles
	Overrides policy.Overrides
	Evidence  []evidence.Record
}

// NewEvaluationService creates an evaluation service
func NewEvaluationService(registry *policy.Registry, classifier ports.ClassifierPort, logWriter ports.DecisionLogWriterPort) *EvaluationService {
	return &EvaluationService{
		registry:   registry,
		classifier: classifier,
		logWriter:  logWriter,
	}
}

// Evaluate decides whether a cited answer is permitted for this query and
// evidence. A refusal is a normal, successful outcome; an error is returned
// only for caller contract violations (malformed evidence or overrides).
func (s *EvaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (*decision.Decision, error) {
	if err := evidence.ValidateBatch(req.Evidence); err != nil {
		return nil, apperrors.WithCode(apperrors.CodeValidationError, err)
	}

	effective, err := s.registry.Resolve(req.Persona, req.Toggles, req.Overrides)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeValidationError, err)
	}

	queryClass := s.classifier.Classify(req.Query)
	measured := evidence.Measure(req.Evidence)

	outcome := engine.Evaluate(engine.Input{
		Effective:       effective,
		Measured:        measured,
		QueryClass:      queryClass,
		CreativeMode:    req.Toggles.CreativeModeEnabled(),
		CitationsForced: req.Toggles.CitationsForced(),
	})

	dec := &decision.Decision{
		ShouldRefuse:      outcome.Refused,
		Reason:            outcome.Reason,
		QueryClass:        queryClass,
		Measured:          measured,
		ThresholdsApplied: effective,
	}
	if outcome.Refused {
		refusal := synthesizer.Synthesize(outcome.Reason, measured, effective)
		dec.Message = refusal.Message
		dec.Gaps = refusal.Gaps
		dec.Suggestions = refusal.Suggestions
	}
	dec.Fingerprint = s.fingerprint(req, dec)

	s.recordBestEffort(ctx, req, dec)

	return dec, nil
}

// LogFailures returns how many decision-log writes have failed since start
func (s *EvaluationService) LogFailures() int64 {
	return s.logFailures.Load()
}

// fingerprint hashes the request and outcome into a stable identity
func (s *EvaluationService) fingerprint(req EvaluateRequest, dec *decision.Decision) core.Hash {
	hash, err := core.HashCanonical(struct {
		Query      string                 `json:"query"`
		Persona    core.PersonaKey        `json:"persona"`
		Thresholds policy.Profile         `json:"thresholds"`
		Measured   evidence.Measured      `json:"measured"`
		Refused    bool                   `json:"refused"`
		Reason     decision.RefusalReason `json:"reason"`
	}{req.Query, req.Persona, dec.ThresholdsApplied, dec.Measured, dec.ShouldRefuse, dec.Reason})
	if err != nil {
		// All fields are plain serializable values; this cannot fire in practice
		return ""
	}
	return hash
}

// recordBestEffort appends the decision to the log. Sink failures degrade
// silently: they are counted for the health signal and logged, and never
// change or fail the returned Decision.
func (s *EvaluationService) recordBestEffort(ctx context.Context, req EvaluateRequest, dec *decision.Decision) {
	if s.logWriter == nil {
		return
	}
	entry := decision.LogEntry{
		ID:         core.DecisionID(core.NewID()),
		Timestamp:  core.Now(),
		Query:      req.Query,
		Persona:    req.Persona,
		Reason:     dec.Reason,
		Refused:    dec.ShouldRefuse,
		QueryClass: dec.QueryClass,
		Measured:   dec.Measured,
		Thresholds: dec.ThresholdsApplied,
	}
	if err := s.logWriter.Record(ctx, entry); err != nil {
		s.logFailures.Add(1)
		log.Printf("WARN: decision log write failed: %v", err)
	}
}

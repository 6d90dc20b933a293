package engine

import (
	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// Input is the precomputed snapshot one evaluation runs against. Every rule
// reads this same snapshot; nothing re-queries evidence mid-evaluation.
type Input struct {
	Effective  policy.Profile
	Measured   evidence.Measured
	QueryClass decision.QueryClass
	// CreativeMode is the per-request creative toggle.
	CreativeMode bool
	// CitationsForced is true when the request explicitly forces
	// require_citations on, which disables the creative bypass.
	CitationsForced bool
}

// Outcome is the terminal result of the rule chain
type Outcome struct {
	Refused bool
	Reason  decision.RefusalReason
}

// RefusalRule pairs one refusal reason with its failure predicate
type RefusalRule struct {
	Reason decision.RefusalReason
	Failed func(Input) bool
}

// RefusalRules returns the refusal gates in their contractual order. The
// first failing gate determines the reason; reordering changes which reason
// a caller sees for the same input.
func RefusalRules() []RefusalRule {
	return []RefusalRule{
		{
			Reason: decision.ReasonInsufficientRetrieval,
			Failed: func(in Input) bool { return in.Measured.RecordCount == 0 },
		},
		{
			Reason: decision.ReasonNoCiteableContent,
			Failed: func(in Input) bool { return !in.Measured.HasCiteable },
		},
		{
			// Threshold value itself passes: comparison is >= to pass.
			Reason: decision.ReasonLowSimilarityScore,
			Failed: func(in Input) bool { return in.Measured.BestScore < in.Effective.SimilarityThreshold },
		},
		{
			Reason: decision.ReasonBelowMinSources,
			Failed: func(in Input) bool { return in.Measured.DistinctSourceCount < in.Effective.MinDistinctSources },
		},
		{
			Reason: decision.ReasonNoPrimarySources,
			Failed: func(in Input) bool { return in.Effective.PrimarySourcesOnly && !in.Measured.HasPrimary },
		},
	}
}

// Evaluate runs the rule chain to a terminal outcome. Refusal is a normal
// result; this function never fails for a well-formed input.
func Evaluate(in Input) Outcome {
	// Creative bypass: a creative query with creative mode on skips the
	// citation gates entirely, unless the request separately forces
	// citations on.
	if in.QueryClass == decision.ClassCreative && in.CreativeMode && !in.CitationsForced {
		return Outcome{Refused: false, Reason: decision.ReasonNone}
	}

	// No citation requirement, nothing to gate
	if !in.Effective.CitationsRequired {
		return Outcome{Refused: false, Reason: decision.ReasonNone}
	}

	for _, rule := range RefusalRules() {
		if rule.Failed(in) {
			return Outcome{Refused: true, Reason: rule.Reason}
		}
	}
	return Outcome{Refused: false, Reason: decision.ReasonNone}
}

package synthesizer

import (
	"fmt"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/evidence"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// Refusal is the rendered diagnostic for one refusal reason
type Refusal struct {
	Message     string
	Gaps        []string
	Suggestions []string
}

// Synthesize renders the refusal diagnostic for a reason from fixed templates
// parameterized by the measured values. Output is fully deterministic: the
// same (reason, measured, thresholds) always yields the same strings. Every
// refusal reason produces at least one gap and one suggestion.
func Synthesize(reason decision.RefusalReason, measured evidence.Measured, thresholds policy.Profile) Refusal {
	switch reason {
	case decision.ReasonInsufficientRetrieval:
		return Refusal{
			Message: "Cannot provide a cited answer: retrieval returned no evidence for this question.",
			Gaps: []string{
				"no evidence records were retrieved for this question",
			},
			Suggestions: []string{
				"rephrase the question with more specific terms",
				"verify the relevant documents have been ingested into the corpus",
			},
		}
	case decision.ReasonNoCiteableContent:
		return Refusal{
			Message: fmt.Sprintf(
				"Cannot provide a cited answer: %d evidence record(s) were retrieved but none carries citeable text.",
				measured.RecordCount),
			Gaps: []string{
				"retrieved records contain no usable citeable text",
			},
			Suggestions: []string{
				"re-ingest the matching documents with text extraction enabled",
				"broaden the query so records with full text can match",
			},
		}
	case decision.ReasonLowSimilarityScore:
		return Refusal{
			Message: fmt.Sprintf(
				"Cannot provide a cited answer: the retrieved evidence is not similar enough to the question (best: %.2f, required: %.2f).",
				measured.BestScore, thresholds.SimilarityThreshold),
			Gaps: []string{
				fmt.Sprintf("best similarity score %.2f is below the required %.2f",
					measured.BestScore, thresholds.SimilarityThreshold),
			},
			Suggestions: []string{
				"rephrase the question closer to the vocabulary of the source material",
				"lower the similarity threshold for this request if a looser match is acceptable",
			},
		}
	case decision.ReasonBelowMinSources:
		return Refusal{
			Message: fmt.Sprintf(
				"Cannot provide a cited answer: only %d distinct source(s) support this question, but %d are required.",
				measured.DistinctSourceCount, thresholds.MinDistinctSources),
			Gaps: []string{
				fmt.Sprintf("evidence spans %d distinct source(s); %d independent source(s) are required",
					measured.DistinctSourceCount, thresholds.MinDistinctSources),
			},
			Suggestions: []string{
				"ingest additional independent sources covering this topic",
				"reduce the minimum source count for this request if single-source answers are acceptable",
			},
		}
	case decision.ReasonNoPrimarySources:
		return Refusal{
			Message: "Cannot provide a cited answer: this persona requires primary sources and none of the retrieved evidence is a primary source.",
			Gaps: []string{
				"no retrieved record originates directly from a primary source",
			},
			Suggestions: []string{
				"add primary-source documents for this topic to the corpus",
				"disable the primary-sources-only requirement for this request if secondary sources suffice",
			},
		}
	default:
		// ReasonNone and unknown reasons render nothing; an allowed decision
		// carries no message, gaps, or suggestions.
		return Refusal{}
	}
}

// Markdown renders the refusal as a small markdown report for analyst-facing
// views. Deterministic, like Synthesize.
func Markdown(reason decision.RefusalReason, r Refusal) string {
	if reason == decision.ReasonNone {
		return ""
	}
	out := fmt.Sprintf("## Refusal: %s\n\n%s\n\n### Evidence gaps\n\n", reason, r.Message)
	for _, g := range r.Gaps {
		out += fmt.Sprintf("- %s\n", g)
	}
	out += "\n### Suggested next steps\n\n"
	for _, s := range r.Suggestions {
		out += fmt.Sprintf("- %s\n", s)
	}
	return out
}

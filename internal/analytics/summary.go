package analytics

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// Summary aggregates a decision-log snapshot for the ops surface
type Summary struct {
	TotalDecisions int                              `json:"total_decisions"`
	Refusals       int                              `json:"refusals"`
	RefusalRate    float64                          `json:"refusal_rate"`
	ReasonCounts   map[decision.RefusalReason]int   `json:"reason_counts"`
	PersonaCounts  map[string]int                   `json:"persona_counts"`
	BestScore      ScoreDistribution                `json:"best_score"`
	// ScoreSourceCorrelation is the Pearson correlation between best score
	// and distinct source count across all logged decisions. Zero when it
	// cannot be computed (fewer than two entries or zero variance).
	ScoreSourceCorrelation float64 `json:"score_source_correlation"`
}

// ScoreDistribution summarizes the distribution of best similarity scores
type ScoreDistribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes the aggregate view of a log snapshot. An empty snapshot
// yields a zero summary, not an error.
func Summarize(entries []decision.LogEntry) Summary {
	summary := Summary{
		TotalDecisions: len(entries),
		ReasonCounts:   make(map[decision.RefusalReason]int),
		PersonaCounts:  make(map[string]int),
	}
	if len(entries) == 0 {
		return summary
	}

	scores := make([]float64, 0, len(entries))
	sourceCounts := make([]float64, 0, len(entries))
	for _, entry := range entries {
		if entry.Refused {
			summary.Refusals++
			summary.ReasonCounts[entry.Reason]++
		}
		summary.PersonaCounts[entry.Persona.String()]++
		scores = append(scores, entry.Measured.BestScore)
		sourceCounts = append(sourceCounts, float64(entry.Measured.DistinctSourceCount))
	}
	summary.RefusalRate = float64(summary.Refusals) / float64(len(entries))
	summary.BestScore = scoreDistribution(scores)

	if len(entries) >= 2 {
		if corr := stat.Correlation(scores, sourceCounts, nil); !math.IsNaN(corr) {
			summary.ScoreSourceCorrelation = corr
		}
	}
	return summary
}

// scoreDistribution computes the summary statistics for a score series
func scoreDistribution(scores []float64) ScoreDistribution {
	dist := ScoreDistribution{}

	// The stats helpers only fail on empty input, which the caller excludes
	dist.Mean, _ = stats.Mean(scores)
	dist.Median, _ = stats.Median(scores)
	dist.P25, _ = stats.Percentile(scores, 25)
	dist.P75, _ = stats.Percentile(scores, 75)
	dist.Min, _ = stats.Min(scores)
	dist.Max, _ = stats.Max(scores)
	return dist
}

package evidence

import "github.com/AINative-Studio/kwanzaa-sub004/domain/core"

// Pure derived signals over a retrieval batch. Each function is O(n), has no
// side effects, and returns its identity value for an empty batch.

// BestScore returns the maximum score in the batch, or 0.0 for an empty batch
func BestScore(records []Record) float64 {
	best := 0.0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// DistinctSources counts unique source IDs among citeable records
func DistinctSources(records []Record) int {
	seen := make(map[core.SourceID]struct{}, len(records))
	for _, r := range records {
		if r.HasText {
			seen[r.SourceID] = struct{}{}
		}
	}
	return len(seen)
}

// HasCiteableContent reports whether at least one record carries usable text
func HasCiteableContent(records []Record) bool {
	for _, r := range records {
		if r.HasText {
			return true
		}
	}
	return false
}

// HasPrimarySource reports whether at least one citeable record is flagged
// as a primary source. A primary-source record without text cannot be cited
// and does not count.
func HasPrimarySource(records []Record) bool {
	for _, r := range records {
		if r.IsPrimarySource && r.HasText {
			return true
		}
	}
	return false
}

// Measured is the derived-signal snapshot the rule chain evaluates against.
// It is computed once per evaluation; no rule re-queries the batch.
type Measured struct {
	BestScore           float64 `json:"best_score" db:"best_score"`
	DistinctSourceCount int     `json:"distinct_source_count" db:"distinct_source_count"`
	HasPrimary          bool    `json:"has_primary" db:"has_primary"`
	HasCiteable         bool    `json:"has_citeable" db:"has_citeable"`
	RecordCount         int     `json:"record_count" db:"record_count"`
}

// Measure computes the full snapshot for a batch
func Measure(records []Record) Measured {
	return Measured{
		BestScore:           BestScore(records),
		DistinctSourceCount: DistinctSources(records),
		HasPrimary:          HasPrimarySource(records),
		HasCiteable:         HasCiteableContent(records),
		RecordCount:         len(records),
	}
}

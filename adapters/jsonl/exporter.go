package jsonl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// exportRow is the line-delimited persisted-artifact record. Field names and
// types are the stable export contract; downstream analysis reads these.
type exportRow struct {
	Timestamp           time.Time `json:"timestamp"`
	Query               string    `json:"query"`
	Persona             string    `json:"persona"`
	Reason              string    `json:"reason"`
	BestScore           float64   `json:"best_score"`
	DistinctSources     int       `json:"distinct_sources"`
	HasPrimary          bool      `json:"has_primary"`
	SimilarityThreshold float64   `json:"similarity_threshold"`
	MinDistinctSources  int       `json:"min_distinct_sources"`
}

// Exporter writes the decision log as line-delimited JSON
type Exporter struct{}

// NewExporter creates a new JSONL exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes one JSON object per entry
func (e *Exporter) Export(ctx context.Context, w io.Writer, entries []decision.LogEntry) error {
	enc := json.NewEncoder(w)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := exportRow{
			Timestamp:           entry.Timestamp.Time(),
			Query:               entry.Query,
			Persona:             entry.Persona.String(),
			Reason:              string(entry.Reason),
			BestScore:           entry.Measured.BestScore,
			DistinctSources:     entry.Measured.DistinctSourceCount,
			HasPrimary:          entry.Measured.HasPrimary,
			SimilarityThreshold: entry.Thresholds.SimilarityThreshold,
			MinDistinctSources:  entry.Thresholds.MinDistinctSources,
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to encode entry %d: %w", i, err)
		}
	}
	return nil
}

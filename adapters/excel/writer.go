package excel

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

const sheetName = "Decisions"

var headerRow = []interface{}{
	"Timestamp", "Query", "Persona", "Query Class", "Refused", "Reason",
	"Best Score", "Distinct Sources", "Has Primary", "Has Citeable",
	"Record Count", "Similarity Threshold", "Min Distinct Sources",
	"Primary Sources Only", "Strict Mode",
}

// Writer exports the decision log as a spreadsheet for analyst review
type Writer struct{}

// NewWriter creates a new spreadsheet exporter
func NewWriter() *Writer {
	return &Writer{}
}

// Export writes all entries to a single sheet, one row per decision
func (x *Writer) Export(ctx context.Context, w io.Writer, entries []decision.LogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := []interface{}{
			entry.Timestamp.String(),
			entry.Query,
			entry.Persona.String(),
			string(entry.QueryClass),
			entry.Refused,
			string(entry.Reason),
			entry.Measured.BestScore,
			entry.Measured.DistinctSourceCount,
			entry.Measured.HasPrimary,
			entry.Measured.HasCiteable,
			entry.Measured.RecordCount,
			entry.Thresholds.SimilarityThreshold,
			entry.Thresholds.MinDistinctSources,
			entry.Thresholds.PrimarySourcesOnly,
			entry.Thresholds.StrictMode,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

package evidence

import (
	"fmt"
	"testing"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
)

func record(source string, score float64, hasText, primary bool) Record {
	return Record{
		ChunkID:         core.ChunkID(fmt.Sprintf("chunk-%s-%.2f", source, score)),
		SourceID:        core.SourceID(source),
		Score:           score,
		HasText:         hasText,
		IsPrimarySource: primary,
	}
}

// TestBestScoreEmpty tests the empty-batch identity
func TestBestScoreEmpty(t *testing.T) {
	if got := BestScore(nil); got != 0.0 {
		t.Errorf("Expected 0.0 for empty batch, got %f", got)
	}
}

// TestBestScore tests maximum selection
func TestBestScore(t *testing.T) {
	records := []Record{
		record("a", 0.41, true, false),
		record("b", 0.93, true, false),
		record("c", 0.77, false, false),
	}
	if got := BestScore(records); got != 0.93 {
		t.Errorf("Expected 0.93, got %f", got)
	}
}

// TestDistinctSources tests that only citeable records count and duplicates collapse
func TestDistinctSources(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected int
	}{
		{"empty", nil, 0},
		{"single", []Record{record("a", 0.9, true, false)}, 1},
		{"duplicate source", []Record{record("a", 0.9, true, false), record("a", 0.7, true, false)}, 1},
		{"two distinct", []Record{record("a", 0.9, true, false), record("b", 0.7, true, false)}, 2},
		{"textless ignored", []Record{record("a", 0.9, false, false), record("b", 0.7, true, false)}, 1},
	}

	for _, test := range tests {
		if got := DistinctSources(test.records); got != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, got)
		}
	}
}

// TestHasCiteableContent tests text presence detection
func TestHasCiteableContent(t *testing.T) {
	if HasCiteableContent(nil) {
		t.Error("Expected false for empty batch")
	}
	if HasCiteableContent([]Record{record("a", 0.9, false, false)}) {
		t.Error("Expected false when no record carries text")
	}
	if !HasCiteableContent([]Record{record("a", 0.9, false, false), record("b", 0.5, true, false)}) {
		t.Error("Expected true when one record carries text")
	}
}

// TestHasPrimarySource tests that a primary source must also be citeable
func TestHasPrimarySource(t *testing.T) {
	if HasPrimarySource(nil) {
		t.Error("Expected false for empty batch")
	}
	if HasPrimarySource([]Record{record("a", 0.9, false, true)}) {
		t.Error("Expected false for a primary source without text")
	}
	if !HasPrimarySource([]Record{record("a", 0.9, true, true)}) {
		t.Error("Expected true for a citeable primary source")
	}
}

// TestMeasureEmpty tests the full snapshot identities for an empty batch
func TestMeasureEmpty(t *testing.T) {
	m := Measure(nil)
	if m.BestScore != 0.0 || m.DistinctSourceCount != 0 || m.HasPrimary || m.HasCiteable || m.RecordCount != 0 {
		t.Errorf("Expected zero snapshot for empty batch, got %+v", m)
	}
}

// TestValidateScoreRange tests the [0,1] score contract
func TestValidateScoreRange(t *testing.T) {
	tests := []struct {
		score   float64
		wantErr bool
	}{
		{0.0, false},
		{1.0, false},
		{0.5, false},
		{-0.01, true},
		{1.01, true},
	}

	for _, test := range tests {
		r := record("a", test.score, true, false)
		err := r.Validate()
		if test.wantErr && err == nil {
			t.Errorf("score %f: expected validation error, got none", test.score)
		}
		if !test.wantErr && err != nil {
			t.Errorf("score %f: unexpected error: %v", test.score, err)
		}
	}
}

// TestValidateCiteableNeedsSource tests that citeable records require a source ID
func TestValidateCiteableNeedsSource(t *testing.T) {
	r := Record{ChunkID: "c1", SourceID: "", Score: 0.8, HasText: true}
	if err := r.Validate(); err == nil {
		t.Error("Expected validation error for citeable record without source_id")
	}
	if !IsValidationError(Record{ChunkID: "c1", Score: 1.5}.Validate()) {
		t.Error("Expected validation error to be recognizable via IsValidationError")
	}

	// A textless record may omit its source ID
	textless := Record{ChunkID: "c2", Score: 0.8, HasText: false}
	if err := textless.Validate(); err != nil {
		t.Errorf("Unexpected error for textless record: %v", err)
	}
}

// TestValidateBatchPosition tests that batch errors carry the record position
func TestValidateBatchPosition(t *testing.T) {
	batch := []Record{
		record("a", 0.9, true, false),
		{ChunkID: "bad", Score: 2.0},
	}
	err := ValidateBatch(batch)
	if err == nil {
		t.Fatal("Expected batch validation error")
	}
	if !IsValidationError(err) {
		t.Errorf("Expected wrapped validation error, got %v", err)
	}
}

// TestValidateBatchEmpty tests that an empty batch is valid input
func TestValidateBatchEmpty(t *testing.T) {
	if err := ValidateBatch(nil); err != nil {
		t.Errorf("Empty batch must be valid input, got %v", err)
	}
}

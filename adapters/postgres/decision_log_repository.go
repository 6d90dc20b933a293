package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/policy"
)

// DecisionLogRepository persists decision-log entries in postgres. Append-only:
// the repository exposes no update or delete.
type DecisionLogRepository struct {
	db *sqlx.DB
}

// NewDecisionLogRepository creates a new decision log repository
func NewDecisionLogRepository(db *sqlx.DB) *DecisionLogRepository {
	return &DecisionLogRepository{db: db}
}

// InitSchema creates the decision_log table if it does not exist
func (r *DecisionLogRepository) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS decision_log (
			id                    TEXT PRIMARY KEY,
			recorded_at           TIMESTAMPTZ NOT NULL,
			query                 TEXT NOT NULL,
			persona               TEXT NOT NULL,
			reason                TEXT NOT NULL,
			refused               BOOLEAN NOT NULL,
			query_class           TEXT NOT NULL,
			best_score            DOUBLE PRECISION NOT NULL,
			distinct_source_count INTEGER NOT NULL,
			has_primary           BOOLEAN NOT NULL,
			has_citeable          BOOLEAN NOT NULL,
			record_count          INTEGER NOT NULL,
			thresholds            JSONB NOT NULL
		)`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create decision_log schema: %w", err)
	}
	return nil
}

// Record appends one decision-log entry
func (r *DecisionLogRepository) Record(ctx context.Context, entry decision.LogEntry) error {
	query := `
		INSERT INTO decision_log (
			id, recorded_at, query, persona, reason, refused, query_class,
			best_score, distinct_source_count, has_primary, has_citeable,
			record_count, thresholds
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	thresholdsJSON, err := json.Marshal(entry.Thresholds)
	if err != nil {
		return fmt.Errorf("failed to marshal thresholds: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.Timestamp.Time(),
		entry.Query,
		entry.Persona.String(),
		string(entry.Reason),
		entry.Refused,
		string(entry.QueryClass),
		entry.Measured.BestScore,
		entry.Measured.DistinctSourceCount,
		entry.Measured.HasPrimary,
		entry.Measured.HasCiteable,
		entry.Measured.RecordCount,
		thresholdsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert decision log entry: %w", err)
	}
	return nil
}

// Entries returns all recorded entries in insertion order
func (r *DecisionLogRepository) Entries(ctx context.Context) ([]decision.LogEntry, error) {
	query := `
		SELECT id, recorded_at, query, persona, reason, refused, query_class,
			   best_score, distinct_source_count, has_primary, has_citeable,
			   record_count, thresholds
		FROM decision_log
		ORDER BY recorded_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query decision log: %w", err)
	}
	defer rows.Close()

	var entries []decision.LogEntry
	for rows.Next() {
		var (
			entry          decision.LogEntry
			id             string
			recordedAt     time.Time
			persona        string
			reason         string
			queryClass     string
			thresholdsJSON []byte
		)
		if err := rows.Scan(
			&id,
			&recordedAt,
			&entry.Query,
			&persona,
			&reason,
			&entry.Refused,
			&queryClass,
			&entry.Measured.BestScore,
			&entry.Measured.DistinctSourceCount,
			&entry.Measured.HasPrimary,
			&entry.Measured.HasCiteable,
			&entry.Measured.RecordCount,
			&thresholdsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan decision log entry: %w", err)
		}

		var thresholds policy.Profile
		if err := json.Unmarshal(thresholdsJSON, &thresholds); err != nil {
			return nil, fmt.Errorf("failed to unmarshal thresholds: %w", err)
		}

		entry.ID = core.DecisionID(id)
		entry.Timestamp = core.NewTimestamp(recordedAt)
		entry.Persona = core.PersonaKey(persona)
		entry.Reason = decision.RefusalReason(reason)
		entry.QueryClass = decision.QueryClass(queryClass)
		entry.Thresholds = thresholds
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decision log: %w", err)
	}
	return entries, nil
}

// Count returns the number of recorded entries
func (r *DecisionLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decision_log`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count decision log entries: %w", err)
	}
	return count, nil
}

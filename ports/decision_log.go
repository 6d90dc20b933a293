package ports

import (
	"context"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// DecisionLogWriterPort provides append-only write access to the decision log.
// This is the ONLY way to write entries - nothing mutates or deletes them.
type DecisionLogWriterPort interface {
	Record(ctx context.Context, entry decision.LogEntry) error
}

// DecisionLogReaderPort provides read-only snapshot access for export and
// analytics. Reads may run concurrently with writes and see a consistent,
// possibly slightly stale, prefix.
type DecisionLogReaderPort interface {
	Entries(ctx context.Context) ([]decision.LogEntry, error)
	Count(ctx context.Context) (int, error)
}

// DecisionLogPort combines read and write access
type DecisionLogPort interface {
	DecisionLogWriterPort
	DecisionLogReaderPort
}

package ports

import (
	"context"
	"io"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// ExporterPort serializes a decision-log snapshot to a sink. The export
// format preserves the persisted-artifact fields (timestamp, query, persona,
// reason, measured values, thresholds applied).
type ExporterPort interface {
	Export(ctx context.Context, w io.Writer, entries []decision.LogEntry) error
}

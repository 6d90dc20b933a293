package memlog

import (
	"context"
	"sync"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// Adapter implements DecisionLogPort with in-memory, append-only storage.
// Safe for concurrent record and snapshot access; entries are never mutated
// or removed.
type Adapter struct {
	mu      sync.RWMutex
	entries []decision.LogEntry
}

// NewAdapter creates an empty in-memory decision log
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Record appends one entry to the log
func (a *Adapter) Record(ctx context.Context, entry decision.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

// Entries returns a snapshot copy of the log. The snapshot is a consistent
// prefix: writes racing with a read appear in a later snapshot, never as a
// partial entry.
func (a *Adapter) Entries(ctx context.Context) ([]decision.LogEntry, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	snapshot := make([]decision.LogEntry, len(a.entries))
	copy(snapshot, a.entries)
	return snapshot, nil
}

// Count returns the number of recorded entries
func (a *Adapter) Count(ctx context.Context) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries), nil
}

package memlog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/core"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

func entry(n int) decision.LogEntry {
	return decision.LogEntry{
		ID:        core.DecisionID(core.NewID()),
		Timestamp: core.Now(),
		Query:     fmt.Sprintf("question %d", n),
		Persona:   "educator",
		Reason:    decision.ReasonNone,
	}
}

// TestRecordAndSnapshot tests basic append and snapshot isolation
func TestRecordAndSnapshot(t *testing.T) {
	adapter := NewAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Record(ctx, entry(1)))
	require.NoError(t, adapter.Record(ctx, entry(2)))

	snapshot, err := adapter.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	// Mutating the snapshot must not reach the log
	snapshot[0].Query = "tampered"
	again, err := adapter.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "question 1", again[0].Query)
}

// TestConcurrentRecording tests that parallel writers lose no entries
func TestConcurrentRecording(t *testing.T) {
	adapter := NewAdapter()
	ctx := context.Background()

	const writers = 50
	const perWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				assert.NoError(t, adapter.Record(ctx, entry(w*perWriter+i)))
			}
		}(w)
	}

	// Concurrent snapshot reads must always see whole entries
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			snapshot, err := adapter.Entries(ctx)
			assert.NoError(t, err)
			for _, e := range snapshot {
				assert.NotEmpty(t, e.Query)
			}
		}
	}()

	wg.Wait()
	<-done

	count, err := adapter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, count)
}

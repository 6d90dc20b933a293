package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/AINative-Studio/kwanzaa-sub004/app"
	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// Replayer pushes a batch of evaluation requests through the engine with
// bounded concurrency. Evaluation is pure and lock-free, so the only limit
// is how many goroutines are worth running at once.
type Replayer struct {
	service *app.EvaluationService
	sem     *semaphore.Weighted
}

// Result pairs one request with its outcome
type Result struct {
	Index    int
	Decision *decision.Decision
	Err      error
	// Deterministic is false when a second evaluation of the same request
	// produced a different fingerprint, which indicates hidden state.
	Deterministic bool
}

// NewReplayer creates a replayer with the given concurrency bound
func NewReplayer(service *app.EvaluationService, concurrency int64) *Replayer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Replayer{
		service: service,
		sem:     semaphore.NewWeighted(concurrency),
	}
}

// Replay evaluates every request and returns results indexed by input order.
// Each request is evaluated twice and the fingerprints compared, so a replay
// doubles as a determinism check over real traffic.
func (r *Replayer) Replay(ctx context.Context, requests []app.EvaluateRequest) ([]Result, error) {
	results := make([]Result, len(requests))
	var wg sync.WaitGroup

	for i, req := range requests {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int, req app.EvaluateRequest) {
			defer wg.Done()
			defer r.sem.Release(1)

			first, err := r.service.Evaluate(ctx, req)
			if err != nil {
				results[idx] = Result{Index: idx, Err: err}
				return
			}
			second, err := r.service.Evaluate(ctx, req)
			if err != nil {
				results[idx] = Result{Index: idx, Decision: first, Err: err}
				return
			}
			results[idx] = Result{
				Index:         idx,
				Decision:      first,
				Deterministic: first.Fingerprint.Equals(second.Fingerprint),
			}
		}(i, req)
	}

	wg.Wait()
	return results, nil
}

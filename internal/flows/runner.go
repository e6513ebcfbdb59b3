package flows

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gammazero/workerpool"
)

// ErrStopped is reported for work submitted after Stop.
var ErrStopped = errors.New("runner stopped")

const defaultWorkers = 4

// Runner executes flows on a bounded worker pool so the number of in-flight
// API requests never exceeds its size.
type Runner struct {
	pool   *workerpool.WorkerPool
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

// NewRunner starts a pool of size workers. Sizes below one use the default.
func NewRunner(size int, logger *slog.Logger) *Runner {
	if size < 1 {
		size = defaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{pool: workerpool.New(size), logger: logger}
}

// Do runs fn on the pool and waits for its result. If ctx ends first, Do
// returns a result carrying the context error while fn keeps running with
// the same, now cancelled, context. flow and offerID label the results Do
// makes up itself, when fn never got to report.
func (r *Runner) Do(ctx context.Context, flow Name, offerID int, fn func(context.Context) Result) Result {
	done := make(chan Result, 1)
	if !r.submit(func() { done <- fn(ctx) }) {
		return Result{Flow: flow, OfferID: offerID, Err: ErrStopped}
	}
	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		r.logger.Debug("flow abandoned", "flow", string(flow), "offer_id", offerID, "error", ctx.Err())
		return Result{Flow: flow, OfferID: offerID, Err: ctx.Err()}
	}
}

// Go runs fn on the pool without waiting. then, when non-nil, receives the
// result on the worker goroutine.
func (r *Runner) Go(ctx context.Context, flow Name, offerID int, fn func(context.Context) Result, then func(Result)) {
	ok := r.submit(func() {
		res := fn(ctx)
		if then != nil {
			then(res)
		}
	})
	if !ok {
		r.logger.Debug("runner stopped, work dropped", "flow", string(flow), "offer_id", offerID)
		if then != nil {
			then(Result{Flow: flow, OfferID: offerID, Err: ErrStopped})
		}
	}
}

// Waiting returns the number of queued flows that have not started yet.
func (r *Runner) Waiting() int {
	return r.pool.WaitingQueueSize()
}

// Stop waits for queued and running flows to finish and rejects new ones.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()
	r.pool.StopWait()
}

func (r *Runner) submit(task func()) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stopped {
		return false
	}
	r.pool.Submit(task)
	return true
}

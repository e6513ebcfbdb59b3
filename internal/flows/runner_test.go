package flows

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunner_Do(t *testing.T) {
	r := NewRunner(2, nil)
	defer r.Stop()

	res := r.Do(context.Background(), FetchOffersFlow, 0, func(ctx context.Context) Result {
		return Result{Flow: FetchOffersFlow}
	})
	if !res.OK() || res.Flow != FetchOffersFlow {
		t.Fatalf("Do result = %v", res)
	}
}

func TestRunner_BoundsConcurrency(t *testing.T) {
	const size = 2
	r := NewRunner(size, nil)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		r.Go(context.Background(), FetchOffersFlow, 0, func(ctx context.Context) Result {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return Result{}
		}, func(Result) { wg.Done() })
	}
	wg.Wait()
	r.Stop()

	if got := atomic.LoadInt32(&peak); got > size {
		t.Fatalf("peak concurrency = %d, want <= %d", got, size)
	}
}

func TestRunner_DoContextCancelled(t *testing.T) {
	r := NewRunner(1, nil)
	defer r.Stop()

	release := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Do(ctx, FetchCommentsFlow, 3, func(ctx context.Context) Result {
		<-release
		return Result{}
	})
	close(release)
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("Do error = %v, want context.Canceled", res.Err)
	}
	if !res.Cancelled() {
		t.Fatalf("Cancelled() = false for %v", res)
	}
}

func TestRunner_DoTimeoutKeepsFlowAndOffer(t *testing.T) {
	r := NewRunner(1, nil)
	defer r.Stop()

	release := make(chan struct{})
	defer close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := r.Do(ctx, FetchOfferFlow, 9, func(ctx context.Context) Result {
		<-release
		return Result{Flow: FetchOfferFlow, OfferID: 9}
	})
	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Fatalf("Do error = %v, want context.DeadlineExceeded", res.Err)
	}
	if res.Flow != FetchOfferFlow || res.OfferID != 9 {
		t.Fatalf("timed out result = %v, want fetchOfferById(9)", res)
	}
	if got := res.String(); got != "fetchOfferById(9): context deadline exceeded" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRunner_StoppedRejectsWork(t *testing.T) {
	r := NewRunner(1, nil)
	r.Stop()
	r.Stop()

	res := r.Do(context.Background(), FetchNearbyFlow, 4, func(context.Context) Result { return Result{} })
	if !errors.Is(res.Err, ErrStopped) {
		t.Fatalf("Do after Stop = %v, want ErrStopped", res.Err)
	}
	if res.Flow != FetchNearbyFlow || res.OfferID != 4 {
		t.Fatalf("Do after Stop = %v, want fetchNearbyOffers(4)", res)
	}

	got := make(chan Result, 1)
	r.Go(context.Background(), LoginFlow, 0, func(context.Context) Result { return Result{} }, func(res Result) { got <- res })
	if res := <-got; !errors.Is(res.Err, ErrStopped) || res.Flow != LoginFlow {
		t.Fatalf("Go after Stop = %v, want login: runner stopped", res)
	}
}

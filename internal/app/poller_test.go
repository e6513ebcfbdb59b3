package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/sixcities/internal/flows"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, time.Minute},
		{"negative failures", -1, time.Minute},
		{"one failure", 1, 2 * time.Minute},
		{"two failures", 2, 4 * time.Minute},
		{"three failures capped", 3, 5 * time.Minute}, // Would be 8m, capped to 5m
		{"many failures capped", 40, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeFetcher) FetchOffers(context.Context) flows.Result {
	f.calls.Add(1)
	return flows.Result{Flow: flows.FetchOffersFlow, Err: f.err}
}

func TestStartRefresher_DeliversResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := flows.NewRunner(1, logger)
	defer runner.Stop()

	fetcher := &fakeFetcher{}
	results := make(chan flows.Result)
	StartRefresher(ctx, runner, fetcher, 10*time.Millisecond, results, logger)

	for i := 0; i < 2; i++ {
		select {
		case res := <-results:
			if res.Flow != flows.FetchOffersFlow || !res.OK() {
				t.Fatalf("result %d = %v", i, res)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("no result %d within 2s", i)
		}
	}
	if got := fetcher.calls.Load(); got < 2 {
		t.Fatalf("calls = %d, want at least 2", got)
	}
}

func TestStartRefresher_ReportsFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := flows.NewRunner(1, logger)
	defer runner.Stop()

	boom := errors.New("boom")
	results := make(chan flows.Result, 1)
	StartRefresher(ctx, runner, &fakeFetcher{err: boom}, 10*time.Millisecond, results, logger)

	select {
	case res := <-results:
		if !errors.Is(res.Err, boom) {
			t.Fatalf("err = %v, want boom", res.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result within 2s")
	}
}

func TestStartRefresher_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := flows.NewRunner(1, logger)
	defer runner.Stop()

	fetcher := &fakeFetcher{}
	results := make(chan flows.Result, 16)
	StartRefresher(ctx, runner, fetcher, time.Hour, results, logger)
	cancel()

	time.Sleep(20 * time.Millisecond)
	if got := fetcher.calls.Load(); got != 0 {
		t.Fatalf("calls = %d, want 0 after cancel", got)
	}
}

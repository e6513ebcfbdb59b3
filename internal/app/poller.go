package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/sixcities/internal/flows"
)

const (
	defaultRefreshInterval = time.Minute
	maxBackoff             = 5 * time.Minute
)

// offersFetcher is the flow the refresher repeats.
type offersFetcher interface {
	FetchOffers(ctx context.Context) flows.Result
}

// StartRefresher launches a background goroutine that re-fetches the offers
// list every interval on runner and sends each result to results. After a
// failure the wait doubles, up to maxBackoff. It returns immediately.
func StartRefresher(ctx context.Context, runner *flows.Runner, fetcher offersFetcher, interval time.Duration, results chan<- flows.Result, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			res := runner.Do(ctx, flows.FetchOffersFlow, 0, fetcher.FetchOffers)
			switch {
			case res.Cancelled():
				return
			case res.OK():
				failures = 0
			default:
				failures++
				logger.Warn("offers refresh failed", "failures", failures, "error", res.Err)
			}

			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff returns the wait before the next refresh after failures
// consecutive failures. Intervals longer than maxBackoff are never shortened.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	limit := max(maxBackoff, interval)
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= limit {
			return limit
		}
	}
	return backoff
}

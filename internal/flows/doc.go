// Package flows runs the asynchronous operations that fill the application
// state from the REST API.
//
// Each flow performs one request through a sixcities.API, turns the response
// into state events and dispatches them to a state.Dispatcher. Flows never
// touch the view layer. They report what happened through a Result, and the
// caller decides how to surface failures.
//
// # Loading and posting flags
//
// The fetch flows raise IsLoading on entry and clear it on every exit path,
// including failures and discarded responses. Overlapping fetches share the
// flag, which drops when the last of them returns. PostComment does the same
// with IsCommentPosting and refreshes the comments of the offer exactly once
// after a successful post. A failed refresh does not fail the post; it is
// reported in Result.Refresh.
//
// # Superseded responses
//
// A flow takes a ticket from the store before it sends its request and
// dispatches through DispatchIfCurrent. When a newer fetch of the same kind
// has started in the meantime, the older response is dropped and the Result
// is marked Stale. The last fetch started wins, not the last one to finish.
//
// # Runner
//
// Runner executes flows on a gammazero/workerpool pool so the number of
// requests in flight stays bounded:
//
//	runner := flows.NewRunner(cfg.MaxInflight, logger)
//	defer runner.Stop()
//	res := runner.Do(ctx, flows.FetchOfferFlow, id, func(ctx context.Context) flows.Result {
//		return f.FetchOffer(ctx, id)
//	})
//	if res.NotFound() {
//		// show the not-found view
//	}
package flows

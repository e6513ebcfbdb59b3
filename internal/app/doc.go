// Package app provides the orchestration layer for the six cities client.
//
// # Overview
//
// This package wires together configuration, logging, the API client, the
// state store, the fetch flows and the UI. It is the composition root where
// all dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load settings from ~/.config/sixcities/config.toml, .env and SIXCITIES_* variables
//  2. Open the client log file (and fluentd forwarding when enabled)
//  3. Load preferences: theme, city, sort order and the saved session token
//  4. Create the API client and seed it with the saved token
//  5. Create the state.Store from the remembered city and sort order
//  6. Start the flow runner and the background offers refresher
//  7. Start the TUI and block until the user exits or the context ends
//
// # Components
//
//   - app.go: Run and the startup state
//   - poller.go: background refresher that re-fetches offers periodically
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read settings
//	       ├─────> logging.Setup()        File and fluentd logging
//	       ├─────> sixcities.NewClient()  HTTP client
//	       ├─────> state.NewStore()       Shared state container
//	       ├─────> flows.NewRunner()      Bounded worker pool
//	       ├─────> StartRefresher()       Periodic offers refresh
//	       └─────> ui.Run()               Start TUI (blocks)
//
//	Refresher loop:
//	┌─────────────────────────────────────────┐
//	│ StartRefresher() goroutine              │
//	│  ├─> runner.Do(FetchOffers)             │
//	│  │    └─> store.Dispatch(...)           │
//	│  │         └─> UI redraws via Subscribe │
//	│  └─> result sent to the UI              │
//	└─────────────────────────────────────────┘
//
// # Refresh Behavior
//
// The refresher waits one interval (default: 60 seconds) before the first
// fetch, since the UI loads offers on start. After a failure the wait
// doubles up to five minutes and resets on the next success. Results go to
// the UI so failures are reported the same way as user-started fetches.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file or environment values
//   - Log file cannot be opened
//   - Invalid API URL or unknown -city value
//
// Everything after startup is reported in the UI and the log file.
//
// # Usage Example
//
//	opts := app.Options{
//		APIURL:       "http://127.0.0.1:8089",
//		RefreshEvery: 30,
//	}
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("sixcities failed: %v", err)
//	}
package app

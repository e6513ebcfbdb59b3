// Package ui provides the terminal interface of the six cities client.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program (Elm architecture). The Model never calls
// the API itself: key presses start flows through tea.Cmds that run on the
// flows.Runner, and the model redraws from store snapshots delivered on a
// state.Store subscription. Flow results come back as messages and are only
// used for navigation and notifications.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View, key dispatch and Run
//   - commands.go: tea.Cmd wrappers around flows, the store subscription and log reads
//   - listing.go: city tabs, sorted offer list and selection
//   - room.go: offer page with reviews, nearby places and the not-found page
//   - mapview.go: character map of offer locations and geohash area counts
//   - modal.go: sign-in and review forms
//   - logs.go: client log viewer backed by logtail
//   - toast.go: transient notifications for failed flows
//   - header.go, help.go, box.go, theme.go, style_helpers.go: rendering helpers
//
// # Views
//
//   - Listing: offers of the current city in the current sort order
//   - Offer: details, up to ten most recent reviews, three nearby offers
//   - Not found: shown when the opened offer id does not exist
//   - Logs: tail of the client log file, refreshed every few seconds
//
// # Notifications
//
// Every failed flow becomes a toast, except results superseded by a newer
// fetch and the unauthorized answer of the startup session check, which only
// means the user is signed out.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Store:     store,
//		Flows:     fl,
//		Runner:    runner,
//		Prefs:     p,
//		PrefsPath: prefs.DefaultPath(),
//		LogFile:   cfg.LogFile,
//	})
//
// # Key Bindings
//
//   - 1-6, [ and ]: Pick city
//   - s: Cycle sort order
//   - j/k, enter: Move and open an offer
//   - c: Write a review (signed in only)
//   - L: Sign in or out
//   - r: Refresh the current view
//   - l: Client logs
//   - T: Cycle theme
//   - esc: Back
//   - q or Ctrl+C: Exit
package ui

// Package state holds the client-side application state and the only code
// allowed to change it.
//
// # Overview
//
// State is split into four slices that are replaced independently:
//
//   - ClientState: current city, current sort mode, global loading flag
//   - OffersState: offers list, nearby offers, single-offer cache
//   - CommentsState: reviews of the viewed offer, comment-posting flag
//   - UserState: authorization status, signed-in user
//
// # Events and Reducers
//
// Changes arrive as Events, a closed set of plain structs (SwitchCity,
// LoadOffers, SetComments, ...). Reduce maps (state, event) to the next state:
//
//	next := state.Reduce(current, state.SetSortName{Mode: state.SortTopRated})
//
// Each slice has its own reducer that only reads and writes that slice.
// Reducers replace whole fields and never edit records in place, so a slice
// handed out earlier is never modified afterwards. Events a reducer does not
// know leave its slice untouched.
//
// Replay folds a sequence of events and is the basis of the replay
// determinism tests: the same initial state and the same events always give
// the same result.
//
// # Store
//
// Store is the single owner of the live state. It is created by the
// composition root and passed by reference to whoever dispatches:
//
//	store := state.NewStore(state.Initial())
//	updates, cancel := store.Subscribe()
//	defer cancel()
//	store.Dispatch(state.SwitchCity{City: amsterdam})
//	snap := <-updates
//
// Dispatch holds the store mutex while it reduces, so two events are never
// applied concurrently. Subscribers get one state per Dispatch call over a
// channel of capacity one; a subscriber that falls behind only sees the
// newest state.
//
// # Stale Responses
//
// Fetches that target the same slice run in slots. Begin issues a Ticket and
// invalidates every earlier ticket of the slot. DispatchIfCurrent applies a
// fetch result only while its ticket is still the newest, checked under the
// same lock that applies the events:
//
//	t := store.Begin(state.SlotComments)
//	comments, err := api.FetchComments(ctx, id)
//	if err == nil {
//		store.DispatchIfCurrent(t, state.SetComments{Comments: comments})
//	}
//
// So a slow response for an offer the user already left cannot overwrite the
// comments of the offer on screen.
//
// # Selectors
//
// Selectors derive views from a State without changing it: OfferByID,
// SortedComments, ShownComments, SortOffers, OffersInCity, VisibleOffers. All
// sorts are stable and return new slices.
package state

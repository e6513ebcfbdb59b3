package flows

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// Flows binds the API to a state dispatcher. Each method performs one
// request, dispatches the resulting events and reports a Result.
type Flows struct {
	api    sixcities.API
	store  state.Dispatcher
	logger *slog.Logger

	mu       sync.Mutex
	inflight int // fetches holding IsLoading up
}

// New builds the flows. A nil logger discards output.
func New(api sixcities.API, store state.Dispatcher, logger *slog.Logger) *Flows {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Flows{api: api, store: store, logger: logger}
}

// FetchOffers replaces the offers list.
func (f *Flows) FetchOffers(ctx context.Context) Result {
	res := Result{Flow: FetchOffersFlow}
	defer f.trackLoading()()

	ticket := f.store.Begin(state.SlotOffers)
	offers, err := f.api.FetchOffers(ctx)
	if err != nil {
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket, state.LoadOffers{Offers: offers})
	return f.done(res)
}

// FetchOffer fills the single-offer cache for id.
func (f *Flows) FetchOffer(ctx context.Context, id int) Result {
	res := Result{Flow: FetchOfferFlow, OfferID: id}
	defer f.trackLoading()()

	ticket := f.store.Begin(state.SlotOffer)
	offer, err := f.api.FetchOffer(ctx, id)
	if err != nil {
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket, state.LoadOffer{Offer: offer})
	return f.done(res)
}

// FetchNearbyOffers replaces the nearby list with the neighbours of id.
func (f *Flows) FetchNearbyOffers(ctx context.Context, id int) Result {
	res := Result{Flow: FetchNearbyFlow, OfferID: id}
	defer f.trackLoading()()

	ticket := f.store.Begin(state.SlotNearby)
	offers, err := f.api.FetchNearbyOffers(ctx, id)
	if err != nil {
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket, state.SetNearbyOffers{Offers: offers})
	return f.done(res)
}

// FetchComments replaces the comments list with the reviews of id. On failure
// the list is left as it was.
func (f *Flows) FetchComments(ctx context.Context, id int) Result {
	res := Result{Flow: FetchCommentsFlow, OfferID: id}
	defer f.trackLoading()()

	ticket := f.store.Begin(state.SlotComments)
	comments, err := f.api.FetchComments(ctx, id)
	if err != nil {
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket, state.SetComments{Comments: comments})
	return f.done(res)
}

// PostComment validates and submits a review, then refreshes the comments of
// the offer exactly once. The result reflects the post alone; the outcome of
// the refresh is reported in Result.Refresh.
func (f *Flows) PostComment(ctx context.Context, post sixcities.CommentPost) Result {
	res := Result{Flow: PostCommentFlow, OfferID: post.ID}
	if err := sixcities.ValidateComment(post); err != nil {
		return f.fail(res, err)
	}
	post.Comment = strings.TrimSpace(post.Comment)

	f.store.Dispatch(state.CheckCommentStatus{Posting: true})
	defer f.store.Dispatch(state.CheckCommentStatus{Posting: false})

	if err := f.api.PostComment(ctx, post); err != nil {
		return f.fail(res, err)
	}
	refresh := f.FetchComments(ctx, post.ID)
	res.Refresh = &refresh
	return f.done(res)
}

// CheckAuth resolves the session status from the current token.
func (f *Flows) CheckAuth(ctx context.Context) Result {
	res := Result{Flow: CheckAuthFlow}
	ticket := f.store.Begin(state.SlotAuth)
	user, err := f.api.CheckAuth(ctx)
	if err != nil {
		f.store.DispatchIfCurrent(ticket,
			state.RequireAuthorization{Status: state.AuthNoAuth},
			state.SetUserData{User: nil},
		)
		if errors.Is(err, sixcities.ErrUnauthorized) {
			res.Err = err
			f.logger.Debug("session not authorized")
			return res
		}
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket,
		state.RequireAuthorization{Status: state.AuthAuthorized},
		state.SetUserData{User: &user},
	)
	return f.done(res)
}

// Login signs in with creds.
func (f *Flows) Login(ctx context.Context, creds sixcities.Credentials) Result {
	res := Result{Flow: LoginFlow}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return f.fail(res, &sixcities.ValidationError{Problems: []string{"email and password are required"}})
	}

	ticket := f.store.Begin(state.SlotAuth)
	user, err := f.api.Login(ctx, creds)
	if err != nil {
		f.store.DispatchIfCurrent(ticket,
			state.RequireAuthorization{Status: state.AuthNoAuth},
			state.SetUserData{User: nil},
		)
		return f.fail(res, err)
	}
	res.Stale = !f.store.DispatchIfCurrent(ticket,
		state.RequireAuthorization{Status: state.AuthAuthorized},
		state.SetUserData{User: &user},
	)
	return f.done(res)
}

// Logout ends the session. The local session is cleared even when the
// request fails.
func (f *Flows) Logout(ctx context.Context) Result {
	res := Result{Flow: LogoutFlow}
	f.store.Begin(state.SlotAuth)
	err := f.api.Logout(ctx)
	f.store.Dispatch(
		state.RequireAuthorization{Status: state.AuthNoAuth},
		state.SetUserData{User: nil},
	)
	if err != nil {
		return f.fail(res, err)
	}
	return f.done(res)
}

// trackLoading raises the loading flag and returns the function that lowers
// it. The flag drops only when the last overlapping fetch returns, so every
// exit path still ends with IsLoading false.
func (f *Flows) trackLoading() func() {
	f.mu.Lock()
	f.inflight++
	f.store.Dispatch(state.SetLoadingStatus{Loading: true})
	f.mu.Unlock()

	started := time.Now()
	return func() {
		f.mu.Lock()
		f.inflight--
		if f.inflight == 0 {
			f.store.Dispatch(state.SetLoadingStatus{Loading: false})
		}
		f.mu.Unlock()
		f.logger.Debug("fetch finished", "duration", time.Since(started))
	}
}

func (f *Flows) fail(res Result, err error) Result {
	res.Err = err
	f.logger.Warn("flow failed", "flow", string(res.Flow), "offer_id", res.OfferID, "error", err)
	return res
}

func (f *Flows) done(res Result) Result {
	if res.Stale {
		f.logger.Info("flow result discarded", "flow", string(res.Flow), "offer_id", res.OfferID)
		return res
	}
	f.logger.Debug("flow succeeded", "flow", string(res.Flow), "offer_id", res.OfferID)
	return res
}

package flows

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/sixcities/internal/sixcities"
)

// Name identifies a flow in results and logs.
type Name string

const (
	FetchOffersFlow   Name = "fetchOffers"
	FetchOfferFlow    Name = "fetchOfferById"
	FetchNearbyFlow   Name = "fetchNearbyOffers"
	FetchCommentsFlow Name = "fetchComments"
	PostCommentFlow   Name = "postComment"
	CheckAuthFlow     Name = "checkAuth"
	LoginFlow         Name = "login"
	LogoutFlow        Name = "logout"
)

// Result is what every flow reports to its caller. Stale is set when the
// response arrived after a newer fetch of the same slot had started and was
// therefore discarded. Refresh holds the follow-up fetch a flow ran after
// succeeding, if any.
type Result struct {
	Flow    Name
	OfferID int
	Err     error
	Stale   bool
	Refresh *Result
}

// OK reports whether the flow succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// NotFound reports whether the flow failed because the offer does not exist.
func (r Result) NotFound() bool {
	return errors.Is(r.Err, sixcities.ErrNotFound)
}

// Unauthorized reports whether the API rejected the session.
func (r Result) Unauthorized() bool {
	return errors.Is(r.Err, sixcities.ErrUnauthorized)
}

// Cancelled reports whether the flow was abandoned because its context ended
// or the runner stopped, rather than failing on its own.
func (r Result) Cancelled() bool {
	return errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, ErrStopped)
}

// RefreshFailed reports whether the flow succeeded but its follow-up fetch
// did not.
func (r Result) RefreshFailed() bool {
	return r.Err == nil && r.Refresh != nil && r.Refresh.Err != nil && !r.Refresh.Cancelled()
}

// Invalid reports whether the flow was rejected before reaching the network.
func (r Result) Invalid() bool {
	var verr *sixcities.ValidationError
	return errors.As(r.Err, &verr)
}

func (r Result) String() string {
	target := string(r.Flow)
	if r.OfferID > 0 {
		target = fmt.Sprintf("%s(%d)", r.Flow, r.OfferID)
	}
	switch {
	case r.Err != nil:
		return target + ": " + r.Err.Error()
	case r.Stale:
		return target + ": stale"
	default:
		return target + ": ok"
	}
}

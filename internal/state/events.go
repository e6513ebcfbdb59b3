package state

import "github.com/five82/sixcities/internal/sixcities"

// Event is a plain state change. The set is closed: only types in this
// package implement it.
type Event interface {
	event()
}

// SwitchCity selects the city whose offers are listed.
type SwitchCity struct{ City sixcities.City }

// SetOffers replaces the offers list.
type SetOffers struct{ Offers []sixcities.Offer }

// LoadOffers replaces the offers list with a fetched one.
type LoadOffers struct{ Offers []sixcities.Offer }

// LoadOffer stores a single fetched offer.
type LoadOffer struct{ Offer sixcities.Offer }

// SetSortName selects the listing order.
type SetSortName struct{ Mode SortMode }

// SetComments replaces the comments list.
type SetComments struct{ Comments []sixcities.Comment }

// LoadComments replaces the comments list with a fetched one.
type LoadComments struct{ Comments []sixcities.Comment }

// SetNearbyOffers replaces the nearby offers list.
type SetNearbyOffers struct{ Offers []sixcities.Offer }

// SetLoadingStatus sets the global loading flag.
type SetLoadingStatus struct{ Loading bool }

// CheckCommentStatus sets the comment-posting flag.
type CheckCommentStatus struct{ Posting bool }

// RequireAuthorization sets the session status.
type RequireAuthorization struct{ Status AuthorizationStatus }

// SetUserData sets or, with nil, clears the signed-in user.
type SetUserData struct{ User *sixcities.AuthorizedUser }

func (SwitchCity) event()           {}
func (SetOffers) event()            {}
func (LoadOffers) event()           {}
func (LoadOffer) event()            {}
func (SetSortName) event()          {}
func (SetComments) event()          {}
func (LoadComments) event()         {}
func (SetNearbyOffers) event()      {}
func (SetLoadingStatus) event()     {}
func (CheckCommentStatus) event()   {}
func (RequireAuthorization) event() {}
func (SetUserData) event()          {}

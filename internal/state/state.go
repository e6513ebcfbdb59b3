package state

import (
	"slices"

	"github.com/five82/sixcities/internal/sixcities"
)

// AuthorizationStatus tracks whether the session is signed in.
type AuthorizationStatus int

const (
	AuthUnknown AuthorizationStatus = iota
	AuthAuthorized
	AuthNoAuth
)

func (a AuthorizationStatus) String() string {
	switch a {
	case AuthAuthorized:
		return "AUTH"
	case AuthNoAuth:
		return "NO_AUTH"
	default:
		return "UNKNOWN"
	}
}

// ClientState holds browsing choices and the global loading flag.
type ClientState struct {
	CurrentCity    sixcities.City
	CurrentSorting SortMode
	IsLoading      bool
}

// OffersState holds fetched offers. Offer is the single-offer cache filled by
// the fetch-by-id flow.
type OffersState struct {
	Offers       []sixcities.Offer
	NearbyOffers []sixcities.Offer
	Offer        *sixcities.Offer
}

// CommentsState holds the reviews of the offer being viewed.
type CommentsState struct {
	Comments         []sixcities.Comment
	IsCommentPosting bool
}

// UserState holds the session.
type UserState struct {
	AuthorizationStatus AuthorizationStatus
	User                *sixcities.AuthorizedUser
}

// State is the whole application state. Each slice is replaced independently.
type State struct {
	Client   ClientState
	Offers   OffersState
	Comments CommentsState
	User     UserState
}

// Initial returns the state every session starts from.
func Initial() State {
	return State{
		Client: ClientState{
			CurrentCity:    sixcities.DefaultCity(),
			CurrentSorting: SortPopular,
			IsLoading:      true,
		},
		User: UserState{AuthorizationStatus: AuthUnknown},
	}
}

// Clone returns a deep copy so callers can never reach the store's slices.
func (s State) Clone() State {
	out := s
	out.Offers.Offers = slices.Clone(s.Offers.Offers)
	out.Offers.NearbyOffers = slices.Clone(s.Offers.NearbyOffers)
	if s.Offers.Offer != nil {
		offer := *s.Offers.Offer
		out.Offers.Offer = &offer
	}
	out.Comments.Comments = slices.Clone(s.Comments.Comments)
	if s.User.User != nil {
		user := *s.User.User
		out.User.User = &user
	}
	return out
}

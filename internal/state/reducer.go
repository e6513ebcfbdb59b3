package state

import (
	"slices"

	"github.com/five82/sixcities/internal/sixcities"
)

// Reduce returns the state after applying ev. It never mutates s and never
// triggers further events. Events no slice handles leave the state unchanged.
func Reduce(s State, ev Event) State {
	s.Client = reduceClient(s.Client, ev)
	s.Offers = reduceOffers(s.Offers, ev)
	s.Comments = reduceComments(s.Comments, ev)
	s.User = reduceUser(s.User, ev)
	return s
}

// Replay folds events over initial in order.
func Replay(initial State, events ...Event) State {
	s := initial
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}

func reduceClient(s ClientState, ev Event) ClientState {
	switch ev := ev.(type) {
	case SwitchCity:
		// Only members of the fixed set are accepted.
		if city, ok := sixcities.LookupCity(ev.City.Name); ok {
			s.CurrentCity = city
		}
	case SetSortName:
		if ev.Mode.Valid() {
			s.CurrentSorting = ev.Mode
		}
	case SetLoadingStatus:
		s.IsLoading = ev.Loading
	}
	return s
}

func reduceOffers(s OffersState, ev Event) OffersState {
	switch ev := ev.(type) {
	case SetOffers:
		s.Offers = ev.Offers
	case LoadOffers:
		s.Offers = ev.Offers
	case SetNearbyOffers:
		s.NearbyOffers = ev.Offers
	case LoadOffer:
		offer := ev.Offer
		s.Offer = &offer
		if i := slices.IndexFunc(s.Offers, func(o sixcities.Offer) bool { return o.ID == offer.ID }); i >= 0 {
			next := slices.Clone(s.Offers)
			next[i] = offer
			s.Offers = next
		}
	}
	return s
}

func reduceComments(s CommentsState, ev Event) CommentsState {
	switch ev := ev.(type) {
	case SetComments:
		s.Comments = ev.Comments
	case LoadComments:
		s.Comments = ev.Comments
	case CheckCommentStatus:
		s.IsCommentPosting = ev.Posting
	}
	return s
}

func reduceUser(s UserState, ev Event) UserState {
	switch ev := ev.(type) {
	case RequireAuthorization:
		s.AuthorizationStatus = ev.Status
	case SetUserData:
		s.User = ev.User
	}
	return s
}

package state

import (
	"cmp"
	"slices"

	"github.com/five82/sixcities/internal/sixcities"
)

// MaxShownComments caps the reviews rendered on an offer page.
const MaxShownComments = 10

// OfferByID looks the offer up in the offers list, then the nearby list, then
// the single-offer cache. The first match wins.
func OfferByID(s State, id int) (sixcities.Offer, bool) {
	for _, list := range [][]sixcities.Offer{s.Offers.Offers, s.Offers.NearbyOffers} {
		for _, o := range list {
			if o.ID == id {
				return o, true
			}
		}
	}
	if s.Offers.Offer != nil && s.Offers.Offer.ID == id {
		return *s.Offers.Offer, true
	}
	return sixcities.Offer{}, false
}

// SortedComments returns a new slice with the most recent comments first.
// Comments with the same date keep their relative order; undated comments go
// last.
func SortedComments(list []sixcities.Comment) []sixcities.Comment {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b sixcities.Comment) int {
		ta, tb := a.ParsedDate(), b.ParsedDate()
		switch {
		case ta.IsZero() && tb.IsZero():
			return 0
		case ta.IsZero():
			return 1
		case tb.IsZero():
			return -1
		}
		return tb.Compare(ta)
	})
	return out
}

// ShownComments returns the comments displayed on the offer page.
func ShownComments(s State) []sixcities.Comment {
	sorted := SortedComments(s.Comments.Comments)
	if len(sorted) > MaxShownComments {
		sorted = sorted[:MaxShownComments]
	}
	return sorted
}

// SortOffers returns a new slice ordered by mode. The sort is stable so ties
// keep their original order.
func SortOffers(list []sixcities.Offer, mode SortMode) []sixcities.Offer {
	out := slices.Clone(list)
	var compare func(a, b sixcities.Offer) int
	switch mode {
	case SortPriceLowToHigh:
		compare = func(a, b sixcities.Offer) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHighToLow:
		compare = func(a, b sixcities.Offer) int { return cmp.Compare(b.Price, a.Price) }
	case SortTopRated:
		compare = func(a, b sixcities.Offer) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}

// OffersInCity returns the offers located in city, in their original order.
func OffersInCity(list []sixcities.Offer, city sixcities.City) []sixcities.Offer {
	var out []sixcities.Offer
	for _, o := range list {
		if o.InCity(city.Name) {
			out = append(out, o)
		}
	}
	return out
}

// VisibleOffers is the listing for the current city in the current order.
func VisibleOffers(s State) []sixcities.Offer {
	return SortOffers(OffersInCity(s.Offers.Offers, s.Client.CurrentCity), s.Client.CurrentSorting)
}

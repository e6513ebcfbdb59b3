package state

import (
	"reflect"
	"testing"

	"github.com/five82/sixcities/internal/sixcities"
)

func ids(offers []sixcities.Offer) []int {
	out := make([]int, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestOfferByID_AfterSetOffers(t *testing.T) {
	lists := [][]sixcities.Offer{
		nil,
		{{ID: 1, Title: "a"}},
		{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 2, Title: "dup"}},
	}
	for _, list := range lists {
		s := Reduce(Initial(), SetOffers{Offers: list})
		for id := 0; id <= 3; id++ {
			got, ok := OfferByID(s, id)

			var want sixcities.Offer
			found := false
			for _, o := range list {
				if o.ID == id {
					want, found = o, true
					break
				}
			}
			if ok != found {
				t.Fatalf("OfferByID(%d) ok = %v, want %v (list %v)", id, ok, found, ids(list))
			}
			if found && !reflect.DeepEqual(got, want) {
				t.Fatalf("OfferByID(%d) = %#v, want %#v", id, got, want)
			}
		}
	}
}

func TestOfferByID_FallsBackToNearbyAndCache(t *testing.T) {
	s := Replay(Initial(),
		SetOffers{Offers: []sixcities.Offer{{ID: 1}}},
		SetNearbyOffers{Offers: []sixcities.Offer{{ID: 2, Title: "nearby"}}},
		LoadOffer{Offer: sixcities.Offer{ID: 3, Title: "cached"}},
	)
	if o, ok := OfferByID(s, 2); !ok || o.Title != "nearby" {
		t.Fatalf("OfferByID(2) = %#v, %v; want nearby", o, ok)
	}
	if o, ok := OfferByID(s, 3); !ok || o.Title != "cached" {
		t.Fatalf("OfferByID(3) = %#v, %v; want cached", o, ok)
	}
	if _, ok := OfferByID(s, 4); ok {
		t.Fatalf("OfferByID(4) ok = true, want absent")
	}
}

func TestSortOffers_PriceAscendingScenario(t *testing.T) {
	s := Reduce(Initial(), SetOffers{Offers: []sixcities.Offer{{ID: 1, Price: 50}, {ID: 2, Price: 30}}})
	got := ids(SortOffers(s.Offers.Offers, SortPriceLowToHigh))
	if !reflect.DeepEqual(got, []int{2, 1}) {
		t.Fatalf("sorted ids = %v, want [2 1]", got)
	}
	if s.Offers.Offers[0].ID != 1 {
		t.Fatalf("SortOffers mutated the state slice")
	}
}

func TestSortOffers_StableAndDeterministic(t *testing.T) {
	offers := []sixcities.Offer{
		{ID: 1, Price: 100, Rating: 4},
		{ID: 2, Price: 50, Rating: 5},
		{ID: 3, Price: 100, Rating: 4},
		{ID: 4, Price: 50, Rating: 3},
		{ID: 5, Price: 75, Rating: 5},
	}
	cases := []struct {
		mode SortMode
		want []int
	}{
		{SortPopular, []int{1, 2, 3, 4, 5}},
		{SortPriceLowToHigh, []int{2, 4, 5, 1, 3}},
		{SortPriceHighToLow, []int{1, 3, 5, 2, 4}},
		{SortTopRated, []int{2, 5, 1, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.Key(), func(t *testing.T) {
			first := ids(SortOffers(offers, tc.mode))
			second := ids(SortOffers(offers, tc.mode))
			if !reflect.DeepEqual(first, tc.want) {
				t.Fatalf("SortOffers(%v) = %v, want %v", tc.mode, first, tc.want)
			}
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("SortOffers not deterministic: %v vs %v", first, second)
			}
		})
	}
}

func TestSortedComments_RecentFirstAndIdempotent(t *testing.T) {
	list := []sixcities.Comment{
		{ID: 1, Date: "2024-01-01T10:00:00Z"},
		{ID: 2, Date: "2024-03-01T10:00:00Z"},
		{ID: 3, Date: ""},
		{ID: 4, Date: "2024-03-01T10:00:00Z"},
		{ID: 5, Date: "2023-12-31T10:00:00Z"},
	}
	once := SortedComments(list)
	var got []int
	for _, c := range once {
		got = append(got, c.ID)
	}
	if !reflect.DeepEqual(got, []int{2, 4, 1, 5, 3}) {
		t.Fatalf("SortedComments ids = %v, want [2 4 1 5 3]", got)
	}
	if list[0].ID != 1 {
		t.Fatalf("SortedComments mutated its input")
	}
	twice := SortedComments(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("SortedComments not idempotent")
	}
}

func TestShownComments_Capped(t *testing.T) {
	var list []sixcities.Comment
	for i := 0; i < MaxShownComments+5; i++ {
		list = append(list, sixcities.Comment{ID: i})
	}
	s := Reduce(Initial(), SetComments{Comments: list})
	if got := len(ShownComments(s)); got != MaxShownComments {
		t.Fatalf("ShownComments len = %d, want %d", got, MaxShownComments)
	}
}

func TestVisibleOffers_FiltersByCityThenSorts(t *testing.T) {
	paris := sixcities.City{Name: "Paris"}
	hamburg := sixcities.City{Name: "Hamburg"}
	s := Replay(Initial(),
		SetOffers{Offers: []sixcities.Offer{
			{ID: 1, City: paris, Price: 300},
			{ID: 2, City: hamburg, Price: 10},
			{ID: 3, City: paris, Price: 100},
		}},
		SetSortName{Mode: SortPriceLowToHigh},
	)
	if got := ids(VisibleOffers(s)); !reflect.DeepEqual(got, []int{3, 1}) {
		t.Fatalf("VisibleOffers = %v, want [3 1]", got)
	}

	s = Reduce(s, SwitchCity{City: hamburg})
	if got := ids(VisibleOffers(s)); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("VisibleOffers after switch = %v, want [2]", got)
	}
}

package sixcities

import (
	"strings"
	"testing"
	"time"
)

func TestOfferHelpers(t *testing.T) {
	o := Offer{Rating: 4.5, City: City{Name: "Paris"}}
	if o.RoundedRating() != 5 {
		t.Fatalf("RoundedRating = %d, want 5", o.RoundedRating())
	}
	o.Rating = 3.4
	if o.RoundedRating() != 3 {
		t.Fatalf("RoundedRating = %d, want 3", o.RoundedRating())
	}
	if !o.InCity(" paris ") {
		t.Fatalf("InCity(paris) = false, want true")
	}
	if o.InCity("Hamburg") {
		t.Fatalf("InCity(Hamburg) = true, want false")
	}
}

func TestLocationCellFollowsZoom(t *testing.T) {
	paris := Location{Latitude: 48.864716, Longitude: 2.349014}

	paris.Zoom = 8
	coarse := paris.Cell()
	paris.Zoom = 12
	city := paris.Cell()
	paris.Zoom = 16
	fine := paris.Cell()

	if len(coarse) != 4 || len(city) != 5 || len(fine) != 7 {
		t.Fatalf("cell lengths = %d/%d/%d, want 4/5/7", len(coarse), len(city), len(fine))
	}
	if !strings.HasPrefix(fine, city) || !strings.HasPrefix(city, coarse) {
		t.Fatalf("cells should nest: %q %q %q", coarse, city, fine)
	}
	if !strings.HasPrefix(city, "u09") {
		t.Fatalf("Paris cell = %q, want u09 prefix", city)
	}
}

func TestCities(t *testing.T) {
	list := Cities()
	if len(list) != 6 {
		t.Fatalf("Cities() returned %d cities, want 6", len(list))
	}
	if list[0].Name != "Paris" || DefaultCity().Name != "Paris" {
		t.Fatalf("first city = %q, want Paris", list[0].Name)
	}

	list[0].Name = "Mutated"
	if Cities()[0].Name != "Paris" {
		t.Fatalf("Cities() should return a copy")
	}

	c, ok := LookupCity("  amsterdam ")
	if !ok || c.Name != "Amsterdam" {
		t.Fatalf("LookupCity(amsterdam) = %#v, %v", c, ok)
	}
	if _, ok := LookupCity("Berlin"); ok {
		t.Fatalf("LookupCity(Berlin) ok = true, want false")
	}
}

func TestParseTimeLayouts(t *testing.T) {
	if parseTime("2024-05-08T14:13:56.569Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339 with fraction")
	}
	got := parseTime("2024-05-08")
	if got.Year() != 2024 || got.Month() != time.May || got.Day() != 8 {
		t.Fatalf("parseTime = %v, want 2024-05-08", got)
	}
	if !parseTime("not a date").IsZero() {
		t.Fatalf("parseTime should return zero for garbage")
	}
	if !parseTime("").IsZero() {
		t.Fatalf("parseTime should return zero for empty input")
	}
}

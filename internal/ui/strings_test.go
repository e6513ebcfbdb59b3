package ui

import (
	"strings"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "€0"},
		{120, "€120"},
		{1234, "€1,234"},
	}
	for _, tc := range cases {
		if got := formatPrice(tc.in); got != tc.want {
			t.Errorf("formatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOfferType(t *testing.T) {
	cases := map[string]string{
		"apartment":  "Apartment",
		"hotel_room": "Hotel Room",
		" house ":    "House",
		"":           "",
	}
	for in, want := range cases {
		if got := offerType(in); got != want {
			t.Errorf("offerType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3.4, "★★★☆☆"},
		{4.5, "★★★★★"},
		{7, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tc := range cases {
		if got := stars(tc.rating); got != tc.want {
			t.Errorf("stars(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  short ", 10); got != "short" {
		t.Fatalf("truncate trims = %q, want short", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("truncate limit<=3 = %q, want abc", got)
	}
	if got := truncate("Amsterdam canal house", 10); got != "Amsterd..." {
		t.Fatalf("truncate = %q, want Amsterd...", got)
	}
	if got := truncate("Düsseldorf", 8); got != "Düsse..." {
		t.Fatalf("truncate counts runes, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Fatalf("line %q longer than 10", l)
		}
	}
	if got := strings.Join(lines, " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Fatalf("wrap lost words: %q", got)
	}
	if wrap("   ", 10) != nil {
		t.Fatal("blank text should give no lines")
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "place", "places"); got != "1 place" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(3, "place", "places"); got != "3 places" {
		t.Fatalf("plural(3) = %q", got)
	}
}

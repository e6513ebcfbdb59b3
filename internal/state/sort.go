package state

import (
	"fmt"
	"strings"
)

// SortMode selects the order of the offer listing.
type SortMode int

const (
	SortPopular SortMode = iota
	SortPriceLowToHigh
	SortPriceHighToLow
	SortTopRated
	sortModeCount
)

var sortModes = [...]struct {
	key   string
	label string
}{
	SortPopular:        {"popular", "Popular"},
	SortPriceLowToHigh: {"price-asc", "Price: low to high"},
	SortPriceHighToLow: {"price-desc", "Price: high to low"},
	SortTopRated:       {"top-rated", "Top rated first"},
}

// SortModes lists every mode in menu order.
func SortModes() []SortMode {
	out := make([]SortMode, 0, sortModeCount)
	for m := SortPopular; m < sortModeCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is a known mode.
func (m SortMode) Valid() bool {
	return m >= SortPopular && m < sortModeCount
}

// String returns the menu label.
func (m SortMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModes[m].label
}

// Key returns the stable identifier stored in preferences.
func (m SortMode) Key() string {
	if !m.Valid() {
		return ""
	}
	return sortModes[m].key
}

// Next returns the following mode, wrapping around.
func (m SortMode) Next() SortMode {
	if !m.Valid() {
		return SortPopular
	}
	return (m + 1) % sortModeCount
}

// ParseSortMode accepts either a key ("price-asc") or a label
// ("Price: low to high"), case-insensitively.
func ParseSortMode(value string) (SortMode, error) {
	value = strings.TrimSpace(value)
	for m := SortPopular; m < sortModeCount; m++ {
		if strings.EqualFold(value, sortModes[m].key) || strings.EqualFold(value, sortModes[m].label) {
			return m, nil
		}
	}
	return SortPopular, fmt.Errorf("unknown sort mode %q", value)
}

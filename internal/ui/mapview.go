package ui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/sixcities/internal/sixcities"
)

const (
	pinRune    = '•'
	activeRune = '◆'
	centerRune = '+'
	emptyRune  = '·'

	// minSpan keeps a single offer from filling the whole map.
	minSpan = 0.02
)

// plotMap places offers on a width by height character grid framed around
// them and the city center. The active offer is drawn over any other pin in
// its cell.
func plotMap(center sixcities.Location, offers []sixcities.Offer, activeID, width, height int) []string {
	if width < 2 || height < 2 {
		return nil
	}
	minLat, maxLat := center.Latitude, center.Latitude
	minLon, maxLon := center.Longitude, center.Longitude
	for _, o := range offers {
		minLat = min(minLat, o.Location.Latitude)
		maxLat = max(maxLat, o.Location.Latitude)
		minLon = min(minLon, o.Location.Longitude)
		maxLon = max(maxLon, o.Location.Longitude)
	}
	minLat, maxLat = widen(minLat, maxLat)
	minLon, maxLon = widen(minLon, maxLon)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(emptyRune), width))
	}
	cell := func(loc sixcities.Location) (int, int) {
		col := int((loc.Longitude-minLon)/(maxLon-minLon)*float64(width-1) + 0.5)
		row := int((maxLat-loc.Latitude)/(maxLat-minLat)*float64(height-1) + 0.5)
		return min(max(row, 0), height-1), min(max(col, 0), width-1)
	}

	r, c := cell(center)
	grid[r][c] = centerRune
	for _, o := range offers {
		if o.ID == activeID {
			continue
		}
		r, c := cell(o.Location)
		grid[r][c] = pinRune
	}
	for _, o := range offers {
		if o.ID == activeID {
			r, c := cell(o.Location)
			grid[r][c] = activeRune
		}
	}

	rows := make([]string, height)
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}

// widen adds a margin around [lo, hi] and enforces a minimum span.
func widen(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span < minSpan {
		mid := (lo + hi) / 2
		return mid - minSpan/2, mid + minSpan/2
	}
	margin := span * 0.1
	return lo - margin, hi + margin
}

// areaCount is the number of offers inside one geohash cell.
type areaCount struct {
	cell  string
	count int
}

// areaCounts groups offers by the geohash cell of their location, busiest
// cells first.
func areaCounts(offers []sixcities.Offer) []areaCount {
	counts := make(map[string]int)
	for _, o := range offers {
		counts[o.Location.Cell()]++
	}
	out := make([]areaCount, 0, len(counts))
	for cell, n := range counts {
		out = append(out, areaCount{cell: cell, count: n})
	}
	slices.SortFunc(out, func(a, b areaCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.cell, b.cell)
	})
	return out
}

// renderMap colors a plotted map for display.
func (m Model) renderMap(rows []string, bg BgStyle, styles Styles) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range row {
			switch r {
			case activeRune:
				b.WriteString(bg.Render(string(r), styles.Pin.Bold(true)))
			case pinRune:
				b.WriteString(bg.Render(string(r), styles.AccentText))
			case centerRune:
				b.WriteString(bg.Render(string(r), styles.WarningText))
			default:
				b.WriteString(bg.Render(string(r), styles.FaintText))
			}
		}
	}
	return b.String()
}

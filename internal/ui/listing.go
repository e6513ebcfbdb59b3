package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

const (
	rowsPerOffer = 2
	pageStep     = 10
)

// handleListingKey processes keys on the offers listing.
func (m Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	offers := state.VisibleOffers(m.snapshot)
	cities := sixcities.Cities()

	switch {
	case key.Matches(msg, m.keys.City):
		if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(cities) {
			m.switchCity(cities[idx])
		}
	case key.Matches(msg, m.keys.NextCity):
		m.switchCity(cities[(m.currentCityIndex()+1)%len(cities)])
	case key.Matches(msg, m.keys.PrevCity):
		m.switchCity(cities[(m.currentCityIndex()+len(cities)-1)%len(cities)])
	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, offers)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, offers)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-pageStep, offers)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(pageStep, offers)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(offers), offers)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(offers), offers)
	case key.Matches(msg, m.keys.Open):
		if len(offers) > 0 {
			return m.openOffer(offers[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchOffersCmd()
	}
	return m, nil
}

// moveCursor moves the selection by delta, clamped to the listing.
func (m *Model) moveCursor(delta int, offers []sixcities.Offer) {
	if len(offers) == 0 {
		m.cursor, m.selectedID = 0, 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(offers)-1)
	m.selectedID = offers[m.cursor].ID
}

// listingWidths splits the screen between the offers list and the map.
func (m Model) listingWidths() (list, side int) {
	if m.width < LayoutCompactWidth {
		return m.width, 0
	}
	list = m.width * 6 / 10
	if m.width >= LayoutWideWidth {
		list = m.width / 2
	}
	return list, m.width - list
}

// renderListing renders the offers of the current city next to their map.
func (m Model) renderListing(height int) string {
	offers := state.VisibleOffers(m.snapshot)
	city := m.snapshot.Client.CurrentCity
	listWidth, sideWidth := m.listingWidths()

	title := fmt.Sprintf("%s to stay in %s", plural(len(offers), "place", "places"), city.Name)
	if len(offers) > 0 {
		title += " · " + m.snapshot.Client.CurrentSorting.String()
	}
	list := m.renderTitledBox(title, m.renderOfferRows(offers, listWidth-2, height-2), listWidth, height, true)
	if sideWidth == 0 {
		return list
	}

	var selected *sixcities.Offer
	if len(offers) > 0 {
		selected = &offers[m.cursor]
	}
	side := m.renderTitledBox("Map", m.renderListingSide(city, offers, selected, sideWidth-2), sideWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, side)
}

func (m Model) renderOfferRows(offers []sixcities.Offer, width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if len(offers) == 0 {
		if m.snapshot.Client.IsLoading {
			return bg.Render("Loading offers...", styles.MutedText)
		}
		return bg.Render("No places to stay available", styles.Text.Bold(true)) + "\n" +
			bg.Render("We could not find any property available at the moment in "+
				m.snapshot.Client.CurrentCity.Name, styles.MutedText)
	}

	capacity := max(height/rowsPerOffer, 1)
	start := 0
	if m.cursor >= capacity {
		start = m.cursor - capacity + 1
	}
	end := min(start+capacity, len(offers))

	lines := make([]string, 0, (end-start)*rowsPerOffer)
	for i := start; i < end; i++ {
		first, second := m.offerRow(offers[i], width, i == m.cursor)
		lines = append(lines, first, second)
	}
	return strings.Join(lines, "\n")
}

// offerRow renders the two lines of one listing entry.
func (m Model) offerRow(o sixcities.Offer, width int, selected bool) (string, string) {
	bgColor := m.theme.FocusBg
	if selected {
		bgColor = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	marker := bg.Spaces(2)
	if selected {
		marker = bg.Render("▸", styles.AccentText) + bg.Space()
	}
	first := marker
	if o.IsPremium {
		first += styles.Premium.Render("Premium") + bg.Space()
	}
	first += bg.Render(formatPrice(o.Price), styles.Text.Bold(true)) +
		bg.Render(" / night", styles.MutedText) + bg.Spaces(2) +
		bg.Render(stars(o.Rating), styles.Stars)
	if o.IsFavorite {
		first += bg.Space() + bg.Render("♥", styles.DangerText)
	}

	second := bg.Spaces(2) +
		bg.Render(truncate(o.Title, width-18), styles.Text) +
		bg.Render(" · "+offerType(o.Type), styles.MutedText)

	return bg.FillLine(first, width), bg.FillLine(second, width)
}

func (m Model) renderListingSide(city sixcities.City, offers []sixcities.Offer, selected *sixcities.Offer, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	activeID := 0
	if selected != nil {
		activeID = selected.ID
	}
	mapWidth := min(MapWidth, width)
	lines := []string{m.renderMap(plotMap(city.Location, offers, activeID, mapWidth, MapHeight), bg, styles), ""}

	if areas := areaCounts(offers); len(areas) > 0 {
		lines = append(lines, bg.Render("Busiest areas", styles.AccentText.Bold(true)))
		for i, a := range areas {
			if i == 3 {
				break
			}
			lines = append(lines, bg.Render(padRight(a.cell, 10), styles.InfoText)+
				bg.Render(plural(a.count, "offer", "offers"), styles.MutedText))
		}
		lines = append(lines, "")
	}

	if selected != nil {
		lines = append(lines,
			bg.Render(truncate(selected.Title, width), styles.Text.Bold(true)),
			bg.Render(offerType(selected.Type), styles.MutedText)+bg.Sep(" · ")+
				bg.Render(plural(selected.Bedrooms, "bedroom", "bedrooms"), styles.MutedText)+bg.Sep(" · ")+
				bg.Render(fmt.Sprintf("up to %d adults", selected.MaxAdults), styles.MutedText),
			bg.Render("Host: "+selected.Host.Name, styles.FaintText),
		)
	}
	return strings.Join(lines, "\n")
}

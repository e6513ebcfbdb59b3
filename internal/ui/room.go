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

// handleRoomKey processes keys on the offer page.
func (m Model) handleRoomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = viewListing
		m.selectedID = m.roomID
		m.applySnapshot(m.snapshot)
		return m, nil
	case key.Matches(msg, m.keys.City):
		idx := int(msg.String()[0] - '1')
		nearby := m.snapshot.Offers.NearbyOffers
		if idx >= 0 && idx < len(nearby) {
			return m.openOffer(nearby[idx].ID)
		}
	case key.Matches(msg, m.keys.Review):
		if m.snapshot.User.AuthorizationStatus != state.AuthAuthorized {
			m.pushToast("Sign in to write a review", toastInfo)
			return m.toggleSession()
		}
		title := ""
		if offer, ok := state.OfferByID(m.snapshot, m.roomID); ok {
			title = offer.Title
		}
		cm := newCommentModal(m.roomID, title)
		m.modal = cm
		return m, cm.focusCmd()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.openOfferCmd(m.roomID)
	case key.Matches(msg, m.keys.Up):
		m.roomViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.roomViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.roomViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.roomViewport.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.roomViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.roomViewport.GotoBottom()
	}
	return m, nil
}

func (m Model) roomContentWidth() int {
	list, _ := m.listingWidths()
	return max(list-2, 10)
}

// updateRoomViewport refreshes the offer page content.
func (m *Model) updateRoomViewport() {
	if m.roomViewport.Width == 0 || m.roomID == 0 {
		return
	}
	m.roomViewport.SetContent(m.roomContent(m.roomViewport.Width))
}

// renderRoom renders the offer page.
func (m Model) renderRoom(height int) string {
	mainWidth, sideWidth := m.listingWidths()
	title := "Offer"
	if offer, ok := state.OfferByID(m.snapshot, m.roomID); ok {
		title = offer.Title
	}

	vp := m.roomViewport
	vp.Height = max(height-2, 1)
	main := m.renderTitledBox(title, vp.View(), mainWidth, height, true)
	if sideWidth == 0 {
		return main
	}
	side := m.renderTitledBox("Neighbourhood", m.renderRoomSide(sideWidth-2), sideWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, main, side)
}

// roomContent builds the scrollable body of the offer page.
func (m Model) roomContent(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	offer, ok := state.OfferByID(m.snapshot, m.roomID)
	if !ok {
		return bg.Render("Loading offer...", styles.MutedText)
	}

	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }
	para := func(text string, style lipgloss.Style) {
		for _, l := range wrap(text, width-2) {
			add(bg.Space() + bg.Render(l, style))
		}
	}

	heading := ""
	if offer.IsPremium {
		heading = styles.Premium.Render("Premium") + bg.Space()
	}
	add(heading+bg.Render(offer.Title, styles.Text.Bold(true)), "")
	add(bg.Render(stars(offer.Rating), styles.Stars) + bg.Space() +
		bg.Render(fmt.Sprintf("%.1f", offer.Rating), styles.Text))
	add(bg.Render(offerType(offer.Type), styles.MutedText) + bg.Sep(" · ") +
		bg.Render(plural(offer.Bedrooms, "Bedroom", "Bedrooms"), styles.MutedText) + bg.Sep(" · ") +
		bg.Render(fmt.Sprintf("Max %d adults", offer.MaxAdults), styles.MutedText))
	add(bg.Render(formatPrice(offer.Price), styles.Text.Bold(true))+bg.Render(" night", styles.MutedText), "")

	if len(offer.Goods) > 0 {
		add(bg.Render("What's inside", styles.AccentText.Bold(true)))
		para(strings.Join(offer.Goods, " · "), styles.Text)
		add("")
	}

	add(bg.Render("Meet the host", styles.AccentText.Bold(true)))
	host := bg.Space() + bg.Render(offer.Host.Name, styles.Text)
	if offer.Host.IsPro {
		host += bg.Space() + bg.Render("Pro", styles.MutedText)
	}
	add(host)
	para(offer.Description, styles.MutedText)
	add("")

	add(bg.Render("Reviews", styles.AccentText.Bold(true)) + bg.Sep(" · ") +
		bg.Render(fmt.Sprintf("%d", len(m.snapshot.Comments.Comments)), styles.Text))
	for _, c := range state.ShownComments(m.snapshot) {
		date := c.Date
		if t := c.ParsedDate(); !t.IsZero() {
			date = t.Format("January 2006")
		}
		add(bg.Space() + bg.Render(c.Author.Name, styles.Text.Bold(true)) + bg.Space() +
			bg.Render(stars(c.Rating), styles.Stars) + bg.Space() +
			bg.Render(date, styles.FaintText))
		para(c.Text, styles.Text)
		add("")
	}

	switch {
	case m.snapshot.Comments.IsCommentPosting:
		add(bg.Render("Posting your review...", styles.InfoText))
	case m.snapshot.User.AuthorizationStatus == state.AuthAuthorized:
		add(bg.Render("Press c to leave a review", styles.FaintText))
	default:
		add(bg.Render("Sign in with L to leave a review", styles.FaintText))
	}
	return strings.Join(lines, "\n")
}

// renderRoomSide renders the map around the offer and its nearby places.
func (m Model) renderRoomSide(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	offer, ok := state.OfferByID(m.snapshot, m.roomID)
	if !ok {
		return bg.Render("Loading...", styles.MutedText)
	}
	nearby := m.snapshot.Offers.NearbyOffers
	pins := append([]sixcities.Offer{offer}, nearby...)

	lines := []string{
		m.renderMap(plotMap(offer.Location, pins, offer.ID, min(MapWidth, width), MapHeight), bg, styles),
		bg.Render("Area ", styles.FaintText) + bg.Render(offer.Location.Cell(), styles.InfoText),
		"",
		bg.Render("Other places in the neighbourhood", styles.AccentText.Bold(true)),
	}
	if len(nearby) == 0 {
		lines = append(lines, bg.Render("None listed", styles.MutedText))
	}
	for i, o := range nearby {
		lines = append(lines,
			bg.Render(fmt.Sprintf("%d", i+1), styles.AccentText)+bg.Space()+
				bg.Render(formatPrice(o.Price), styles.Text.Bold(true))+bg.Space()+
				bg.Render(stars(o.Rating), styles.Stars),
			bg.Spaces(2)+bg.Render(truncate(o.Title, width-4), styles.MutedText),
		)
	}
	return strings.Join(lines, "\n")
}

// renderNotFound renders the page shown for an unknown offer id.
func (m Model) renderNotFound(height int) string {
	styles := m.theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render("404"),
		"",
		styles.Text.Bold(true).Render("Page not found"),
		styles.MutedText.Render(fmt.Sprintf("There is no offer with id %d.", m.roomID)),
		"",
		styles.FaintText.Render("Press esc to return to the listing"),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}

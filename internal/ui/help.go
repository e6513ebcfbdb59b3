package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// helpSections groups the key bindings by where they apply.
func (k keyMap) helpSections() []helpSection {
	item := func(desc string, b ...string) helpItem {
		return helpItem{key: strings.Join(b, "/"), desc: desc}
	}
	return []helpSection{
		{
			title: "Listing",
			items: []helpItem{
				item("Pick city", k.City.Help().Key),
				item("Next/prev city", k.NextCity.Help().Key, k.PrevCity.Help().Key),
				item("Cycle sort", k.Sort.Help().Key),
				item("Open offer", k.Open.Help().Key),
			},
		},
		{
			title: "Offer",
			items: []helpItem{
				item("Write review", k.Review.Help().Key),
				item("Open nearby offer", "1-3"),
				item("Back to listing", k.Escape.Help().Key),
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				item("Move up/down", "j", "k"),
				item("Top/bottom", "g", "G"),
				item("Page up/down", "pgup", "pgdn"),
			},
		},
		{
			title: "General",
			items: []helpItem{
				item("Refresh", k.Refresh.Help().Key),
				item("Sign in/out", k.Session.Help().Key),
				item("Client logs", k.Logs.Help().Key),
				item("Cycle theme", k.CycleTheme.Help().Key),
				item("Toggle help", k.Help.Help().Key),
				item("Quit", k.Quit.Help().Key),
			},
		},
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	sections := m.keys.helpSections()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, it := range section.items {
			b.WriteString(keyStyle.Render(it.key))
			b.WriteString(styles.Text.Render(it.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(m.theme, m.width, m.height, 40, b.String())
}

// placeModal centers content in a rounded box over the screen.
func placeModal(theme Theme, width, height, boxWidth int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

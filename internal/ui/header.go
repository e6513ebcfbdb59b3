package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// renderHeader renders the top bar: logo, city tabs, activity and session.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("six cities", styles.Logo)}

	current := m.currentCityIndex()
	tabs := make([]string, 0, len(sixcities.Cities()))
	for i, c := range sixcities.Cities() {
		label := c.Name
		if compact {
			label = truncate(c.Name, 4)
		}
		if i == current {
			tabs = append(tabs, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Bold(true).
				Padding(0, 1).
				Render(label))
			continue
		}
		tabs = append(tabs, bg.Space()+bg.Render(label, styles.MutedText)+bg.Space())
	}
	parts = append(parts, strings.Join(tabs, ""))

	if m.snapshot.Client.IsLoading {
		label := "Loading"
		if m.runner != nil {
			if queued := m.runner.Waiting(); queued > 0 {
				label += fmt.Sprintf(" (%d queued)", queued)
			}
		}
		parts = append(parts, lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Surface)).
			Render(m.spinner.View())+bg.Space()+bg.Render(label, styles.WarningText))
	}
	if m.snapshot.Comments.IsCommentPosting {
		parts = append(parts, bg.Render("Posting review", styles.InfoText))
	}

	parts = append(parts, m.renderSession(styles, bg))

	return styles.Header.Width(m.width).Render(bg.Join(parts, bg.Spaces(2)))
}

func (m Model) renderSession(styles Styles, bg BgStyle) string {
	user := m.snapshot.User
	switch user.AuthorizationStatus {
	case state.AuthAuthorized:
		label := "signed in"
		if user.User != nil {
			label = user.User.Email
		}
		return bg.Render("●", styles.SuccessText) + bg.Space() + bg.Render(truncate(label, 32), styles.Text)
	case state.AuthNoAuth:
		return bg.Render("○", styles.FaintText) + bg.Space() + bg.Render("Sign in", styles.MutedText)
	default:
		return bg.Render("…", styles.FaintText)
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	session := "Sign in"
	if m.snapshot.User.AuthorizationStatus == state.AuthAuthorized {
		session = "Sign out"
	}

	switch m.currentView {
	case viewRoom:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"1-3", "Nearby"},
			{"c", "Review"},
			{"r", "Refresh"},
			{"L", session},
			{"esc", "Back"},
			{"?", "More"},
		}
	case viewNotFound:
		commands = []cmd{
			{"esc", "Back to listing"},
			{"l", "Logs"},
			{"?", "More"},
		}
	case viewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"r", "Reload"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"1-6", "City"},
			{"s", m.snapshot.Client.CurrentSorting.String()},
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"r", "Refresh"},
			{"L", session},
			{"l", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

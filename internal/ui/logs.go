package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/logtail"
)

// handleLogsKey processes keys in the client log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = m.returnView
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, readLogsCmd(m.logFile)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	}
	return m, nil
}

// updateLogViewport rerenders the log lines, staying at the bottom when the
// view was already there.
func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		return
	}
	follow := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0
	m.logViewport.SetContent(m.formatLogEntries(m.logEntries, m.logViewport.Width))
	if follow {
		m.logViewport.GotoBottom()
	}
}

// formatLogEntries renders parsed log lines with the level highlighted.
func (m Model) formatLogEntries(entries []logtail.Entry, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if m.logErr != nil {
		return bg.Render("Cannot read "+m.logFile+": "+m.logErr.Error(), styles.DangerText)
	}
	if len(entries) == 0 {
		return bg.Render("No log entries yet", styles.MutedText)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Level == "" {
			lines = append(lines, bg.Render(truncate(e.Raw, width), styles.FaintText))
			continue
		}
		clock := e.Time
		if i := strings.IndexByte(clock, ' '); i >= 0 {
			clock = clock[i+1:]
		}
		line := bg.Render(clock, styles.FaintText) + bg.Space() +
			bg.Render(padRight(e.Level, 5), styles.LevelStyle(e.Level)) + bg.Space() +
			bg.Render(e.Message, styles.Text)
		if room := width - len(clock) - len(e.Message) - 8; e.Attrs != "" && room > 10 {
			line += bg.Space() + bg.Render(truncate(e.Attrs, room), styles.MutedText)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderLogs renders the client log view.
func (m Model) renderLogs(height int) string {
	vp := m.logViewport
	vp.Height = max(height-2, 1)
	title := "Client log"
	if m.logFile != "" {
		title += " · " + m.logFile
	}
	return m.renderTitledBox(title, vp.View(), m.width, height, true)
}

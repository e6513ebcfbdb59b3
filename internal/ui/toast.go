package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/flows"
	"github.com/five82/sixcities/internal/sixcities"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

// toast is a transient notification shown above the command bar.
type toast struct {
	text    string
	level   toastLevel
	expires time.Time
}

// genericFailure is shown for failures the user cannot act on.
const genericFailure = "Something went wrong, please try again later"

// failureText turns a failed flow into a notification. Rejected input and
// API messages are shown as is.
func failureText(res flows.Result) string {
	var verr *sixcities.ValidationError
	if errors.As(res.Err, &verr) && len(verr.Problems) > 0 {
		return strings.Join(verr.Problems, "; ")
	}
	var serr *sixcities.StatusError
	if errors.As(res.Err, &serr) && serr.Message != "" && serr.Code < 500 {
		return serr.Message
	}
	if res.Unauthorized() {
		return "Please sign in first"
	}
	return genericFailure
}

func (m *Model) pushToast(text string, level toastLevel) {
	m.toasts = append(m.toasts, toast{text: text, level: level, expires: m.now().Add(ToastLifetime)})
	if len(m.toasts) > MaxToasts {
		m.toasts = m.toasts[len(m.toasts)-MaxToasts:]
	}
}

func (m *Model) pruneToasts() {
	now := m.now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		var mark string
		var style lipgloss.Style
		switch t.level {
		case toastError:
			mark, style = "✗", styles.DangerText
		case toastSuccess:
			mark, style = "✓", styles.SuccessText
		default:
			mark, style = "•", styles.InfoText
		}
		line := bg.Space() + bg.Render(mark, style) + bg.Space() +
			bg.Render(truncate(t.text, m.width-4), styles.Text)
		lines = append(lines, bg.FillLine(line, m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

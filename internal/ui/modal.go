package ui

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/flows"
	"github.com/five82/sixcities/internal/sixcities"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const modalWidth = 64

// commentModal is the review form of an offer page. It stays open while the
// review is being posted and closes once the post succeeds.
type commentModal struct {
	offerID    int
	offerTitle string
	text       textarea.Model
	rating     int
	onRating   bool
	problems   []string
	sending    bool
}

func newCommentModal(offerID int, title string) *commentModal {
	ta := textarea.New()
	ta.Placeholder = "Tell how was your stay, what you like and what can be improved"
	ta.ShowLineNumbers = false
	ta.CharLimit = sixcities.CommentMaxLength
	ta.SetWidth(modalWidth - 6)
	ta.SetHeight(6)
	ta.Focus()
	return &commentModal{offerID: offerID, offerTitle: title, text: ta}
}

func (c *commentModal) focusCmd() tea.Cmd {
	return textarea.Blink
}

func (c *commentModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if c.sending {
			// Only leaving is allowed; the post keeps going.
			return c, nil, key.Matches(km, keys.Escape)
		}
		switch {
		case key.Matches(km, keys.Escape):
			return c, nil, true
		case key.Matches(km, keys.Submit):
			return c.submit()
		case key.Matches(km, keys.NextField), key.Matches(km, keys.PrevField):
			c.onRating = !c.onRating
			if c.onRating {
				c.text.Blur()
				return c, nil, false
			}
			return c, c.text.Focus(), false
		}
		if c.onRating {
			switch s := km.String(); s {
			case "left", "h", "-":
				c.rating = max(c.rating-1, sixcities.RatingMin)
			case "right", "l", "+":
				c.rating = min(c.rating+1, sixcities.RatingMax)
			case "1", "2", "3", "4", "5":
				c.rating = int(s[0] - '0')
			case "enter":
				return c.submit()
			}
			return c, nil, false
		}
	}

	var cmd tea.Cmd
	c.text, cmd = c.text.Update(msg)
	return c, cmd, false
}

// submit checks the form and hands a valid review to the model. The form
// waits for the post result in finish.
func (c *commentModal) submit() (Modal, tea.Cmd, bool) {
	post := sixcities.CommentPost{ID: c.offerID, Comment: c.text.Value(), Rating: c.rating}
	if err := sixcities.ValidateCommentForm(post); err != nil {
		c.problems = problemsOf(err)
		return c, nil, false
	}
	c.problems = nil
	c.sending = true
	c.text.Blur()
	return c, func() tea.Msg { return submitCommentMsg{post: post} }, false
}

// finish applies the result of the post. It reports whether the form should
// close; on failure the text stays for another try.
func (c *commentModal) finish(res flows.Result) bool {
	c.sending = false
	if res.OK() {
		return true
	}
	c.problems = []string{failureText(res)}
	if !c.onRating {
		c.text.Focus()
	}
	return false
}

func (c *commentModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Your review"))
	if c.offerTitle != "" {
		b.WriteString(styles.MutedText.Render(" · " + truncate(c.offerTitle, 36)))
	}
	b.WriteString("\n\n")
	b.WriteString(c.text.View())
	b.WriteString("\n")

	length := len([]rune(strings.TrimSpace(c.text.Value())))
	counter := fmt.Sprintf("%d/%d-%d characters", length, sixcities.CommentMinLength, sixcities.CommentMaxLength)
	counterStyle := styles.FaintText
	if length >= sixcities.CommentMinLength && length <= sixcities.CommentMaxLength {
		counterStyle = styles.SuccessText
	}
	b.WriteString(counterStyle.Render(counter))
	b.WriteString("\n\n")

	label := styles.MutedText.Render("Rating  ")
	if c.onRating {
		label = styles.AccentText.Bold(true).Render("Rating  ")
	}
	b.WriteString(label)
	if c.rating == 0 {
		b.WriteString(styles.FaintText.Render("☆☆☆☆☆  press 1-5"))
	} else {
		b.WriteString(styles.Stars.Render(stars(float64(c.rating))))
		b.WriteString(styles.MutedText.Render(" " + ratingTitle(c.rating)))
	}
	b.WriteString("\n")

	if len(c.problems) > 0 {
		b.WriteString("\n")
		for _, p := range c.problems {
			b.WriteString(styles.DangerText.Render("! " + p))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if c.sending {
		b.WriteString(styles.InfoText.Render("Posting review..."))
	} else {
		b.WriteString(styles.FaintText.Render("tab rating · ctrl+s submit · esc cancel"))
	}

	return placeModal(theme, width, height, modalWidth, b.String())
}

// ratingTitle is the label shown next to the stars of a review.
func ratingTitle(rating int) string {
	switch rating {
	case 5:
		return "perfect"
	case 4:
		return "good"
	case 3:
		return "not bad"
	case 2:
		return "badly"
	case 1:
		return "terribly"
	default:
		return ""
	}
}

// loginModal is the sign-in form.
type loginModal struct {
	inputs   [2]textinput.Model // email, password
	focus    int
	problems []string
}

func newLoginModal() *loginModal {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 254
	email.Width = modalWidth - 12
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = modalWidth - 12

	return &loginModal{inputs: [2]textinput.Model{email, password}}
}

func (l *loginModal) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (l *loginModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Escape):
			return l, nil, true
		case key.Matches(km, keys.NextField):
			return l, l.setFocus((l.focus + 1) % len(l.inputs)), false
		case key.Matches(km, keys.PrevField):
			return l, l.setFocus((l.focus + len(l.inputs) - 1) % len(l.inputs)), false
		case key.Matches(km, keys.Submit):
			return l.submit()
		case key.Matches(km, keys.Confirm):
			if l.focus == 0 {
				return l, l.setFocus(1), false
			}
			return l.submit()
		}
	}

	var cmd tea.Cmd
	l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
	return l, cmd, false
}

func (l *loginModal) setFocus(i int) tea.Cmd {
	l.focus = i
	for j := range l.inputs {
		if j != i {
			l.inputs[j].Blur()
		}
	}
	return l.inputs[i].Focus()
}

func (l *loginModal) submit() (Modal, tea.Cmd, bool) {
	creds := sixcities.Credentials{
		Email:    strings.TrimSpace(l.inputs[0].Value()),
		Password: l.inputs[1].Value(),
	}
	if problems := checkCredentials(creds); len(problems) > 0 {
		l.problems = problems
		return l, nil, false
	}
	return l, func() tea.Msg { return submitLoginMsg{creds: creds} }, true
}

func (l *loginModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Sign in"))
	b.WriteString("\n\n")
	for i, label := range []string{"E-mail", "Password"} {
		style := styles.MutedText
		if i == l.focus {
			style = styles.AccentText.Bold(true)
		}
		b.WriteString(style.Render(padRight(label, 10)))
		b.WriteString(l.inputs[i].View())
		b.WriteString("\n")
	}
	if len(l.problems) > 0 {
		b.WriteString("\n")
		for _, p := range l.problems {
			b.WriteString(styles.DangerText.Render("! " + p))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("tab next field · enter sign in · esc cancel"))

	return placeModal(theme, width, height, modalWidth-8, b.String())
}

// checkCredentials applies the sign-in form rules: a valid address and a
// password with at least one letter and one digit.
func checkCredentials(creds sixcities.Credentials) []string {
	var problems []string
	if creds.Email == "" {
		problems = append(problems, "email is required")
	} else if addr, err := mail.ParseAddress(creds.Email); err != nil || addr.Address != creds.Email {
		problems = append(problems, "email is not a valid address")
	}
	var letter, digit bool
	for _, r := range creds.Password {
		letter = letter || unicode.IsLetter(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !letter || !digit {
		problems = append(problems, "password needs at least one letter and one digit")
	}
	return problems
}

func problemsOf(err error) []string {
	var verr *sixcities.ValidationError
	if errors.As(err, &verr) && len(verr.Problems) > 0 {
		return verr.Problems
	}
	return []string{err.Error()}
}

package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/flows"
	"github.com/five82/sixcities/internal/logtail"
	"github.com/five82/sixcities/internal/prefs"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// viewMode represents the current view.
type viewMode int

const (
	viewListing viewMode = iota
	viewRoom
	viewNotFound
	viewLogs
)

func (v viewMode) String() string {
	switch v {
	case viewRoom:
		return "Offer"
	case viewNotFound:
		return "Not found"
	case viewLogs:
		return "Logs"
	default:
		return "Listing"
	}
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Flows   *flows.Flows
	Runner  *flows.Runner

	// Results carries outcomes of flows started outside the UI, such as the
	// periodic offers refresh. Optional.
	Results <-chan flows.Result

	Prefs     prefs.Prefs
	PrefsPath string
	LogFile   string
	Logger    *slog.Logger

	// FlowTimeout bounds each flow started from the UI.
	FlowTimeout time.Duration
}

// Model is the Bubble Tea model for the client.
type Model struct {
	ctx         context.Context
	store       *state.Store
	flows       *flows.Flows
	runner      *flows.Runner
	results     <-chan flows.Result
	logger      *slog.Logger
	flowTimeout time.Duration

	prefs     prefs.Prefs
	prefsPath string
	logFile   string

	// State
	snapshot    state.State
	updates     <-chan state.State
	unsubscribe func()

	// UI state
	theme       Theme
	keys        keyMap
	spinner     spinner.Model
	currentView viewMode
	returnView  viewMode
	width       int
	height      int
	ready       bool
	showHelp    bool
	modal       Modal
	toasts      []toast
	now         func() time.Time

	// Listing
	cursor     int
	selectedID int

	// Offer page
	roomID       int
	roomViewport viewport.Model

	// Logs
	logViewport viewport.Model
	logEntries  []logtail.Entry
	logErr      error
	logReadAt   time.Time
}

// Messages
type (
	tickMsg   time.Time
	stateMsg  struct {
		state state.State
		ok    bool
	}
	flowResultMsg flows.Result
	// backgroundResultMsg is a result delivered on Options.Results.
	backgroundResultMsg struct {
		result flows.Result
		ok     bool
	}
	logsMsg struct {
		entries []logtail.Entry
		err     error
	}
	submitCommentMsg struct{ post sixcities.CommentPost }
	submitLoginMsg   struct{ creds sixcities.Credentials }
)

// New creates a new UI model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore(state.Initial())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.FlowTimeout
	if timeout <= 0 {
		timeout = DefaultFlowTimeout
	}

	updates, unsubscribe := store.Subscribe()

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	theme := GetTheme(opts.Prefs.Theme)
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:         ctx,
		store:       store,
		flows:       opts.Flows,
		runner:      opts.Runner,
		results:     opts.Results,
		logger:      logger,
		flowTimeout: timeout,
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		logFile:     opts.LogFile,
		snapshot:    store.Snapshot(),
		updates:     updates,
		unsubscribe: unsubscribe,
		theme:       theme,
		keys:        DefaultKeyMap(),
		spinner:     sp,
		currentView: viewListing,
		now:         time.Now,
	}
	m.applySnapshot(m.snapshot)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		tickCmd(),
		waitForState(m.updates),
		waitForResult(m.results),
		m.checkAuthCmd(),
		m.fetchOffersCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewports()
		return m, nil

	case stateMsg:
		if !msg.ok {
			return m, nil
		}
		m.applySnapshot(msg.state)
		return m, waitForState(m.updates)

	case flowResultMsg:
		return m.handleResult(flows.Result(msg))

	case backgroundResultMsg:
		if !msg.ok {
			return m, nil
		}
		next, cmd := m.handleResult(msg.result)
		return next, tea.Batch(cmd, waitForResult(m.results))

	case submitCommentMsg:
		return m, m.postCommentCmd(msg.post)

	case submitLoginMsg:
		return m, m.loginCmd(msg.creds)

	case logsMsg:
		m.logReadAt = m.now()
		m.logEntries = msg.entries
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		m.pruneToasts()
		var cmd tea.Cmd
		if m.currentView == viewLogs && m.now().Sub(m.logReadAt) >= LogRefreshInterval {
			cmd = readLogsCmd(m.logFile)
		}
		return m, tea.Batch(cmd, tickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and similar messages belong to the open form.
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	header := m.renderHeader()
	cmdBar := m.renderCommandBar()
	toasts := m.renderToasts()

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(cmdBar) - lipgloss.Height(toasts)
	if toasts == "" {
		contentHeight = m.height - lipgloss.Height(header) - lipgloss.Height(cmdBar)
	}
	if contentHeight < 3 {
		contentHeight = 3
	}

	var content string
	switch m.currentView {
	case viewRoom:
		content = m.renderRoom(contentHeight)
	case viewNotFound:
		content = m.renderNotFound(contentHeight)
	case viewLogs:
		content = m.renderLogs(contentHeight)
	default:
		content = m.renderListing(contentHeight)
	}

	parts := []string{header, content}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, cmdBar)
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Height(m.height).
		Render(view)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "h", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.updateRoomViewport()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.currentView == viewLogs {
			return m, nil
		}
		m.returnView = m.currentView
		m.currentView = viewLogs
		m.resizeViewports()
		return m, readLogsCmd(m.logFile)

	case key.Matches(msg, m.keys.Session):
		return m.toggleSession()
	}

	switch m.currentView {
	case viewRoom:
		return m.handleRoomKey(msg)
	case viewNotFound:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Open) {
			m.currentView = viewListing
			m.roomID = 0
		}
		return m, nil
	case viewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleListingKey(msg)
	}
}

// toggleSession opens the sign-in form or signs out.
func (m Model) toggleSession() (tea.Model, tea.Cmd) {
	if m.snapshot.User.AuthorizationStatus == state.AuthAuthorized {
		return m, m.logoutCmd()
	}
	lm := newLoginModal()
	m.modal = lm
	return m, lm.focusCmd()
}

// applySnapshot adopts a new store snapshot and keeps the listing cursor on
// the same offer when it is still listed.
func (m *Model) applySnapshot(s state.State) {
	m.snapshot = s
	offers := state.VisibleOffers(s)
	m.cursor = 0
	for i, o := range offers {
		if o.ID == m.selectedID {
			m.cursor = i
			break
		}
	}
	if len(offers) > 0 {
		m.selectedID = offers[m.cursor].ID
	} else {
		m.selectedID = 0
	}
	m.updateRoomViewport()
}

// handleResult reacts to a finished flow. Failures become notifications,
// except superseded responses and an unauthorized session check.
func (m Model) handleResult(res flows.Result) (tea.Model, tea.Cmd) {
	m.logger.Debug("flow finished", "flow", string(res.Flow), "offer_id", res.OfferID, "stale", res.Stale, "ok", res.OK())
	if res.Stale {
		return m, nil
	}

	switch res.Flow {
	case flows.FetchOfferFlow, flows.FetchNearbyFlow, flows.FetchCommentsFlow:
		if res.NotFound() && res.OfferID == m.roomID && m.currentView == viewRoom {
			m.currentView = viewNotFound
			return m, nil
		}
		if res.NotFound() && m.currentView == viewNotFound && res.OfferID == m.roomID {
			return m, nil
		}

	case flows.CheckAuthFlow:
		if res.Unauthorized() {
			if m.prefs.Token != "" {
				m.prefs.Token = ""
				m.savePrefs()
			}
			return m, nil
		}

	case flows.LoginFlow:
		if res.OK() {
			snap := m.store.Snapshot()
			if snap.User.User != nil {
				m.prefs.Token = snap.User.User.Token
				m.savePrefs()
				m.pushToast("Signed in as "+snap.User.User.Email, toastSuccess)
			}
		}

	case flows.LogoutFlow:
		m.prefs.Token = ""
		m.savePrefs()
		if res.OK() {
			m.pushToast("Signed out", toastInfo)
		}

	case flows.PostCommentFlow:
		if cm, ok := m.modal.(*commentModal); ok && cm.offerID == res.OfferID && cm.finish(res) {
			m.modal = nil
		}
		if res.OK() {
			m.pushToast("Thanks for your review", toastSuccess)
			if res.RefreshFailed() {
				m.pushToast("Your review was posted, but reviews could not be reloaded. Press r to refresh", toastInfo)
			}
		}
	}

	if res.Err != nil && !res.Cancelled() {
		m.pushToast(failureText(res), toastError)
	}
	return m, nil
}

// openOffer shows the offer page for id and fetches its data.
func (m Model) openOffer(id int) (tea.Model, tea.Cmd) {
	if id <= 0 {
		return m, nil
	}
	m.roomID = id
	m.currentView = viewRoom
	m.resizeViewports()
	m.updateRoomViewport()
	m.roomViewport.GotoTop()
	return m, m.openOfferCmd(id)
}

func (m *Model) switchCity(city sixcities.City) {
	if city.Name == m.snapshot.Client.CurrentCity.Name {
		return
	}
	m.store.Dispatch(state.SwitchCity{City: city})
	m.selectedID = 0
	m.applySnapshot(m.store.Snapshot())
	m.prefs.City = city.Name
	m.savePrefs()
}

func (m *Model) cycleSort() {
	next := m.snapshot.Client.CurrentSorting.Next()
	m.store.Dispatch(state.SetSortName{Mode: next})
	m.applySnapshot(m.store.Snapshot())
	m.prefs.Sort = next.Key()
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// close releases the store subscription.
func (m *Model) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// resizeViewports sizes the scrolling panes for the current view.
func (m *Model) resizeViewports() {
	if m.width == 0 || m.height == 0 {
		return
	}
	roomWidth := m.roomContentWidth()
	if m.roomViewport.Width == 0 {
		m.roomViewport = viewport.New(roomWidth, m.height-6)
	} else {
		m.roomViewport.Width = roomWidth
		m.roomViewport.Height = m.height - 6
	}
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(m.width-4, m.height-6)
	} else {
		m.logViewport.Width = m.width - 4
		m.logViewport.Height = m.height - 6
	}
	m.updateRoomViewport()
	m.updateLogViewport()
}

// currentCityIndex returns the position of the selected city in the tabs.
func (m Model) currentCityIndex() int {
	for i, c := range sixcities.Cities() {
		if strings.EqualFold(c.Name, m.snapshot.Client.CurrentCity.Name) {
			return i
		}
	}
	return 0
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		if m.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/flows"
	"github.com/five82/sixcities/internal/logtail"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForState delivers the next store snapshot.
func waitForState(updates <-chan state.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		return stateMsg{state: s, ok: ok}
	}
}

// waitForResult delivers the next background flow result.
func waitForResult(results <-chan flows.Result) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-results
		return backgroundResultMsg{result: res, ok: ok}
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logsMsg{entries: logtail.ParseLines(lines), err: err}
	}
}

// runFlow runs fn on the runner, or inline when there is none, and reports
// its result as a flowResultMsg. flow and offerID label the result when the
// runner gives up on fn.
func (m Model) runFlow(flow flows.Name, offerID int, fn func(context.Context) flows.Result) tea.Cmd {
	if m.flows == nil {
		return nil
	}
	parent, timeout, runner := m.ctx, m.flowTimeout, m.runner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		if runner == nil {
			return flowResultMsg(fn(ctx))
		}
		return flowResultMsg(runner.Do(ctx, flow, offerID, fn))
	}
}

func (m Model) fetchOffersCmd() tea.Cmd {
	if m.flows == nil {
		return nil
	}
	return m.runFlow(flows.FetchOffersFlow, 0, m.flows.FetchOffers)
}

func (m Model) checkAuthCmd() tea.Cmd {
	if m.flows == nil {
		return nil
	}
	return m.runFlow(flows.CheckAuthFlow, 0, m.flows.CheckAuth)
}

// openOfferCmd fetches everything the offer page shows, concurrently.
func (m Model) openOfferCmd(id int) tea.Cmd {
	if m.flows == nil {
		return nil
	}
	f := m.flows
	return tea.Batch(
		m.runFlow(flows.FetchOfferFlow, id, func(ctx context.Context) flows.Result { return f.FetchOffer(ctx, id) }),
		m.runFlow(flows.FetchNearbyFlow, id, func(ctx context.Context) flows.Result { return f.FetchNearbyOffers(ctx, id) }),
		m.runFlow(flows.FetchCommentsFlow, id, func(ctx context.Context) flows.Result { return f.FetchComments(ctx, id) }),
	)
}

func (m Model) postCommentCmd(post sixcities.CommentPost) tea.Cmd {
	if m.flows == nil {
		return nil
	}
	f := m.flows
	return m.runFlow(flows.PostCommentFlow, post.ID, func(ctx context.Context) flows.Result { return f.PostComment(ctx, post) })
}

func (m Model) loginCmd(creds sixcities.Credentials) tea.Cmd {
	if m.flows == nil {
		return nil
	}
	f := m.flows
	return m.runFlow(flows.LoginFlow, 0, func(ctx context.Context) flows.Result { return f.Login(ctx, creds) })
}

func (m Model) logoutCmd() tea.Cmd {
	if m.flows == nil {
		return nil
	}
	return m.runFlow(flows.LogoutFlow, 0, m.flows.Logout)
}

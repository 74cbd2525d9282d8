package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/alexanderramin/jornada/internal/domain"
)

// ── messages ─────────────────────────────────────────────────────────────────

// tickMsg drives the live clock, once per second.
type tickMsg time.Time

// sessionLoadedMsg carries today's session (nil when none) and this week's
// history after a load or transition.
type sessionLoadedMsg struct {
	session *domain.WorkSession
	week    []*domain.WorkSession
	err     error
}

// transitionErrMsg reports a failed lifecycle transition without discarding
// the current session state.
type transitionErrMsg struct{ err error }

// ── key map ──────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Start     key.Binding
	Breakfast key.Binding
	Snack     key.Binding
	End       key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Breakfast, k.Snack, k.End, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Breakfast: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breakfast")),
		Snack:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "snack")),
		End:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the root bubbletea Model for the interactive clock.
// It shows today's session with live totals and the current week below.
type dashboardModel struct {
	app     *App
	keys    dashboardKeyMap
	help    help.Model
	session *domain.WorkSession
	week    []*domain.WorkSession
	now     time.Time
	err     error
	loading bool
	width   int
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		now:     time.Now(),
		loading: true,
	}
}

// runDashboard starts the interactive TUI. Blocks until the user quits.
func runDashboard(app *App) error {
	_, err := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen()).Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		session, err := app.Clock.Today(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		week, err := app.History.ListRange(ctx, domain.RangeWeek)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		return sessionLoadedMsg{session: session, week: week}
	}
}

// transitionCmd runs one lifecycle transition and reloads on success.
func (m dashboardModel) transitionCmd(apply func(ctx context.Context, id string) (*domain.WorkSession, error)) tea.Cmd {
	if m.session == nil {
		return nil
	}
	id := m.session.ID
	load := m.loadData()
	return func() tea.Msg {
		if _, err := apply(context.Background(), id); err != nil {
			return transitionErrMsg{err: err}
		}
		return load()
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadData(), tick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.session = msg.session
		m.week = msg.week
		return m, nil

	case transitionErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadData()
		case key.Matches(msg, m.keys.Start):
			if m.session == nil {
				app := m.app
				load := m.loadData()
				return m, func() tea.Msg {
					if _, err := app.Clock.Start(context.Background()); err != nil {
						return transitionErrMsg{err: err}
					}
					return load()
				}
			}
		case key.Matches(msg, m.keys.Breakfast):
			return m, m.breakfastCmd()
		case key.Matches(msg, m.keys.Snack):
			return m, m.snackCmd()
		case key.Matches(msg, m.keys.End):
			return m, m.transitionCmd(m.app.Clock.End)
		}
	}
	return m, nil
}

// breakfastCmd toggles the breakfast break: starts it when untaken, ends it
// when open, does nothing once both edges are recorded.
func (m dashboardModel) breakfastCmd() tea.Cmd {
	if m.session == nil {
		return nil
	}
	if m.session.BreakfastStart == nil {
		return m.transitionCmd(m.app.Clock.StartBreakfast)
	}
	if m.session.BreakfastEnd == nil {
		return m.transitionCmd(m.app.Clock.EndBreakfast)
	}
	return nil
}

func (m dashboardModel) snackCmd() tea.Cmd {
	if m.session == nil {
		return nil
	}
	if m.session.SnackStart == nil {
		return m.transitionCmd(m.app.Clock.StartSnack)
	}
	if m.session.SnackEnd == nil {
		return m.transitionCmd(m.app.Clock.EndSnack)
	}
	return nil
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.loading {
		return "\n  Loading...\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("Today", m.renderToday()))
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("This week", m.renderWeek()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
}

func (m dashboardModel) renderToday() string {
	if m.session == nil {
		return formatter.Dim("Not clocked in. Press 's' to start.")
	}

	s := m.session
	total, brk, actual := s.TotalsAt(m.now)

	lines := []string{
		formatter.StatusIndicator(s.DerivedStatus()),
		"",
		fmt.Sprintf("Started    %s", s.StartTime.Format("15:04")),
		fmt.Sprintf("Breakfast  %s", formatter.Interval(s.BreakfastStart, s.BreakfastEnd)),
		fmt.Sprintf("Snack      %s", formatter.Interval(s.SnackStart, s.SnackEnd)),
		fmt.Sprintf("Ended      %s", formatter.ClockTime(s.EndTime)),
		"",
		fmt.Sprintf("Elapsed    %s", formatter.FormatMinutes(total)),
		fmt.Sprintf("Breaks     %s", formatter.FormatMinutes(brk)),
		fmt.Sprintf("Worked     %s", formatter.StyleBold.Render(formatter.FormatMinutes(actual))),
	}
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderWeek() string {
	if len(m.week) == 0 {
		return formatter.Dim("No sessions yet this week.")
	}

	headers := []string{"DATE", "START", "END", "WORKED"}
	rows := make([][]string, 0, len(m.week))
	for _, s := range m.week {
		rows = append(rows, []string{
			s.Date,
			s.StartTime.Format("15:04"),
			formatter.ClockTime(s.EndTime),
			formatter.FormatMinutesPtr(s.ActualWorkMinutes),
		})
	}

	sum := domain.Summarize(m.week)
	return formatter.RenderTable(headers, rows) +
		formatter.Dim(fmt.Sprintf("Week total: %s", formatter.FormatMinutes(sum.ActualWorkMinutes)))
}

package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/jornada/internal/domain"
)

// drain runs a tea.Cmd and feeds the resulting message back into the model.
func drain(t *testing.T, m dashboardModel, cmd tea.Cmd) dashboardModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if _, isTick := msg.(tickMsg); isTick {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(dashboardModel)
	}
	return m
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDashboard_LoadEmpty(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)

	m = drain(t, m, m.loadData())
	require.False(t, m.loading)
	assert.Nil(t, m.session)
	assert.Contains(t, m.View(), "Not clocked in")
}

func TestDashboard_StartAndBreaks(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)
	m = drain(t, m, m.loadData())

	next, cmd := m.Update(keyMsg('s'))
	m = drain(t, next.(dashboardModel), cmd)
	require.NotNil(t, m.session)
	assert.Equal(t, domain.StatusWorking, m.session.Status)

	// 'b' toggles the breakfast break.
	next, cmd = m.Update(keyMsg('b'))
	m = drain(t, next.(dashboardModel), cmd)
	assert.Equal(t, domain.StatusBreakfast, m.session.Status)

	next, cmd = m.Update(keyMsg('b'))
	m = drain(t, next.(dashboardModel), cmd)
	assert.Equal(t, domain.StatusWorking, m.session.Status)
	require.NotNil(t, m.session.BreakfastEnd)

	// A completed breakfast cannot be restarted.
	_, cmd = m.Update(keyMsg('b'))
	assert.Nil(t, cmd)
}

func TestDashboard_EndSession(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)
	m = drain(t, m, m.loadData())

	next, cmd := m.Update(keyMsg('s'))
	m = drain(t, next.(dashboardModel), cmd)

	next, cmd = m.Update(keyMsg('e'))
	m = drain(t, next.(dashboardModel), cmd)
	require.NotNil(t, m.session)
	assert.Equal(t, domain.StatusFinished, m.session.Status)
	assert.Len(t, m.week, 1)
}

func TestDashboard_TransitionErrorKeepsSession(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)
	m = drain(t, m, m.loadData())

	next, cmd := m.Update(keyMsg('s'))
	m = drain(t, next.(dashboardModel), cmd)

	next, cmd = m.Update(keyMsg('e'))
	m = drain(t, next.(dashboardModel), cmd)

	// Ending again fails but the finished session stays on screen.
	next, cmd = m.Update(keyMsg('e'))
	m = drain(t, next.(dashboardModel), cmd)
	assert.Error(t, m.err)
	assert.NotNil(t, m.session)
}

func TestDashboard_Tick(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)

	at := time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local)
	next, cmd := m.Update(tickMsg(at))
	m = next.(dashboardModel)
	assert.Equal(t, at, m.now)
	assert.NotNil(t, cmd)
}

func TestDashboard_Quit(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(app)

	_, cmd := m.Update(keyMsg('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

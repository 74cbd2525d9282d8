package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/repository"
	"github.com/alexanderramin/jornada/internal/service"
	"github.com/alexanderramin/jornada/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(db)
	uow := testutil.NewTestUoW(db)

	return &App{
		Clock:         service.NewClockService(repo, uow),
		History:       service.NewHistoryService(repo),
		Retention:     service.NewRetentionService(repo),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures cobra's own output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStartCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)

	sess, err := app.Clock.Today(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, domain.StatusWorking, sess.Status)
}

func TestStartCmd_AlreadyOpen(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "start")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBreakfastCmds(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "breakfast", "start")
	require.NoError(t, err)

	sess, err := app.Clock.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBreakfast, sess.Status)
	assert.NotNil(t, sess.BreakfastStart)

	_, err = executeCmd(t, app, "breakfast", "end")
	require.NoError(t, err)

	sess, err = app.Clock.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWorking, sess.Status)
	assert.NotNil(t, sess.BreakfastEnd)
}

func TestBreakfastCmd_WithoutSession(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "breakfast", "start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session today")
}

func TestEndCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "end", "--yes")
	require.NoError(t, err)

	sess, err := app.Clock.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinished, sess.Status)
	require.NotNil(t, sess.ActualWorkMinutes)
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "history", "--range", "week")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "history", "--range", "decade")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
}

func TestCleanupCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "cleanup")
	require.NoError(t, err)
}

func TestStatusCmd_NoSession(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "status")
	require.NoError(t, err)
}

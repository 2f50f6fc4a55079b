package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboard_EmptyLedger(t *testing.T) {
	app := newTestApp(t)
	m := newDashboardModel(app)

	view := m.View()
	assert.Contains(t, view, "mods")
	assert.Contains(t, view, "(empty)")
}

func TestDashboard_NavigationMovesCursor(t *testing.T) {
	app := newTestApp(t)
	c, _ := seedApp(t, app)
	_, err := app.Store.AddMod(context.Background(), "Bus Interior", c.ID, 2000)
	require.NoError(t, err)

	m := newDashboardModel(app)
	require.Equal(t, 0, m.cursor)

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(dashboardModel)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(dashboardModel)
	assert.Equal(t, 1, m.cursor, "cursor clamps at the last mod")

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(dashboardModel)
	assert.Equal(t, 0, m.cursor)
}

func TestDashboard_CycleStatusPersists(t *testing.T) {
	app := newTestApp(t)
	_, mod := seedApp(t, app)

	m := newDashboardModel(app)

	updated, _ := m.Update(keyMsg("s"))
	m = updated.(dashboardModel)

	got, _ := app.Store.Mod(mod.ID)
	assert.Equal(t, domain.WorkInProgress, got.WorkStatus)

	updated, _ = m.Update(keyMsg("s"))
	_ = updated
	got, _ = app.Store.Mod(mod.ID)
	assert.Equal(t, domain.WorkDone, got.WorkStatus)
	assert.NotEmpty(t, got.CompletedDate)
}

func TestDashboard_QuitKey(t *testing.T) {
	app := newTestApp(t)
	m := newDashboardModel(app)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/wellspring/internal/teatest"
	"github.com/alexanderramin/wellspring/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startDashboard(t *testing.T, app *App) (*teatest.Driver, *dashboardModel) {
	t.Helper()
	m := newDashboardModel(context.Background(), app, testNow)
	d := teatest.New(t, m, teatest.WithSize(100, 60)).Start()
	return d, m
}

func TestDashboard_LoadsWithoutTodayRoutine(t *testing.T) {
	app := testApp(t)
	importFixture(t, app)

	d, m := startDashboard(t, app)
	assert.False(t, m.loading)
	assert.Nil(t, m.today)
	require.NotNil(t, m.report)
	assert.Contains(t, d.Seen, "cli.dashboardLoadedMsg")

	view := d.View()
	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "No routine for 2025-03-20 yet")
}

func TestDashboard_ShowsTodayRoutine(t *testing.T) {
	app := testApp(t)
	_, err := app.Routines.LogTask(context.Background(), testNow,
		testutil.NewTestTask("Morning stretch", testutil.At("07:00")))
	require.NoError(t, err)

	_, m := startDashboard(t, app)
	require.NotNil(t, m.today)
	assert.Contains(t, m.tabContent(), "Morning stretch")
}

func TestDashboard_TabNavigation(t *testing.T) {
	app := testApp(t)
	importFixture(t, app)
	d, m := startDashboard(t, app)

	d.Press(tea.KeyTab)
	assert.Equal(t, 1, m.tab)
	assert.Contains(t, m.tabContent(), "WELLNESS PROFILE")

	d.Press(tea.KeyRight)
	assert.Equal(t, 2, m.tab)
	assert.Contains(t, m.tabContent(), "WORKOUTS")

	d.PressKey('l')
	assert.Equal(t, 3, m.tab)
	assert.Contains(t, m.tabContent(), "COACHING")

	d.Press(tea.KeyTab)
	assert.Equal(t, 0, m.tab, "wraps to the first tab")

	d.Press(tea.KeyShiftTab)
	assert.Equal(t, 3, m.tab, "wraps backwards to the last tab")
}

func TestDashboard_RefreshReloads(t *testing.T) {
	app := testApp(t)
	d, m := startDashboard(t, app)
	require.Nil(t, m.today)

	_, err := app.Routines.LogTask(context.Background(), testNow,
		testutil.NewTestTask("Late lunch", testutil.At("13:30")))
	require.NoError(t, err)

	d.PressKey('r')
	assert.False(t, m.loading)
	require.NotNil(t, m.today)
	assert.Contains(t, d.View(), "Late lunch")
}

func TestDashboard_Quit(t *testing.T) {
	app := testApp(t)
	d, _ := startDashboard(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestDashboard_LoadError(t *testing.T) {
	app := testApp(t)
	m := newDashboardModel(context.Background(), app, testNow)
	d := teatest.New(t, m)
	d.Send(dashboardLoadedMsg{err: assert.AnError})

	assert.Contains(t, d.View(), "Error: "+assert.AnError.Error())
}

package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/application"
	"github.com/bnema/humanos-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func runningView() View {
	focus := &domain.Focus{
		ID:              "f-1",
		TaskName:        "write report",
		Duration:        "25m",
		SuccessCriteria: "first draft",
		StartedAt:       testNow.Add(-10 * time.Minute),
	}

	return View{
		State: application.State{
			Session: focus,
			Status: &domain.CognitiveStatus{
				ForegroundThreads: []string{"writing"},
				EmotionalLoad:     domain.LoadMedium,
				EnergyLevel:       domain.LoadHigh,
				OpenLoopsEstimate: 3,
				PendingTasks:      2,
				CapturedIdeas:     1,
				Timestamp:         testNow.Add(-2 * time.Second),
			},
			Loops: []domain.Loop{
				{ID: "l-1", Description: "call bank", Priority: domain.PriorityHigh, Queue: domain.QueueAction},
			},
		},
		Clock: application.ClockSnapshot{
			State:     application.ClockRunning,
			Focus:     focus,
			Remaining: 15 * time.Minute,
			Total:     25 * time.Minute,
		},
		Now:        testNow,
		StaleAfter: 15 * time.Second,
	}
}

func TestRenderRunningSession(t *testing.T) {
	output, err := Render(runningView())
	require.NoError(t, err)

	assert.Contains(t, output, "Human OS")
	assert.Contains(t, output, "Focus: write report")
	assert.Contains(t, output, "15:00")
	assert.Contains(t, output, " 40%")
	assert.Contains(t, output, "done when: first draft")
	assert.Contains(t, output, "emotional load:")
	assert.Contains(t, output, "medium")
	assert.Contains(t, output, "open loops: ~3")
	assert.Contains(t, output, "foreground: writing")
	assert.Contains(t, output, "background: none")
	assert.Contains(t, output, "call bank")
	assert.NotContains(t, output, "stale")
}

func TestRenderIdleWithoutStatus(t *testing.T) {
	output, err := Render(View{State: application.State{StatusLoading: true}})
	require.NoError(t, err)

	assert.Contains(t, output, "status: loading")
	assert.Contains(t, output, "No active focus session.")
	assert.Contains(t, output, "No cognitive status yet.")
}

func TestRenderFlagsStaleAndFailedStatus(t *testing.T) {
	v := runningView()
	v.State.Status.Timestamp = testNow.Add(-time.Minute)
	v.State.StatusErr = errors.New("connection refused")

	output, err := Render(v)
	require.NoError(t, err)

	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "[refresh failed]")
}

func TestRenderCompleteAndPausedSessions(t *testing.T) {
	paused := runningView()
	paused.Clock.Paused = true
	output, err := Render(paused)
	require.NoError(t, err)
	assert.Contains(t, output, "paused")

	complete := runningView()
	complete.Clock.State = application.ClockComplete
	complete.Clock.Remaining = 0
	output, err = Render(complete)
	require.NoError(t, err)
	assert.Contains(t, output, "00:00")
	assert.Contains(t, output, "complete")
}

func TestRenderToastsAndStripsControlCharacters(t *testing.T) {
	v := runningView()
	v.State.Toasts = []domain.Toast{
		{ID: "t-1", Kind: domain.ToastSuccess, Text: "Loop closed"},
		{ID: "t-2", Kind: domain.ToastError, Text: "boom\x1b[2J"},
	}

	output, err := Render(v)
	require.NoError(t, err)
	assert.Contains(t, output, "ok Loop closed")
	assert.Contains(t, output, "!! boom[2J")
	assert.NotContains(t, output, "\x1b[2J")
}

func TestRenderListsAtMostFiveLoops(t *testing.T) {
	v := runningView()
	v.State.Loops = nil
	for range 7 {
		v.State.Loops = append(v.State.Loops, domain.Loop{Description: "loop", Priority: domain.PriorityLow, Queue: domain.QueueBackburner})
	}

	output, err := Render(v)
	require.NoError(t, err)
	assert.Contains(t, output, "open loops (7)")
	assert.Contains(t, output, "+2 more")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[==--]", ansi.Strip(renderProgressBar(50, 4, s)))
	assert.Equal(t, "[----]", ansi.Strip(renderProgressBar(-10, 4, s)))
	assert.Equal(t, "[====]", ansi.Strip(renderProgressBar(150, 4, s)))
	assert.Empty(t, renderProgressBar(50, 0, s))
}

type fakeActions struct {
	paused    int
	cleared   int
	refreshed int
	err       error
}

func (f *fakeActions) TogglePause() bool {
	f.paused++
	return f.paused%2 == 1
}

func (f *fakeActions) ClearFocus(context.Context) error {
	f.cleared++
	return f.err
}

func (f *fakeActions) Refresh(context.Context) error {
	f.refreshed++
	return f.err
}

func TestLiveModelKeys(t *testing.T) {
	actions := &fakeActions{err: errors.New("clear focus: offline")}
	frames := 0
	model := NewLiveModel(context.Background(), func() View {
		frames++
		return runningView()
	}, nil, actions)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, actions.paused)

	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())
	assert.Equal(t, 1, actions.cleared)
	assert.Contains(t, next.View(), "clear focus: offline")

	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, actions.refreshed)

	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	assert.GreaterOrEqual(t, frames, 3)
}

func TestLiveModelRedrawsOnStoreChange(t *testing.T) {
	updates := make(chan struct{}, 1)
	current := runningView()
	model := NewLiveModel(context.Background(), func() View { return current }, updates, &fakeActions{})

	current.Clock.Remaining = 14 * time.Minute
	updates <- struct{}{}

	msg := waitForStore(updates)()
	assert.Equal(t, storeChangedMsg{}, msg)

	next, cmd := model.Update(msg)
	assert.NotNil(t, cmd)
	assert.Contains(t, next.View(), "14:00")
	assert.Contains(t, next.View(), "pause/resume")
}

func TestWaitForStoreStopsOnClosedChannel(t *testing.T) {
	updates := make(chan struct{})
	close(updates)

	assert.Nil(t, waitForStore(updates)())
	assert.Nil(t, waitForStore(nil))
}

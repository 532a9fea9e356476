package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func TestRequestSpinnerShowsElapsedOnceSlow(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	var model tea.Model = newRequestSpinnerModel("Setting focus...", nil, clock.Now)

	clock.now = clock.now.Add(400 * time.Millisecond)
	model, _ = model.Update(spinner.TickMsg{Time: clock.now})
	view := ansi.Strip(model.View())
	assert.Contains(t, view, "Setting focus...")
	assert.NotContains(t, view, "0s")

	clock.now = clock.now.Add(2600 * time.Millisecond)
	model, _ = model.Update(spinner.TickMsg{Time: clock.now})
	assert.Contains(t, ansi.Strip(model.View()), "Setting focus... 3s")

	clock.now = clock.now.Add(72 * time.Second)
	model, _ = model.Update(spinner.TickMsg{Time: clock.now})
	assert.Contains(t, ansi.Strip(model.View()), "1m15s")
}

func TestRequestSpinnerQuitsWithRequestError(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	var model tea.Model = newRequestSpinnerModel("Closing loop...", nil, clock.Now)
	wantErr := errors.New("loop not found")

	clock.now = clock.now.Add(1500 * time.Millisecond)
	model, cmd := model.Update(requestDoneMsg{err: wantErr})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	final, ok := model.(requestSpinnerModel)
	require.True(t, ok)
	assert.ErrorIs(t, final.err, wantErr)
	assert.Equal(t, 1500*time.Millisecond, final.elapsed)
	assert.Empty(t, final.View())
}

func TestFormatSpinnerElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 1900 * time.Millisecond, want: "1s"},
		{in: 59 * time.Second, want: "59s"},
		{in: 61 * time.Second, want: "1m01s"},
		{in: 12*time.Minute + 30*time.Second, want: "12m30s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSpinnerElapsed(tt.in), tt.in.String())
	}
}

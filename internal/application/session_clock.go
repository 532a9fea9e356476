package application

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/duration"
	"github.com/bnema/humanos-cli/internal/ports"
)

const DefaultTickInterval = time.Second

type ClockState int

const (
	ClockIdle ClockState = iota
	ClockRunning
	ClockComplete
)

func (s ClockState) String() string {
	switch s {
	case ClockIdle:
		return "idle"
	case ClockRunning:
		return "running"
	case ClockComplete:
		return "complete"
	default:
		return "unknown"
	}
}

type ClockSnapshot struct {
	State     ClockState
	Focus     *domain.Focus
	Remaining time.Duration
	Total     time.Duration
	Paused    bool
}

// Progress is the elapsed fraction of the session in [0, 1].
func (s ClockSnapshot) Progress() float64 {
	if s.Total <= 0 {
		if s.State == ClockComplete {
			return 1
		}
		return 0
	}

	p := float64(s.Total-s.Remaining) / float64(s.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (s ClockSnapshot) Percent() float64 {
	return s.Progress() * 100
}

// SessionClock counts down the active focus session. Completion observers
// run once per session, outside the clock's lock.
type SessionClock struct {
	mu        sync.Mutex
	clock     ports.Clock
	logger    *slog.Logger
	state     ClockState
	focus     *domain.Focus
	key       string
	remaining time.Duration
	total     time.Duration
	paused    bool
	observers []func(domain.Focus)
}

func NewSessionClock(clock ports.Clock, logger *slog.Logger) *SessionClock {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionClock{
		clock:  clock,
		logger: componentLogger(logger, "session_clock"),
	}
}

func (c *SessionClock) OnComplete(fn func(domain.Focus)) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Load starts tracking focus. A nil focus clears the clock. Loading the
// session already tracked re-syncs the remaining time from the server
// timestamps unless the clock is paused or already complete.
func (c *SessionClock) Load(focus *domain.Focus) {
	if focus == nil {
		c.Clear()
		return
	}

	now := c.clock.Now()
	key := sessionKey(*focus)

	c.mu.Lock()
	copied := *focus
	if c.state != ClockIdle && c.key == key {
		c.focus = &copied
		if c.state == ClockComplete || c.paused {
			c.mu.Unlock()
			return
		}
		c.remaining = remainingAt(copied, now)
		fire := c.completeIfElapsedLocked()
		c.mu.Unlock()
		c.notify(fire)
		return
	}

	c.focus = &copied
	c.key = key
	c.paused = false
	c.total = totalDuration(copied)
	c.remaining = remainingAt(copied, now)
	c.state = ClockRunning
	if c.total < c.remaining {
		c.total = c.remaining
	}
	fire := c.completeIfElapsedLocked()
	c.mu.Unlock()

	c.logger.Debug("session loaded",
		slog.String("task", copied.TaskName),
		slog.Duration("remaining", c.Snapshot().Remaining),
	)
	c.notify(fire)
}

// Tick advances a running, unpaused clock by one second.
func (c *SessionClock) Tick() {
	c.mu.Lock()
	if c.state != ClockRunning || c.paused {
		c.mu.Unlock()
		return
	}

	c.remaining -= time.Second
	if c.remaining < 0 {
		c.remaining = 0
	}
	fire := c.completeIfElapsedLocked()
	c.mu.Unlock()

	c.notify(fire)
}

// Run ticks the clock every interval until ctx is done.
func (c *SessionClock) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

func (c *SessionClock) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ClockRunning || c.paused {
		return false
	}
	c.paused = true
	return true
}

func (c *SessionClock) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ClockRunning || !c.paused {
		return false
	}
	c.paused = false
	return true
}

// Clear drops the session and returns to idle. Clearing an idle clock is a no-op.
func (c *SessionClock) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = ClockIdle
	c.focus = nil
	c.key = ""
	c.remaining = 0
	c.total = 0
	c.paused = false
}

func (c *SessionClock) Snapshot() ClockSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := ClockSnapshot{
		State:     c.state,
		Remaining: c.remaining,
		Total:     c.total,
		Paused:    c.paused,
	}
	if c.focus != nil {
		focus := *c.focus
		snap.Focus = &focus
	}
	return snap
}

// completeIfElapsedLocked moves a running clock to complete when no time is
// left and returns the session to announce, if any.
func (c *SessionClock) completeIfElapsedLocked() *domain.Focus {
	if c.state != ClockRunning || c.remaining > 0 {
		return nil
	}

	c.remaining = 0
	c.state = ClockComplete
	c.paused = false
	focus := *c.focus
	return &focus
}

func (c *SessionClock) notify(focus *domain.Focus) {
	if focus == nil {
		return
	}

	c.mu.Lock()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	c.logger.Info("session complete", slog.String("task", focus.TaskName))
	for _, fn := range observers {
		fn(*focus)
	}
}

func remainingAt(focus domain.Focus, now time.Time) time.Duration {
	var remaining time.Duration
	if !focus.EndsAt.IsZero() {
		remaining = focus.EndsAt.Sub(now)
	} else {
		remaining = duration.Parse(focus.DeclaredDuration()) - now.Sub(focus.StartedAt)
	}

	if remaining < 0 {
		return 0
	}
	return remaining
}

func totalDuration(focus domain.Focus) time.Duration {
	if total := duration.Parse(focus.DeclaredDuration()); total > 0 {
		return total
	}
	if !focus.EndsAt.IsZero() && !focus.StartedAt.IsZero() && focus.EndsAt.After(focus.StartedAt) {
		return focus.EndsAt.Sub(focus.StartedAt)
	}
	return 0
}

func sessionKey(focus domain.Focus) string {
	if focus.ID != "" {
		return focus.ID
	}
	return focus.TaskName + "@" + focus.StartedAt.UTC().Format(time.RFC3339Nano)
}

package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

// movableClock is a mocked clock whose reading can be advanced by the test.
type movableClock struct {
	*mocks.MockClock
	mu  sync.Mutex
	now time.Time
}

func newMovableClock(t *testing.T, start time.Time) *movableClock {
	c := &movableClock{MockClock: mocks.NewMockClock(t), now: start}
	c.EXPECT().Now().RunAndReturn(func() time.Time {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.now
	}).Maybe()
	return c
}

func (c *movableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type completionRecorder struct {
	mu    sync.Mutex
	tasks []string
}

func (r *completionRecorder) record(focus domain.Focus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, focus.TaskName)
}

func (r *completionRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

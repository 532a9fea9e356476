package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionClockLoadWithFutureEndsAtIsRunning(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)

	sc.Load(&domain.Focus{
		ID:        "f-1",
		TaskName:  "Write",
		Duration:  "25m",
		StartedAt: testNow.Add(-5 * time.Minute),
		EndsAt:    testNow.Add(20 * time.Minute),
	})

	snap := sc.Snapshot()
	assert.Equal(t, ClockRunning, snap.State)
	assert.Equal(t, 20*time.Minute, snap.Remaining)
	assert.Equal(t, 25*time.Minute, snap.Total)
	assert.InDelta(t, 20.0, snap.Percent(), 0.001)
}

func TestSessionClockLoadWithoutEndsAtDerivesFromDuration(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)

	sc.Load(&domain.Focus{ID: "f-1", Duration: "1h", StartedAt: testNow.Add(-15 * time.Minute)})

	snap := sc.Snapshot()
	assert.Equal(t, ClockRunning, snap.State)
	assert.Equal(t, 45*time.Minute, snap.Remaining)
}

func TestSessionClockExpiredSessionStartsCompleteAndFiresOnce(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	recorder := &completionRecorder{}
	sc.OnComplete(recorder.record)

	focus := &domain.Focus{ID: "f-1", TaskName: "Write", Duration: "25m", StartedAt: testNow.Add(-time.Hour)}
	sc.Load(focus)

	assert.Equal(t, ClockComplete, sc.Snapshot().State)
	assert.Equal(t, 1, recorder.count())

	sc.Tick()
	sc.Load(focus)
	sc.Tick()
	assert.Equal(t, 1, recorder.count())
	assert.Equal(t, 1.0, sc.Snapshot().Progress())
}

func TestSessionClockOneSecondLeftCompletesAfterOneTick(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	recorder := &completionRecorder{}
	sc.OnComplete(recorder.record)

	sc.Load(&domain.Focus{
		ID:        "f-1",
		TaskName:  "Deep work",
		Duration:  "25m",
		StartedAt: testNow.Add(-(24*time.Minute + 59*time.Second)),
	})

	snap := sc.Snapshot()
	require.Equal(t, ClockRunning, snap.State)
	assert.InDelta(t, float64(time.Second), float64(snap.Remaining), float64(time.Second))
	assert.Equal(t, 0, recorder.count())

	sc.Tick()

	assert.Equal(t, ClockComplete, sc.Snapshot().State)
	assert.Equal(t, time.Duration(0), sc.Snapshot().Remaining)
	assert.Equal(t, []string{"Deep work"}, recorder.tasks)

	sc.Tick()
	sc.Tick()
	assert.Equal(t, 1, recorder.count())
}

func TestSessionClockMalformedDurationIsComplete(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)

	sc.Load(&domain.Focus{ID: "f-1", Duration: "soon", StartedAt: testNow})

	assert.Equal(t, ClockComplete, sc.Snapshot().State)
}

func TestSessionClockPauseFreezesRemaining(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	sc.Load(&domain.Focus{ID: "f-1", Duration: "10s", StartedAt: testNow})

	sc.Tick()
	require.True(t, sc.Pause())
	assert.False(t, sc.Pause())

	sc.Tick()
	sc.Tick()
	assert.Equal(t, 9*time.Second, sc.Snapshot().Remaining)
	assert.True(t, sc.Snapshot().Paused)

	// A server re-sync while paused keeps the frozen value.
	clock.Advance(5 * time.Second)
	sc.Load(&domain.Focus{ID: "f-1", Duration: "10s", StartedAt: testNow})
	assert.Equal(t, 9*time.Second, sc.Snapshot().Remaining)

	require.True(t, sc.Resume())
	sc.Tick()
	assert.Equal(t, 8*time.Second, sc.Snapshot().Remaining)
}

func TestSessionClockReloadSameSessionResyncs(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	focus := &domain.Focus{ID: "f-1", Duration: "1m", StartedAt: testNow}
	sc.Load(focus)

	clock.Advance(30 * time.Second)
	sc.Load(focus)

	assert.Equal(t, 30*time.Second, sc.Snapshot().Remaining)
	assert.Equal(t, time.Minute, sc.Snapshot().Total)
}

func TestSessionClockNewSessionReplacesOld(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	recorder := &completionRecorder{}
	sc.OnComplete(recorder.record)

	sc.Load(&domain.Focus{ID: "old", Duration: "1s", StartedAt: testNow.Add(-time.Minute)})
	sc.Load(&domain.Focus{ID: "new", TaskName: "next", Duration: "5m", StartedAt: testNow})

	snap := sc.Snapshot()
	assert.Equal(t, ClockRunning, snap.State)
	assert.Equal(t, "new", snap.Focus.ID)
	assert.Equal(t, 1, recorder.count())
}

func TestSessionClockClearIsIdempotent(t *testing.T) {
	sc := NewSessionClock(newMovableClock(t, testNow), nil)

	sc.Clear()
	assert.Equal(t, ClockIdle, sc.Snapshot().State)

	sc.Load(&domain.Focus{ID: "f-1", Duration: "5m", StartedAt: testNow})
	sc.Clear()
	sc.Clear()

	snap := sc.Snapshot()
	assert.Equal(t, ClockIdle, snap.State)
	assert.Nil(t, snap.Focus)
	assert.Equal(t, time.Duration(0), snap.Remaining)

	sc.Tick()
	assert.Equal(t, ClockIdle, sc.Snapshot().State)
}

func TestSessionClockLoadNilClears(t *testing.T) {
	sc := NewSessionClock(newMovableClock(t, testNow), nil)
	sc.Load(&domain.Focus{ID: "f-1", Duration: "5m", StartedAt: testNow})

	sc.Load(nil)

	assert.Equal(t, ClockIdle, sc.Snapshot().State)
}

func TestClockSnapshotProgressIsClamped(t *testing.T) {
	tests := []struct {
		name string
		snap ClockSnapshot
		want float64
	}{
		{name: "half", snap: ClockSnapshot{Total: 10 * time.Second, Remaining: 5 * time.Second}, want: 50},
		{name: "remaining above total", snap: ClockSnapshot{Total: 10 * time.Second, Remaining: 20 * time.Second}, want: 0},
		{name: "negative remaining", snap: ClockSnapshot{Total: 10 * time.Second, Remaining: -time.Second}, want: 100},
		{name: "no total", snap: ClockSnapshot{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.snap.Percent(), 0.0001)
		})
	}
}

func TestClockStateString(t *testing.T) {
	assert.Equal(t, "idle", ClockIdle.String())
	assert.Equal(t, "running", ClockRunning.String())
	assert.Equal(t, "complete", ClockComplete.String())
	assert.Equal(t, "unknown", ClockState(42).String())
}

func TestSessionClockRunTicksUntilCancelled(t *testing.T) {
	sc := NewSessionClock(newMovableClock(t, testNow), nil)
	recorder := &completionRecorder{}
	sc.OnComplete(recorder.record)
	sc.Load(&domain.Focus{ID: "f-1", Duration: "3s", StartedAt: testNow})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sc.Run(ctx, time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, ClockComplete, sc.Snapshot().State)
}

func TestSessionClockObserverRegisteredDuringCompletionWaitsForNextSession(t *testing.T) {
	clock := newMovableClock(t, testNow)
	sc := NewSessionClock(clock, nil)
	first := &completionRecorder{}
	late := &completionRecorder{}
	sc.OnComplete(func(focus domain.Focus) {
		first.record(focus)
		sc.OnComplete(late.record)
	})

	sc.Load(&domain.Focus{ID: "f-1", TaskName: "Write", Duration: "25m", StartedAt: testNow.Add(-time.Hour)})

	require.Equal(t, 1, first.count())
	assert.Equal(t, 0, late.count())
}

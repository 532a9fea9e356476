package application

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddLoopPutsLoopAtHeadAndReplacesSameID(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(SetLoops{Loops: []domain.Loop{{ID: "a"}, {ID: "b"}}})

	store.Dispatch(AddLoop{Loop: domain.Loop{ID: "c"}})
	store.Dispatch(AddLoop{Loop: domain.Loop{ID: "b", Description: "updated"}})

	loops := store.Snapshot().Loops
	require.Len(t, loops, 3)
	assert.Equal(t, "b", loops[0].ID)
	assert.Equal(t, "updated", loops[0].Description)
	assert.Equal(t, "c", loops[1].ID)
	assert.Equal(t, "a", loops[2].ID)
}

func TestStoreRemoveAndUpdateByID(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(SetLoops{Loops: []domain.Loop{{ID: "a"}, {ID: "b"}}})
	store.Dispatch(SetThreads{Threads: []domain.Thread{{ID: "t1"}, {ID: "t2"}}})

	store.Dispatch(RemoveLoop{ID: "a"})
	store.Dispatch(UpdateLoop{Loop: domain.Loop{ID: "b", Owner: "me"}})
	store.Dispatch(UpdateLoop{Loop: domain.Loop{ID: "missing"}})
	store.Dispatch(RemoveThread{ID: "t2"})

	snap := store.Snapshot()
	assert.Equal(t, []domain.Loop{{ID: "b", Owner: "me"}}, snap.Loops)
	assert.Equal(t, []domain.Thread{{ID: "t1"}}, snap.Threads)
}

func TestStoreStatusErrorKeepsPreviousSnapshot(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(SetStatus{Status: domain.CognitiveStatus{OpenLoopsEstimate: 3, Timestamp: testNow}})
	store.Dispatch(SetStatusLoading{Loading: true})
	store.Dispatch(SetStatusError{Err: errors.New("boom")})

	snap := store.Snapshot()
	require.NotNil(t, snap.Status)
	assert.Equal(t, 3, snap.Status.OpenLoopsEstimate)
	assert.EqualError(t, snap.StatusErr, "boom")
	assert.False(t, snap.StatusLoading)

	store.Dispatch(SetStatus{Status: domain.CognitiveStatus{OpenLoopsEstimate: 7}})
	snap = store.Snapshot()
	assert.Equal(t, 7, snap.Status.OpenLoopsEstimate)
	assert.NoError(t, snap.StatusErr)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(SetSession{Focus: &domain.Focus{ID: "f-1", TaskName: "Write"}})
	store.Dispatch(SetLoops{Loops: []domain.Loop{{ID: "a"}}})

	snap := store.Snapshot()
	snap.Session.TaskName = "changed"
	snap.Loops[0].ID = "changed"

	again := store.Snapshot()
	assert.Equal(t, "Write", again.Session.TaskName)
	assert.Equal(t, "a", again.Loops[0].ID)
}

func TestStoreSubscribeSignalsAndUnsubscribes(t *testing.T) {
	store := NewStore(nil)
	changes, unsubscribe := store.Subscribe()

	store.Dispatch(SetSession{Focus: nil})
	store.Dispatch(SetSession{Focus: nil})

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected change signal")
	}

	select {
	case <-changes:
		t.Fatal("signals should coalesce")
	default:
	}

	unsubscribe()
	unsubscribe()
	store.Dispatch(AddToast{Toast: domain.Toast{ID: "x"}})

	select {
	case <-changes:
		t.Fatal("unsubscribed channel received a signal")
	default:
	}
}

func TestStoreEmotionAndToastActions(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(SetEmotions{Emotions: []domain.EmotionalState{{ID: "e1"}}})
	store.Dispatch(AddEmotion{Emotion: domain.EmotionalState{ID: "e2"}})
	store.Dispatch(AddToast{Toast: domain.Toast{ID: "t1"}})
	store.Dispatch(AddToast{Toast: domain.Toast{ID: "t2"}})
	store.Dispatch(RemoveToast{ID: "t1"})

	snap := store.Snapshot()
	assert.Equal(t, "e2", snap.Emotions[0].ID)
	assert.Equal(t, []domain.Toast{{ID: "t2"}}, snap.Toasts)
}

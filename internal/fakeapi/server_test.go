package fakeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/humanos-cli/internal/adapters/api"
	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newClient(t *testing.T) (*api.Client, *fakeapi.Server) {
	t.Helper()

	fake := fakeapi.New(fakeapi.WithClock(func() time.Time { return testNow }))
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL+fakeapi.BasePath, server.Client(), time.Second)
	require.NoError(t, err)
	return client, fake
}

func TestHealth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(fakeapi.New().Handler())
	t.Cleanup(server.Close)

	resp, err := server.Client().Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFocusLifecycle(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.CurrentFocus(ctx)
	assert.ErrorIs(t, err, domain.ErrFocusNotFound)

	focus, err := client.SetFocus(ctx, domain.FocusSetInput{TaskName: "write", Duration: "25m", SuccessCriteria: "draft"})
	require.NoError(t, err)
	assert.NotEmpty(t, focus.ID)
	assert.Equal(t, testNow.Add(25*time.Minute), focus.EndsAt)

	locked, err := client.LockFocus(ctx, domain.FocusLockInput{TaskName: "write", Timebox: "50m", Fallback: "outline"})
	require.NoError(t, err)
	assert.Equal(t, focus.ID, locked.ID)
	assert.True(t, locked.IsLocked)

	current, err := client.CurrentFocus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "outline", current.Fallback)

	status, err := client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "write", status.CurrentFocus)
	assert.True(t, status.FocusLocked)

	require.NoError(t, client.ClearFocus(ctx))
	_, err = client.CurrentFocus(ctx)
	assert.ErrorIs(t, err, domain.ErrFocusNotFound)
}

func TestSetFocusRejectsBadDuration(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)

	_, err := client.SetFocus(context.Background(), domain.FocusSetInput{TaskName: "write", Duration: "soon", SuccessCriteria: "draft"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
}

func TestLoopLifecycle(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	first, err := client.AuthorizeLoop(ctx, domain.LoopAuthorizeInput{Description: "call bank", Priority: domain.PriorityHigh, Queue: domain.QueueAction, Owner: "me"})
	require.NoError(t, err)
	_, err = client.AuthorizeLoop(ctx, domain.LoopAuthorizeInput{Description: "read paper", Priority: domain.PriorityLow, Queue: domain.QueueReference, Owner: "me"})
	require.NoError(t, err)

	loops, err := client.ListLoops(ctx, "")
	require.NoError(t, err)
	require.Len(t, loops, 2)
	assert.Equal(t, "read paper", loops[0].Description, "newest first")

	actions, err := client.ListLoops(ctx, domain.QueueAction)
	require.NoError(t, err)
	require.Len(t, actions, 1)

	require.NoError(t, client.CloseLoop(ctx, domain.LoopCloseInput{LoopID: first.ID, ClosureType: domain.ClosureDone}))
	err = client.CloseLoop(ctx, domain.LoopCloseInput{LoopID: first.ID, ClosureType: domain.ClosureDone})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))

	closed, err := client.GetLoop(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	require.NotNil(t, closed.ClosedAt)

	err = client.CloseLoop(ctx, domain.LoopCloseInput{LoopID: "missing", ClosureType: domain.ClosureDone})
	assert.ErrorIs(t, err, domain.ErrLoopNotFound)

	require.NoError(t, client.KillLoop(ctx, domain.LoopKillInput{Description: "PAPER", Reason: "stale"}))
	err = client.KillLoop(ctx, domain.LoopKillInput{Description: "paper", Reason: "stale"})
	assert.ErrorIs(t, err, domain.ErrLoopNotFound)

	loops, err = client.ListLoops(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func TestThreadsAndStatus(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.SpawnThread(ctx, domain.ThreadSpawnInput{Name: "research", Mode: domain.ThreadModeForeground, TimeScope: "today"})
	require.NoError(t, err)
	require.NoError(t, client.BackgroundThread(ctx, domain.ThreadBackgroundInput{Name: "taxes", Goal: "file by friday"}))

	status, err := client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"research"}, status.ForegroundThreads)
	assert.Equal(t, []string{"taxes"}, status.BackgroundThreads)
	assert.Equal(t, domain.LoadHigh, status.EnergyLevel)
	assert.Equal(t, domain.LoadLow, status.EmotionalLoad)

	require.NoError(t, client.TerminateThreads(ctx, "tax"))
	threads, err := client.ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "research", threads[0].Name)

	require.NoError(t, client.TerminateThreads(ctx, "nothing matches"))
}

func TestEmotionalLoadFollowsRecentTags(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	for _, label := range []string{"anxious", "Overwhelmed"} {
		_, err := client.TagEmotion(ctx, domain.EmotionInput{Label: label, SourceGuess: "deadline"})
		require.NoError(t, err)
	}

	status, err := client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LoadHigh, status.EmotionalLoad)

	emotions, err := client.ListEmotions(ctx)
	require.NoError(t, err)
	require.Len(t, emotions, 2)
	assert.Equal(t, "overwhelmed", emotions[0].Label)
}

func TestCaptureEndpoints(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.IngestTask(ctx, domain.TaskInput{Description: "renew passport", Category: "admin", Urgency: domain.PriorityHigh, Importance: domain.PriorityMedium})
	require.NoError(t, err)
	_, err = client.IngestIdea(ctx, domain.IdeaInput{Summary: "solar kettle", Storage: "notes"})
	require.NoError(t, err)
	receipt, err := client.CommitArchive(ctx, domain.ArchiveInput{Object: "q3 launch", Summary: "shipped", Lesson: "start earlier"})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)

	archives, err := client.ListArchives(ctx)
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Equal(t, receipt.ID, archives[0].ID)

	prediction, err := client.RunPrediction(ctx, domain.PredictionInput{Scenario: "job change", TimeHorizon: "1y", Depth: domain.DepthDeep})
	require.NoError(t, err)
	assert.Equal(t, "running", prediction.Status)

	status, err := client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.PendingTasks)
	assert.Equal(t, 1, status.CapturedIdeas)
	assert.Equal(t, 1, status.ActivePredictions)

	require.NoError(t, client.StopPrediction(ctx, "job"))
	assert.ErrorIs(t, client.StopPrediction(ctx, "job"), domain.ErrPredictionNotFound)

	_, err = client.Decompress(ctx, domain.DecompressInput{Method: "walk", Duration: "15m"})
	require.NoError(t, err)
	_, err = client.Offload(ctx, domain.OffloadInput{TaskType: "summarize", Scope: "inbox"})
	require.NoError(t, err)
	receipt, err = client.Assist(ctx, domain.AssistInput{Task: "draft email", AssistanceType: "outline"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.Message, "AI assistance queued"))
}

func TestResets(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.SetFocus(ctx, domain.FocusSetInput{TaskName: "write", Duration: "25m", SuccessCriteria: "draft"})
	require.NoError(t, err)
	_, err = client.AuthorizeLoop(ctx, domain.LoopAuthorizeInput{Description: "call bank", Priority: domain.PriorityHigh, Queue: domain.QueueAction, Owner: "me"})
	require.NoError(t, err)
	_, err = client.CommitArchive(ctx, domain.ArchiveInput{Object: "q3", Summary: "done"})
	require.NoError(t, err)

	_, err = client.Reset(ctx, domain.ResetSoft)
	require.NoError(t, err)

	status, err := client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, status.CurrentFocus)
	assert.Zero(t, status.OpenLoopsEstimate)
	archives, err := client.ListArchives(ctx)
	require.NoError(t, err)
	assert.Len(t, archives, 1, "soft reset keeps archives")

	_, err = client.Reset(ctx, domain.ResetHard)
	require.NoError(t, err)
	archives, err = client.ListArchives(ctx)
	require.NoError(t, err)
	assert.Empty(t, archives)
}

func TestFailNextAndRequestCounts(t *testing.T) {
	t.Parallel()

	client, fake := newClient(t)
	ctx := context.Background()
	fake.FailNext(http.MethodGet, "/dashboard/status", http.StatusServiceUnavailable, "maintenance")

	_, err := client.FetchStatus(ctx)
	require.Error(t, err)
	assert.True(t, api.IsTransient(err))
	assert.Contains(t, err.Error(), "maintenance")

	_, err = client.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.Requests(http.MethodGet, "/dashboard/status"))
	assert.Zero(t, fake.Requests(http.MethodDelete, "/focus/clear"))
}

func TestValidationErrorsReturnBadRequest(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t)

	_, err := client.AuthorizeLoop(context.Background(), domain.LoopAuthorizeInput{Description: "x", Priority: "urgent", Queue: domain.QueueAction, Owner: "me"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
}

package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStub records calls and returns canned results.
type captureStub struct {
	calls    []string
	err      error
	receipt  domain.Receipt
	emotions []domain.EmotionalState
}

func (s *captureStub) record(name string) error {
	s.calls = append(s.calls, name)
	return s.err
}

func (s *captureStub) IngestTask(context.Context, domain.TaskInput) (domain.Receipt, error) {
	return s.receipt, s.record("ingest_task")
}
func (s *captureStub) IngestIdea(context.Context, domain.IdeaInput) (domain.Receipt, error) {
	return s.receipt, s.record("ingest_idea")
}
func (s *captureStub) CommitArchive(context.Context, domain.ArchiveInput) (domain.Receipt, error) {
	return s.receipt, s.record("commit_archive")
}
func (s *captureStub) ListArchives(context.Context) ([]domain.Archive, error) {
	return nil, s.record("list_archives")
}
func (s *captureStub) TagEmotion(context.Context, domain.EmotionInput) (domain.Receipt, error) {
	return s.receipt, s.record("tag_emotion")
}
func (s *captureStub) Decompress(context.Context, domain.DecompressInput) (domain.Receipt, error) {
	return s.receipt, s.record("decompress")
}
func (s *captureStub) ListEmotions(context.Context) ([]domain.EmotionalState, error) {
	return s.emotions, s.record("list_emotions")
}
func (s *captureStub) RunPrediction(_ context.Context, in domain.PredictionInput) (domain.Prediction, error) {
	return domain.Prediction{ID: "p-1", Scenario: in.Scenario}, s.record("run_prediction")
}
func (s *captureStub) StopPrediction(context.Context, string) error {
	return s.record("stop_prediction")
}
func (s *captureStub) Offload(context.Context, domain.OffloadInput) (domain.Receipt, error) {
	return s.receipt, s.record("offload")
}
func (s *captureStub) Assist(context.Context, domain.AssistInput) (domain.Receipt, error) {
	return s.receipt, s.record("assist")
}
func (s *captureStub) Reset(_ context.Context, kind domain.ResetKind) (domain.Receipt, error) {
	return s.receipt, s.record("reset_" + string(kind))
}

func TestCaptureServiceTagEmotionPrependsToCache(t *testing.T) {
	stub := &captureStub{receipt: domain.Receipt{ID: "e-2", Timestamp: testNow}}
	store := NewStore(nil)
	store.Dispatch(SetEmotions{Emotions: []domain.EmotionalState{{ID: "e-1"}}})
	svc := NewCaptureService(stub, store, nil, nil, nil)

	state, err := svc.TagEmotion(context.Background(), domain.EmotionInput{Label: "anxious", SourceGuess: "deadline"})
	require.NoError(t, err)
	assert.Equal(t, "e-2", state.ID)
	assert.Equal(t, testNow, state.CreatedAt)

	emotions := store.Snapshot().Emotions
	require.Len(t, emotions, 2)
	assert.Equal(t, "anxious", emotions[0].Label)
}

func TestCaptureServiceValidatesBeforeCalling(t *testing.T) {
	stub := &captureStub{}
	svc := NewCaptureService(stub, NewStore(nil), nil, nil, nil)

	_, err := svc.IngestTask(context.Background(), domain.TaskInput{Description: "x", Category: "y", Urgency: "now", Importance: domain.PriorityLow})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = svc.RunPrediction(context.Background(), domain.PredictionInput{Scenario: "x", TimeHorizon: "1w", Depth: "abyss"})
	assert.ErrorIs(t, err, domain.ErrInvalidDepth)

	err = svc.StopPrediction(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	_, err = svc.Reset(context.Background(), "medium")
	assert.Error(t, err)

	assert.Empty(t, stub.calls)
}

func TestCaptureServiceWrapsCollaboratorErrors(t *testing.T) {
	stub := &captureStub{err: errors.New("status 500")}
	svc := NewCaptureService(stub, NewStore(nil), nil, nil, nil)

	_, err := svc.IngestIdea(context.Background(), domain.IdeaInput{Summary: "app idea", Storage: "notes"})
	require.Error(t, err)
	assert.Equal(t, "ingest idea: status 500", err.Error())
}

func TestCaptureServiceResetRefreshesStatus(t *testing.T) {
	stub := &captureStub{receipt: domain.Receipt{Message: "Soft reset complete"}}
	store := NewStore(nil)
	source := mocks.NewMockStatusSource(t)
	poller := NewStatusPoller(source, store, nil)
	svc := NewCaptureService(stub, store, poller, nil, nil)

	source.EXPECT().FetchStatus(mockAnyContext()).Return(domain.CognitiveStatus{EnergyLevel: domain.LoadHigh}, nil).Once()

	receipt, err := svc.Reset(context.Background(), domain.ResetSoft)
	require.NoError(t, err)
	assert.Equal(t, "Soft reset complete", receipt.Message)
	assert.Equal(t, []string{"reset_soft"}, stub.calls)
	assert.Equal(t, domain.LoadHigh, store.Snapshot().Status.EnergyLevel)
}

func TestCaptureServiceListEmotionsReplacesCache(t *testing.T) {
	stub := &captureStub{emotions: []domain.EmotionalState{{ID: "e-9"}}}
	store := NewStore(nil)
	store.Dispatch(AddEmotion{Emotion: domain.EmotionalState{ID: "e-1"}})
	svc := NewCaptureService(stub, store, nil, nil, nil)

	_, err := svc.ListEmotions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.EmotionalState{{ID: "e-9"}}, store.Snapshot().Emotions)
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
)

// CaptureService covers the plain mutations that sit outside focus, loops
// and threads. Like the reconciler it never retries.
type CaptureService struct {
	api    ports.CaptureAPI
	store  *Store
	poller *StatusPoller
	clock  ports.Clock
	logger *slog.Logger
}

func NewCaptureService(api ports.CaptureAPI, store *Store, poller *StatusPoller, clock ports.Clock, logger *slog.Logger) *CaptureService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CaptureService{
		api:    api,
		store:  store,
		poller: poller,
		clock:  clock,
		logger: componentLogger(logger, "capture"),
	}
}

func (s *CaptureService) IngestTask(ctx context.Context, in domain.TaskInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("ingest task: %w", err)
	}
	receipt, err := s.api.IngestTask(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("ingest task: %w", err)
	}
	s.logger.Info("task ingested", slog.String("id", receipt.ID))
	return receipt, nil
}

func (s *CaptureService) IngestIdea(ctx context.Context, in domain.IdeaInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("ingest idea: %w", err)
	}
	receipt, err := s.api.IngestIdea(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("ingest idea: %w", err)
	}
	s.logger.Info("idea captured", slog.String("id", receipt.ID))
	return receipt, nil
}

func (s *CaptureService) CommitArchive(ctx context.Context, in domain.ArchiveInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("commit archive: %w", err)
	}
	receipt, err := s.api.CommitArchive(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("commit archive: %w", err)
	}
	s.logger.Info("archive committed", slog.String("id", receipt.ID))
	return receipt, nil
}

func (s *CaptureService) ListArchives(ctx context.Context) ([]domain.Archive, error) {
	archives, err := s.api.ListArchives(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	return archives, nil
}

// TagEmotion records the tag and puts it at the head of the cached list.
func (s *CaptureService) TagEmotion(ctx context.Context, in domain.EmotionInput) (domain.EmotionalState, error) {
	if err := in.Validate(); err != nil {
		return domain.EmotionalState{}, fmt.Errorf("tag emotion: %w", err)
	}
	receipt, err := s.api.TagEmotion(ctx, in)
	if err != nil {
		return domain.EmotionalState{}, fmt.Errorf("tag emotion: %w", err)
	}

	createdAt := receipt.Timestamp
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}
	state := domain.EmotionalState{
		ID:          receipt.ID,
		Label:       in.Label,
		SourceGuess: in.SourceGuess,
		CreatedAt:   createdAt,
	}
	s.store.Dispatch(AddEmotion{Emotion: state})
	s.logger.Info("emotion tagged", slog.String("label", in.Label))
	return state, nil
}

func (s *CaptureService) Decompress(ctx context.Context, in domain.DecompressInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("start decompression: %w", err)
	}
	receipt, err := s.api.Decompress(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("start decompression: %w", err)
	}
	s.logger.Info("decompression started", slog.String("method", in.Method))
	return receipt, nil
}

func (s *CaptureService) ListEmotions(ctx context.Context) ([]domain.EmotionalState, error) {
	emotions, err := s.api.ListEmotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emotions: %w", err)
	}
	s.store.Dispatch(SetEmotions{Emotions: emotions})
	return emotions, nil
}

func (s *CaptureService) RunPrediction(ctx context.Context, in domain.PredictionInput) (domain.Prediction, error) {
	if err := in.Validate(); err != nil {
		return domain.Prediction{}, fmt.Errorf("run prediction: %w", err)
	}
	prediction, err := s.api.RunPrediction(ctx, in)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("run prediction: %w", err)
	}
	s.logger.Info("prediction started", slog.String("id", prediction.ID))
	return prediction, nil
}

func (s *CaptureService) StopPrediction(ctx context.Context, topic string) error {
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("stop prediction: topic: %w", domain.ErrEmptyField)
	}
	if err := s.api.StopPrediction(ctx, topic); err != nil {
		return fmt.Errorf("stop prediction: %w", err)
	}
	s.logger.Info("prediction stopped", slog.String("topic", topic))
	return nil
}

func (s *CaptureService) Offload(ctx context.Context, in domain.OffloadInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("offload to ai: %w", err)
	}
	receipt, err := s.api.Offload(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("offload to ai: %w", err)
	}
	return receipt, nil
}

func (s *CaptureService) Assist(ctx context.Context, in domain.AssistInput) (domain.Receipt, error) {
	if err := in.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("request ai assistance: %w", err)
	}
	receipt, err := s.api.Assist(ctx, in)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("request ai assistance: %w", err)
	}
	return receipt, nil
}

// Reset asks the collaborator for a soft or hard reset and then refreshes the
// status snapshot. A failed refresh only marks the snapshot stale.
func (s *CaptureService) Reset(ctx context.Context, kind domain.ResetKind) (domain.Receipt, error) {
	if kind != domain.ResetSoft && kind != domain.ResetHard {
		return domain.Receipt{}, fmt.Errorf("reset: unknown kind %q", kind)
	}
	receipt, err := s.api.Reset(ctx, kind)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s reset: %w", kind, err)
	}
	s.logger.Info("reset applied", slog.String("kind", string(kind)))

	if s.poller != nil {
		if err := s.poller.Refresh(ctx); err != nil {
			s.logger.Warn("refresh status after reset", slog.Any("error", err))
		}
	}
	return receipt, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/humanos-cli/internal/domain"
)

func (c *Client) IngestTask(ctx context.Context, in domain.TaskInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/ingest/task", ingestTaskRequest{
		Description: in.Description,
		Category:    in.Category,
		Urgency:     string(in.Urgency),
		Importance:  string(in.Importance),
	})
}

func (c *Client) IngestIdea(ctx context.Context, in domain.IdeaInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/ingest/idea", ingestIdeaRequest{
		IdeaSummary: in.Summary,
		Storage:     in.Storage,
		ActionNow:   in.ActionNow,
	})
}

func (c *Client) CommitArchive(ctx context.Context, in domain.ArchiveInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/archive/commit", archiveCommitRequest{
		Object:  in.Object,
		Summary: in.Summary,
		Lesson:  in.Lesson,
	})
}

func (c *Client) ListArchives(ctx context.Context) ([]domain.Archive, error) {
	var out archivesListResponse
	if err := c.do(ctx, http.MethodGet, "/archive/list", nil, nil, &out, nil); err != nil {
		return nil, err
	}

	archives := make([]domain.Archive, 0, len(out.Archives))
	for _, a := range out.Archives {
		archives = append(archives, domain.Archive{
			ID:        a.ID,
			Object:    a.Object,
			Summary:   a.Summary,
			Lesson:    a.Lesson,
			CreatedAt: a.CreatedAt,
		})
	}
	return archives, nil
}

func (c *Client) TagEmotion(ctx context.Context, in domain.EmotionInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/emotion/tag", emotionTagRequest{
		Label:       in.Label,
		SourceGuess: in.SourceGuess,
	})
}

func (c *Client) Decompress(ctx context.Context, in domain.DecompressInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/emotion/decompress", decompressRequest{
		Method:   in.Method,
		Duration: in.Duration,
	})
}

func (c *Client) ListEmotions(ctx context.Context) ([]domain.EmotionalState, error) {
	var out emotionsListResponse
	if err := c.do(ctx, http.MethodGet, "/emotion/list", nil, nil, &out, nil); err != nil {
		return nil, err
	}

	emotions := make([]domain.EmotionalState, 0, len(out.Emotions))
	for _, e := range out.Emotions {
		emotions = append(emotions, domain.EmotionalState{
			ID:          e.ID,
			Label:       e.Label,
			SourceGuess: e.SourceGuess,
			CreatedAt:   e.CreatedAt,
		})
	}
	return emotions, nil
}

func (c *Client) RunPrediction(ctx context.Context, in domain.PredictionInput) (domain.Prediction, error) {
	var out predictResponse
	err := c.do(ctx, http.MethodPost, "/predict/run", nil, predictRunRequest{
		Scenario:    in.Scenario,
		TimeHorizon: in.TimeHorizon,
		Depth:       string(in.Depth),
	}, &out, nil)
	if err != nil {
		return domain.Prediction{}, err
	}
	if out.Prediction == nil {
		return domain.Prediction{}, fmt.Errorf("POST /predict/run: %w", errMissingRecord)
	}
	return out.Prediction.toDomain(), nil
}

// StopPrediction returns domain.ErrPredictionNotFound when nothing matched topic.
func (c *Client) StopPrediction(ctx context.Context, topic string) error {
	return c.do(ctx, http.MethodDelete, "/predict/stop", nil, predictStopRequest{Topic: topic}, nil, domain.ErrPredictionNotFound)
}

func (c *Client) Offload(ctx context.Context, in domain.OffloadInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/ai/offload", offloadRequest{
		TaskType: in.TaskType,
		Scope:    in.Scope,
	})
}

func (c *Client) Assist(ctx context.Context, in domain.AssistInput) (domain.Receipt, error) {
	return c.receipt(ctx, http.MethodPost, "/ai/assist-for-execution", assistRequest{
		Task:           in.Task,
		AssistanceType: in.AssistanceType,
	})
}

func (c *Client) Reset(ctx context.Context, kind domain.ResetKind) (domain.Receipt, error) {
	path := "/mode/reset-soft"
	if kind == domain.ResetHard {
		path = "/mode/reset-hard"
	}
	return c.receipt(ctx, http.MethodPost, path, nil)
}

func (c *Client) receipt(ctx context.Context, method, path string, body any) (domain.Receipt, error) {
	var out receiptResponse
	if err := c.do(ctx, method, path, nil, body, &out, nil); err != nil {
		return domain.Receipt{}, err
	}
	return out.toDomain(), nil
}

package ports

import (
	"context"

	"github.com/bnema/humanos-cli/internal/domain"
)

// StatusSource serves the aggregate dashboard snapshot.
type StatusSource interface {
	FetchStatus(ctx context.Context) (domain.CognitiveStatus, error)
}

type FocusAPI interface {
	SetFocus(ctx context.Context, in domain.FocusSetInput) (domain.Focus, error)
	LockFocus(ctx context.Context, in domain.FocusLockInput) (domain.Focus, error)
	ClearFocus(ctx context.Context) error
	// CurrentFocus returns domain.ErrFocusNotFound when nothing is active.
	CurrentFocus(ctx context.Context) (domain.Focus, error)
}

type LoopAPI interface {
	AuthorizeLoop(ctx context.Context, in domain.LoopAuthorizeInput) (domain.Loop, error)
	CloseLoop(ctx context.Context, in domain.LoopCloseInput) error
	KillLoop(ctx context.Context, in domain.LoopKillInput) error
	// ListLoops filters by queue unless queue is empty.
	ListLoops(ctx context.Context, queue domain.QueueType) ([]domain.Loop, error)
	GetLoop(ctx context.Context, id string) (domain.Loop, error)
}

type ThreadAPI interface {
	SpawnThread(ctx context.Context, in domain.ThreadSpawnInput) (domain.Thread, error)
	BackgroundThread(ctx context.Context, in domain.ThreadBackgroundInput) error
	TerminateThreads(ctx context.Context, rule string) error
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	GetThread(ctx context.Context, id string) (domain.Thread, error)
}

type CaptureAPI interface {
	IngestTask(ctx context.Context, in domain.TaskInput) (domain.Receipt, error)
	IngestIdea(ctx context.Context, in domain.IdeaInput) (domain.Receipt, error)
	CommitArchive(ctx context.Context, in domain.ArchiveInput) (domain.Receipt, error)
	ListArchives(ctx context.Context) ([]domain.Archive, error)
	TagEmotion(ctx context.Context, in domain.EmotionInput) (domain.Receipt, error)
	Decompress(ctx context.Context, in domain.DecompressInput) (domain.Receipt, error)
	ListEmotions(ctx context.Context) ([]domain.EmotionalState, error)
	RunPrediction(ctx context.Context, in domain.PredictionInput) (domain.Prediction, error)
	StopPrediction(ctx context.Context, topic string) error
	Offload(ctx context.Context, in domain.OffloadInput) (domain.Receipt, error)
	Assist(ctx context.Context, in domain.AssistInput) (domain.Receipt, error)
	Reset(ctx context.Context, kind domain.ResetKind) (domain.Receipt, error)
}

// Collaborator is the full remote API surface.
type Collaborator interface {
	StatusSource
	FocusAPI
	LoopAPI
	ThreadAPI
	CaptureAPI
}

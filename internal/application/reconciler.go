package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
)

// Reconciler sends mutations to the collaborator and patches the store once
// they succeed. Failed mutations leave the store untouched and are never
// retried.
type Reconciler struct {
	focus   ports.FocusAPI
	loops   ports.LoopAPI
	threads ports.ThreadAPI
	store   *Store
	clock   *SessionClock
	logger  *slog.Logger
}

func NewReconciler(focus ports.FocusAPI, loops ports.LoopAPI, threads ports.ThreadAPI, store *Store, clock *SessionClock, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		focus:   focus,
		loops:   loops,
		threads: threads,
		store:   store,
		clock:   clock,
		logger:  componentLogger(logger, "reconciler"),
	}
}

func (r *Reconciler) SetSession(ctx context.Context, in domain.FocusSetInput) (domain.Focus, error) {
	if err := in.Validate(); err != nil {
		return domain.Focus{}, fmt.Errorf("set focus: %w", err)
	}

	focus, err := r.focus.SetFocus(ctx, in)
	if err != nil {
		return domain.Focus{}, fmt.Errorf("set focus: %w", err)
	}

	r.replaceSession(&focus)
	r.logger.Info("focus set", slog.String("task", focus.TaskName), slog.String("duration", focus.Duration))
	return focus, nil
}

func (r *Reconciler) LockSession(ctx context.Context, in domain.FocusLockInput) (domain.Focus, error) {
	if err := in.Validate(); err != nil {
		return domain.Focus{}, fmt.Errorf("lock focus: %w", err)
	}

	focus, err := r.focus.LockFocus(ctx, in)
	if err != nil {
		return domain.Focus{}, fmt.Errorf("lock focus: %w", err)
	}

	r.replaceSession(&focus)
	r.logger.Info("focus locked", slog.String("task", focus.TaskName), slog.String("timebox", focus.Timebox))
	return focus, nil
}

// ClearSession ends the active session. With no session held it succeeds
// without contacting the collaborator.
func (r *Reconciler) ClearSession(ctx context.Context) error {
	if r.store.Snapshot().Session == nil {
		r.clearClock()
		return nil
	}

	if err := r.focus.ClearFocus(ctx); err != nil {
		return fmt.Errorf("clear focus: %w", err)
	}

	r.replaceSession(nil)
	r.logger.Info("focus cleared")
	return nil
}

// LoadSession pulls the active session from the collaborator. A missing
// session is not an error.
func (r *Reconciler) LoadSession(ctx context.Context) (*domain.Focus, error) {
	focus, err := r.focus.CurrentFocus(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrFocusNotFound) {
			r.replaceSession(nil)
			return nil, nil
		}
		return nil, fmt.Errorf("load current focus: %w", err)
	}

	r.replaceSession(&focus)
	return &focus, nil
}

func (r *Reconciler) AuthorizeLoop(ctx context.Context, in domain.LoopAuthorizeInput) (domain.Loop, error) {
	if err := in.Validate(); err != nil {
		return domain.Loop{}, fmt.Errorf("authorize loop: %w", err)
	}

	loop, err := r.loops.AuthorizeLoop(ctx, in)
	if err != nil {
		return domain.Loop{}, fmt.Errorf("authorize loop: %w", err)
	}

	r.store.Dispatch(AddLoop{Loop: loop})
	r.logger.Info("loop authorized", slog.String("loop_id", loop.ID))
	return loop, nil
}

func (r *Reconciler) CloseLoop(ctx context.Context, in domain.LoopCloseInput) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("close loop: %w", err)
	}

	if err := r.loops.CloseLoop(ctx, in); err != nil {
		return fmt.Errorf("close loop: %w", err)
	}

	r.store.Dispatch(RemoveLoop{ID: in.LoopID})
	r.logger.Info("loop closed", slog.String("loop_id", in.LoopID), slog.String("closure", string(in.ClosureType)))
	return nil
}

// KillLoop matches loops on the server side, so the list is re-fetched
// instead of patched.
func (r *Reconciler) KillLoop(ctx context.Context, in domain.LoopKillInput) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("kill loop: %w", err)
	}

	if err := r.loops.KillLoop(ctx, in); err != nil {
		return fmt.Errorf("kill loop: %w", err)
	}

	r.logger.Info("loop killed", slog.String("description", in.Description))
	r.refetchLoops(ctx)
	return nil
}

func (r *Reconciler) RefreshLoops(ctx context.Context, queue domain.QueueType) ([]domain.Loop, error) {
	if queue != "" {
		if _, err := domain.ParseQueueType(string(queue)); err != nil {
			return nil, fmt.Errorf("list loops: %w", err)
		}
	}

	loops, err := r.loops.ListLoops(ctx, queue)
	if err != nil {
		return nil, fmt.Errorf("list loops: %w", err)
	}

	r.store.Dispatch(SetLoops{Queue: queue, Loops: loops})
	return loops, nil
}

func (r *Reconciler) SpawnThread(ctx context.Context, in domain.ThreadSpawnInput) (domain.Thread, error) {
	if err := in.Validate(); err != nil {
		return domain.Thread{}, fmt.Errorf("spawn thread: %w", err)
	}

	thread, err := r.threads.SpawnThread(ctx, in)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("spawn thread: %w", err)
	}

	r.store.Dispatch(AddThread{Thread: thread})
	r.logger.Info("thread spawned", slog.String("thread_id", thread.ID), slog.String("mode", string(thread.Mode)))
	return thread, nil
}

func (r *Reconciler) MoveThreadToBackground(ctx context.Context, in domain.ThreadBackgroundInput) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("background thread: %w", err)
	}

	if err := r.threads.BackgroundThread(ctx, in); err != nil {
		return fmt.Errorf("background thread: %w", err)
	}

	r.logger.Info("thread moved to background", slog.String("thread", in.Name))
	r.refetchThreads(ctx)
	return nil
}

func (r *Reconciler) TerminateThreads(ctx context.Context, rule string) error {
	if strings.TrimSpace(rule) == "" {
		return fmt.Errorf("terminate threads: rule: %w", domain.ErrEmptyField)
	}

	if err := r.threads.TerminateThreads(ctx, rule); err != nil {
		return fmt.Errorf("terminate threads: %w", err)
	}

	r.logger.Info("threads terminated", slog.String("rule", rule))
	r.refetchThreads(ctx)
	return nil
}

func (r *Reconciler) RefreshThreads(ctx context.Context) ([]domain.Thread, error) {
	threads, err := r.threads.ListThreads(ctx)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}

	r.store.Dispatch(SetThreads{Threads: threads})
	return threads, nil
}

func (r *Reconciler) replaceSession(focus *domain.Focus) {
	r.store.Dispatch(SetSession{Focus: focus})
	if r.clock == nil {
		return
	}
	r.clock.Load(focus)
}

func (r *Reconciler) clearClock() {
	if r.clock != nil {
		r.clock.Clear()
	}
}

// The mutation already succeeded; a failed re-fetch leaves the previous list
// in place until the next refresh.
func (r *Reconciler) refetchLoops(ctx context.Context) {
	queue := r.store.Snapshot().LoopQueue
	if _, err := r.RefreshLoops(ctx, queue); err != nil {
		r.logger.Warn("re-fetch loops failed", slog.Any("error", err))
	}
}

func (r *Reconciler) refetchThreads(ctx context.Context) {
	if _, err := r.RefreshThreads(ctx); err != nil {
		r.logger.Warn("re-fetch threads failed", slog.Any("error", err))
	}
}

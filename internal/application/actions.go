package application

import (
	"slices"

	"github.com/bnema/humanos-cli/internal/domain"
)

// Action is a closed set of cache mutations.
type Action interface {
	apply(*State)
	name() string
}

type SetStatus struct{ Status domain.CognitiveStatus }
type SetStatusError struct{ Err error }
type SetStatusLoading struct{ Loading bool }
type SetSession struct{ Focus *domain.Focus }
type SetLoops struct {
	Queue domain.QueueType
	Loops []domain.Loop
}
type AddLoop struct{ Loop domain.Loop }
type UpdateLoop struct{ Loop domain.Loop }
type RemoveLoop struct{ ID string }
type SetThreads struct{ Threads []domain.Thread }
type AddThread struct{ Thread domain.Thread }
type RemoveThread struct{ ID string }
type SetEmotions struct{ Emotions []domain.EmotionalState }
type AddEmotion struct{ Emotion domain.EmotionalState }
type AddToast struct{ Toast domain.Toast }
type RemoveToast struct{ ID string }

func (a SetStatus) apply(s *State) {
	status := a.Status.Clone()
	s.Status = &status
	s.StatusErr = nil
	s.StatusLoading = false
}

func (a SetStatusError) apply(s *State) {
	s.StatusErr = a.Err
	s.StatusLoading = false
}

func (a SetStatusLoading) apply(s *State) { s.StatusLoading = a.Loading }

func (a SetSession) apply(s *State) {
	if a.Focus == nil {
		s.Session = nil
		return
	}
	focus := *a.Focus
	s.Session = &focus
}

func (a SetLoops) apply(s *State) {
	s.Loops = slices.Clone(a.Loops)
	s.LoopQueue = a.Queue
}

func (a AddLoop) apply(s *State) {
	s.Loops = prepend(s.Loops, a.Loop, func(l domain.Loop) bool { return l.ID == a.Loop.ID })
}

func (a UpdateLoop) apply(s *State) {
	for i := range s.Loops {
		if s.Loops[i].ID == a.Loop.ID {
			s.Loops[i] = a.Loop
			return
		}
	}
}

func (a RemoveLoop) apply(s *State) {
	s.Loops = slices.DeleteFunc(s.Loops, func(l domain.Loop) bool { return l.ID == a.ID })
}

func (a SetThreads) apply(s *State) { s.Threads = slices.Clone(a.Threads) }

func (a AddThread) apply(s *State) {
	s.Threads = prepend(s.Threads, a.Thread, func(t domain.Thread) bool { return t.ID == a.Thread.ID })
}

func (a RemoveThread) apply(s *State) {
	s.Threads = slices.DeleteFunc(s.Threads, func(t domain.Thread) bool { return t.ID == a.ID })
}

func (a SetEmotions) apply(s *State) { s.Emotions = slices.Clone(a.Emotions) }

func (a AddEmotion) apply(s *State) {
	s.Emotions = prepend(s.Emotions, a.Emotion, func(e domain.EmotionalState) bool { return e.ID == a.Emotion.ID })
}

func (a AddToast) apply(s *State) { s.Toasts = append(s.Toasts, a.Toast) }

func (a RemoveToast) apply(s *State) {
	s.Toasts = slices.DeleteFunc(s.Toasts, func(t domain.Toast) bool { return t.ID == a.ID })
}

func (SetStatus) name() string        { return "set_status" }
func (SetStatusError) name() string   { return "set_status_error" }
func (SetStatusLoading) name() string { return "set_status_loading" }
func (SetSession) name() string       { return "set_session" }
func (SetLoops) name() string         { return "set_loops" }
func (AddLoop) name() string          { return "add_loop" }
func (UpdateLoop) name() string       { return "update_loop" }
func (RemoveLoop) name() string       { return "remove_loop" }
func (SetThreads) name() string       { return "set_threads" }
func (AddThread) name() string        { return "add_thread" }
func (RemoveThread) name() string     { return "remove_thread" }
func (SetEmotions) name() string      { return "set_emotions" }
func (AddEmotion) name() string       { return "add_emotion" }
func (AddToast) name() string         { return "add_toast" }
func (RemoveToast) name() string      { return "remove_toast" }

// prepend puts item at the head and drops any older entry with the same id.
func prepend[T any](items []T, item T, same func(T) bool) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	for _, existing := range items {
		if same(existing) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

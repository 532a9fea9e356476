package application

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/bnema/humanos-cli/internal/domain"
)

// State is the client-side cache. Status is nil until the first successful
// fetch; Session is nil when no focus is active.
type State struct {
	Session       *domain.Focus
	Status        *domain.CognitiveStatus
	StatusLoading bool
	StatusErr     error
	Loops         []domain.Loop
	LoopQueue     domain.QueueType
	Threads       []domain.Thread
	Emotions      []domain.EmotionalState
	Toasts        []domain.Toast
}

func (s State) clone() State {
	out := s
	if s.Session != nil {
		session := *s.Session
		out.Session = &session
	}
	if s.Status != nil {
		status := s.Status.Clone()
		out.Status = &status
	}
	out.Loops = slices.Clone(s.Loops)
	out.Threads = slices.Clone(s.Threads)
	out.Emotions = slices.Clone(s.Emotions)
	out.Toasts = slices.Clone(s.Toasts)
	return out
}

// Store owns State. All writes go through Dispatch.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]chan struct{}
	nextSub int
	logger  *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		subs:   map[int]chan struct{}{},
		logger: componentLogger(logger, "store"),
	}
}

func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	action.apply(&s.state)
	subs := make([]chan struct{}, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	s.logger.Debug("dispatch", slog.String("action", action.name()))

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone()
}

// Subscribe returns a channel that receives a signal after every dispatch.
// Signals coalesce while the reader is behind.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

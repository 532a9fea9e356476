package application

import (
	"sync"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
	"github.com/google/uuid"
)

const DefaultToastTTL = 4 * time.Second

// Toasts creates short-lived messages in the store and removes each one when
// its ttl runs out.
type Toasts struct {
	store *Store
	clock ports.Clock
	ttl   time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewToasts(store *Store, clock ports.Clock, ttl time.Duration) *Toasts {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &Toasts{
		store:  store,
		clock:  clock,
		ttl:    ttl,
		timers: map[string]*time.Timer{},
	}
}

func (t *Toasts) Push(kind domain.ToastKind, text string) domain.Toast {
	toast := domain.Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		TTL:       t.ttl,
		CreatedAt: t.clock.Now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return toast
	}

	t.store.Dispatch(AddToast{Toast: toast})
	t.timers[toast.ID] = time.AfterFunc(toast.TTL, func() {
		t.Dismiss(toast.ID)
	})
	return toast
}

func (t *Toasts) Success(text string) domain.Toast { return t.Push(domain.ToastSuccess, text) }
func (t *Toasts) Error(text string) domain.Toast   { return t.Push(domain.ToastError, text) }
func (t *Toasts) Info(text string) domain.Toast    { return t.Push(domain.ToastInfo, text) }

func (t *Toasts) Dismiss(id string) {
	t.mu.Lock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	t.mu.Unlock()

	t.store.Dispatch(RemoveToast{ID: id})
}

// Close stops pending expiry timers. Toasts already in the store stay there.
func (t *Toasts) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
	"golang.org/x/sync/singleflight"
)

const DefaultPollInterval = 5 * time.Second

const statusFlightKey = "dashboard/status"

// StatusPoller keeps the store's CognitiveStatus fresh. At most one fetch is
// in flight; scheduled ticks that find one running are skipped.
type StatusPoller struct {
	source ports.StatusSource
	store  *Store
	logger *slog.Logger

	group    singleflight.Group
	inFlight atomic.Bool

	mu         sync.Mutex
	running    bool
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewStatusPoller(source ports.StatusSource, store *Store, logger *slog.Logger) *StatusPoller {
	return &StatusPoller{
		source: source,
		store:  store,
		logger: componentLogger(logger, "status_poller"),
	}
}

// Start fetches immediately and then every interval until Stop or ctx ends.
// Starting a running poller does nothing.
func (p *StatusPoller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.generation++
	gen := p.generation
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.running = true
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go p.loop(loopCtx, gen, interval, done)
}

// Stop cancels the schedule. Fetches still in flight complete, but their
// results are dropped. Stop is safe to call repeatedly.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.generation++
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *StatusPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Refresh fetches now, joining a fetch already in flight, and returns the
// fetch error. The store is updated the same way a scheduled tick updates it.
func (p *StatusPoller) Refresh(ctx context.Context) error {
	gen := p.currentGeneration()
	p.store.Dispatch(SetStatusLoading{Loading: true})
	_, err := p.fetch(ctx, gen)
	return err
}

func (p *StatusPoller) loop(ctx context.Context, gen uint64, interval time.Duration, done chan struct{}) {
	defer func() {
		p.mu.Lock()
		if p.running && p.generation == gen {
			// ctx ended without Stop.
			p.running = false
			p.generation++
			p.cancel()
			p.cancel = nil
			p.done = nil
		}
		p.mu.Unlock()
		close(done)
	}()

	p.tick(ctx, gen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx, gen)
		}
	}
}

func (p *StatusPoller) tick(ctx context.Context, gen uint64) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug("fetch in flight, skipping tick")
		return
	}

	p.store.Dispatch(SetStatusLoading{Loading: true})

	// The request outlives Stop so it can settle; its result is discarded.
	fetchCtx := context.WithoutCancel(ctx)
	go func() {
		defer p.inFlight.Store(false)
		_, _ = p.fetch(fetchCtx, gen)
	}()
}

func (p *StatusPoller) fetch(ctx context.Context, gen uint64) (domain.CognitiveStatus, error) {
	result, err, shared := p.group.Do(statusFlightKey, func() (any, error) {
		return p.source.FetchStatus(ctx)
	})

	if !p.accepts(gen) {
		p.logger.Debug("poller stopped, discarding status result")
		if !p.Running() {
			p.store.Dispatch(SetStatusLoading{Loading: false})
		}
		if err != nil {
			return domain.CognitiveStatus{}, fmt.Errorf("fetch status: %w", err)
		}
		return result.(domain.CognitiveStatus), nil
	}

	if err != nil {
		p.logger.Warn("fetch status failed", slog.Any("error", err), slog.Bool("shared", shared))
		p.store.Dispatch(SetStatusError{Err: err})
		return domain.CognitiveStatus{}, fmt.Errorf("fetch status: %w", err)
	}

	status := result.(domain.CognitiveStatus)
	p.store.Dispatch(SetStatus{Status: status})
	return status, nil
}

func (p *StatusPoller) currentGeneration() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

func (p *StatusPoller) accepts(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation == gen
}

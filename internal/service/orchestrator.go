package service

import (
	"context"
	"log"
	"sync"

	"github.com/outfitguide/web/internal/domain"
)

// Orchestrator owns the search session state and runs searches against a
// WeatherFetcher. Only the most recent search may settle the state: each
// search bumps a generation counter and cancels the one it supersedes.
type Orchestrator struct {
	fetcher WeatherFetcher

	mu         sync.Mutex
	state      domain.SessionState
	generation uint64
	cancel     context.CancelFunc
	listeners  []func(domain.SessionState)
}

// NewOrchestrator creates an idle orchestrator
func NewOrchestrator(fetcher WeatherFetcher) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		state:   domain.Idle(),
	}
}

// OnChange registers fn to receive every state transition.
// Listeners run while the orchestrator is locked and must not call back into it.
func (o *Orchestrator) OnChange(fn func(domain.SessionState)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, fn)
}

// State returns the current snapshot
func (o *Orchestrator) State() domain.SessionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Search moves to loading, fetches location and settles to success or
// error. It returns the state current once this search is done, which is
// a newer search's state if this one was superseded.
func (o *Orchestrator) Search(ctx context.Context, location string) domain.SessionState {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	gen := o.generation
	o.cancel = cancel
	o.setLocked(domain.Loading())
	o.mu.Unlock()

	resp, err := o.fetcher.FetchWeather(reqCtx, location)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		log.Printf("[search] discarding superseded result for %q", location)
		return o.state
	}
	o.cancel = nil

	if err != nil {
		o.setLocked(domain.Failed(ErrorMessage(err)))
	} else {
		o.setLocked(domain.Succeeded(resp))
	}
	return o.state
}

func (o *Orchestrator) setLocked(s domain.SessionState) {
	o.state = s
	for _, fn := range o.listeners {
		fn(s)
	}
}

package github

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"folio/internal/eventbus"
	"folio/internal/logic"
)

// Service answers ReposRequestedEvent on the bus with one load and a
// ReposLoadedEvent. Each load runs under its own context, cancelled by a
// ReposCancelledEvent for the same LoadID or by Close.
type Service struct {
	bus    eventbus.EventBus
	source logic.RepositoryLoader

	mu        sync.Mutex
	inflight  map[uint64]context.CancelFunc
	cancelled map[uint64]bool // cancels for loads not in flight, oldest first in pending
	pending   []uint64
	parent    context.Context
	stop      context.CancelFunc
	wg        sync.WaitGroup
	unsubs    []func()
}

// maxPendingCancels bounds the cancels remembered for loads not in flight.
// Cancels of already finished loads land there too and age out.
const maxPendingCancels = 32

// NewService creates the service and subscribes it to the bus.
func NewService(bus eventbus.EventBus, source logic.RepositoryLoader) *Service {
	parent, stop := context.WithCancel(context.Background())
	s := &Service{
		bus:       bus,
		source:    source,
		inflight:  make(map[uint64]context.CancelFunc),
		cancelled: make(map[uint64]bool),
		parent:    parent,
		stop:      stop,
	}

	s.unsubs = append(s.unsubs,
		bus.Subscribe(eventbus.EventReposRequested, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ReposRequestedEvent); ok {
				s.start(ev)
			}
		}),
		bus.Subscribe(eventbus.EventReposCancelled, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ReposCancelledEvent); ok {
				s.cancel(ev.LoadID)
			}
		}),
	)
	return s
}

func (s *Service) start(ev eventbus.ReposRequestedEvent) {
	s.mu.Lock()
	if s.cancelled[ev.LoadID] {
		delete(s.cancelled, ev.LoadID)
		s.mu.Unlock()
		log.Debug("repository load cancelled before start", "load", ev.LoadID)
		return
	}
	if s.parent.Err() != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.parent)
	s.inflight[ev.LoadID] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.finish(ev.LoadID)

		res := NewLoader(s.source, ev.Owner, ev.Limit).Load(ctx)
		if ctx.Err() != nil {
			log.Debug("repository load abandoned", "load", ev.LoadID, "owner", ev.Owner)
			return
		}
		s.bus.Publish(eventbus.ReposLoadedEvent{
			LoadID: ev.LoadID,
			Owner:  ev.Owner,
			Repos:  res.Collection(),
			Err:    res.Err,
		})
	}()
}

func (s *Service) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.inflight[id]; ok {
		cancel()
		delete(s.inflight, id)
		return
	}
	if s.cancelled[id] {
		return
	}
	s.cancelled[id] = true
	s.pending = append(s.pending, id)
	if len(s.pending) > maxPendingCancels {
		delete(s.cancelled, s.pending[0])
		s.pending = s.pending[1:]
	}
}

func (s *Service) finish(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.inflight[id]; ok {
		cancel()
		delete(s.inflight, id)
	}
}

// Close cancels every in-flight load, unsubscribes and waits for workers.
func (s *Service) Close() {
	for _, u := range s.unsubs {
		u()
	}
	s.stop()
	s.wg.Wait()
}

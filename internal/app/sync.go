// Package app provides the client-side stores that hold board state and
// orchestrate use cases against the tracker API through port interfaces.
// All mutations follow the same discipline: validate locally, write to the
// server, and on success reload the affected collection from the server.
// Local state never changes on an unconfirmed write.
package app

import (
	"context"
	"log/slog"
	"sync"
)

// Syncer is the write-then-reload policy object. Every store mutation flows
// through Mutate, which guarantees the ordering: the write must succeed
// before any reload runs, and refresh listeners fire only after both.
type Syncer struct {
	logger *slog.Logger

	mu        sync.Mutex
	listeners []func()
}

// NewSyncer creates a Syncer.
func NewSyncer(logger *slog.Logger) *Syncer {
	return &Syncer{logger: logger}
}

// OnRefresh registers a listener invoked after every successful mutation.
// The front end registers its re-render here. Safe for concurrent use.
func (s *Syncer) OnRefresh(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Mutate runs write and, only if it succeeds, reload. reload may be nil for
// mutations that update local state directly from the server response
// (project create appends the returned entity instead of refetching).
//
// A failed write is terminal: no reload runs, no listeners fire, and the
// caller's snapshot is untouched. A failed reload is surfaced too: the
// write landed but the local view is stale, and the caller decides whether
// to retry the read.
func (s *Syncer) Mutate(ctx context.Context, op string, write, reload func(context.Context) error) error {
	if err := write(ctx); err != nil {
		s.logger.ErrorContext(ctx, "mutation failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return err
	}

	if reload != nil {
		if err := reload(ctx); err != nil {
			s.logger.ErrorContext(ctx, "reload after mutation failed",
				slog.String("operation", op),
				slog.Any("error", err),
			)
			return err
		}
	}

	s.notify()
	return nil
}

// notify invokes all registered refresh listeners. The slice is copied under
// the lock so listeners run without holding it.
func (s *Syncer) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

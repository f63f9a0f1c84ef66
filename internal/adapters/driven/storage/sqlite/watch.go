package sqlite

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// tracker is the change-notification registry keyed per table.
// Writers report the tables they touched; listeners registered for
// any of those tables get a (coalesced) nudge to re-run their query.
type tracker struct {
	mu        sync.RWMutex
	listeners map[string]*listener
}

type listener struct {
	tables map[string]struct{}
	notify chan struct{}
}

func newTracker() *tracker {
	return &tracker{listeners: make(map[string]*listener)}
}

// subscribe registers a listener for the given tables. The returned
// channel holds at most one pending nudge; it is closed by
// unsubscribe.
func (t *tracker) subscribe(tables []string) (string, chan struct{}) {
	l := &listener{
		tables: make(map[string]struct{}, len(tables)),
		notify: make(chan struct{}, 1),
	}
	for _, name := range tables {
		l.tables[name] = struct{}{}
	}

	id := uuid.NewString()
	t.mu.Lock()
	t.listeners[id] = l
	t.mu.Unlock()
	return id, l.notify
}

// unsubscribe removes a listener. It is synchronous: when it returns,
// the tracker holds no reference to the listener and its channel is
// closed. Safe to call twice.
func (t *tracker) unsubscribe(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.listeners[id]; ok {
		delete(t.listeners, id)
		close(l.notify)
	}
}

// invalidate nudges every listener registered for any of the touched
// tables. Sends never block; a listener with a pending nudge simply
// keeps it.
func (t *tracker) invalidate(tables ...string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, l := range t.listeners {
		for _, name := range tables {
			if _, ok := l.tables[name]; !ok {
				continue
			}
			select {
			case l.notify <- struct{}{}:
			default:
			}
			break
		}
	}
}

// watch wires a query to the tracker: it emits the current result
// immediately, then re-runs the query after every write touching one
// of the given tables. Cancelling the subscription (or ctx)
// deregisters the listener synchronously.
func watch[T any](ctx context.Context, s *Store, tables []string, query func(context.Context) (T, error)) driven.Subscription[T] {
	id, notify := s.tracker.subscribe(tables)
	feed := driven.NewFeed[T](func() {
		s.tracker.unsubscribe(id)
	})

	// Initial result before any change can race ahead of it.
	v, err := query(ctx)
	feed.Publish(v, err)

	go func() {
		for {
			select {
			case _, ok := <-notify:
				if !ok {
					return
				}
				v, err := query(ctx)
				feed.Publish(v, err)
			case <-ctx.Done():
				feed.Cancel()
				return
			}
		}
	}()

	return feed
}

package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// watchHub re-runs registered live queries after each mutation.
// It is the in-memory stand-in for the SQLite change tracker.
type watchHub struct {
	mu   sync.Mutex
	subs map[string]func()
}

func newWatchHub() *watchHub {
	return &watchHub{subs: make(map[string]func())}
}

func (h *watchHub) add(refresh func()) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.subs[id] = refresh
	h.mu.Unlock()
	return id
}

func (h *watchHub) remove(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// broadcast re-runs every registered query. Callers must not hold the
// store's data lock; refreshers read through the public API.
func (h *watchHub) broadcast() {
	h.mu.Lock()
	refreshers := make([]func(), 0, len(h.subs))
	for _, f := range h.subs {
		refreshers = append(refreshers, f)
	}
	h.mu.Unlock()

	for _, f := range refreshers {
		f()
	}
}

// watchValue builds a subscription that emits the current query result
// immediately and re-emits whenever any of the hubs broadcasts.
func watchValue[T any](ctx context.Context, query func(context.Context) (T, error), hubs ...*watchHub) driven.Subscription[T] {
	ids := make([]string, len(hubs))
	feed := driven.NewFeed[T](func() {
		for i, h := range hubs {
			h.remove(ids[i])
		}
	})

	refresh := func() {
		v, err := query(ctx)
		feed.Publish(v, err)
	}
	for i, h := range hubs {
		ids[i] = h.add(refresh)
	}

	refresh()
	return feed
}

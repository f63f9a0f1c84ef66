package driven

import "sync"

// Result is one emission of a live query: the query's current value,
// or the error that prevented computing it. A failed read never
// delivers a success emission.
type Result[T any] struct {
	Value T
	Err   error
}

// Subscription is a handle on a live query result. Subscribing yields
// the current result immediately; a fresh result follows every write
// that touches data the query depends on.
type Subscription[T any] interface {
	// Updates carries the emissions. The channel is closed by Cancel.
	Updates() <-chan Result[T]

	// Cancel stops the subscription synchronously: after it returns no
	// further emissions are delivered and the store holds no reference
	// to the subscriber. Cancel is idempotent.
	Cancel()
}

// Feed is the store-side half of a Subscription. Storage adapters
// publish query results into it; consumers only see the Subscription
// interface. Pending undelivered results are replaced by newer ones,
// so a slow subscriber always observes the latest state.
type Feed[T any] struct {
	mu       sync.Mutex
	updates  chan Result[T]
	canceled bool
	onCancel func()
}

// NewFeed creates a feed. onCancel runs exactly once when the
// subscription is cancelled, before Cancel returns; adapters use it to
// deregister their change listeners.
func NewFeed[T any](onCancel func()) *Feed[T] {
	return &Feed[T]{
		updates:  make(chan Result[T], 1),
		onCancel: onCancel,
	}
}

// Updates implements Subscription.
func (f *Feed[T]) Updates() <-chan Result[T] { return f.updates }

// Cancel implements Subscription.
func (f *Feed[T]) Cancel() {
	f.mu.Lock()
	if f.canceled {
		f.mu.Unlock()
		return
	}
	f.canceled = true
	close(f.updates)
	f.mu.Unlock()

	if f.onCancel != nil {
		f.onCancel()
	}
}

// Publish delivers a result unless the feed has been cancelled.
// A result that was queued but not yet consumed is dropped in favour
// of the newer one; Publish never blocks.
func (f *Feed[T]) Publish(value T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.canceled {
		return
	}
	r := Result[T]{Value: value, Err: err}
	select {
	case f.updates <- r:
	default:
		select {
		case <-f.updates:
		default:
		}
		f.updates <- r
	}
}

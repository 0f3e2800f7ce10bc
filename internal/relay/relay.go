// Package relay streams an in-memory result set to a consumer through a
// bounded queue.
//
// A producer goroutine pushes items into a buffered channel of fixed
// capacity and a consumer goroutine drains it into the send callback. When
// the consumer falls behind the producer blocks, so at most capacity items
// are in flight regardless of how many rows were fetched. A failing send or
// a canceled context ends the relay; the producer notices on its next push
// and returns without error.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// State is the lifecycle stage of a Relay.
type State int32

const (
	// Materializing: the result set is being fetched.
	Materializing State = iota
	// Relaying: items are moving through the queue.
	Relaying
	// Closed is terminal.
	Closed
)

func (s State) String() string {
	switch s {
	case Materializing:
		return "materializing"
	case Relaying:
		return "relaying"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// ErrStopped reports that the consumer went away before the sequence was
// exhausted. It wraps the send or context error that stopped it.
var ErrStopped = errors.New("relay: consumer stopped")

// Relay moves one result set from a producer to a consumer. A Relay is
// single use.
type Relay[T any] struct {
	capacity int
	state    atomic.Int32
	pushed   atomic.Int64
	sent     atomic.Int64
}

// New returns a relay whose queue holds at most capacity items. Capacities
// below one are raised to one.
func New[T any](capacity int) *Relay[T] {
	return &Relay[T]{capacity: max(capacity, 1)}
}

// State reports the current lifecycle stage.
func (r *Relay[T]) State() State { return State(r.state.Load()) }

// Pushed is the number of items the producer has placed in the queue.
func (r *Relay[T]) Pushed() int { return int(r.pushed.Load()) }

// Sent is the number of items handed to send successfully.
func (r *Relay[T]) Sent() int { return int(r.sent.Load()) }

// Run fetches the result set and relays it to send. Fetch errors are
// returned unchanged and nothing is sent; if the consumer stops early the
// error wraps ErrStopped.
func (r *Relay[T]) Run(ctx context.Context, fetch func(context.Context) ([]T, error), send func(T) error) error {
	r.state.Store(int32(Materializing))
	items, err := fetch(ctx)
	if err != nil {
		r.state.Store(int32(Closed))
		return err
	}
	return r.Pipe(ctx, items, send)
}

// Pipe relays items to send in order.
func (r *Relay[T]) Pipe(ctx context.Context, items []T, send func(T) error) error {
	r.state.Store(int32(Relaying))
	defer r.state.Store(int32(Closed))

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan T, r.capacity)

	g.Go(func() error {
		defer close(queue)
		for _, item := range items {
			select {
			case queue <- item:
				r.pushed.Add(1)
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case item, ok := <-queue:
				if !ok {
					return nil
				}
				if err := send(item); err != nil {
					return fmt.Errorf("%w: %w", ErrStopped, err)
				}
				r.sent.Add(1)
			case <-gctx.Done():
				return fmt.Errorf("%w: %w", ErrStopped, context.Cause(gctx))
			}
		}
	})

	return g.Wait()
}

// Pipe relays items to send through a queue of the given capacity and
// returns how many were sent.
func Pipe[T any](ctx context.Context, items []T, capacity int, send func(T) error) (int, error) {
	r := New[T](capacity)
	err := r.Pipe(ctx, items, send)
	return r.Sent(), err
}

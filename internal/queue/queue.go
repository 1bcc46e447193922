// Package queue implements the FIFO backing the in-process engine's
// event queue: mutex-guarded ordered storage with blocking waits and
// predicate-based flushing.
package queue

import (
	"sync"
	"time"
)

// Queue is a FIFO of T with blocking consumption. The zero value is not
// usable; create queues with New.
//
// Queue is safe for concurrent use, although the engines built on it
// inherit the single-consumer model of the wrapped native library.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T

	// wake is a 1-buffered signal channel: producers post, blocked
	// consumers drain. A buffered single-slot channel coalesces bursts.
	wake chan struct{}

	// done unblocks waiters on Close.
	done     chan struct{}
	closed   bool
	closeOne sync.Once
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Push appends v to the back of the queue and wakes one waiter.
// Push on a closed queue is a no-op.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Poll removes and returns the front item without blocking.
// It reports false when the queue is empty.
func (q *Queue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	// Shift rather than re-slice so the backing array does not pin
	// consumed items.
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = zero
	q.items = q.items[:len(q.items)-1]
	return v, true
}

// Wait blocks until an item is available and removes it.
// It reports false only after Close.
func (q *Queue[T]) Wait() (T, bool) {
	for {
		if v, ok := q.Poll(); ok {
			return v, true
		}
		select {
		case <-q.wake:
		case <-q.done:
			// Drain whatever was pushed before the close.
			return q.Poll()
		}
	}
}

// WaitTimeout blocks up to d for an item. It reports false on timeout or
// after Close.
func (q *Queue[T]) WaitTimeout(d time.Duration) (T, bool) {
	if v, ok := q.Poll(); ok {
		return v, true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-q.wake:
			if v, ok := q.Poll(); ok {
				return v, true
			}
		case <-timer.C:
			return q.Poll()
		case <-q.done:
			return q.Poll()
		}
	}
}

// HasPending reports whether the queue holds at least one item, without
// consuming it.
func (q *Queue[T]) HasPending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) > 0
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Flush discards every pending item.
func (q *Queue[T]) Flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

// FlushFunc discards pending items for which drop returns true,
// preserving the order of the remainder.
func (q *Queue[T]) FlushFunc(drop func(T) bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	for _, v := range q.items {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	// Zero the tail so dropped items are not pinned.
	var zero T
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = zero
	}
	q.items = kept
}

// Close unblocks all waiters. Pending items remain pollable; further
// pushes are discarded. Close is idempotent.
func (q *Queue[T]) Close() {
	q.closeOne.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.done)
	})
}

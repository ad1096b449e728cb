// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue

import "code.hybscloud.com/atomix"

// SPSC is a single-producer single-consumer bounded FIFO queue.
//
// This is the degenerate fast path of the family: with one goroutine on
// each side, per-slot sequence numbers are unnecessary and the queue
// reduces to Lamport's ring buffer with cached index optimization. The
// producer caches the consumer's head, and vice versa, so the common case
// touches only one shared cache line per batch of operations instead of
// one per operation.
//
// Using more than one goroutine on either side is undefined behavior;
// use MPMC instead.
//
// Memory: n value slots, no per-slot sequence overhead.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // consumer reads from here
	_          pad
	cachedTail uint64 // consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // producer writes here
	_          pad
	cachedHead uint64 // producer's cached view of head
	_          pad
	buffer     []T
	capacity   uint64
	mask       uint64
	pow2       bool
}

// NewSPSC creates an SPSC queue with exactly the given capacity.
// Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("atomicqueue: capacity must be >= 2")
	}

	n := uint64(capacity)
	q := &SPSC[T]{
		buffer:   make([]T, n),
		capacity: n,
		pow2:     n&(n-1) == 0,
	}
	if q.pow2 {
		q.mask = n - 1
	}
	return q
}

func (q *SPSC[T]) idx(i uint64) uint64 {
	if q.pow2 {
		return i & q.mask
	}
	return i % q.capacity
}

// Enqueue adds an element to the queue (producer only, non-blocking).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead >= q.capacity {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead >= q.capacity {
			return ErrWouldBlock
		}
	}

	q.buffer[q.idx(tail)] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only, non-blocking).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[q.idx(head)]
	var zero T
	q.buffer[q.idx(head)] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Push adds an element, spinning until space is available (producer only).
func (q *SPSC[T]) Push(elem *T) {
	w := waiter{}
	for q.Enqueue(elem) != nil {
		w.pause()
	}
}

// Pop removes and returns an element, spinning until one is available
// (consumer only).
func (q *SPSC[T]) Pop() T {
	w := waiter{}
	for {
		elem, err := q.Dequeue()
		if err == nil {
			return elem
		}
		w.pause()
	}
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}

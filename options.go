// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue

// Options configures queue creation and algorithm selection.
type Options struct {
	// Producer/Consumer constraints (determines queue type)
	singleProducer bool
	singleConsumer bool

	// Capacity constraint: reject capacities that are not powers of two
	powerOfTwo bool

	// Capacity, taken exactly as given
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// SPSC queue (optimal for single producer/consumer)
//	q := atomicqueue.Build[Event](atomicqueue.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC queue (default, general purpose)
//	q := atomicqueue.Build[Request](atomicqueue.New(4096))
//
//	// Broadcast ring with the mask path statically guaranteed
//	q := atomicqueue.BuildBroadcast[Tick](atomicqueue.New(8192).PowerOfTwo().SingleProducer())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity is used exactly as given: power-of-two capacities select the
// single-cycle mask index path, any other capacity >= 2 selects the modulo
// path. Use PowerOfTwo to assert the mask path instead of silently taking
// the slower one.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("atomicqueue: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// PowerOfTwo declares that the capacity must be a power of two.
// Build panics if it is not. This is a construction-time assertion, not a
// rounding: the capacity is never changed.
func (b *Builder) PowerOfTwo() *Builder {
	b.opts.powerOfTwo = true
	return b
}

// SingleProducer declares that only one goroutine will enqueue.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

func (b *Builder) check() {
	if b.opts.powerOfTwo && !isPowerOfTwo(b.opts.capacity) {
		panic("atomicqueue: capacity must be a power of two")
	}
}

// Build creates a Queue[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	SingleProducer + SingleConsumer → SPSC (Lamport ring buffer)
//	Anything else                   → MPMC (Vyukov sequenced ring)
//
// For the broadcast ring, which has a reader-cursor interface instead of
// Dequeue, use BuildBroadcast.
func Build[T any](b *Builder) Queue[T] {
	b.check()
	if b.opts.singleProducer && b.opts.singleConsumer {
		return NewSPSC[T](b.opts.capacity)
	}
	return NewMPMC[T](b.opts.capacity)
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if builder has a single-producer or single-consumer constraint.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("atomicqueue: BuildMPMC requires no constraints")
	}
	b.check()
	return NewMPMC[T](b.opts.capacity)
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("atomicqueue: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	b.check()
	return NewSPSC[T](b.opts.capacity)
}

// BuildBroadcast creates a single-writer broadcast ring.
// Panics if builder is not configured with SingleProducer().
func BuildBroadcast[T any](b *Builder) *SPMC[T] {
	if !b.opts.singleProducer {
		panic("atomicqueue: BuildBroadcast requires SingleProducer()")
	}
	b.check()
	return NewSPMC[T](b.opts.capacity)
}

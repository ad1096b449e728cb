// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomicqueue provides bounded lock-free queues built on a
// cell-sequenced ring buffer.
//
// All variants share the same core: a fixed-capacity array of cells padded
// to at least a cache line each, each carrying a value and an atomic
// sequence number.
// Sequence transitions with acquire/release ordering publish values between
// threads; there are no locks and no shared size word. The variants differ
// only in the progress rules layered on top:
//
//   - MPMC: Vyukov bounded multi-producer multi-consumer FIFO queue
//   - SPMC: single-writer broadcast ring; every reader sees the whole
//     stream, slow readers get lapped
//   - SPSC: Lamport ring buffer, the degenerate single/single fast path
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := atomicqueue.NewMPMC[Event](1024)
//	b := atomicqueue.NewSPMC[Tick](4096)
//	p := atomicqueue.NewSPSC[*Request](1024)
//
// Builder API selects the algorithm from declared constraints:
//
//	q := atomicqueue.Build[Event](atomicqueue.New(1024))                                    // → MPMC
//	q := atomicqueue.Build[Event](atomicqueue.New(1024).SingleProducer().SingleConsumer())  // → SPSC
//	b := atomicqueue.BuildBroadcast[Tick](atomicqueue.New(4096).SingleProducer())           // → SPMC
//
// Capacity is taken exactly as given (minimum 2, never rounded). Powers of
// two map positions to slots with a mask; any other capacity pays a modulo
// per operation. PowerOfTwo() on the builder turns the mask path into a
// construction-time assertion.
//
// # Non-blocking and Blocking Forms
//
// Enqueue and Dequeue never wait and never call into the OS. They return
// [ErrWouldBlock] when the queue is full or empty:
//
//	v := 42
//	if err := q.Enqueue(&v); atomicqueue.IsWouldBlock(err) {
//	    // full — back off and retry
//	}
//
//	elem, err := q.Dequeue()
//	if atomicqueue.IsWouldBlock(err) {
//	    // empty
//	}
//
// Push and Pop never fail; they spin (CPU pause, then randomized scheduler
// yields) until they complete. On MPMC they claim a position
// unconditionally with a fetch-add ticket and wait for that slot to hand
// over; on SPSC they retry Enqueue/Dequeue. The trade-off: if the opposite
// side stalls, they spin indefinitely, and a producer parked inside MPMC's
// Push wedges exactly one slot — its consumer waits, all other slots
// progress. Callers that
// need cancellation or a timeout must drive the non-blocking forms in
// their own loop:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&v) != nil {
//	    if ctx.Err() != nil {
//	        return ctx.Err()
//	    }
//	    backoff.Wait()
//	}
//
// # Broadcast Ring
//
// SPMC is not a work queue: every [Reader] independently walks the whole
// stream. The writer never blocks and never fails; a reader that falls a
// full capacity behind loses the overwritten values and resumes from the
// value now held by the slot at its cursor, which is not necessarily the
// newest write. Lost values are counted in [Reader.Skipped]. Create
// readers before the writer starts (or from the writer goroutine):
//
//	b := atomicqueue.NewSPMC[Tick](8192)
//	r := b.NewReader()
//
//	go func() { // writer
//	    for t := range feed {
//	        b.Push(&t)
//	    }
//	}()
//
//	for { // reader
//	    t, err := r.Read()
//	    if err != nil {
//	        continue // nothing new yet
//	    }
//	    observe(t)
//	}
//
// # Memory Layout
//
// The head and tail cursors and the ring metadata occupy distinct cache
// lines. Cells are padded to a stride of at least one cache line, so
// adjacent sequence words never share a line; the slot array itself is not
// aligned to a cache-line boundary, and a cell's stride is not rounded to a
// whole number of lines. All index arithmetic runs on free-running 64-bit
// counters — wraparound at 2^64 is treated as unreachable (about 585 years
// at one operation per nanosecond).
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but cannot
// observe happens-before relationships established through atomic
// acquire-release orderings on separate variables, which is exactly how
// these queues protect their non-atomic slot data. The algorithms are
// correct, but concurrent tests on the sequenced queues report false
// positives under -race and are skipped via the RaceEnabled constant.
// SPMC readers can additionally observe a slot while the writer laps it;
// that race is real, bounded by design, and documented on [SPMC].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for CPU pause instructions, and
// [github.com/valyala/fastrand] for spin-loop yield jitter.
package atomicqueue

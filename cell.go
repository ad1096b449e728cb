// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue

import "code.hybscloud.com/atomix"

// cell is one storage slot plus its sequence counter.
//
// The sequence counter, not a cell-local lock, publishes visibility of the
// stored value: a producer's StoreRelease on seq pairs with a consumer's
// LoadAcquire, so data itself needs no atomicity. What a given seq value
// means is protocol-specific — the MPMC queue cycles each slot through
// generations {p, p+1, p+N}, while the broadcast ring stores the writer's
// index at the moment the slot was last written.
//
// constructed tracks whether data holds a live value. The protocols only
// ever construct into slots their sequence handoff has proven empty, so at
// steady state the flag is redundant; it exists so destroy stays idempotent
// and so the slot can be cleared safely regardless of protocol state.
type cell[T any] struct {
	seq         atomix.Uint64
	data        T
	constructed bool
	_           padShort // keep adjacent seq words on distinct cache lines
}

// construct copies v into the slot and marks it live.
func (c *cell[T]) construct(v *T) {
	c.data = *v
	c.constructed = true
}

// read returns the stored value by copy. The caller must have established
// through the sequence protocol that the slot is constructed. read does not
// touch seq.
func (c *cell[T]) read() T {
	return c.data
}

// destroy clears the stored value so the garbage collector can reclaim
// anything it references, and marks the slot empty. Idempotent: a second
// destroy on an unconstructed slot is a no-op.
func (c *cell[T]) destroy() {
	if !c.constructed {
		return
	}
	var zero T
	c.data = zero
	c.constructed = false
}

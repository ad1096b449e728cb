// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue

import (
	"runtime"

	"code.hybscloud.com/spin"
	"github.com/valyala/fastrand"
)

const (
	// spinBudget bounds the pure pause phase before a waiter starts
	// yielding to the scheduler.
	spinBudget = 64
	// yieldOneIn is the denominator of the randomized yield: past the
	// spin budget, roughly one pause in yieldOneIn gives up the P.
	yieldOneIn = 4
)

// waiter paces the spin loops of the blocking Push/Pop forms.
//
// It pauses the CPU for spinBudget iterations, then mixes in randomized
// runtime.Gosched calls. The jitter keeps ticket holders that were released
// by the same sequence store from reconverging on the next slot in lockstep.
// No kernel calls are made on any path.
type waiter struct {
	sw    spin.Wait
	spins uint32
}

func (w *waiter) pause() {
	if w.spins < spinBudget {
		w.spins++
		w.sw.Once()
		return
	}
	if fastrand.Uint32n(yieldOneIn) == 0 {
		runtime.Gosched()
	} else {
		w.sw.Once()
	}
}

// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue

import "testing"

// TestRingPow2 verifies the mask index path.
func TestRingPow2(t *testing.T) {
	r := newRing[int](8)
	if !r.pow2 || r.mask != 7 {
		t.Fatalf("pow2=%v mask=%d, want true/7", r.pow2, r.mask)
	}
	if r.at(10) != &r.slots[2] {
		t.Fatal("at(10) did not map to slot 2")
	}
	if r.at(7) != &r.slots[7] {
		t.Fatal("at(7) did not map to slot 7")
	}
}

// TestRingModulo verifies the arbitrary-capacity path.
func TestRingModulo(t *testing.T) {
	r := newRing[int](5)
	if r.pow2 {
		t.Fatal("capacity 5 took the pow2 path")
	}
	if r.at(7) != &r.slots[2] {
		t.Fatal("at(7) did not map to slot 2")
	}
	if r.at(5) != &r.slots[0] {
		t.Fatal("at(5) did not map to slot 0")
	}
}

// TestRingGenerations: a logical position and the same position one
// generation later map to the same slot.
func TestRingGenerations(t *testing.T) {
	for _, capacity := range []int{2, 5, 8, 1024} {
		r := newRing[int](capacity)
		for i := uint64(0); i < r.capacity; i++ {
			if r.at(i) != r.at(i+r.capacity) {
				t.Fatalf("cap %d: at(%d) != at(%d)", capacity, i, i+r.capacity)
			}
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{2, 4, 8, 1024} {
		if !isPowerOfTwo(n) {
			t.Fatalf("isPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []int{3, 5, 6, 7, 1000} {
		if isPowerOfTwo(n) {
			t.Fatalf("isPowerOfTwo(%d) = true", n)
		}
	}
}

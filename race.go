// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package atomicqueue

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests on the sequenced queues, which
// trigger false positives due to cross-variable memory ordering.
const RaceEnabled = true

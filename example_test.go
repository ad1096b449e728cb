// Copyright (c) 2026 the atomic-queue authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicqueue_test

import (
	"fmt"

	atomicqueue "github.com/Jiahao-Fang/atomic-queue"
)

// ExampleNewMPMC demonstrates the non-blocking FIFO operations.
func ExampleNewMPMC() {
	q := atomicqueue.NewMPMC[int](4)

	for i := 1; i <= 3; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	for range 3 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	if _, err := q.Dequeue(); atomicqueue.IsWouldBlock(err) {
		fmt.Println("empty")
	}

	// Output:
	// 10
	// 20
	// 30
	// empty
}

// ExampleMPMC_Push demonstrates the blocking ticket forms.
func ExampleMPMC_Push() {
	q := atomicqueue.NewMPMC[string](2)

	a, b := "first", "second"
	q.Push(&a)
	q.Push(&b)

	fmt.Println(q.Pop())
	fmt.Println(q.Pop())

	// Output:
	// first
	// second
}

// ExampleNewSPMC demonstrates the broadcast ring: two readers each observe
// the whole stream.
func ExampleNewSPMC() {
	b := atomicqueue.NewSPMC[int](8)

	r1 := b.NewReader()
	r2 := b.NewReader()

	for i := 1; i <= 3; i++ {
		b.Push(&i)
	}

	for range 3 {
		v, _ := r1.Read()
		fmt.Println("r1:", v)
	}
	for range 3 {
		v, _ := r2.Read()
		fmt.Println("r2:", v)
	}

	// Output:
	// r1: 1
	// r1: 2
	// r1: 3
	// r2: 1
	// r2: 2
	// r2: 3
}

// ExampleNewSPSC demonstrates the single-producer single-consumer fast path.
func ExampleNewSPSC() {
	q := atomicqueue.NewSPSC[int](8)

	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

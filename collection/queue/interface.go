/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package queue provides a first-in, first-out collection.
package queue

import "iter"

// IQueue specifies the behaviour of a first-in, first-out (FIFO) collection.
// It is inspired by the work of https://github.com/golang-collections/collections.
type IQueue[T any] interface {
	// Enqueue adds elements to the back of the queue.
	Enqueue(value ...T)
	// EnqueueSequence adds all the elements of a sequence to the back of the queue.
	EnqueueSequence(value iter.Seq[T])
	// Dequeue removes and returns the element at the front of the queue. It returns ok true if the queue was not empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. It returns ok true if the queue is not empty.
	Peek() (element T, ok bool)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Values drains the queue in order. The queue is empty once the sequence has been fully consumed.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
}

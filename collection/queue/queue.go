/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package queue

import (
	"iter"
	"slices"
)

// NewQueue returns a Queue which is not thread safe
func NewQueue[T any]() IQueue[T] {
	return &Queue[T]{}
}

// Queue is a singly linked FIFO.
type Queue[T any] struct {
	start, end *node[T]
	length     int
}

type node[T any] struct {
	value T
	next  *node[T]
}

func (s *Queue[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *Queue[T]) Clear() {
	s.start = nil
	s.end = nil
	s.length = 0
}

func (s *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s *Queue[T]) Len() int {
	return s.length
}

func (s *Queue[T]) Peek() (element T, ok bool) {
	if s.length == 0 {
		return
	}
	element = s.start.value
	ok = true
	return
}

func (s *Queue[T]) Dequeue() (element T, ok bool) {
	if s.length == 0 {
		return
	}
	n := s.start
	s.start = n.next
	if s.start == nil {
		s.end = nil
	}
	n.next = nil
	s.length--
	element = n.value
	ok = true
	return
}

func (s *Queue[T]) Enqueue(value ...T) {
	s.EnqueueSequence(slices.Values(value))
}

func (s *Queue[T]) EnqueueSequence(seq iter.Seq[T]) {
	for v := range seq {
		s.enqueue(v)
	}
}

func (s *Queue[T]) enqueue(value T) {
	n := &node[T]{value: value}
	if s.length == 0 {
		s.start = n
		s.end = n
	} else {
		s.end.next = n
		s.end = n
	}
	s.length++
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Partition groups elements into slices of n elements. The last group, flushed on completion, may hold fewer elements.
func Partition[T any](n int) Transducer[T, []T] {
	return func(next Reducer[[]T]) Reducer[T] {
		return &partitionStage[T]{batcher: batcher[T]{downstream: downstream[[]T]{next: next}}, n: n}
	}
}

// PartitionBy groups consecutive elements for which f returns the same value.
func PartitionBy[T any, K comparable](f func(T) K) Transducer[T, []T] {
	return PartitionByFunc(f, func(a, b K) bool { return a == b })
}

// PartitionByFunc groups consecutive elements for which f returns values deemed equal by equal.
func PartitionByFunc[T, K any](f func(T) K, equal func(a, b K) bool) Transducer[T, []T] {
	return func(next Reducer[[]T]) Reducer[T] {
		return &partitionByStage[T, K]{batcher: batcher[T]{downstream: downstream[[]T]{next: next}}, f: f, equal: equal}
	}
}

// batcher accumulates pending elements and forwards them as a group.
type batcher[T any] struct {
	downstream[[]T]
	buffer []T
	// the downstream reducer has signalled termination and must not be stepped again
	terminated bool
}

func (b *batcher[T]) flush(acc any) Step {
	batch := b.buffer
	b.buffer = nil
	result := b.next.Step(acc, batch)
	if result.IsReduced() {
		b.terminated = true
	}
	return result
}

func (b *batcher[T]) Complete(acc any) (any, error) {
	if len(b.buffer) > 0 && !b.terminated {
		result := EnsureUnreduced(b.flush(acc))
		if err := result.Err(); err != nil {
			return nil, err
		}
		acc = result.Value()
	}
	b.buffer = nil
	return b.next.Complete(acc)
}

type partitionStage[T any] struct {
	batcher[T]
	n int
}

func (s *partitionStage[T]) Step(acc any, input T) Step {
	if s.n <= 0 {
		return Failed(commonerrors.Newf(commonerrors.ErrInvalid, "partition size must be strictly positive [%d]", s.n))
	}
	if s.buffer == nil {
		s.buffer = make([]T, 0, s.n)
	}
	s.buffer = append(s.buffer, input)
	if len(s.buffer) < s.n {
		return Continue(acc)
	}
	return s.flush(acc)
}

type partitionByStage[T, K any] struct {
	batcher[T]
	f       func(T) K
	equal   func(a, b K) bool
	last    K
	started bool
}

func (s *partitionByStage[T, K]) Step(acc any, input T) Step {
	key := s.f(input)
	if !s.started || s.equal(s.last, key) {
		s.started = true
		s.last = key
		s.buffer = append(s.buffer, input)
		return Continue(acc)
	}
	s.last = key
	result := s.flush(acc)
	s.buffer = []T{input}
	return result
}

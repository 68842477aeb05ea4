/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Dedupe drops elements equal to the element immediately preceding them.
func Dedupe[T comparable]() Transducer[T, T] {
	return DedupeFunc(func(a, b T) bool { return a == b })
}

// DedupeFunc drops elements which equal, according to equal, the element immediately preceding them.
func DedupeFunc[T any](equal func(a, b T) bool) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &dedupeStage[T]{downstream: downstream[T]{next: next}, equal: equal}
	}
}

// Distinct drops elements which have already been seen at any point during the reduction.
func Distinct[T comparable]() Transducer[T, T] {
	return DistinctBy(func(input T) T { return input })
}

// DistinctBy drops elements whose key, as computed by key, has already been seen during the reduction.
func DistinctBy[T any, K comparable](key func(T) K) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &distinctStage[T, K]{
			downstream: downstream[T]{next: next},
			key:        key,
			seen:       mapset.NewThreadUnsafeSet[K](),
		}
	}
}

type dedupeStage[T any] struct {
	downstream[T]
	equal   func(a, b T) bool
	last    T
	hasLast bool
}

func (s *dedupeStage[T]) Step(acc any, input T) Step {
	if s.hasLast && s.equal(s.last, input) {
		return Continue(acc)
	}
	s.last = input
	s.hasLast = true
	return s.next.Step(acc, input)
}

type distinctStage[T any, K comparable] struct {
	downstream[T]
	key  func(T) K
	seen mapset.Set[K]
}

func (s *distinctStage[T, K]) Step(acc any, input T) Step {
	if !s.seen.Add(s.key(input)) {
		return Continue(acc)
	}
	return s.next.Step(acc, input)
}

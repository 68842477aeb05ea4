/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Take lets the first n elements through and terminates the reduction on the nth one.
func Take[T any](n int) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &takeStage[T]{downstream: downstream[T]{next: next}, n: n}
	}
}

// TakeWhile lets elements through as long as predicate holds and terminates the reduction on the first one which does not satisfy it.
func TakeWhile[T any](predicate collection.Predicate[T]) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &takeWhileStage[T]{downstream: downstream[T]{next: next}, predicate: predicate}
	}
}

// TakeNth lets through every nth element, starting with the first one.
func TakeNth[T any](n int) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &takeNthStage[T]{downstream: downstream[T]{next: next}, n: n, index: -1}
	}
}

type takeStage[T any] struct {
	downstream[T]
	n     int
	taken int
}

func (s *takeStage[T]) Step(acc any, input T) Step {
	if s.taken >= s.n {
		return Reduced(acc)
	}
	s.taken++
	result := s.next.Step(acc, input)
	if s.taken >= s.n {
		return EnsureReduced(result)
	}
	return result
}

type takeWhileStage[T any] struct {
	downstream[T]
	predicate collection.Predicate[T]
}

func (s *takeWhileStage[T]) Step(acc any, input T) Step {
	if !s.predicate(input) {
		return Reduced(acc)
	}
	return s.next.Step(acc, input)
}

type takeNthStage[T any] struct {
	downstream[T]
	n     int
	index int
}

func (s *takeNthStage[T]) Step(acc any, input T) Step {
	if s.n <= 0 {
		return Failed(commonerrors.Newf(commonerrors.ErrInvalid, "takeNth step must be strictly positive [%d]", s.n))
	}
	s.index++
	if s.index%s.n == 0 {
		return s.next.Step(acc, input)
	}
	return Continue(acc)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
)

// Drop skips the first n elements.
func Drop[T any](n int) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &dropStage[T]{downstream: downstream[T]{next: next}, n: n}
	}
}

// DropWhile skips elements as long as predicate holds. Every element from the first one not satisfying it is let through.
func DropWhile[T any](predicate collection.Predicate[T]) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &dropWhileStage[T]{downstream: downstream[T]{next: next}, predicate: predicate, dropping: true}
	}
}

type dropStage[T any] struct {
	downstream[T]
	n       int
	dropped int
}

func (s *dropStage[T]) Step(acc any, input T) Step {
	if s.dropped < s.n {
		s.dropped++
		return Continue(acc)
	}
	return s.next.Step(acc, input)
}

type dropWhileStage[T any] struct {
	downstream[T]
	predicate collection.Predicate[T]
	dropping  bool
}

func (s *dropWhileStage[T]) Step(acc any, input T) Step {
	if s.dropping && s.predicate(input) {
		return Continue(acc)
	}
	s.dropping = false
	return s.next.Step(acc, input)
}

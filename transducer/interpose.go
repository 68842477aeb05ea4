/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

// Interpose inserts separator between consecutive elements.
func Interpose[T any](separator T) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &interposeStage[T]{downstream: downstream[T]{next: next}, separator: separator}
	}
}

// Repeat forwards every element n times.
func Repeat[T any](n int) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &repeatStage[T]{downstream: downstream[T]{next: next}, n: n}
	}
}

type interposeStage[T any] struct {
	downstream[T]
	separator T
	started   bool
}

func (s *interposeStage[T]) Step(acc any, input T) Step {
	if !s.started {
		s.started = true
		return s.next.Step(acc, input)
	}
	result := s.next.Step(acc, s.separator)
	if result.IsReduced() {
		return result
	}
	return s.next.Step(result.Value(), input)
}

type repeatStage[T any] struct {
	downstream[T]
	n int
}

func (s *repeatStage[T]) Step(acc any, input T) Step {
	result := Continue(acc)
	for range s.n {
		result = s.next.Step(result.Value(), input)
		if result.IsReduced() {
			return result
		}
	}
	return result
}

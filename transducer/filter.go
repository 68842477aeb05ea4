/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/value"
)

// Filter only lets through elements satisfying predicate.
func Filter[T any](predicate collection.Predicate[T]) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &filterStage[T]{downstream: downstream[T]{next: next}, predicate: predicate}
	}
}

// Remove drops elements satisfying predicate.
func Remove[T any](predicate collection.Predicate[T]) Transducer[T, T] {
	return Filter(collection.OppositeFunc(predicate))
}

// Keep drops absent elements i.e. nil values and typed nil pointers, maps, slices, channels and functions.
func Keep[T any]() Transducer[T, T] {
	return Filter(func(input T) bool { return !value.IsNil(input) })
}

type filterStage[T any] struct {
	downstream[T]
	predicate collection.Predicate[T]
}

func (s *filterStage[T]) Step(acc any, input T) Step {
	if s.predicate(input) {
		return s.next.Step(acc, input)
	}
	return Continue(acc)
}

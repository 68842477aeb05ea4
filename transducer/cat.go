/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
)

// Cat flattens slices, forwarding their elements one by one.
func Cat[T any]() Transducer[[]T, T] {
	return func(next Reducer[T]) Reducer[[]T] {
		return &catStage[[]T, T]{downstream: downstream[T]{next: next}, toSource: FromSlice[T]}
	}
}

// CatSources flattens nested sources of any kind, forwarding their elements one by one.
func CatSources[T any]() Transducer[Source[T], T] {
	return func(next Reducer[T]) Reducer[Source[T]] {
		return &catStage[Source[T], T]{downstream: downstream[T]{next: next}, toSource: func(s Source[T]) Source[T] { return s }}
	}
}

// Mapcat maps every element to a slice using f and flattens the result.
func Mapcat[In, Out any](f collection.MapFunc[In, []Out]) Transducer[In, Out] {
	return Compose2(Map(f), Cat[Out]())
}

type catStage[In, T any] struct {
	downstream[T]
	toSource func(In) Source[T]
}

// Step reduces the nested source into the downstream reducer. Termination of the nested reduction is passed on
// so that the outer reduction stops as well.
func (s *catStage[In, T]) Step(acc any, input In) Step {
	return drive(s.toSource(input), s.next.Step, acc)
}

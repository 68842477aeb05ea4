/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
)

// Map transforms every element using f.
func Map[In, Out any](f collection.MapFunc[In, Out]) Transducer[In, Out] {
	return func(next Reducer[Out]) Reducer[In] {
		return &mapStage[In, Out]{downstream: downstream[Out]{next: next}, f: f}
	}
}

// MapWithError transforms every element using f. The reduction fails with the error returned by f, unmodified.
func MapWithError[In, Out any](f collection.MapWithErrorFunc[In, Out]) Transducer[In, Out] {
	return func(next Reducer[Out]) Reducer[In] {
		return &mapWithErrorStage[In, Out]{downstream: downstream[Out]{next: next}, f: f}
	}
}

type mapStage[In, Out any] struct {
	downstream[Out]
	f collection.MapFunc[In, Out]
}

func (s *mapStage[In, Out]) Step(acc any, input In) Step {
	return s.next.Step(acc, s.f(input))
}

type mapWithErrorStage[In, Out any] struct {
	downstream[Out]
	f collection.MapWithErrorFunc[In, Out]
}

func (s *mapWithErrorStage[In, Out]) Step(acc any, input In) Step {
	output, err := s.f(input)
	if err != nil {
		return Failed(err)
	}
	return s.next.Step(acc, output)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Reducer defines a reducing function over elements of type T. Accumulators are opaque to stages and only
// interpreted by the terminal reducer (the sink).
type Reducer[T any] interface {
	// Init returns a fresh accumulator.
	Init() (any, error)
	// Step folds input into acc.
	Step(acc any, input T) Step
	// Complete finalises the accumulator once the reduction has ended, whether naturally or early.
	// It only ever receives unwrapped accumulators.
	Complete(acc any) (any, error)
}

// Transducer transforms a reducer of Out elements into a reducer of In elements.
type Transducer[In, Out any] func(Reducer[Out]) Reducer[In]

// InitFunc defines a function providing an initial accumulator.
type InitFunc func() (any, error)

// StepFunc defines a function folding one element into an accumulator.
type StepFunc[T any] func(acc any, input T) Step

// CompleteFunc defines a function finalising an accumulator.
type CompleteFunc func(acc any) (any, error)

// NewReducer builds a reducer from its functions. init and complete are optional: without init, the reducer
// can only be driven with an explicit initial value; without complete, the accumulator is returned unchanged.
func NewReducer[T any](init InitFunc, step StepFunc[T], complete CompleteFunc) Reducer[T] {
	return &reducer[T]{init: init, step: step, complete: complete}
}

// Completing builds a reducer out of a step function only.
func Completing[T any](step StepFunc[T]) Reducer[T] {
	return NewReducer[T](nil, step, nil)
}

// Folding adapts a typed fold function into a reducer. The resulting reducer has no Init and its step fails
// if it is given an accumulator which is not of type A.
func Folding[T, A any](f collection.ReduceFunc[T, A]) Reducer[T] {
	return Completing(func(acc any, input T) Step {
		typed, ok := acc.(A)
		if !ok && acc != nil {
			return Failed(unexpectedAccumulator[A](acc))
		}
		return Continue(f(typed, input))
	})
}

type reducer[T any] struct {
	init     InitFunc
	step     StepFunc[T]
	complete CompleteFunc
}

func (r *reducer[T]) Init() (any, error) {
	if r.init == nil {
		return nil, commonerrors.New(ErrMissingInitialValue, "reducer does not define any initialisation")
	}
	return r.init()
}

func (r *reducer[T]) Step(acc any, input T) Step {
	if r.step == nil {
		return Failed(commonerrors.UndefinedParameter("step function"))
	}
	return r.step(acc, input)
}

func (r *reducer[T]) Complete(acc any) (any, error) {
	if r.complete == nil {
		return acc, nil
	}
	return r.complete(acc)
}

// downstream is embedded by stages which delegate initialisation and completion to the reducer they wrap.
type downstream[T any] struct {
	next Reducer[T]
}

func (d *downstream[T]) Init() (any, error) {
	return d.next.Init()
}

func (d *downstream[T]) Complete(acc any) (any, error) {
	return d.next.Complete(acc)
}

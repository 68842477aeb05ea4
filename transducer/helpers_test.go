/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-transducers/commonerrors"
)

func isEven(i int) bool { return i%2 == 0 }

func isOdd(i int) bool { return i%2 != 0 }

func inc(i int) int { return i + 1 }

// countingIterator pulls from values and counts how many elements were actually read.
type countingIterator[T any] struct {
	values []T
	pulled *atomic.Int64
}

func newCountingIterator[T any](values ...T) *countingIterator[T] {
	return &countingIterator[T]{values: values, pulled: atomic.NewInt64(0)}
}

func (c *countingIterator[T]) Next() (v T, ok bool) {
	i := int(c.pulled.Load())
	if i >= len(c.values) {
		return
	}
	c.pulled.Inc()
	return c.values[i], true
}

// naturals is an infinite iterator over 0, 1, 2, ...
type naturals struct {
	pulled *atomic.Int64
}

func newNaturals() *naturals {
	return &naturals{pulled: atomic.NewInt64(0)}
}

func (n *naturals) Next() (int, bool) {
	return int(n.pulled.Inc() - 1), true
}

// failingIterator yields its values and then reports an error.
type failingIterator struct {
	values []int
	index  int
}

var errBrokenSource = commonerrors.New(commonerrors.ErrUnexpected, "broken source")

func (f *failingIterator) Next() (int, bool) {
	if f.index >= len(f.values) {
		return 0, false
	}
	f.index++
	return f.values[f.index-1], true
}

func (f *failingIterator) Err() error {
	if f.index >= len(f.values) {
		return errBrokenSource
	}
	return nil
}

// recordingReducer is a custom sink recording its lifecycle.
type recordingReducer struct {
	inits     int
	completes int
	completed []any
}

func (r *recordingReducer) Init() (any, error) {
	r.inits++
	return []any{}, nil
}

func (r *recordingReducer) Step(acc any, input any) Step {
	return Continue(append(acc.([]any), input))
}

func (r *recordingReducer) Complete(acc any) (any, error) {
	r.completes++
	r.completed = acc.([]any)
	return len(r.completed), nil
}

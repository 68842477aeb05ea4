/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"
	"slices"
)

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReduceSequence(slices.Values(s), accumulator, f)
}

// ReduceSequence folds over a sequence using f, starting with accumulator.
func ReduceSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	for e := range s {
		result = f(result, e)
	}
	return result
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"

	"github.com/ARM-software/golang-transducers/field"
)

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Range returns a slice of integers similar to Python's built-in range().
// https://docs.python.org/2/library/functions.html#range
//
//	Note: The stop value is always exclusive.
func Range(start, stop int, step *int) (result []int) {
	it, length := rangeSequence(start, stop, step)
	result = make([]int, 0, length)
	for v := range it {
		result = append(result, v)
	}
	return result
}

// RangeSequence returns an iterator over a range
func RangeSequence(start, stop int, step *int) iter.Seq[int] {
	it, _ := rangeSequence(start, stop, step)
	return it
}

// IterateSequence returns the infinite sequence seed, f(seed), f(f(seed)), ...
func IterateSequence[T any](seed T, f MapFunc[T, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

func rangeSequence(start, stop int, step *int) (it iter.Seq[int], length int) {
	s := field.OptionalInt(step, 1)
	length = 0
	if s == 0 {
		it = func(yield func(int) bool) {}
		return
	}
	if (s > 0 && start < stop) || (s < 0 && start > stop) {
		length = (stop - start + s - sign(s)) / s
	}
	it = func(yield func(int) bool) {
		for i, v := 0, start; i < length; i, v = i+1, v+s {
			if !yield(v) {
				return
			}
		}
	}
	return
}

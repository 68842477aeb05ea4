/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"
	"slices"
)

//
// Mapping utilities
//

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// MapWithErrorFunc defines a mapping function that may return an error.
type MapWithErrorFunc[T1, T2 any] func(T1) (T2, error)

// IdentityMapFunc returns a mapping function that returns its input unchanged.
func IdentityMapFunc[T any]() MapFunc[T, T] {
	return func(i T) T { return i }
}

// MapSequence maps each element of s using f and returns a sequence of mapped values.
func MapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Map applies f to each element of s and returns a slice with the results.
func Map[T1 any, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	result := make([]T2, 0, len(s))
	return slices.AppendSeq(result, MapSequence(slices.Values(s), f))
}

// MapWithError applies f to each element of s where f may return an error.
// If an error occurs, processing stops and the error is returned.
func MapWithError[T1 any, T2 any](s []T1, f MapWithErrorFunc[T1, T2]) (result []T2, err error) {
	result = make([]T2, len(s))
	for i := range s {
		var subErr error
		result[i], subErr = f(s[i])
		if subErr != nil {
			result = nil
			err = subErr
			return
		}
	}
	return
}

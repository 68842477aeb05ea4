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
// Predicate & filter types
//

// FilterFunc defines a function that evaluates a value and returns true
// when the value satisfies the condition.
type FilterFunc[E any] func(E) bool

// Predicate is an alias for FilterFunc to express boolean tests.
type Predicate[E any] = FilterFunc[E]

// Filter returns a new slice containing elements from s for which f returns true.
func Filter[S ~[]E, E any](s S, f FilterFunc[E]) S {
	result := make(S, 0, len(s))
	return slices.AppendSeq(result, FilterSequence(slices.Values(s), f))
}

// FilterSequence returns a sequence that yields only elements for which f returns true.
func FilterSequence[E any](s iter.Seq[E], f Predicate[E]) (result iter.Seq[E]) {
	return func(yield func(E) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

// OppositeFunc returns a predicate that negates the result of f.
func OppositeFunc[E any](f FilterFunc[E]) FilterFunc[E] { return func(e E) bool { return !f(e) } }

// Reject returns elements for which f returns false (the inverse of Filter).
// This returns a new slice rather than modifying the input.
func Reject[S ~[]E, E any](s S, f FilterFunc[E]) S {
	return Filter(s, OppositeFunc[E](f))
}

// RejectSequence returns a sequence that yields elements for which f returns false.
func RejectSequence[E any](s iter.Seq[E], f FilterFunc[E]) iter.Seq[E] {
	return FilterSequence(s, OppositeFunc[E](f))
}

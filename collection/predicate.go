/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides various utilities working on slices or sequences
package collection

import (
	"iter"
	"slices"
)

// AnyFunc returns true if at least one element in s satisfies f.
func AnyFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return slices.ContainsFunc(s, f)
}

// AllFunc returns true if f returns true for every element in s.
func AllFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return AllTrueSequence(slices.Values(s), f)
}

// AllTrueSequence returns true if f returns true for every element in the sequence.
func AllTrueSequence[E any](s iter.Seq[E], f Predicate[E]) bool {
	for v := range s {
		if !f(v) {
			return false
		}
	}
	return true
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

// Identity returns the transducer which leaves reducers unchanged.
func Identity[T any]() Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] { return next }
}

// Compose chains transducers from right to left: Compose(f, g, h) applied to a reducer r gives f(g(h(r))), which means
// elements go through f first, then g, then h. Without any transducer, it returns the identity.
func Compose[T any](xfs ...Transducer[T, T]) Transducer[T, T] {
	if len(xfs) == 0 {
		return Identity[T]()
	}
	chain := make([]Transducer[T, T], len(xfs))
	copy(chain, xfs)
	return func(next Reducer[T]) Reducer[T] {
		r := next
		for i := len(chain) - 1; i >= 0; i-- {
			r = chain[i](r)
		}
		return r
	}
}

// Compose2 chains two transducers which may change the element type.
func Compose2[A, B, C any](f Transducer[A, B], g Transducer[B, C]) Transducer[A, C] {
	return func(next Reducer[C]) Reducer[A] {
		return f(g(next))
	}
}

// Compose3 chains three transducers which may change the element type.
func Compose3[A, B, C, D any](f Transducer[A, B], g Transducer[B, C], h Transducer[C, D]) Transducer[A, D] {
	return Compose2(f, Compose2(g, h))
}

// Compose4 chains four transducers which may change the element type.
func Compose4[A, B, C, D, E any](f Transducer[A, B], g Transducer[B, C], h Transducer[C, D], i Transducer[D, E]) Transducer[A, E] {
	return Compose2(f, Compose3(g, h, i))
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package eager applies a single transducer stage directly to a collection and returns a collection of the same kind.
package eager

import (
	"cmp"

	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/transducer"
)

// Map returns the elements of s transformed by f. It does not go through the reduction machinery.
func Map[In, Out any](s []In, f collection.MapFunc[In, Out]) []Out {
	return collection.Map(s, f)
}

// Filter returns the elements of s satisfying predicate. It does not go through the reduction machinery.
func Filter[S ~[]T, T any](s S, predicate collection.Predicate[T]) S {
	return collection.Filter(s, predicate)
}

// Remove returns the elements of s which do not satisfy predicate.
func Remove[S ~[]T, T any](s S, predicate collection.Predicate[T]) S {
	return collection.Reject(s, predicate)
}

// Keep returns the elements of s which are not nil.
func Keep[T any](s []T) []T {
	return mustCollect(s, transducer.Keep[T]())
}

// Dedupe returns s without consecutive duplicates.
func Dedupe[T comparable](s []T) []T {
	return mustCollect(s, transducer.Dedupe[T]())
}

// Distinct returns the first occurrence of every element of s.
func Distinct[T comparable](s []T) []T {
	return mustCollect(s, transducer.Distinct[T]())
}

// Take returns the first n elements of s.
func Take[T any](s []T, n int) []T {
	return mustCollect(s, transducer.Take[T](n))
}

// TakeWhile returns the leading elements of s satisfying predicate.
func TakeWhile[T any](s []T, predicate collection.Predicate[T]) []T {
	return mustCollect(s, transducer.TakeWhile(predicate))
}

// Drop returns s without its first n elements.
func Drop[T any](s []T, n int) []T {
	return mustCollect(s, transducer.Drop[T](n))
}

// DropWhile returns s without its leading elements satisfying predicate.
func DropWhile[T any](s []T, predicate collection.Predicate[T]) []T {
	return mustCollect(s, transducer.DropWhile(predicate))
}

// TakeNth returns every nth element of s, starting with the first one.
func TakeNth[T any](s []T, n int) ([]T, error) {
	return transducer.ToSlice(transducer.FromSlice(s), transducer.TakeNth[T](n))
}

// Partition splits s into groups of n elements.
func Partition[T any](s []T, n int) ([][]T, error) {
	return transducer.ToSlice(transducer.FromSlice(s), transducer.Partition[T](n))
}

// PartitionBy splits s into groups of consecutive elements for which f returns the same value.
func PartitionBy[T any, K comparable](s []T, f func(T) K) [][]T {
	return mustCollect(s, transducer.PartitionBy(f))
}

// Interpose returns the elements of s separated by separator.
func Interpose[T any](s []T, separator T) []T {
	return mustCollect(s, transducer.Interpose(separator))
}

// Repeat returns every element of s repeated n times.
func Repeat[T any](s []T, n int) []T {
	return mustCollect(s, transducer.Repeat[T](n))
}

// Cat flattens s.
func Cat[T any](s [][]T) []T {
	return mustCollect(s, transducer.Cat[T]())
}

// Mapcat maps every element of s to a slice and flattens the result.
func Mapcat[In, Out any](s []In, f collection.MapFunc[In, []Out]) []Out {
	return mustCollect(s, transducer.Mapcat(f))
}

// Zip returns the rows made of the elements found at the same position in each slice of s.
func Zip[T any](s [][]T) [][]T {
	return mustCollect(s, transducer.Zip[T]())
}

// FilterMap returns the entries of m satisfying predicate.
func FilterMap[K cmp.Ordered, V any](m map[K]V, predicate collection.Predicate[transducer.Pair[K, V]]) map[K]V {
	result, err := transducer.ToMap(transducer.FromMap(m), transducer.Filter(predicate))
	if err != nil {
		panic(err)
	}
	return result
}

// MapEntries returns the entries of m transformed by f.
func MapEntries[K1 cmp.Ordered, K2 comparable, V1, V2 any](m map[K1]V1, f collection.MapFunc[transducer.Pair[K1, V1], transducer.Pair[K2, V2]]) map[K2]V2 {
	result, err := transducer.ToMap(transducer.FromMap(m), transducer.Map(f))
	if err != nil {
		panic(err)
	}
	return result
}

// mustCollect runs stages which cannot fail over slices: an error would denote a defect of the stage itself.
func mustCollect[In, Out any](s []In, xf transducer.Transducer[In, Out]) []Out {
	result, err := transducer.ToSlice(transducer.FromSlice(s), xf)
	if err != nil {
		panic(err)
	}
	return result
}

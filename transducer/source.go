/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Kind describes how a source is accessed during a reduction.
type Kind uint8

const (
	// KindUnknown is the kind of the zero Source, which cannot be reduced.
	KindUnknown Kind = iota
	// KindIndexed sources have a known length and are accessed by position.
	KindIndexed
	// KindKeyed sources are mappings whose entries are enumerated as Pair values in a stable order.
	KindKeyed
	// KindPull sources are pulled from until they report completion. Their length may be infinite.
	KindPull
)

func (k Kind) String() string {
	switch k {
	case KindIndexed:
		return "indexed"
	case KindKeyed:
		return "keyed"
	case KindPull:
		return "pull"
	default:
		return "unknown"
	}
}

// Iterator is a pull-based sequence. Next returns false once the sequence is exhausted.
// If an iterator also defines an `Err() error` method, reductions report the error it returns after exhaustion.
type Iterator[T any] interface {
	Next() (T, bool)
}

// IteratorFunc adapts a function into an Iterator.
type IteratorFunc[T any] func() (T, bool)

func (f IteratorFunc[T]) Next() (T, bool) { return f() }

type errReporter interface {
	Err() error
}

// Pair is a key/value entry of a keyed source.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", p.Key, p.Value)
}

// Source is a reducible value. It is one of three kinds: indexed, keyed or pull-based.
// Sources are opened afresh for every reduction.
type Source[T any] struct {
	kind Kind
	size int
	open func() *cursor[T]
}

// cursor gives access to the elements of an opened source.
type cursor[T any] struct {
	// indexed and keyed sources
	length int
	at     func(int) T
	// pull sources
	next func() (T, bool)
	err  func() error
	stop func()
}

func (c *cursor[T]) close() {
	if c.stop != nil {
		c.stop()
	}
}

// Kind returns the kind of the source.
func (s Source[T]) Kind() Kind {
	return s.kind
}

// Len returns the number of elements of indexed and keyed sources. ok is false for pull sources.
func (s Source[T]) Len() (length int, ok bool) {
	if s.kind == KindIndexed || s.kind == KindKeyed {
		return s.size, true
	}
	return
}

// Any returns a view of the source with untyped elements.
func (s Source[T]) Any() Source[any] {
	if s.open == nil {
		return Source[any]{}
	}
	return Source[any]{
		kind: s.kind,
		size: s.size,
		open: func() *cursor[any] {
			c := s.open()
			out := &cursor[any]{length: c.length, err: c.err, stop: c.stop}
			if c.at != nil {
				out.at = func(i int) any { return c.at(i) }
			}
			if c.next != nil {
				out.next = func() (any, bool) { return c.next() }
			}
			return out
		},
	}
}

// FromSlice returns an indexed source over s.
func FromSlice[T any](s []T) Source[T] {
	return Source[T]{
		kind: KindIndexed,
		size: len(s),
		open: func() *cursor[T] {
			return &cursor[T]{length: len(s), at: func(i int) T { return s[i] }}
		},
	}
}

// FromValues returns an indexed source over the values given.
func FromValues[T any](values ...T) Source[T] {
	return FromSlice(values)
}

// FromMap returns a keyed source over m. Entries are enumerated in increasing key order.
func FromMap[K cmp.Ordered, V any](m map[K]V) Source[Pair[K, V]] {
	return FromMapFunc(m, cmp.Compare[K])
}

// FromMapFunc returns a keyed source over m. Entries are enumerated in the order defined by compare.
func FromMapFunc[K comparable, V any](m map[K]V, compare func(a, b K) int) Source[Pair[K, V]] {
	return Source[Pair[K, V]]{
		kind: KindKeyed,
		size: len(m),
		open: func() *cursor[Pair[K, V]] {
			keys := slices.SortedStableFunc(maps.Keys(m), compare)
			return &cursor[Pair[K, V]]{
				length: len(keys),
				at: func(i int) Pair[K, V] {
					return Pair[K, V]{Key: keys[i], Value: m[keys[i]]}
				},
			}
		},
	}
}

// FromIterator returns a pull source over it. The iterator is shared by every reduction of the source.
func FromIterator[T any](it Iterator[T]) Source[T] {
	if it == nil {
		return Source[T]{}
	}
	return Source[T]{
		kind: KindPull,
		size: -1,
		open: func() *cursor[T] {
			c := &cursor[T]{next: it.Next}
			if reporter, ok := it.(errReporter); ok {
				c.err = reporter.Err
			}
			return c
		},
	}
}

// FromSequence returns a pull source over seq. Each reduction pulls from a new iteration of seq which is
// stopped as soon as the reduction ends, so sequences holding resources get released.
func FromSequence[T any](seq iter.Seq[T]) Source[T] {
	if seq == nil {
		return Source[T]{}
	}
	return Source[T]{
		kind: KindPull,
		size: -1,
		open: func() *cursor[T] {
			next, stop := iter.Pull(seq)
			return &cursor[T]{next: next, stop: stop}
		},
	}
}

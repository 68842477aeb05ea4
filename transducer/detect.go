/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"iter"

	"github.com/ARM-software/golang-transducers/reflection"
)

// AnySourcer is implemented by values which can present themselves as an untyped source, such as Source.
type AnySourcer interface {
	Any() Source[any]
}

// SourceOf resolves the kind of a dynamic value once and returns the corresponding source:
//   - slices and arrays are indexed sources;
//   - maps are keyed sources of Pair[any, any] entries, enumerated in a stable key order;
//   - values with a `Next() (T, bool)` method and range-over-func sequences are pull sources.
//
// Anything else, strings and nil pointers or functions included, is rejected with ErrUnsupportedSourceKind.
// Nil slices and maps are empty sources.
func SourceOf(v any) (Source[any], error) {
	if reflection.IsNilReference(v) {
		return Source[any]{}, unsupportedSource(v)
	}
	switch typed := v.(type) {
	case string:
		return Source[any]{}, unsupportedSource(v)
	case AnySourcer:
		return typed.Any(), nil
	case []any:
		return FromSlice(typed), nil
	case Iterator[any]:
		return FromIterator(typed), nil
	case iter.Seq[any]:
		return FromSequence(typed), nil
	case func(func(any) bool):
		return FromSequence(iter.Seq[any](typed)), nil
	}
	if length, at, ok := reflection.Indexer(v); ok {
		return Source[any]{
			kind: KindIndexed,
			size: length,
			open: func() *cursor[any] { return &cursor[any]{length: length, at: at} },
		}, nil
	}
	if reflection.IsKeyed(v) {
		length, _ := reflection.Len(v)
		return Source[any]{
			kind: KindKeyed,
			size: length,
			open: func() *cursor[any] {
				keys, _ := reflection.SortedKeys(v)
				return &cursor[any]{
					length: len(keys),
					at: func(i int) any {
						value, _ := reflection.MapIndex(v, keys[i])
						return Pair[any, any]{Key: keys[i], Value: value}
					},
				}
			},
		}, nil
	}
	if reflection.IsPullable(v) {
		next, _ := reflection.Puller(v)
		report, _ := reflection.ErrorReporter(v)
		return Source[any]{
			kind: KindPull,
			size: -1,
			open: func() *cursor[any] { return &cursor[any]{next: next, err: report} },
		}, nil
	}
	if seq, ok := reflection.Sequence(v); ok {
		return FromSequence(seq), nil
	}
	return Source[any]{}, unsupportedSource(v)
}

// KindOf returns the kind of source v would be reduced as, or KindUnknown if it cannot be reduced.
func KindOf(v any) Kind {
	src, err := SourceOf(v)
	if err != nil {
		return KindUnknown
	}
	return src.Kind()
}

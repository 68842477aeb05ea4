/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/reflection"
	"github.com/ARM-software/golang-transducers/value"
)

// SinkKind describes how a sink accumulates elements.
type SinkKind uint8

const (
	SinkUnknown SinkKind = iota
	// SinkIndexed appends elements to a slice.
	SinkIndexed
	// SinkKeyed merges key/value entries into a map.
	SinkKeyed
	// SinkCustom is a reducer supplied by the caller.
	SinkCustom
)

func (k SinkKind) String() string {
	switch k {
	case SinkIndexed:
		return "indexed"
	case SinkKeyed:
		return "keyed"
	case SinkCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// SinkProvider is implemented by values which know how to build the reducer accumulating into them.
type SinkProvider interface {
	Sink() Reducer[any]
}

// Entry is implemented by key/value elements which can be merged into keyed sinks, such as Pair.
type Entry interface {
	Entry() (key any, value any)
}

// Entry returns the key and value of the pair.
func (p Pair[K, V]) Entry() (any, any) {
	return p.Key, p.Value
}

// SliceSink returns a reducer appending elements to a []T accumulator.
func SliceSink[T any]() Reducer[T] {
	return NewReducer(
		func() (any, error) { return []T{}, nil },
		func(acc any, input T) Step {
			s, ok := acc.([]T)
			if !ok && acc != nil {
				return Failed(unexpectedAccumulator[[]T](acc))
			}
			return Continue(append(s, input))
		},
		nil,
	)
}

// MapSink returns a reducer storing pairs into a map[K]V accumulator.
func MapSink[K comparable, V any]() Reducer[Pair[K, V]] {
	return NewReducer(
		func() (any, error) { return map[K]V{}, nil },
		func(acc any, input Pair[K, V]) Step {
			m, ok := acc.(map[K]V)
			if !ok && acc != nil {
				return Failed(unexpectedAccumulator[map[K]V](acc))
			}
			if m == nil {
				m = map[K]V{}
			}
			m[input.Key] = input.Value
			return Continue(m)
		},
		nil,
	)
}

// SinkOf returns the reducer accumulating into target, along with its kind:
//   - reducers and sink providers are used as they are;
//   - slices of any element type get elements appended;
//   - maps of any key and value types get entries merged, entries being Pair values or two-element []any tuples.
//
// Any other target is rejected with ErrUnsupportedSinkKind.
func SinkOf(target any) (Reducer[any], SinkKind, error) {
	switch typed := target.(type) {
	case Reducer[any]:
		return typed, SinkCustom, nil
	case SinkProvider:
		return typed.Sink(), SinkCustom, nil
	case []any:
		return SliceSink[any](), SinkIndexed, nil
	}
	if empty, ok := reflection.EmptyLike(target); ok {
		if reflection.IsKeyed(target) {
			return dynamicSink(empty, mergeEntry), SinkKeyed, nil
		}
		return dynamicSink(empty, appendElement), SinkIndexed, nil
	}
	return nil, SinkUnknown, unsupportedSink(target)
}

func dynamicSink(empty any, step func(acc any, input any) (any, error)) Reducer[any] {
	return NewReducer(
		func() (any, error) {
			e, _ := reflection.EmptyLike(empty)
			return e, nil
		},
		func(acc any, input any) Step {
			if acc == nil {
				acc, _ = reflection.EmptyLike(empty)
			}
			next, err := step(acc, input)
			if err != nil {
				return Failed(err)
			}
			return Continue(next)
		},
		nil,
	)
}

func appendElement(acc any, input any) (any, error) {
	result, ok := reflection.Append(acc, input)
	if !ok {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "element of type %T cannot be appended to %T", input, acc)
	}
	return result, nil
}

func mergeEntry(acc any, input any) (any, error) {
	key, val, err := entryOf(input)
	if err != nil {
		return nil, err
	}
	if reflection.IsKeyed(acc) && value.IsNil(acc) {
		acc, _ = reflection.EmptyLike(acc)
	}
	if !reflection.SetMapEntry(acc, key, val) {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "entry [%v: %v] cannot be stored in %T", key, val, acc)
	}
	return acc, nil
}

func entryOf(input any) (key, value any, err error) {
	switch typed := input.(type) {
	case Entry:
		key, value = typed.Entry()
		return
	case []any:
		if len(typed) == 2 {
			key, value = typed[0], typed[1]
			return
		}
	case [2]any:
		key, value = typed[0], typed[1]
		return
	}
	err = commonerrors.Newf(commonerrors.ErrInvalid, "element %v of type %T is not a key/value entry", input, input)
	return
}

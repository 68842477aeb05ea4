/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Transduce applies xf to sink and reduces src with the resulting reducer, starting from the accumulator provided by its Init.
func Transduce[In, Out any](src Source[In], xf Transducer[In, Out], sink Reducer[Out]) (any, error) {
	r, err := apply(xf, sink)
	if err != nil {
		return nil, err
	}
	init, err := r.Init()
	if err != nil {
		return nil, err
	}
	return Reduce(src, r, init)
}

// TransduceWithInit is similar to Transduce but starts from init.
func TransduceWithInit[In, Out any](src Source[In], xf Transducer[In, Out], sink Reducer[Out], init any) (any, error) {
	r, err := apply(xf, sink)
	if err != nil {
		return nil, err
	}
	return Reduce(src, r, init)
}

// Into appends the elements produced by xf over src to target and returns the resulting slice.
func Into[S ~[]Out, In, Out any](target S, xf Transducer[In, Out], src Source[In]) (S, error) {
	result, err := TransduceWithInit(src, xf, SliceSink[Out](), []Out(target))
	if err != nil {
		return nil, err
	}
	s, err := resultAs[[]Out](result)
	return S(s), err
}

// IntoMap stores the entries produced by xf over src into target. A nil target is replaced by a new map.
func IntoMap[M ~map[K]V, K comparable, V, In any](target M, xf Transducer[In, Pair[K, V]], src Source[In]) (M, error) {
	init := map[K]V(target)
	if init == nil {
		init = map[K]V{}
	}
	result, err := TransduceWithInit(src, xf, MapSink[K, V](), init)
	if err != nil {
		return nil, err
	}
	m, err := resultAs[map[K]V](result)
	return M(m), err
}

// ToSlice collects the elements produced by xf over src into a new slice.
func ToSlice[In, Out any](src Source[In], xf Transducer[In, Out]) ([]Out, error) {
	return Into([]Out{}, xf, src)
}

// ToMap collects the entries produced by xf over src into a new map.
func ToMap[In any, K comparable, V any](src Source[In], xf Transducer[In, Pair[K, V]]) (map[K]V, error) {
	return IntoMap(map[K]V{}, xf, src)
}

// ToIterator returns a lazy iterator over the elements produced by xf over src.
func ToIterator[In, Out any](src Source[In], xf Transducer[In, Out], options ...LazyOption) *Lazy[In, Out] {
	return NewLazy(src, xf, options...)
}

// Seq transforms a dynamic source using xf and returns a result of the same kind: a []any for indexed sources,
// a map[any]any for keyed sources (xf must then produce key/value entries), and a lazy *Lazy[any, any] for pull sources.
func Seq(source any, xf Transducer[any, any]) (any, error) {
	src, err := SourceOf(source)
	if err != nil {
		return nil, err
	}
	switch src.Kind() {
	case KindIndexed:
		return Transduce(src, xf, SliceSink[any]())
	case KindKeyed:
		return Transduce(src, xf, dynamicSink(map[any]any{}, mergeEntry))
	default:
		return NewLazy(src, xf), nil
	}
}

// IntoAny transforms a dynamic source using xf and accumulates the result into target. target may be a slice, a map,
// a Reducer[any] or a SinkProvider.
func IntoAny(target any, xf Transducer[any, any], source any) (any, error) {
	sink, kind, err := SinkOf(target)
	if err != nil {
		return nil, err
	}
	src, err := SourceOf(source)
	if err != nil {
		return nil, err
	}
	if kind == SinkCustom {
		return Transduce(src, xf, sink)
	}
	return TransduceWithInit(src, xf, sink, target)
}

func apply[In, Out any](xf Transducer[In, Out], sink Reducer[Out]) (Reducer[In], error) {
	if sink == nil {
		return nil, commonerrors.UndefinedParameter("sink")
	}
	if xf == nil {
		return nil, commonerrors.UndefinedParameter("transducer")
	}
	r := xf(sink)
	if r == nil {
		return nil, commonerrors.New(commonerrors.ErrUnexpected, "transducer did not produce any reducer")
	}
	return r, nil
}

func resultAs[T any](result any) (typed T, err error) {
	if result == nil {
		return
	}
	typed, ok := result.(T)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrUnexpected, "reduction returned a value of type %T instead of %T", result, typed)
	}
	return
}

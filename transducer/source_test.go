/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/commonerrors/errortest"
)

func TestSourceKinds(t *testing.T) {
	tests := []struct {
		source Source[any]
		kind   Kind
		length int
		sized  bool
	}{
		{source: FromValues(1, 2, 3).Any(), kind: KindIndexed, length: 3, sized: true},
		{source: FromSlice([]string{}).Any(), kind: KindIndexed, length: 0, sized: true},
		{source: FromMap(map[string]int{"a": 1}).Any(), kind: KindKeyed, length: 1, sized: true},
		{source: FromIterator[int](newNaturals()).Any(), kind: KindPull},
		{source: FromSequence(slices.Values([]int{1})).Any(), kind: KindPull},
		{source: Source[int]{}.Any(), kind: KindUnknown},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("#%v %v", i, test.kind), func(t *testing.T) {
			assert.Equal(t, test.kind, test.source.Kind())
			length, ok := test.source.Len()
			assert.Equal(t, test.sized, ok)
			assert.Equal(t, test.length, length)
		})
	}
	assert.Equal(t, "indexed", KindIndexed.String())
	assert.Equal(t, "keyed", KindKeyed.String())
	assert.Equal(t, "pull", KindPull.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestFromMapOrder(t *testing.T) {
	m := map[string]int{"d": 4, "b": 2, "a": 1, "c": 3}
	entries, err := ToSlice(FromMap(m), Identity[Pair[string, int]]())
	require.NoError(t, err)
	assert.Equal(t, []Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}}, entries)

	reversed, err := ToSlice(FromMapFunc(m, func(a, b string) int { return strings.Compare(b, a) }), Map(func(p Pair[string, int]) string { return p.Key }))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, reversed)
	assert.Equal(t, "[a 1]", Pair[string, int]{"a", 1}.String())
}

func TestFromSequenceIsReleased(t *testing.T) {
	released := false
	seq := func(yield func(int) bool) {
		defer func() { released = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	result, err := ToSlice(FromSequence(iter.Seq[int](seq)), Take[int](3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, result)
	assert.True(t, released)
}

func TestSourcesAreReopened(t *testing.T) {
	src := FromSequence(collection.RangeSequence(0, 5, nil))
	first, err := ToSlice(src, Take[int](2))
	require.NoError(t, err)
	second, err := ToSlice(src, Identity[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, first)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, second)
}

func TestIteratorFunc(t *testing.T) {
	i := 0
	it := IteratorFunc[int](func() (int, bool) {
		i++
		return i, i <= 3
	})
	result, err := ToSlice(FromIterator[int](it), Identity[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result)
	assert.Equal(t, KindUnknown, FromIterator[int](nil).Kind())
	assert.Equal(t, KindUnknown, FromSequence[int](nil).Kind())
}

type customPuller struct {
	values []string
}

func (c *customPuller) Next() (string, bool) {
	if len(c.values) == 0 {
		return "", false
	}
	v := c.values[0]
	c.values = c.values[1:]
	return v, true
}

func TestSourceOf(t *testing.T) {
	tests := []struct {
		value    any
		kind     Kind
		expected []any
	}{
		{value: []any{1, "a"}, kind: KindIndexed, expected: []any{1, "a"}},
		{value: []int{1, 2}, kind: KindIndexed, expected: []any{1, 2}},
		{value: [2]string{"a", "b"}, kind: KindIndexed, expected: []any{"a", "b"}},
		{value: map[string]int{"b": 2, "a": 1}, kind: KindKeyed, expected: []any{Pair[any, any]{"a", 1}, Pair[any, any]{"b", 2}}},
		{value: FromValues(3, 4), kind: KindIndexed, expected: []any{3, 4}},
		{value: &customPuller{values: []string{"x", "y"}}, kind: KindPull, expected: []any{"x", "y"}},
		{value: slices.Values([]int{5, 6}), kind: KindPull, expected: []any{5, 6}},
		{value: iter.Seq[any](slices.Values([]any{7})), kind: KindPull, expected: []any{7}},
		{value: IteratorFunc[any](func() (any, bool) { return nil, false }), kind: KindPull, expected: []any{}},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("#%v %T", i, test.value), func(t *testing.T) {
			src, err := SourceOf(test.value)
			require.NoError(t, err)
			assert.Equal(t, test.kind, src.Kind())
			assert.Equal(t, test.kind, KindOf(test.value))
			elements, err := ToSlice(src, Identity[any]())
			require.NoError(t, err)
			assert.Equal(t, test.expected, elements)
		})
	}
}

func TestSourceOfUnsupported(t *testing.T) {
	for _, v := range []any{nil, "a string", 42, 3.5, struct{ A int }{A: 1}, true, func() {}} {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			_, err := SourceOf(v)
			errortest.AssertError(t, err, ErrUnsupportedSourceKind)
			errortest.AssertError(t, err, commonerrors.ErrUnsupported)
			assert.Equal(t, KindUnknown, KindOf(v))
		})
	}
	_, err := SourceOf("abc")
	errortest.AssertErrorDescription(t, err, "string")
}

func TestSourceOfNilReferences(t *testing.T) {
	var lazy *Lazy[int, int]
	var counting *countingIterator[any]
	var it Iterator[any] = counting
	var seq iter.Seq[any]
	var ch chan int
	for _, v := range []any{lazy, counting, it, seq, (func(func(any) bool))(nil), ch} {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			src, err := SourceOf(v)
			errortest.AssertError(t, err, ErrUnsupportedSourceKind)
			assert.Equal(t, KindUnknown, src.Kind())
			assert.Equal(t, KindUnknown, KindOf(v))
			_, err = Reduce(src, SliceSink[any](), []any{})
			errortest.AssertError(t, err, ErrUnsupportedSourceKind)
		})
	}

	var slice []int
	var m map[string]int
	for _, v := range []any{slice, m} {
		result, err := Seq(v, Identity[any]())
		require.NoError(t, err)
		assert.Empty(t, result)
	}
}

func TestSourceOfMapIsStable(t *testing.T) {
	m := map[int]string{}
	for i := range 20 {
		m[i] = fmt.Sprint(i)
	}
	src, err := SourceOf(m)
	require.NoError(t, err)
	first, err := ToSlice(src, Identity[any]())
	require.NoError(t, err)
	for range 3 {
		again, err := ToSlice(src, Identity[any]())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, Pair[any, any]{Key: 0, Value: "0"}, first[0])
	assert.Equal(t, Pair[any, any]{Key: 19, Value: "19"}, first[19])
}

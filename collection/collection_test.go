/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/commonerrors/errortest"
)

func isEven(i int) bool { return i%2 == 0 }

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 5}, Map([]int{1, 2, 3, 4}, func(i int) int { return i + 1 }))
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, Map([]int{}, strconv.Itoa))
	assert.Equal(t, []int{4, 5}, Map([]int{4, 5}, IdentityMapFunc[int]()))
}

func TestMapWithError(t *testing.T) {
	result, err := MapWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)

	result, err = MapWithError([]int{1, 2, 3}, func(i int) (int, error) {
		if i == 2 {
			return 0, commonerrors.New(commonerrors.ErrInvalid, "two")
		}
		return i, nil
	})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Nil(t, result)

	_, err = MapWithError([]string{"a"}, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestFilterReject(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{2, 4, 6}, Filter(s, isEven))
	assert.Equal(t, []int{1, 3, 5}, Reject(s, isEven))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(RejectSequence(slices.Values(s), isEven)))
	assert.Empty(t, Filter([]int{1, 3}, isEven))
	assert.True(t, OppositeFunc[int](isEven)(3))
}

func TestFilterPartitionsInput(t *testing.T) {
	random, err := faker.RandomInt(0, 1000, 50)
	require.NoError(t, err)
	kept := Filter(random, isEven)
	rejected := Reject(random, isEven)
	assert.Len(t, random, len(kept)+len(rejected))
	assert.True(t, AllFunc(kept, isEven))
	assert.False(t, AnyFunc(rejected, isEven))
}

func TestReduce(t *testing.T) {
	sum := func(acc, e int) int { return acc + e }
	assert.Equal(t, 15, Reduce([]int{1, 2, 3, 4, 5}, 0, sum))
	assert.Equal(t, 10, Reduce([]int{}, 10, sum))
	joined := ReduceSequence(slices.Values([]int{1, 2}), "", func(acc string, e int) string { return acc + strconv.Itoa(e) })
	assert.Equal(t, "12", joined)
}

func TestAnyAll(t *testing.T) {
	assert.True(t, AnyFunc([]int{1, 2}, isEven))
	assert.False(t, AnyFunc([]int{}, isEven))
	assert.True(t, AllFunc([]int{}, isEven))
	assert.False(t, AllFunc([]int{2, 3}, isEven))
	assert.True(t, AllTrueSequence(slices.Values([]int{2, 4}), isEven))
}

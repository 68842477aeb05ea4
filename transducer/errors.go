/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"fmt"

	"github.com/ARM-software/golang-transducers/commonerrors"
)

var (
	// ErrUnsupportedSourceKind is returned when a value is neither indexed, keyed nor pull-based.
	ErrUnsupportedSourceKind = fmt.Errorf("%w source kind", commonerrors.ErrUnsupported)
	// ErrUnsupportedSinkKind is returned when a target can neither be appended to, merged into nor used as a reducer.
	ErrUnsupportedSinkKind = fmt.Errorf("%w sink kind", commonerrors.ErrUnsupported)
	// ErrMissingInitialValue is returned when a reduction starts without an initial accumulator and the reducer cannot provide one.
	ErrMissingInitialValue = fmt.Errorf("%w initial value", commonerrors.ErrUndefined)
)

func unsupportedSource(v any) error {
	return commonerrors.Newf(ErrUnsupportedSourceKind, "cannot reduce value of type %T (%v)", v, v)
}

func unsupportedSink(v any) error {
	return commonerrors.Newf(ErrUnsupportedSinkKind, "cannot accumulate into value of type %T", v)
}

func unexpectedAccumulator[T any](acc any) error {
	var expected T
	return commonerrors.Newf(commonerrors.ErrInvalid, "accumulator of type %T cannot be used where %T is expected", acc, expected)
}

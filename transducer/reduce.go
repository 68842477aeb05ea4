/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Reduce drives r over src starting from init, then completes the accumulator exactly once and returns it.
// The source is not consumed any further once a step is reduced. If a step fails, or if a pull source reports an error,
// the error is returned and the reducer is not completed.
func Reduce[T any](src Source[T], r Reducer[T], init any) (result any, err error) {
	if r == nil {
		err = commonerrors.UndefinedParameter("reducer")
		return
	}
	final := drive(src, r.Step, init)
	if err = final.Err(); err != nil {
		return
	}
	return r.Complete(final.Value())
}

// drive folds the elements of src using step and returns the last step. A reduced step is returned as is so that
// stages performing nested reductions can propagate it.
func drive[T any](src Source[T], step StepFunc[T], init any) Step {
	if src.open == nil {
		return Failed(commonerrors.Newf(ErrUnsupportedSourceKind, "source of %v kind cannot be reduced", src.kind))
	}
	c := src.open()
	defer c.close()
	switch src.kind {
	case KindIndexed, KindKeyed:
		// keyed sources are opened with their keys ordered, entries are then read by position
		return drivePositional(c, step, init)
	case KindPull:
		return drivePull(c, step, init)
	default:
		return Failed(commonerrors.Newf(ErrUnsupportedSourceKind, "source of %v kind cannot be reduced", src.kind))
	}
}

func drivePositional[T any](c *cursor[T], step StepFunc[T], init any) Step {
	s := Continue(init)
	for i := 0; i < c.length; i++ {
		s = step(s.Value(), c.at(i))
		if s.IsReduced() {
			return s
		}
	}
	return s
}

func drivePull[T any](c *cursor[T], step StepFunc[T], init any) Step {
	s := Continue(init)
	for {
		v, ok := c.next()
		if !ok {
			break
		}
		s = step(s.Value(), v)
		if s.IsReduced() {
			return s
		}
	}
	if c.err != nil {
		if err := c.err(); err != nil {
			return Failed(err)
		}
	}
	return s
}

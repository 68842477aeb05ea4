/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import "fmt"

type stepState uint8

const (
	stateContinue stepState = iota
	stateReduced
	stateFailed
)

// Step is the result of folding one element into an accumulator. It either lets the reduction continue,
// stops it with a final accumulator (reduced), or aborts it with an error (failed). A failed step is also considered reduced.
type Step struct {
	acc   any
	err   error
	state stepState
}

// Continue returns a step carrying acc which lets the reduction carry on.
func Continue(acc any) Step {
	return Step{acc: acc, state: stateContinue}
}

// Reduced returns a step carrying acc as the final accumulated value.
func Reduced(acc any) Step {
	return Step{acc: acc, state: stateReduced}
}

// Failed returns a step aborting the reduction with err.
func Failed(err error) Step {
	return Step{err: err, state: stateFailed}
}

// Value returns the accumulator carried by the step.
func (s Step) Value() any {
	return s.acc
}

// IsReduced states whether the reduction must stop.
func (s Step) IsReduced() bool {
	return s.state != stateContinue
}

// Err returns the error of a failed step.
func (s Step) Err() error {
	return s.err
}

func (s Step) String() string {
	switch s.state {
	case stateReduced:
		return fmt.Sprintf("Reduced(%v)", s.acc)
	case stateFailed:
		return fmt.Sprintf("Failed(%v)", s.err)
	default:
		return fmt.Sprintf("Continue(%v)", s.acc)
	}
}

// EnsureReduced marks s as reduced unless it already is.
func EnsureReduced(s Step) Step {
	if s.IsReduced() {
		return s
	}
	return Reduced(s.acc)
}

// EnsureUnreduced clears the reduced mark of s. Failed steps are returned as is.
func EnsureUnreduced(s Step) Step {
	if s.state == stateReduced {
		return Continue(s.acc)
	}
	return s
}

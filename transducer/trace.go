/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"github.com/go-logr/logr"
)

// Trace logs every element going through it, and the completion of the reduction, using logger. Elements are
// forwarded unchanged.
func Trace[T any](logger logr.Logger, name string) Transducer[T, T] {
	return func(next Reducer[T]) Reducer[T] {
		return &traceStage[T]{downstream: downstream[T]{next: next}, logger: logger.WithValues("stage", name)}
	}
}

type traceStage[T any] struct {
	downstream[T]
	logger logr.Logger
	count  int
}

func (s *traceStage[T]) Step(acc any, input T) Step {
	s.count++
	result := s.next.Step(acc, input)
	s.logger.Info("element", "index", s.count-1, "value", input, "reduced", result.IsReduced())
	return result
}

func (s *traceStage[T]) Complete(acc any) (any, error) {
	s.logger.Info("completed", "elements", s.count)
	return s.next.Complete(acc)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

// Zip collects every element as a column and, on completion, forwards rows made of the elements found at the same
// position in each column. Rows stop at the shortest column.
func Zip[T any]() Transducer[[]T, []T] {
	return func(next Reducer[[]T]) Reducer[[]T] {
		return &zipStage[T]{downstream: downstream[[]T]{next: next}}
	}
}

type zipStage[T any] struct {
	downstream[[]T]
	columns [][]T
}

func (s *zipStage[T]) Step(acc any, input []T) Step {
	column := make([]T, len(input))
	copy(column, input)
	s.columns = append(s.columns, column)
	return Continue(acc)
}

func (s *zipStage[T]) Complete(acc any) (any, error) {
	rows := s.rows()
	s.columns = nil
	result := EnsureUnreduced(drive(FromSlice(rows), s.next.Step, acc))
	if err := result.Err(); err != nil {
		return nil, err
	}
	return s.next.Complete(result.Value())
}

func (s *zipStage[T]) rows() [][]T {
	if len(s.columns) == 0 {
		return nil
	}
	length := len(s.columns[0])
	for _, column := range s.columns[1:] {
		length = min(length, len(column))
	}
	rows := make([][]T, length)
	for i := range rows {
		row := make([]T, len(s.columns))
		for j, column := range s.columns {
			row[j] = column[i]
		}
		rows[i] = row
	}
	return rows
}

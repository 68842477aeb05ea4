/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package stages

import (
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/reflection"
	"github.com/ARM-software/golang-transducers/transducer"
	"github.com/ARM-software/golang-transducers/value"
)

func builtinFunctions() map[string]Function {
	return map[string]Function{
		"identity": func(v any) (any, error) { return v, nil },
		"inc":      func(v any) (any, error) { return add(v, 1) },
		"dec":      func(v any) (any, error) { return add(v, -1) },
		"double":   func(v any) (any, error) { return multiply(v, 2) },
		"negate":   func(v any) (any, error) { return multiply(v, -1) },
		"string":   func(v any) (any, error) { return cast.ToStringE(v) },
		"type":     func(v any) (any, error) { return fmt.Sprintf("%T", v), nil },
		"length": func(v any) (any, error) {
			if s, ok := v.(string); ok {
				return len(s), nil
			}
			l, ok := reflection.Len(v)
			if !ok {
				return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%T has no length", v)
			}
			return l, nil
		},
		"pair": func(v any) (any, error) {
			if p, ok := v.(transducer.Pair[any, any]); ok {
				return p, nil
			}
			elements, ok := reflection.Elements(v)
			if !ok || len(elements) != 2 {
				return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%v is not a [key, value] pair", v)
			}
			return transducer.Pair[any, any]{Key: elements[0], Value: elements[1]}, nil
		},
		"parity": func(v any) (any, error) {
			i, err := integral(v)
			if err != nil {
				return nil, err
			}
			if i%2 == 0 {
				return "even", nil
			}
			return "odd", nil
		},
	}
}

func builtinPredicates() map[string]Predicate {
	return map[string]Predicate{
		"even":     func(v any) bool { i, err := integral(v); return err == nil && i%2 == 0 },
		"odd":      func(v any) bool { i, err := integral(v); return err == nil && i%2 != 0 },
		"positive": func(v any) bool { f, err := number(v); return err == nil && f > 0 },
		"negative": func(v any) bool { f, err := number(v); return err == nil && f < 0 },
		"zero":     func(v any) bool { f, err := number(v); return err == nil && f == 0 },
		"nil":      value.IsNil,
		"empty":    value.IsEmpty,
		"truthy":   func(v any) bool { return !value.IsEmpty(v) },
		"string":   func(v any) bool { _, ok := v.(string); return ok },
		"bool":     func(v any) bool { _, ok := v.(bool); return ok },
		"number": func(v any) bool {
			if _, ok := v.(string); ok {
				return false
			}
			_, err := number(v)
			return err == nil
		},
	}
}

// integral returns v as an integer if it is a number without fractional part (e.g. JSON numbers decoded as float64).
func integral(v any) (int64, error) {
	f, err := number(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, commonerrors.Newf(commonerrors.ErrInvalid, "%v is not an integer", v)
	}
	return int64(f), nil
}

// add keeps the numeric type of v where possible.
func add(v any, delta int) (any, error) {
	switch n := v.(type) {
	case int:
		return n + delta, nil
	case int32:
		return n + int32(delta), nil
	case int64:
		return n + int64(delta), nil
	case float32:
		return n + float32(delta), nil
	case float64:
		return n + float64(delta), nil
	}
	f, err := number(v)
	if err != nil {
		return nil, err
	}
	return f + float64(delta), nil
}

func multiply(v any, factor int) (any, error) {
	switch n := v.(type) {
	case int:
		return n * factor, nil
	case int32:
		return n * int32(factor), nil
	case int64:
		return n * int64(factor), nil
	case float32:
		return n * float32(factor), nil
	case float64:
		return n * float64(factor), nil
	}
	f, err := number(v)
	if err != nil {
		return nil, err
	}
	return f * float64(factor), nil
}

// number converts v to a float. Numeric strings are accepted, booleans and nil are not.
func number(v any) (float64, error) {
	if _, ok := v.(bool); ok || value.IsNil(v) {
		return 0, commonerrors.Newf(commonerrors.ErrInvalid, "%v is not a number", v)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%v is not a number", v)
	}
	return f, nil
}

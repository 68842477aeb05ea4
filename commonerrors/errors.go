/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types shared by every package of this module.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCondition      = errors.New("failed condition")
	ErrMarshalling    = errors.New("unserialisable")
	ErrEmpty          = errors.New("empty")
	ErrEOF            = errors.New("end of file")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if e == nil || target == nil {
			if e == target {
				return true
			}
			continue
		}
		if errors.Is(target, e) || errors.Is(e, target) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided (case-insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// Ignore returns nil if `target` is of any of the types `ignore`. Otherwise, `target` is returned.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// Join joins errors together ignoring nil entries.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// New creates a new error of type `errorType` with a description of the circumstances.
func New(errorType error, message string) error {
	if errorType == nil {
		return errors.New(message)
	}
	if strings.TrimSpace(message) == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, message)
}

// Newf is similar to New but accepts a format string.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `origin` into an error of type `targetErr` with a message.
// If `origin` is nil, nil is returned.
func WrapError(targetErr, origin error, message string) error {
	if origin == nil {
		return nil
	}
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w%v%w", targetErr, ": ", origin)
	}
	return fmt.Errorf("%w: %v: %w", targetErr, message, origin)
}

// WrapErrorf is similar to WrapError but accepts a format string.
func WrapErrorf(targetErr, origin error, format string, args ...any) error {
	return WrapError(targetErr, origin, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an undefined error for a variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "undefined variable '%v'", variableName)
}

// UndefinedParameter returns an undefined error for a parameter.
func UndefinedParameter(parameterName string) error {
	return Newf(ErrUndefined, "undefined parameter '%v'", parameterName)
}

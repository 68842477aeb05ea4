/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Validator is implemented by configuration structures.
type Validator interface {
	// Validate checks configuration entries.
	Validate() error
}

// FieldError describes a nested configuration structure which failed validation.
type FieldError struct {
	// Field is the name of the structure field.
	Field string
	// Key is the configuration key of the field (from its mapstructure tag), if any.
	Key    string
	Reason error
}

func (e *FieldError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: configuration entry %v: %v", commonerrors.ErrInvalid, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: configuration entry %v [%v]: %v", commonerrors.ErrInvalid, e.Field, strings.ToUpper(e.Key), e.Reason)
}

func (e *FieldError) Unwrap() []error {
	return []error{commonerrors.ErrInvalid, e.Reason}
}

// ValidateEmbedded finds the struct fields of cfg (a pointer to a structure) implementing Validator and validates them.
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.IsNil() || r.Elem().Kind() != reflect.Struct {
		return commonerrors.Newf(commonerrors.ErrInvalid, "%T is not a pointer to a structure", cfg)
	}
	r = r.Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		sf := r.Type().Field(i)
		if f.Kind() != reflect.Struct || !sf.IsExported() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			return &FieldError{Field: sf.Name, Key: processMapStructureString(sf.Tag.Get("mapstructure")), Reason: err}
		}
	}
	return nil
}

// processMapStructureString returns the key name of a mapstructure tag e.g. "log" for "log,omitempty".
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}

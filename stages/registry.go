/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package stages builds transducers from textual pipeline descriptions such as "drop:1|take:3|partition:2".
//
// A description is a list of stages separated by '|'. Each stage is a name optionally followed by ':' and an
// argument. Depending on the stage, the argument is a count, the name of a function or predicate held by a
// Registry, or a JSON literal. Stage names are case-insensitive and '-' or '_' are ignored so that "take-while",
// "take_while" and "takeWhile" denote the same stage.
package stages

import (
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-transducers/collection"
	"github.com/ARM-software/golang-transducers/commonerrors"
)

// Function is a named transformation usable by map, mapcat and partition-by stages.
type Function = collection.MapWithErrorFunc[any, any]

// Predicate is a named condition usable by filter, remove, take-while and drop-while stages.
type Predicate = collection.Predicate[any]

// Registry holds the functions and predicates pipeline descriptions can refer to.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	predicates map[string]Predicate
	logger     logr.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  map[string]Function{},
		predicates: map[string]Predicate{},
		logger:     logr.Discard(),
	}
}

// NewDefaultRegistry returns a registry holding the built-in functions and predicates.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, f := range builtinFunctions() {
		_ = r.RegisterFunction(name, f)
	}
	for name, p := range builtinPredicates() {
		_ = r.RegisterPredicate(name, p)
	}
	return r
}

// SetLogger sets the logger used by trace stages.
func (r *Registry) SetLogger(logger logr.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

func (r *Registry) traceLogger() logr.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

// RegisterFunction registers f under name, replacing any function previously registered under that name.
func (r *Registry) RegisterFunction(name string, f Function) error {
	key, err := registryKey(name)
	if err != nil {
		return err
	}
	if f == nil {
		return commonerrors.UndefinedParameter("function")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[key] = f
	return nil
}

// RegisterPredicate registers p under name, replacing any predicate previously registered under that name.
func (r *Registry) RegisterPredicate(name string, p Predicate) error {
	key, err := registryKey(name)
	if err != nil {
		return err
	}
	if p == nil {
		return commonerrors.UndefinedParameter("predicate")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[key] = p
	return nil
}

// Function returns the function registered under name.
func (r *Registry) Function(name string) (Function, error) {
	key := normalise(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.functions[key]
	if !ok {
		return nil, commonerrors.Newf(commonerrors.ErrNotFound, "no function named '%v'", name)
	}
	return f, nil
}

// Predicate returns the predicate registered under name.
func (r *Registry) Predicate(name string) (Predicate, error) {
	key := normalise(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[key]
	if !ok {
		return nil, commonerrors.Newf(commonerrors.ErrNotFound, "no predicate named '%v'", name)
	}
	return p, nil
}

func registryKey(name string) (string, error) {
	key := normalise(name)
	if key == "" {
		return "", commonerrors.New(commonerrors.ErrInvalid, "empty name")
	}
	if strings.ContainsAny(key, separators) {
		return "", commonerrors.Newf(commonerrors.ErrInvalid, "name '%v' contains a reserved character", name)
	}
	return key, nil
}

func normalise(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(name)))
}

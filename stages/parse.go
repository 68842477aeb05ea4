/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package stages

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/reflection"
	"github.com/ARM-software/golang-transducers/transducer"
)

const (
	stageSeparator    = "|"
	argumentSeparator = ":"
	separators        = stageSeparator + argumentSeparator
)

// Stage is one element of a pipeline description.
type Stage struct {
	Name        string
	Argument    string
	HasArgument bool
}

func (s Stage) String() string {
	if s.HasArgument {
		return s.Name + argumentSeparator + s.Argument
	}
	return s.Name
}

// Split splits a pipeline description into its stages. A blank description has no stages.
func Split(description string) (stages []Stage, err error) {
	if strings.TrimSpace(description) == "" {
		return
	}
	for i, raw := range strings.Split(description, stageSeparator) {
		name, argument, hasArgument := strings.Cut(raw, argumentSeparator)
		stage := Stage{Name: strings.TrimSpace(name), Argument: strings.TrimSpace(argument), HasArgument: hasArgument}
		if stage.Name == "" {
			err = commonerrors.Newf(commonerrors.ErrInvalid, "stage %v of '%v' has no name", i, description)
			return
		}
		stages = append(stages, stage)
	}
	return
}

// Parse builds the transducer described by description using the built-in functions and predicates.
func Parse(description string) (transducer.Transducer[any, any], error) {
	return NewDefaultRegistry().Parse(description)
}

// Parse builds the transducer described by description. Stages apply in the order they are written i.e. the
// leftmost stage sees the input elements first.
func (r *Registry) Parse(description string) (transducer.Transducer[any, any], error) {
	stages, err := Split(description)
	if err != nil {
		return nil, err
	}
	xfs := make([]transducer.Transducer[any, any], 0, len(stages))
	for i := range stages {
		xf, err := r.Build(stages[i])
		if err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "stage %v (%v)", i, stages[i])
		}
		xfs = append(xfs, xf)
	}
	return transducer.Compose(xfs...), nil
}

type builder func(r *Registry, s Stage) (transducer.Transducer[any, any], error)

var builders map[string]builder

func init() {
	builders = map[string]builder{
		"map": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			f, err := r.functionArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.MapWithError(f), nil
		},
		"mapcat": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			f, err := r.functionArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.Compose(transducer.MapWithError(f), cat()), nil
		},
		"filter": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			p, err := r.predicateArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.Filter(p), nil
		},
		"remove": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			p, err := r.predicateArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.Remove(p), nil
		},
		"keep": withoutArgument(transducer.Keep[any]),
		"dedupe": withoutArgument(func() transducer.Transducer[any, any] {
			return transducer.DedupeFunc(reflection.Equal)
		}),
		"distinct": withoutArgument(func() transducer.Transducer[any, any] {
			return transducer.DistinctBy(distinctKey)
		}),
		"take":    withCount(transducer.Take[any]),
		"takenth": withCount(transducer.TakeNth[any]),
		"drop":    withCount(transducer.Drop[any]),
		"repeat":  withCount(transducer.Repeat[any]),
		"takewhile": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			p, err := r.predicateArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.TakeWhile(p), nil
		},
		"dropwhile": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			p, err := r.predicateArgument(s)
			if err != nil {
				return nil, err
			}
			return transducer.DropWhile(p), nil
		},
		"partition": withCount(func(n int) transducer.Transducer[any, any] {
			return transducer.Compose2(transducer.Partition[any](n), transducer.Map(batchAsAny))
		}),
		"partitionby": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			f, err := r.functionArgument(s)
			if err != nil {
				return nil, err
			}
			return partitionBy(f), nil
		},
		"interpose": func(_ *Registry, s Stage) (transducer.Transducer[any, any], error) {
			if !s.HasArgument {
				return nil, commonerrors.New(commonerrors.ErrInvalid, "missing separator")
			}
			return transducer.Interpose(literal(s.Argument)), nil
		},
		"cat": withoutArgument(cat),
		"zip": withoutArgument(zip),
		"trace": func(r *Registry, s Stage) (transducer.Transducer[any, any], error) {
			name := s.Argument
			if name == "" {
				name = "trace"
			}
			return transducer.Trace[any](r.traceLogger(), name), nil
		},
	}
}

// Build builds the transducer of a single stage.
func (r *Registry) Build(s Stage) (transducer.Transducer[any, any], error) {
	b, ok := builders[normalise(s.Name)]
	if !ok {
		return nil, commonerrors.Newf(commonerrors.ErrNotFound, "unknown stage '%v'", s.Name)
	}
	return b(r, s)
}

// Names returns the names of the stages a description can use.
func Names() []string {
	return slices.Sorted(maps.Keys(builders))
}

func (r *Registry) functionArgument(s Stage) (Function, error) {
	if s.Argument == "" {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "stage '%v' expects a function name", s.Name)
	}
	return r.Function(s.Argument)
}

func (r *Registry) predicateArgument(s Stage) (Predicate, error) {
	if s.Argument == "" {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "stage '%v' expects a predicate name", s.Name)
	}
	return r.Predicate(s.Argument)
}

func withoutArgument(xf func() transducer.Transducer[any, any]) builder {
	return func(_ *Registry, s Stage) (transducer.Transducer[any, any], error) {
		if s.HasArgument {
			return nil, commonerrors.Newf(commonerrors.ErrInvalid, "stage '%v' takes no argument", s.Name)
		}
		return xf(), nil
	}
}

func withCount(xf func(n int) transducer.Transducer[any, any]) builder {
	return func(_ *Registry, s Stage) (transducer.Transducer[any, any], error) {
		if !s.HasArgument || s.Argument == "" {
			return nil, commonerrors.Newf(commonerrors.ErrInvalid, "stage '%v' expects a count", s.Name)
		}
		n, err := cast.ToIntE(s.Argument)
		if err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "stage '%v' expects a count", s.Name)
		}
		return xf(n), nil
	}
}

// literal decodes a JSON literal and falls back to the raw text e.g. "0" is a number but "a" is a string.
func literal(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func batchAsAny(batch []any) any {
	return batch
}

func distinctKey(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}

func cat() transducer.Transducer[any, any] {
	return transducer.Compose2(transducer.MapWithError(transducer.SourceOf), transducer.CatSources[any]())
}

func zip() transducer.Transducer[any, any] {
	return transducer.Compose3(transducer.MapWithError(column), transducer.Zip[any](), transducer.Map(batchAsAny))
}

func column(v any) ([]any, error) {
	elements, ok := reflection.Elements(v)
	if !ok {
		return nil, commonerrors.Newf(transducer.ErrUnsupportedSourceKind, "%T cannot be zipped", v)
	}
	return elements, nil
}

type keyed struct {
	key     any
	element any
}

func partitionBy(f Function) transducer.Transducer[any, any] {
	withKey := transducer.MapWithError(func(v any) (keyed, error) {
		k, err := f(v)
		return keyed{key: k, element: v}, err
	})
	byKey := transducer.PartitionByFunc(func(k keyed) any { return k.key }, reflection.Equal)
	elements := transducer.Map(func(batch []keyed) any {
		result := make([]any, len(batch))
		for i := range batch {
			result[i] = batch[i].element
		}
		return result
	})
	return transducer.Compose3(withKey, byKey, elements)
}

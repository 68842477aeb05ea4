/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transducer

import (
	"iter"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-transducers/collection/queue"
	"github.com/ARM-software/golang-transducers/commonerrors"
)

type lazyOptions struct {
	logger logr.Logger
}

// LazyOption configures a lazy iterator.
type LazyOption func(*lazyOptions)

// WithLogger makes a lazy iterator report its completion and abandonment at verbosity level 1.
func WithLogger(logger logr.Logger) LazyOption {
	return func(o *lazyOptions) {
		o.logger = logger
	}
}

// Lazy pulls elements from a source on demand and drives them through a transducer one at a time, so that
// results can be consumed incrementally and infinite sources can be transformed.
// A Lazy is an Iterator and can itself be used as a source. It is not safe for concurrent use.
type Lazy[In, Out any] struct {
	src     Source[In]
	xf      Transducer[In, Out]
	chain   Reducer[In]
	cursor  *cursor[In]
	buffer  queue.IQueue[Out]
	logger  logr.Logger
	index   int
	pulled  int
	emitted int
	started bool
	done    bool
	err     error
}

// NewLazy returns a lazy iterator over the elements produced by xf over src. Nothing is pulled from src until
// the first call to Next.
func NewLazy[In, Out any](src Source[In], xf Transducer[In, Out], options ...LazyOption) *Lazy[In, Out] {
	opts := lazyOptions{logger: logr.Discard()}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	return &Lazy[In, Out]{
		src:    src,
		xf:     xf,
		buffer: queue.NewQueue[Out](),
		logger: opts.logger,
	}
}

// Next returns the next element produced by the pipeline. It returns false once the pipeline has completed,
// failed or been closed.
func (l *Lazy[In, Out]) Next() (element Out, ok bool) {
	for {
		element, ok = l.buffer.Dequeue()
		if ok || l.done {
			return
		}
		l.advance()
	}
}

// Err returns the error which stopped the iteration, if any.
func (l *Lazy[In, Out]) Err() error {
	return l.err
}

// Close abandons the iteration and releases the source. Subsequent calls to Next return false.
func (l *Lazy[In, Out]) Close() error {
	if l.done {
		return nil
	}
	l.done = true
	l.buffer.Clear()
	l.release()
	l.logger.V(1).Info("lazy iteration abandoned", "pulled", l.pulled, "emitted", l.emitted)
	return nil
}

// All returns a sequence over the remaining elements. Breaking out of the loop leaves the iterator open.
func (l *Lazy[In, Out]) All() iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for {
			v, ok := l.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// AsSource returns a pull source over the remaining elements.
func (l *Lazy[In, Out]) AsSource() Source[Out] {
	return FromIterator[Out](l)
}

// advance pulls one element from upstream and steps it through the chain. The chain is completed exactly once,
// either when upstream is exhausted or when a stage terminates the reduction.
func (l *Lazy[In, Out]) advance() {
	if !l.started {
		l.start()
		if l.done {
			return
		}
	}
	input, ok := l.pull()
	if !ok {
		if l.cursor.err != nil {
			if err := l.cursor.err(); err != nil {
				l.fail(err)
				return
			}
		}
		l.complete()
		return
	}
	l.pulled++
	result := l.chain.Step(nil, input)
	if err := result.Err(); err != nil {
		l.fail(err)
		return
	}
	if result.IsReduced() {
		l.complete()
	}
}

func (l *Lazy[In, Out]) start() {
	l.started = true
	if l.src.open == nil {
		l.fail(commonerrors.Newf(ErrUnsupportedSourceKind, "source of %v kind cannot be iterated", l.src.kind))
		return
	}
	chain, err := apply(l.xf, Reducer[Out](&stepper[Out]{buffer: l.buffer, emitted: &l.emitted}))
	if err != nil {
		l.fail(err)
		return
	}
	l.chain = chain
	l.cursor = l.src.open()
}

func (l *Lazy[In, Out]) pull() (input In, ok bool) {
	if l.cursor.next != nil {
		return l.cursor.next()
	}
	if l.index >= l.cursor.length {
		return
	}
	input = l.cursor.at(l.index)
	l.index++
	ok = true
	return
}

func (l *Lazy[In, Out]) complete() {
	l.done = true
	_, err := l.chain.Complete(nil)
	l.release()
	if err != nil {
		l.fail(err)
		return
	}
	l.logger.V(1).Info("lazy iteration completed", "pulled", l.pulled, "emitted", l.emitted)
}

func (l *Lazy[In, Out]) fail(err error) {
	l.done = true
	l.err = err
	l.buffer.Clear()
	l.release()
	l.logger.V(1).Info("lazy iteration failed", "pulled", l.pulled, "error", err.Error())
}

func (l *Lazy[In, Out]) release() {
	if l.cursor != nil {
		l.cursor.close()
		l.cursor = nil
	}
}

// stepper is the terminal reducer of a lazy pipeline: it buffers every element it is given.
type stepper[T any] struct {
	buffer  queue.IQueue[T]
	emitted *int
}

func (s *stepper[T]) Init() (any, error) {
	return nil, nil
}

func (s *stepper[T]) Step(acc any, input T) Step {
	s.buffer.Enqueue(input)
	*s.emitted++
	return Continue(acc)
}

func (s *stepper[T]) Complete(acc any) (any, error) {
	return acc, nil
}

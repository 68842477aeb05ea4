/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-logr/logr"
	"github.com/goccy/go-json"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/logs"
	"github.com/ARM-software/golang-transducers/stages"
	"github.com/ARM-software/golang-transducers/transducer"
)

func run(ctx context.Context, cfg *Configuration, in io.Reader, out io.Writer, loggers logs.Loggers) (err error) {
	logger := logs.NewLogrLoggerFromLoggers(loggers, cfg.Log.Verbosity())
	registry := stages.NewDefaultRegistry()
	registry.SetLogger(logger)
	xf, err := registry.Parse(cfg.Stages)
	if err != nil {
		return
	}
	reader, closeInput, err := openInput(cfg.Input, in)
	if err != nil {
		return
	}
	defer func() { _ = closeInput() }()
	_ = loggers.SetLogSource(cfg.Input)

	if cfg.Format == FormatNDJSON {
		err = transformStream(ctx, xf, reader, out, loggers, logger)
	} else {
		err = transformDocument(xf, reader, out)
	}
	if err != nil {
		loggers.LogError(err, "could not apply pipeline", cfg.Stages)
	}
	return
}

func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == stdinInput {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "input '%v'", path)
		}
		return nil, nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "input '%v'", path)
	}
	return f, f.Close, nil
}

// transformDocument applies xf to a whole JSON document: arrays give arrays and objects give objects.
func transformDocument(xf transducer.Transducer[any, any], r io.Reader, out io.Writer) error {
	var document any
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode input document")
	}
	result, err := transducer.Seq(document, xf)
	if err != nil {
		return err
	}
	return encode(json.NewEncoder(out), result)
}

// transformStream applies xf to a stream of JSON documents, writing results as soon as they are produced.
func transformStream(ctx context.Context, xf transducer.Transducer[any, any], r io.Reader, out io.Writer, loggers logs.Loggers, logger logr.Logger) (err error) {
	documents := &documentIterator{ctx: ctx, decoder: json.NewDecoder(r)}
	lazy := transducer.NewLazy(transducer.FromIterator[any](documents), xf, transducer.WithLogger(logger))
	defer func() { _ = lazy.Close() }()
	encoder := json.NewEncoder(out)
	written := 0
	for element := range lazy.All() {
		err = encode(encoder, element)
		if err != nil {
			return
		}
		written++
	}
	err = lazy.Err()
	if err == nil {
		loggers.Log(fmt.Sprintf("read %v documents and wrote %v", documents.read, written))
	}
	return
}

func encode(encoder *json.Encoder, v any) error {
	if err := encoder.Encode(toJSON(v)); err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not encode output")
	}
	return nil
}

// documentIterator pulls one JSON document at a time from a decoder.
type documentIterator struct {
	ctx     context.Context
	decoder *json.Decoder
	read    int
	done    bool
	err     error
}

func (it *documentIterator) Next() (document any, ok bool) {
	if it.done {
		return
	}
	if err := it.ctx.Err(); err != nil {
		it.done = true
		it.err = err
		return
	}
	if err := it.decoder.Decode(&document); err != nil {
		it.done = true
		if !errors.Is(err, io.EOF) {
			it.err = commonerrors.WrapErrorf(commonerrors.ErrMarshalling, err, "could not decode document %v", it.read)
		}
		return nil, false
	}
	it.read++
	return document, true
}

func (it *documentIterator) Err() error {
	return it.err
}

// toJSON converts values produced by a pipeline into values JSON can represent: entries become [key, value] arrays
// and map keys become strings.
func toJSON(v any) any {
	switch typed := v.(type) {
	case transducer.Pair[any, any]:
		return []any{toJSON(typed.Key), toJSON(typed.Value)}
	case map[any]any:
		m := make(map[string]any, len(typed))
		for k, e := range typed {
			m[fmt.Sprint(k)] = toJSON(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(typed))
		for k, e := range typed {
			m[k] = toJSON(e)
		}
		return m
	case []any:
		s := make([]any, len(typed))
		for i := range typed {
			s[i] = toJSON(typed[i])
		}
		return s
	default:
		return v
	}
}

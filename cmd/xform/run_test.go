/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/commonerrors/errortest"
	"github.com/ARM-software/golang-transducers/logs"
	"github.com/ARM-software/golang-transducers/transducer"
)

func newTestLoggers(t *testing.T) logs.Loggers {
	t.Helper()
	loggers, err := logs.NewNoopLogger("xform-test")
	require.NoError(t, err)
	return loggers
}

func transform(t *testing.T, format, description, input string) (string, error) {
	t.Helper()
	cfg := DefaultConfiguration()
	cfg.Format = format
	cfg.Stages = description
	out := &bytes.Buffer{}
	err := run(context.Background(), cfg, strings.NewReader(input), out, newTestLoggers(t))
	return out.String(), err
}

func TestRunDebugLogsLazyIteration(t *testing.T) {
	tests := []struct {
		level    string
		expected bool
	}{
		{level: "debug", expected: true},
		{level: "info", expected: false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			loggers, err := logs.NewJSONLoggerWithLevel(buf, "xform-test", test.level)
			require.NoError(t, err)
			cfg := DefaultConfiguration()
			cfg.Format = FormatNDJSON
			cfg.Stages = "take:2"
			cfg.Log.Level = test.level
			out := &bytes.Buffer{}
			require.NoError(t, run(context.Background(), cfg, strings.NewReader("1\n2\n3\n"), out, loggers))
			assert.Equal(t, "1\n2\n", out.String())
			assert.Contains(t, buf.String(), "read 2 documents and wrote 2")
			if test.expected {
				assert.Contains(t, buf.String(), "lazy iteration completed")
			} else {
				assert.NotContains(t, buf.String(), "lazy iteration completed")
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		format      string
		description string
		input       string
		expected    string
	}{
		{format: FormatJSON, description: "filter:even|map:inc", input: "[1,2,3,4,5,6]", expected: "[3,5,7]\n"},
		{format: FormatJSON, description: "", input: "[1,\"a\",null]", expected: "[1,\"a\",null]\n"},
		{format: FormatJSON, description: "drop:1|take:3|partition:2", input: "[1,2,3,4,5,6,7,8,9,10]", expected: "[[2,3],[4]]\n"},
		{format: FormatJSON, description: "", input: "{\"b\":2,\"a\":1}", expected: "{\"a\":1,\"b\":2}\n"},
		{format: FormatJSON, description: "take:1", input: "{\"b\":2,\"a\":1}", expected: "{\"a\":1}\n"},
		{format: FormatJSON, description: "cat|dedupe", input: "[[1,1],[1,2],[]]", expected: "[1,2]\n"},
		{format: FormatJSON, description: "zip", input: "[[1,2,3],[\"a\",\"b\"]]", expected: "[[1,\"a\"],[2,\"b\"]]\n"},
		{format: FormatJSON, description: "partition-by:parity", input: "[1,3,2,4,5]", expected: "[[1,3],[2,4],[5]]\n"},
		{format: FormatNDJSON, description: "take:2|map:double", input: "1\n2\n3\n4\n", expected: "2\n4\n"},
		{format: FormatNDJSON, description: "partition:2", input: "{\"a\":1}\n{\"a\":2}\n{\"a\":3}\n", expected: "[{\"a\":1},{\"a\":2}]\n[{\"a\":3}]\n"},
		{format: FormatNDJSON, description: "interpose:0", input: "\"x\" \"y\"", expected: "\"x\"\n0\n\"y\"\n"},
		{format: FormatNDJSON, description: "filter:odd", input: "", expected: ""},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.format+" "+test.description, func(t *testing.T) {
			result, err := transform(t, test.format, test.description, test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		format      string
		description string
		input       string
		expected    error
	}{
		{format: FormatJSON, description: "unknown", input: "[]", expected: commonerrors.ErrNotFound},
		{format: FormatJSON, description: "take:1", input: "not json", expected: commonerrors.ErrMarshalling},
		{format: FormatJSON, description: "take:1", input: "\"abc\"", expected: transducer.ErrUnsupportedSourceKind},
		{format: FormatJSON, description: "map:inc", input: "[1,\"a\"]", expected: commonerrors.ErrInvalid},
		{format: FormatNDJSON, description: "map:inc", input: "1\n{]\n", expected: commonerrors.ErrMarshalling},
		{format: FormatNDJSON, description: "partition:0", input: "1\n2", expected: commonerrors.ErrInvalid},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.format+" "+test.description, func(t *testing.T) {
			_, err := transform(t, test.format, test.description, test.input)
			errortest.AssertError(t, err, test.expected)
		})
	}
}

func TestRunCancelledStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := DefaultConfiguration()
	cfg.Format = FormatNDJSON
	out := &bytes.Buffer{}
	err := run(ctx, cfg, strings.NewReader("1\n2\n"), out, newTestLoggers(t))
	errortest.AssertError(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.ndjson")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0600))
	cfg := DefaultConfiguration()
	cfg.Format = FormatNDJSON
	cfg.Input = path
	cfg.Stages = "remove:odd"
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), cfg, strings.NewReader("ignored"), out, newTestLoggers(t)))
	assert.Equal(t, "2\n", out.String())

	cfg.Input = filepath.Join(t.TempDir(), "missing.json")
	err := run(context.Background(), cfg, nil, out, newTestLoggers(t))
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
}

func TestToJSON(t *testing.T) {
	converted := toJSON([]any{
		transducer.Pair[any, any]{Key: "k", Value: 1},
		map[any]any{1: map[any]any{true: "t"}},
	})
	assert.Equal(t, []any{
		[]any{"k", 1},
		map[string]any{"1": map[string]any{"true": "t"}},
	}, converted)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/commonerrors/errortest"
	"github.com/ARM-software/golang-transducers/logs/logrimp"
	"github.com/ARM-software/golang-transducers/logs/logstest"
)

func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	require.NoError(t, loggers.Check())
	defer func() { _ = loggers.Close() }()

	require.NoError(t, loggers.SetLoggerSource(faker.Word()))
	require.NoError(t, loggers.SetLogSource(faker.Word()))
	errortest.AssertError(t, loggers.SetLogSource(""), commonerrors.ErrNoLogSource)
	errortest.AssertError(t, loggers.SetLoggerSource(" "), commonerrors.ErrNoLoggerSource)
	loggers.Log(faker.Sentence())
	loggers.Log(faker.Word(), faker.Word())
	loggers.LogError(commonerrors.ErrUnexpected, faker.Sentence())
	loggers.LogError(faker.Sentence())
	loggers.LogError()
}

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrLoggerRecordsSources(t *testing.T) {
	buf := &bytes.Buffer{}
	loggers, err := NewLogrLogger(logrimp.NewWriterLogr(buf), "xform")
	require.NoError(t, err)
	require.NoError(t, loggers.SetLogSource("input.json"))
	loggers.Log("processed", 3, "elements")
	out := buf.String()
	assert.Contains(t, out, "xform")
	assert.Contains(t, out, "input.json")
	assert.Contains(t, out, "processed 3 elements")
}

func TestLogrLoggerWithClose(t *testing.T) {
	closed := 0
	loggers, err := NewLogrLoggerWithClose(logstest.NewNullTestLogger(), "Test", func() error {
		closed++
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, loggers.Close())
	assert.Equal(t, 1, closed)
}

func TestLogrLoggerCheck(t *testing.T) {
	loggers := &logrLogger{logger: logr.Logger{}}
	errortest.AssertError(t, loggers.Check(), commonerrors.ErrNoLogger)
	_, err := NewLogrLogger(logstest.NewNullTestLogger(), "")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
}

func TestNewLogrLoggerFromLoggers(t *testing.T) {
	buf := &bytes.Buffer{}
	loggers, err := NewLogrLogger(logrimp.NewWriterLogr(buf), "outer")
	require.NoError(t, err)
	converted := NewLogrLoggerFromLoggers(loggers, 0)
	converted.Info("element", "index", 2)
	out := buf.String()
	assert.Contains(t, out, "outer")
	assert.Contains(t, out, "element")
	assert.Contains(t, out, "index")
}

func TestNewLogrLoggerFromLoggersVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  bool
	}{
		{verbosity: 0, expected: false},
		{verbosity: 1, expected: true},
		{verbosity: 2, expected: true},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("verbosity %v", test.verbosity), func(t *testing.T) {
			buf := &bytes.Buffer{}
			loggers, err := NewLogrLogger(logrimp.NewWriterLogr(buf), "outer")
			require.NoError(t, err)
			converted := NewLogrLoggerFromLoggers(loggers, test.verbosity)
			converted.V(1).Info("detailed", "step", 3)
			converted.WithName("inner").Error(commonerrors.ErrUnexpected, "broken")
			out := buf.String()
			assert.Contains(t, out, "inner")
			assert.Contains(t, out, "broken")
			if test.expected {
				assert.Contains(t, out, "detailed")
			} else {
				assert.NotContains(t, out, "detailed")
			}
		})
	}
}

func TestStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStdLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

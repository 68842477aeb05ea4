/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logstest provides loggers for tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ARM-software/golang-transducers/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger)
}

// NewRecordingTestLogger returns a logger whose entries can be inspected through the returned hook.
func NewRecordingTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger), hook
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogr()
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

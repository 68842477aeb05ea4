/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/value"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	logger logr.Logger
	close  func() error
}

func (l *logrLogger) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

func (l *logrLogger) Check() error {
	if l.logger.GetSink() == nil {
		return commonerrors.ErrNoLogger
	}
	if l.logger.Enabled() {
		return nil
	}
	return commonerrors.New(commonerrors.ErrCondition, "disabled logger")
}

func (l *logrLogger) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.logger = l.logger.WithName(source)
	return nil
}

func (l *logrLogger) Log(output ...any) {
	l.logger.Info(strings.TrimSuffix(fmt.Sprintln(output...), "\n"))
}

func (l *logrLogger) LogError(err ...any) {
	var cause error
	if len(err) > 0 {
		if e, ok := err[0].(error); ok {
			cause = e
			err = err[1:]
		}
	}
	l.logger.Error(cause, strings.TrimSuffix(fmt.Sprintln(err...), "\n"))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but runs closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	loggers = &logrLogger{logger: logrImpl, close: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger. Entries logged with V(level) are forwarded only when
// level is at most verbosity.
func NewLogrLoggerFromLoggers(loggers Loggers, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix == "" {
			loggers.Log(args)
			return
		}
		loggers.Log(prefix + ": " + args)
	}, funcr.Options{Verbosity: verbosity})
}

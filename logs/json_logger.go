/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/value"
)

// jsonLogger writes one JSON object per entry using zerolog (https://github.com/rs/zerolog)
type jsonLogger struct {
	mu           sync.RWMutex
	source       string
	loggerSource string
	logger       zerolog.Logger
}

func (l *jsonLogger) Close() error {
	return nil
}

func (l *jsonLogger) Check() error {
	if l.getLoggerSource() == "" {
		return commonerrors.ErrNoLoggerSource
	}
	return nil
}

func (l *jsonLogger) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return nil
}

func (l *jsonLogger) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *jsonLogger) getSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *jsonLogger) getLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

func (l *jsonLogger) Log(output ...any) {
	l.write(l.logger.Info(), output)
}

func (l *jsonLogger) LogError(err ...any) {
	event := l.logger.Error()
	if len(err) > 0 {
		if e, ok := err[0].(error); ok {
			event = event.Err(e)
			err = err[1:]
		}
	}
	l.write(event, err)
}

func (l *jsonLogger) write(event *zerolog.Event, output []any) {
	event = event.Str(KeyLoggerSource, l.getLoggerSource())
	if source := l.getSource(); source != "" {
		event = event.Str(KeyLogSource, source)
	}
	event.Msg(strings.TrimSuffix(fmt.Sprintln(output...), "\n"))
}

// NewJSONLogger returns loggers writing JSON lines to writer.
func NewJSONLogger(writer io.Writer, loggerSource string) (Loggers, error) {
	return newJSONLogger(writer, loggerSource, zerolog.TraceLevel)
}

// NewJSONLoggerWithLevel is similar to NewJSONLogger but discards entries below level e.g. "warn".
func NewJSONLoggerWithLevel(writer io.Writer, loggerSource string, level string) (Loggers, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "log level '%v'", level)
	}
	return newJSONLogger(writer, loggerSource, lvl)
}

func newJSONLogger(writer io.Writer, loggerSource string, level zerolog.Level) (loggers Loggers, err error) {
	if writer == nil {
		err = commonerrors.UndefinedParameter("writer")
		return
	}
	l := &jsonLogger{logger: zerolog.New(writer).Level(level).With().Timestamp().Logger()}
	err = l.SetLoggerSource(loggerSource)
	loggers = l
	return
}

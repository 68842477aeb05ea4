/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/ARM-software/golang-transducers/logs/logrimp"
)

type noopLogger struct {
	logrLogger
}

func (l *noopLogger) Check() error {
	return nil
}

// NewNoopLogger returns loggers discarding everything.
func NewNoopLogger(loggerSource string) (loggers Loggers, err error) {
	l := &noopLogger{logrLogger: logrLogger{logger: logrimp.NewNoopLogger()}}
	err = l.SetLoggerSource(loggerSource)
	loggers = l
	return
}

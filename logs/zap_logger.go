/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-transducers/commonerrors"
)

// sync errors can happen on Linux when the output is a pipe or a terminal e.g. "sync /dev/stderr: invalid argument".
// See https://github.com/uber-go/zap/issues/328
var syncErrors = []string{"invalid argument", "inappropriate ioctl for device"}

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		if commonerrors.CorrespondTo(err, syncErrors...) {
			return nil
		}
		return err
	})
}

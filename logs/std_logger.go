/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"

	"github.com/go-logr/stdr"
)

// NewStdLogger creates loggers writing to standard error using the Go standard library logger.
func NewStdLogger(loggerSource string) (Loggers, error) {
	return NewLogrLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)), loggerSource)
}

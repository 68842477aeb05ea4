/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines loggers for use in projects.
package logs

import "io"

// Loggers defines the high-level logging interface used by command-line front ends.
type Loggers interface {
	io.Closer
	// Check checks whether the loggers are correctly defined or not.
	Check() error
	// SetLogSource sets the source of the log message e.g. input file, pipeline description, etc.
	SetLogSource(source string) error
	// SetLoggerSource sets the source of the logger e.g. command name.
	SetLoggerSource(source string) error
	// Log logs to the output logger.
	Log(output ...any)
	// LogError logs to the Error logger.
	LogError(err ...any)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp defines some common logr implementation
package logrimp

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewStdOutLogr returns a logger to standard out.
func NewStdOutLogr() logr.Logger {
	return NewWriterLogr(os.Stdout)
}

// NewWriterLogr returns a logger printing one line per entry to w.
func NewWriterLogr(w io.Writer) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
		} else {
			_, _ = fmt.Fprintln(w, args)
		}
	}, funcr.Options{})
}

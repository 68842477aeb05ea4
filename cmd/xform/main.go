/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command xform applies a pipeline of transducer stages to JSON or NDJSON input.
//
//	xform --stages "filter:even|map:inc|partition:2" --format ndjson < input.ndjson
//
// Every flag can also be set through an environment variable prefixed with XFORM_ e.g. XFORM_STAGES or
// XFORM_LOG_LEVEL, or through a .env file in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

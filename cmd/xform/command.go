/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/config"
	"github.com/ARM-software/golang-transducers/logs"
)

func newRootCommand() *cobra.Command {
	session := viper.New()
	cmd := &cobra.Command{
		Use:          "xform",
		Short:        "Applies a pipeline of transducer stages to JSON or NDJSON input",
		Example:      `  xform --stages "filter:even|map:inc|partition:2" --format ndjson < input.ndjson`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.StringP("stages", "s", "", "pipeline description e.g. \"drop:1|take:3|partition:2\"")
	flags.StringP("input", "i", "", "input file, '-' for standard input")
	flags.StringP("format", "f", "", "format of the input and output: json or ndjson")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-backend", "", "logging library: zap or zerolog")
	flags.Bool("log-development", false, "use the development log encoder (zap only)")
	bindErr := config.BindFlagsToEnv(session, envPrefix, flags)

	cmd.RunE = func(cmd *cobra.Command, _ []string) (err error) {
		if bindErr != nil {
			return bindErr
		}
		cfg := &Configuration{}
		err = config.LoadFromViper(session, envPrefix, cfg, DefaultConfiguration())
		if err != nil {
			return
		}
		loggers, err := newLoggers(&cfg.Log)
		if err != nil {
			return
		}
		defer func() { _ = loggers.Close() }()
		return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), loggers)
	}
	return cmd
}

func newLoggers(cfg *LogConfiguration) (logs.Loggers, error) {
	if cfg.Backend == backendZerolog {
		return logs.NewJSONLoggerWithLevel(os.Stderr, "xform", cfg.Level)
	}
	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid log level")
	}
	zapConfig.Level = level
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create logger")
	}
	return logs.NewZapLogger(logger, "xform")
}

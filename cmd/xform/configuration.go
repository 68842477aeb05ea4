/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-transducers/config"
	"github.com/ARM-software/golang-transducers/stages"
)

const (
	envPrefix    = "xform"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	stdinInput   = "-"

	backendZap     = "zap"
	backendZerolog = "zerolog"
)

// LogConfiguration describes how xform logs.
type LogConfiguration struct {
	Level string `mapstructure:"level"`
	// Backend is either zap or zerolog (JSON lines).
	Backend     string `mapstructure:"backend"`
	Development bool   `mapstructure:"development"`
}

// Verbosity is the logr verbosity matching the configured level: debug enables V(1) entries.
func (cfg *LogConfiguration) Verbosity() int {
	if cfg.Level == "debug" {
		return 1
	}
	return 0
}

func (cfg *LogConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&cfg.Backend, validation.Required, validation.In(backendZap, backendZerolog)),
	)
}

// Configuration is the configuration of xform.
type Configuration struct {
	// Stages is the pipeline description e.g. "drop:1|take:3".
	Stages string `mapstructure:"stages"`
	// Input is the path of the input file, or "-" for standard input.
	Input string `mapstructure:"input"`
	// Format is either json (a single document) or ndjson (one document per line, processed as a stream).
	Format string           `mapstructure:"format"`
	Log    LogConfiguration `mapstructure:"log"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Stages, validation.By(isPipelineDescription)),
		validation.Field(&cfg.Input, validation.Required),
		validation.Field(&cfg.Format, validation.Required, validation.In(FormatJSON, FormatNDJSON)),
	)
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Input:  stdinInput,
		Format: FormatJSON,
		Log: LogConfiguration{
			Level:   "info",
			Backend: backendZap,
		},
	}
}

func isPipelineDescription(v any) error {
	description, _ := v.(string)
	_, err := stages.Split(description)
	return err
}

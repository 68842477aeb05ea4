/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/commonerrors/errortest"
)

const testPrefix = "test"

type outputConfiguration struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

func (cfg *outputConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Format, validation.Required, validation.In("json", "ndjson")),
		validation.Field(&cfg.Indent, validation.Min(0)),
	)
}

type pipelineConfiguration struct {
	Stages  string              `mapstructure:"stages"`
	Input   string              `mapstructure:"input"`
	Limit   int                 `mapstructure:"limit"`
	Timeout time.Duration       `mapstructure:"timeout"`
	Output  outputConfiguration `mapstructure:"output"`
}

func (cfg *pipelineConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Stages, validation.Required),
		validation.Field(&cfg.Limit, validation.Min(0)),
	)
}

func defaultPipelineConfiguration() *pipelineConfiguration {
	return &pipelineConfiguration{
		Input:   "-",
		Limit:   10,
		Timeout: time.Minute,
		Output:  outputConfiguration{Format: "json"},
	}
}

func TestServiceConfigurationLoad(t *testing.T) {
	cfg := &pipelineConfiguration{}
	defaults := defaultPipelineConfiguration()
	// stages are missing
	require.Error(t, Load(testPrefix, cfg, defaults))

	stages := fmt.Sprintf("take:%v", faker.RandomUnixTime()%10+1)
	t.Setenv("TEST_STAGES", stages)
	t.Setenv("TEST_OUTPUT_FORMAT", "ndjson")
	t.Setenv("TEST_TIMEOUT", "3s")
	cfg = &pipelineConfiguration{}
	require.NoError(t, Load(testPrefix, cfg, defaults))
	assert.Equal(t, stages, cfg.Stages)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, defaults.Limit, cfg.Limit)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "ndjson", cfg.Output.Format)
}

func TestServiceConfigurationInvalidNestedEntry(t *testing.T) {
	t.Setenv("TEST_STAGES", "dedupe")
	t.Setenv("TEST_OUTPUT_FORMAT", "xml")
	err := Load(testPrefix, &pipelineConfiguration{}, defaultPipelineConfiguration())
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "Output", fieldErr.Field)
	assert.Equal(t, "output", fieldErr.Key)
	assert.Contains(t, err.Error(), "[OUTPUT]")
}

func TestLoadUndefined(t *testing.T) {
	errortest.AssertError(t, Load(testPrefix, nil, defaultPipelineConfiguration()), commonerrors.ErrUndefined)
	errortest.AssertError(t, BindFlagToEnv(viper.New(), testPrefix, "TEST_STAGES", nil), commonerrors.ErrUndefined)
	errortest.AssertError(t, BindFlagsToEnv(viper.New(), testPrefix, nil), commonerrors.ErrUndefined)
}

func TestBinding(t *testing.T) {
	session := viper.New()
	flagSet := pflag.FlagSet{}
	flagSet.String("stages", "", "pipeline description")
	flagSet.String("format", "json", "output format")
	flagSet.Int("limit", 0, "limit")
	require.NoError(t, BindFlagToEnv(session, testPrefix, "TEST_STAGES", flagSet.Lookup("stages")))
	require.NoError(t, BindFlagToEnv(session, testPrefix, "OUTPUT_FORMAT", flagSet.Lookup("format")))
	require.NoError(t, BindFlagToEnv(session, testPrefix, "LIMIT", flagSet.Lookup("limit")))
	require.NoError(t, flagSet.Set("stages", "drop:2|take:1"))
	require.NoError(t, flagSet.Set("format", "ndjson"))
	require.NoError(t, flagSet.Set("limit", "4"))

	cfg := &pipelineConfiguration{}
	require.NoError(t, LoadFromViper(session, testPrefix, cfg, defaultPipelineConfiguration()))
	assert.Equal(t, "drop:2|take:1", cfg.Stages)
	assert.Equal(t, "ndjson", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestBindingDefaults(t *testing.T) {
	session := viper.New()
	flagSet := pflag.FlagSet{}
	flagSet.String("stages", "map:inc", "pipeline description")
	flagSet.String("output-format", "ndjson", "output format")
	flagSet.String("input", "input.json", "input file")
	require.NoError(t, BindFlagsToEnv(session, testPrefix, &flagSet))

	cfg := &pipelineConfiguration{}
	require.NoError(t, LoadFromViper(session, testPrefix, cfg, defaultPipelineConfiguration()))
	// flag defaults only apply where the default configuration is empty
	assert.Equal(t, "map:inc", cfg.Stages)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "-", cfg.Input)
}

func TestBindingEnvironmentOverFlagDefault(t *testing.T) {
	t.Setenv("TEST_STAGES", "cat")
	session := viper.New()
	flagSet := pflag.FlagSet{}
	flagSet.String("stages", "map:inc", "pipeline description")
	require.NoError(t, BindFlagsToEnv(session, testPrefix, &flagSet))

	cfg := &pipelineConfiguration{}
	require.NoError(t, LoadFromViper(session, testPrefix, cfg, defaultPipelineConfiguration()))
	assert.Equal(t, "cat", cfg.Stages)
}

func TestValidateEmbeddedNotAStructure(t *testing.T) {
	var cfg *pipelineConfiguration
	errortest.AssertError(t, ValidateEmbedded(cfg), commonerrors.ErrInvalid)
	require.NoError(t, ValidateEmbedded(&pipelineConfiguration{Output: outputConfiguration{Format: "json"}}))
}

func Test_processMapStructureString(t *testing.T) {
	tests := []struct {
		mapstructureTag      string
		expectedProcessedTag string
	}{
		{},
		{
			mapstructureTag: "         ",
		},
		{
			mapstructureTag: "     -    ",
		},
		{
			mapstructureTag: "    , omitzero      ",
		},
		{
			mapstructureTag:      "output  ,omitempty  , squash  ",
			expectedProcessedTag: "output",
		},
		{
			mapstructureTag:      "   log_level ,remain  ",
			expectedProcessedTag: "log_level",
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.mapstructureTag, func(t *testing.T) {
			assert.Equal(t, test.expectedProcessedTag, processMapStructureString(test.mapstructureTag))
		})
	}
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures from defaults, .env files, environment variables and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-transducers/commonerrors"
	"github.com/ARM-software/golang-transducers/value"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "privateflagbindingkeysxform" // must be lower case
)

// Load fills configurationToSet from the environment (i.e. .env file and environment variables).
// Entries which are not found in the environment come from defaultConfiguration.
// Environment variables are expected to start with envVarPrefix e.g. "XFORM_" for prefix "xform".
func Load(envVarPrefix string, configurationToSet Validator, defaultConfiguration Validator) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as Load but reuses the viper session provided (e.g. with flags already bound).
// Viper's precedence order applies: explicit Set, flags, environment, configuration file, defaults.
// Values from defaultConfiguration take precedence over flag defaults unless they are empty.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet Validator, defaultConfiguration Validator) (err error) {
	if configurationToSet == nil {
		err = commonerrors.UndefinedVariable("configuration")
		return
	}
	var defaults map[string]any
	if defaultConfiguration != nil {
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
			return
		}
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		return
	}

	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds a flag to an environment variable. envVar may be given with or without envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		err = commonerrors.UndefinedParameter("flag")
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

// BindFlagsToEnv binds every flag of the set to the environment variable named after it e.g. "log-level" to XFORM_LOG_LEVEL.
func BindFlagsToEnv(viperSession *viper.Viper, envVarPrefix string, flags *pflag.FlagSet) (err error) {
	if flags == nil {
		err = commonerrors.UndefinedParameter("flag set")
		return
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = BindFlagToEnv(viperSession, envVarPrefix, strings.ReplaceAll(f.Name, "-", EnvVarSeparator), f)
	})
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies flag values onto the structure keys they correspond to.
// Viper aliases do not work with nested keys so the binding is done by hand.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			flagValue := viperSession.Get(flagKey)
			if !value.IsEmpty(flagValue) {
				viperSession.SetDefault(key, flagValue)
				if value.IsEmpty(viperSession.Get(key)) {
					viperSession.Set(key, flagValue)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}

// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at an override
// file. The --config flag takes precedence when both are set.
const EnvVar = "SAFE_SETUP_CONFIG"

// Config is the fixed portion of the generated .env file plus the
// output path. The secret key and the two node URLs are collected at
// runtime and are deliberately not configurable here.
type Config struct {
	// PythonPath is the PYTHONPATH inside the service container.
	PythonPath string `yaml:"python_path"`

	// DjangoSettingsModule selects the Django settings profile.
	DjangoSettingsModule string `yaml:"django_settings_module"`

	// CForceRoot lets Celery workers run as root inside the container.
	CForceRoot string `yaml:"c_force_root"`

	// Debug is the Django DEBUG flag ("0" or "1").
	Debug string `yaml:"debug"`

	// DatabaseURL is the PostgreSQL DSN.
	DatabaseURL string `yaml:"database_url"`

	// EthL2Network marks whether the target chain is an L2.
	EthL2Network string `yaml:"eth_l2_network"`

	// RedisURL is the cache backend.
	RedisURL string `yaml:"redis_url"`

	// CeleryBrokerURL is the task queue broker.
	CeleryBrokerURL string `yaml:"celery_broker_url"`

	// EthInternalNoFilter disables trace filtering on nodes that do
	// not support trace_filter.
	EthInternalNoFilter string `yaml:"eth_internal_no_filter"`

	// Output is the path the .env file is written to.
	Output string `yaml:"output"`
}

// Default returns the stock docker-compose deployment values.
func Default() Config {
	return Config{
		PythonPath:           "/app/safe_transaction_service",
		DjangoSettingsModule: "config.settings.production",
		CForceRoot:           "true",
		Debug:                "0",
		DatabaseURL:          "psql://postgres:postgres@db:5432/postgres",
		EthL2Network:         "0",
		RedisURL:             "redis://redis:6379/0",
		CeleryBrokerURL:      "redis://redis:6379/1",
		EthInternalNoFilter:  "1",
		Output:               ".env",
	}
}

// Load returns Default overlaid with the YAML file at path. Empty
// fields in the file keep their default; unknown keys are an error.
func Load(path string) (Config, error) {
	configuration := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var overrides Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overrides); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	apply := func(target *string, value string) {
		if value != "" {
			*target = value
		}
	}
	apply(&configuration.PythonPath, overrides.PythonPath)
	apply(&configuration.DjangoSettingsModule, overrides.DjangoSettingsModule)
	apply(&configuration.CForceRoot, overrides.CForceRoot)
	apply(&configuration.Debug, overrides.Debug)
	apply(&configuration.DatabaseURL, overrides.DatabaseURL)
	apply(&configuration.EthL2Network, overrides.EthL2Network)
	apply(&configuration.RedisURL, overrides.RedisURL)
	apply(&configuration.CeleryBrokerURL, overrides.CeleryBrokerURL)
	apply(&configuration.EthInternalNoFilter, overrides.EthInternalNoFilter)
	apply(&configuration.Output, overrides.Output)

	return configuration, nil
}

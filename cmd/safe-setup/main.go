// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

// Safe-setup bootstraps the environment file for a Safe Transaction
// Service deployment. It generates the Django secret key, collects the
// Ethereum node endpoints, and writes the .env file the service
// containers consume.
//
// With no flags the run is interactive: both node URLs are prompted
// for. Either URL given as a flag skips its prompt, so a fully
// flag-driven invocation is scriptable.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/rsksmart/safe-transaction-setup/lib/config"
	"github.com/rsksmart/safe-transaction-setup/lib/envfile"
	"github.com/rsksmart/safe-transaction-setup/lib/prompt"
	"github.com/rsksmart/safe-transaction-setup/lib/secret"
	"github.com/rsksmart/safe-transaction-setup/lib/version"
)

// Prompt labels, kept identical to the legacy setup script so operators
// following the deployment docs see the exact text they expect.
const (
	nodeURLLabel        = "ETHEREUM_NODE_URL (e.g., http://172.17.0.1:4444):"
	tracingNodeURLLabel = "ETHEREUM_TRACING_NODE_URL (e.g., http://172.17.0.1:4444):"
	urlPlaceholder      = "http://172.17.0.1:4444"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type parameters struct {
	configFile     string
	output         string
	nodeURL        string
	tracingNodeURL string
	secretFile     string
	showVersion    bool
}

func run(args []string) error {
	var params parameters

	flagSet := pflag.NewFlagSet("safe-setup", pflag.ContinueOnError)
	flagSet.StringVar(&params.configFile, "config", "", "YAML file overriding the fixed .env entries (also "+config.EnvVar+")")
	flagSet.StringVar(&params.output, "output", "", "path to write the env file (default from config, .env)")
	flagSet.StringVar(&params.nodeURL, "node-url", "", "Ethereum node URL (skips the prompt)")
	flagSet.StringVar(&params.tracingNodeURL, "tracing-node-url", "", "Ethereum tracing node URL (skips the prompt)")
	flagSet.StringVar(&params.secretFile, "secret-file", "", "path to file containing the Django secret key, or - for stdin (generated if not set)")
	flagSet.BoolVar(&params.showVersion, "version", false, "print version information and exit")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	if params.showVersion {
		fmt.Printf("safe-setup %s\n", version.Info())
		return nil
	}

	return setup(params)
}

func setup(params parameters) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configuration, err := resolveConfig(params.configFile)
	if err != nil {
		return err
	}

	output := params.output
	if output == "" {
		output = configuration.Output
	}

	// Step 1: Obtain the secret key. Generated in process; the legacy
	// script shelled out to a containerized interpreter for this.
	secretKey := ""
	if params.secretFile != "" {
		secretKey, err = secret.ReadFromPath(params.secretFile)
		if err != nil {
			return fmt.Errorf("failed to read secret key: %w", err)
		}
	} else {
		secretKey, err = secret.GenerateHex(secret.DefaultByteCount)
		if err != nil {
			return fmt.Errorf("failed to generate secret key: %w", err)
		}
	}

	// Step 2: Collect the node URLs not supplied as flags. Order is
	// fixed: node URL first, tracing node URL second.
	nodeURL, tracingNodeURL, err := collectNodeURLs(params.nodeURL, params.tracingNodeURL)
	if err != nil {
		return err
	}

	// Step 3: Render and write the env file in one atomic step.
	file := buildEnvFile(configuration, secretKey, nodeURL, tracingNodeURL)
	if err := file.WriteAtomic(output, 0600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	logger.Info("environment file written",
		"path", output,
		"entries", len(file.Entries()),
	)
	return nil
}

// resolveConfig loads the override file named by the --config flag or
// the SAFE_SETUP_CONFIG environment variable, or returns the defaults
// when neither is set.
func resolveConfig(flagPath string) (config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(config.EnvVar)
	}
	if path == "" {
		return config.Default(), nil
	}
	configuration, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return configuration, nil
}

// collectNodeURLs prompts for whichever node URLs were not provided as
// flags. Values are captured verbatim, empty answers included.
func collectNodeURLs(nodeURL, tracingNodeURL string) (string, string, error) {
	var fields []prompt.Field
	if nodeURL == "" {
		fields = append(fields, prompt.Field{Label: nodeURLLabel, Placeholder: urlPlaceholder})
	}
	if tracingNodeURL == "" {
		fields = append(fields, prompt.Field{Label: tracingNodeURLLabel, Placeholder: urlPlaceholder})
	}
	if len(fields) == 0 {
		return nodeURL, tracingNodeURL, nil
	}

	answers, err := prompt.Run(fields)
	if err != nil {
		return "", "", fmt.Errorf("failed to collect node URLs: %w", err)
	}
	if nodeURL == "" {
		nodeURL, answers = answers[0], answers[1:]
	}
	if tracingNodeURL == "" {
		tracingNodeURL = answers[0]
	}
	return nodeURL, tracingNodeURL, nil
}

// buildEnvFile assembles the twelve entries in the order the service's
// deployment docs list them.
func buildEnvFile(configuration config.Config, secretKey, nodeURL, tracingNodeURL string) *envfile.File {
	file := envfile.New()
	file.Set("PYTHONPATH", configuration.PythonPath)
	file.Set("DJANGO_SETTINGS_MODULE", configuration.DjangoSettingsModule)
	file.Set("DJANGO_SECRET_KEY", secretKey)
	file.Set("C_FORCE_ROOT", configuration.CForceRoot)
	file.Set("DEBUG", configuration.Debug)
	file.Set("DATABASE_URL", configuration.DatabaseURL)
	file.Set("ETHEREUM_NODE_URL", nodeURL)
	file.Set("ETHEREUM_TRACING_NODE_URL", tracingNodeURL)
	file.Set("ETH_L2_NETWORK", configuration.EthL2Network)
	file.Set("REDIS_URL", configuration.RedisURL)
	file.Set("CELERY_BROKER_URL", configuration.CeleryBrokerURL)
	file.Set("ETH_INTERNAL_NO_FILTER", configuration.EthInternalNoFilter)
	return file
}

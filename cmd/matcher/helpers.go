package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/logger"
)

// loadRuntimeConfig resolves the effective configuration: the optional
// --config file merged with built-in defaults. Flag values are applied on
// top by the individual commands.
func loadRuntimeConfig() (config.Config, error) {
	cfg := &config.Config{}

	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	return cfg.MergeWithDefaults(), nil
}

func newLogger() (*zap.Logger, error) {
	log, err := logger.New(rootLogJSON, rootDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

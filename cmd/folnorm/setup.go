package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/folnorm/folnorm/internal/di"
)

// setupContainer builds the DI container for a command invocation and
// installs the configured logger as the global logger.
func setupContainer() (*di.Container, error) {
	container := di.NewContainer(resolveConfigPath())

	logSvc, err := di.Invoke[*di.LoggerService](container)
	if err != nil {
		return nil, err
	}

	log.Logger = *logSvc.Logger
	zerolog.DefaultContextLogger = logSvc.Logger

	return container, nil
}

// shutdownContainer shuts the container down, logging any failure.
func shutdownContainer(container *di.Container) {
	if err := container.Shutdown(); err != nil {
		log.Error().Err(err).Msg("container shutdown error")
	}
}

// resolveConfigPath returns the --config flag value or the first config
// file found in the default locations. Empty means run on defaults.
func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return findConfigFile()
}

// findConfigFile searches for folnorm.yaml in default locations.
func findConfigFile() string {
	// Check current directory
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	// Check ~/.config/folnorm/
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		p := filepath.Join(home, ".config", "folnorm", defaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

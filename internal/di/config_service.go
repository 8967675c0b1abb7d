package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/folnorm/folnorm/internal/config"
)

// ConfigService wraps the loaded, validated configuration.
type ConfigService struct {
	Config *config.Config
	Path   string
}

// NewConfig loads the configuration from the config path. An empty
// path yields the built-in defaults; a named path must load and
// validate cleanly.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ConfigService{Config: cfg, Path: path}, nil
}

// Package cli holds the cobra commands of the toolbox binary.
package cli

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/infrastructure/config"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// Bootstrap resolves the environment, loads configuration and initializes
// the process logger. ENV overrides the flag value.
func Bootstrap(env string) (*config.Config, string, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, env, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, env, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, env, fmt.Errorf("invalid server.timezone %q: %w", cfg.Server.Timezone, err)
	}

	return cfg, env, nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

package app

import (
	"github.com/guttosm/mary-storefront/config"
	"github.com/guttosm/mary-storefront/internal/logger"
)

// InitializeLogger sets up the global logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}

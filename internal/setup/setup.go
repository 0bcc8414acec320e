package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/geoindex/internal/config"
	"github.com/go-sod/geoindex/internal/logging"
)

// Setup loads cfg and returns a context carrying a logger built from it.
func Setup(ctx context.Context, cfg *config.Config) (context.Context, error) {
	if err := config.Load(ctx, cfg); err != nil {
		return ctx, fmt.Errorf("config.Load: %w", err)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	ctx = logging.WithLogger(ctx, logger)
	logger.Debugw("configuration loaded",
		"points", cfg.Points.Count,
		"width", cfg.Points.Width,
		"height", cfg.Points.Height,
		"algs", cfg.Index.Algs,
	)
	return ctx, nil
}

package config

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/go-sod/geoindex/internal/index"
	"github.com/go-sod/geoindex/internal/logging"
	"github.com/go-sod/geoindex/internal/pointgen"
)

type fileConfig struct {
	Path string `envconfig:"GEOINDEX_CONFIG"`
}

type Config struct {
	LogLevel       string `envconfig:"GEOINDEX_LOG_LEVEL" toml:"log_level"`
	LogDevelopment bool   `envconfig:"GEOINDEX_LOG_DEVELOPMENT" toml:"log_development"`
	// Dump prints the structure of every built tree.
	Dump bool `envconfig:"GEOINDEX_DUMP" toml:"dump"`
	// Queries is the number of random probes checked against brute force.
	Queries int             `envconfig:"GEOINDEX_QUERIES" toml:"queries"`
	Index   index.Config    `toml:"index"`
	Points  pointgen.Config `toml:"points"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Queries:  1000,
		Index: index.Config{
			Algs: []index.AlgType{index.AlgTypeKDTree, index.AlgTypeQuadTree},
		},
		Points: pointgen.Config{
			Count:  100,
			Width:  1000,
			Height: 1000,
		},
	}
}

func (c Config) Validate() error {
	if c.Points.Count < 0 {
		return fmt.Errorf("points count must not be negative, got %d", c.Points.Count)
	}
	if c.Queries < 0 {
		return fmt.Errorf("queries must not be negative, got %d", c.Queries)
	}
	if c.Points.Width == 0 || c.Points.Height == 0 {
		return fmt.Errorf("plane must not be empty, got %dx%d", c.Points.Width, c.Points.Height)
	}
	if len(c.Index.Algs) == 0 {
		return fmt.Errorf("at least one index algorithm is required")
	}
	return nil
}

// Load fills cfg from the defaults, then the TOML file named by
// GEOINDEX_CONFIG, then the environment.
func Load(ctx context.Context, cfg *Config) error {
	logger := logging.FromContext(ctx)
	*cfg = Default()

	var file fileConfig
	if err := envconfig.Process("", &file); err != nil {
		return fmt.Errorf("error loading config path: %w", err)
	}
	if file.Path != "" {
		logger.Infof("loading config file %s", file.Path)
		if _, err := toml.DecodeFile(file.Path, cfg); err != nil {
			return fmt.Errorf("decode config file %s: %w", file.Path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}
	return cfg.Validate()
}

// SPDX-License-Identifier: MIT
// Package config loads lvrank CLI settings from .lvrank.yaml/.lvrank.toml,
// LVRANK_* environment variables and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/pagerank"
)

// Output formats accepted by the rank command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// DefaultVerifyTolerance is the largest per-vertex deviation from the gonum
// reference that --verify accepts.
const DefaultVerifyTolerance = 1e-3

// EnvPrefix is the prefix of environment overrides (LVRANK_RANK_DAMPING, ...).
const EnvPrefix = "LVRANK"

// envKeyReplacer maps nested keys onto environment names: rank.damping → RANK_DAMPING.
var envKeyReplacer = strings.NewReplacer(".", "_")

// BindEnv makes viper consult LVRANK_* variables for every key.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
}

// ErrInvalidConfig is returned by Load for values no command can run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// RankConfig holds the engine parameters and presentation settings of `lvrank rank`.
type RankConfig struct {
	Damping         float64 `mapstructure:"damping"`
	MaxIterations   int     `mapstructure:"max_iterations"`
	Tolerance       float64 `mapstructure:"tolerance"`
	Workers         int     `mapstructure:"workers"`
	Top             int     `mapstructure:"top"`
	Format          string  `mapstructure:"format"`
	Verify          bool    `mapstructure:"verify"`
	VerifyTolerance float64 `mapstructure:"verify_tolerance"`
}

// Config holds all runtime configuration for an lvrank invocation.
// Values are populated from the config file, LVRANK_* env vars (nested keys
// use '_' for '.', e.g. LVRANK_RANK_DAMPING) and CLI flags.
type Config struct {
	LogLevel string     `mapstructure:"log_level"`
	Rank     RankConfig `mapstructure:"rank"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("rank.damping", pagerank.DefaultDamping)
	viper.SetDefault("rank.max_iterations", pagerank.DefaultMaxIterations)
	viper.SetDefault("rank.tolerance", pagerank.DefaultTolerance)
	viper.SetDefault("rank.workers", pagerank.DefaultWorkers)
	viper.SetDefault("rank.top", 0)
	viper.SetDefault("rank.format", FormatTable)
	viper.SetDefault("rank.verify", false)
	viper.SetDefault("rank.verify_tolerance", DefaultVerifyTolerance)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Rank.Format = strings.ToLower(cfg.Rank.Format)
	switch cfg.Rank.Format {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		return Config{}, fmt.Errorf("%w: format %q (want table, json, yaml or toml)", ErrInvalidConfig, cfg.Rank.Format)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	if !(cfg.Rank.VerifyTolerance > 0) {
		return Config{}, fmt.Errorf("%w: verify tolerance %v must be > 0", ErrInvalidConfig, cfg.Rank.VerifyTolerance)
	}

	return cfg, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error", case-insensitive).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Options converts the engine parameters into pagerank options.
func (r RankConfig) Options() []pagerank.Option {
	return []pagerank.Option{
		pagerank.WithDamping(r.Damping),
		pagerank.WithMaxIterations(r.MaxIterations),
		pagerank.WithTolerance(r.Tolerance),
		pagerank.WithWorkers(r.Workers),
	}
}

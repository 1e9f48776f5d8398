// SPDX-License-Identifier: MIT
// Package cli wires the lvrank cobra commands to the pagerank engine.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/internal/config"
)

// app is the state shared by one command tree. The logger is replaced by the
// root command once config is loaded, before any subcommand runs.
type app struct {
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns a tree with its own
// logger; settings still go through the global viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))}
	root := &cobra.Command{
		Use:           "lvrank",
		Short:         "PageRank for small directed graphs",
		Long:          "lvrank ranks the vertices of a directed graph by damped power iteration and can cross-check the result against gonum.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd.Root()); err != nil {
				return err
			}
			return a.initLogger(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .lvrank.yaml or .lvrank.toml in . or $HOME)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(a.newRankCmd(), a.newDemoCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvrank:", err)
		os.Exit(1)
	}
}

func initConfig(root *cobra.Command) error {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName(".lvrank")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = viper.ReadInConfig()
	}
	config.BindEnv()

	return nil
}

// initLogger builds the tree's logger from log_level, writing to the command's stderr.
func (a *app) initLogger(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lvl, _ := cfg.SlogLevel()
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	if used := viper.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", "file", used)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: rank.go
// Role: The rank command: flags, graph assembly, Compute and the optional gonum cross-check.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/pagerank"
)

// errVerifyFailed is returned when --verify finds a deviation above the tolerance.
var errVerifyFailed = errors.New("ranks deviate from the gonum reference")

// rankFlagKeys maps rank flags onto their viper keys.
var rankFlagKeys = map[string]string{
	"damping":          "rank.damping",
	"max-iterations":   "rank.max_iterations",
	"tolerance":        "rank.tolerance",
	"workers":          "rank.workers",
	"top":              "rank.top",
	"format":           "rank.format",
	"verify":           "rank.verify",
	"verify-tolerance": "rank.verify_tolerance",
}

func (a *app) newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [FROM>TO ...]",
		Short: "Compute PageRank for a graph given as edges and/or a fixture",
		Example: `  lvrank rank 'A>B' 'A>C' 'C>A'
  lvrank rank --fixture random --size 500 --prob 0.01 --seed 7 --top 10 --verify
  lvrank rank 'A>B' --node Z --format json`,
		RunE: a.runRank,
	}

	f := cmd.Flags()
	f.StringArray("node", nil, "isolated vertex to include (repeatable)")
	f.String("fixture", "", "generated graph: cycle, path, star, complete, random")
	f.Int("size", 10, "fixture vertex count")
	f.Float64("prob", 0.1, "edge probability of the random fixture")
	f.Int64("seed", 1, "seed of the random fixture")
	f.Float64("damping", pagerank.DefaultDamping, "damping factor in (0,1)")
	f.Int("max-iterations", pagerank.DefaultMaxIterations, "iteration budget")
	f.Float64("tolerance", pagerank.DefaultTolerance, "L1 convergence threshold")
	f.Int("workers", pagerank.DefaultWorkers, "goroutines per matrix-vector product")
	f.Int("top", 0, "print only the k best vertices (0 = all)")
	f.String("format", config.FormatTable, "output format: table, json, yaml, toml")
	f.Bool("verify", false, "cross-check against gonum's network.PageRank")
	f.Float64("verify-tolerance", config.DefaultVerifyTolerance, "largest accepted deviation for --verify")
	for name, key := range rankFlagKeys {
		_ = viper.BindPFlag(key, f.Lookup(name))
	}

	return cmd
}

func (a *app) runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	in := graphInput{edges: args}
	f := cmd.Flags()
	in.nodes, _ = f.GetStringArray("node")
	in.fixture, _ = f.GetString("fixture")
	in.size, _ = f.GetInt("size")
	in.prob, _ = f.GetFloat64("prob")
	in.seed, _ = f.GetInt64("seed")

	g, err := in.build()
	if err != nil {
		return err
	}
	a.logger.Debug("graph assembled", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "fixture", in.fixture)

	opts := append(cfg.Rank.Options(), pagerank.WithLogger(a.logger))
	res, err := pagerank.Compute(g, opts...)
	if err != nil {
		return err
	}

	rep := newReport(res, g.VertexCount(), g.EdgeCount(), cfg.Rank.Top)
	if cfg.Rank.Verify {
		ref, err := pagerank.Reference(g, cfg.Rank.Damping, cfg.Rank.Tolerance)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		dev := pagerank.MaxDeviation(res.Ranks, ref)
		rep.Verify = &verifyReport{MaxDeviation: dev, Tolerance: cfg.Rank.VerifyTolerance, OK: dev <= cfg.Rank.VerifyTolerance}
	}

	if err := writeReport(cmd.OutOrStdout(), cfg.Rank.Format, rep); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Rank.Format, err)
	}
	if rep.Verify != nil && !rep.Verify.OK {
		return fmt.Errorf("%w: %.3g > %.3g", errVerifyFailed, rep.Verify.MaxDeviation, rep.Verify.Tolerance)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: demo.go
// Role: The demo command: the three-page web ranked by Compute and by gonum side by side.

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/pagerank"
)

// demoEdges is the three-page web: A links to B and C, C links back to A, B is dangling.
var demoEdges = []core.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "C", To: "A"}}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Rank the three-page web graph and compare with gonum",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	g := core.NewGraph()
	for _, e := range demoEdges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return err
		}
	}

	res, err := pagerank.Compute(g, pagerank.WithLogger(a.logger))
	if err != nil {
		return err
	}
	ref, err := pagerank.Reference(g, pagerank.DefaultDamping, pagerank.DefaultTolerance)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "graph: A>B, A>C, C>A (B has no out-links)")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tMANUAL\tGONUM\tDIFF")
	for _, r := range res.Top(0) {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.1e\n", r.ID, r.Rank, ref[r.ID], r.Rank-ref[r.ID])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	dev := pagerank.MaxDeviation(res.Ranks, ref)
	fmt.Fprintf(out, "\niterations %d, converged %t, max deviation %.3g\n", res.Iterations, res.Converged, dev)
	if dev > config.DefaultVerifyTolerance {
		return fmt.Errorf("%w: %.3g", errVerifyFailed, dev)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: output.go
// Role: Rank report and its table, JSON, YAML and TOML encodings.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/pagerank"
)

// report is the serialisable outcome of one rank run.
type report struct {
	Vertices   int               `json:"vertices" yaml:"vertices" toml:"vertices"`
	Edges      int               `json:"edges" yaml:"edges" toml:"edges"`
	Iterations int               `json:"iterations" yaml:"iterations" toml:"iterations"`
	Converged  bool              `json:"converged" yaml:"converged" toml:"converged"`
	Residual   float64           `json:"residual" yaml:"residual" toml:"residual"`
	Ranks      []pagerank.Ranked `json:"ranks" yaml:"ranks" toml:"ranks"`
	Verify     *verifyReport     `json:"verify,omitempty" yaml:"verify,omitempty" toml:"verify,omitempty"`
}

// verifyReport compares the engine with gonum's network.PageRank.
type verifyReport struct {
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation" toml:"max_deviation"`
	Tolerance    float64 `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
	OK           bool    `json:"ok" yaml:"ok" toml:"ok"`
}

func newReport(res *pagerank.Result, vertices, edges, top int) report {
	var residual float64
	if n := len(res.Residuals); n > 0 {
		residual = res.Residuals[n-1]
	}
	return report{
		Vertices:   vertices,
		Edges:      edges,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Residual:   residual,
		Ranks:      res.Top(top),
	}
}

// writeReport renders rep in the requested format.
func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(rep)
	case config.FormatTable, "":
		return writeTable(w, rep)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tVERTEX\tRANK")
	for i, r := range rep.Ranks {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i+1, r.ID, r.Rank)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	status := "converged"
	if !rep.Converged {
		status = "NOT converged"
	}
	fmt.Fprintf(w, "\n%d vertices, %d edges, %s after %d iterations (residual %.3g)\n",
		rep.Vertices, rep.Edges, status, rep.Iterations, rep.Residual)
	if v := rep.Verify; v != nil {
		verdict := "ok"
		if !v.OK {
			verdict = "FAILED"
		}
		fmt.Fprintf(w, "gonum reference: max deviation %.3g (tolerance %.3g) %s\n", v.MaxDeviation, v.Tolerance, verdict)
	}

	return nil
}

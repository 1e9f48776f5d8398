// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_complete.go - complete directed graph fixture.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n = 1 is a single isolated vertex.
//   - Edges for every ordered pair (i,j), i ≠ j, emitted i asc then j asc.
//     No self-loops, so the fixture also works on graphs built WithoutLoops.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, methodComplete, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

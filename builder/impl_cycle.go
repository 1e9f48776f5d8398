// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_cycle.go - directed ring fixture.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n = 2 gives the 2-cycle 0⇄1.
//   - Vertices idFn(0..n-1) in ascending order, edges i → (i+1) mod n in ascending i.
//   - Every vertex has in- and out-degree 1, so PageRank is uniform (1/n).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed n-cycle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodCycle, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_path.go - directed path fixture.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges 0 → 1 → … → n-1; the tail idFn(n-1) is the only dangling vertex
//     and the head idFn(0) receives teleport mass only.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

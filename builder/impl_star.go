// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_star.go - directed in-star fixture.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub vertex with the fixed ID CenterVertexID, leaves idFn(1..n-1).
//   - Spokes point leaf → Center only, so the hub is dangling and every leaf
//     has out-degree 1. The hub collects the largest rank.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// CenterVertexID is the hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves
// linking into it.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", methodStar, CenterVertexID, ErrConstructFailed, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, cfg.idFn(i), CenterVertexID); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// helpers.go - shared vertex/edge emission used by every fixture.
//
// Core failures are wrapped twice: ErrConstructFailed for callers that only
// care that a fixture broke, and the core sentinel (e.g. core.ErrLoopNotAllowed)
// for callers that need the cause.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// addVertices inserts idFn(0..n-1) in ascending index order.
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge inserts u→v with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

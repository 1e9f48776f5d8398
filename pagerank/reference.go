// SPDX-License-Identifier: MIT
//
// File: reference.go
// Role: Independent cross-check against gonum's network.PageRank.
//
// gonum builds a dense damped matrix, starts from a random vector and stops on
// the 2-norm of the difference, but models dangling vertices the same way
// (uniform column), so both engines share one fixed point.

package pagerank

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvrank/core"
)

// Reference computes PageRank for g with gonum's implementation.
//
// Vertex i of the lexicographic order becomes gonum node i. Self-loops are
// rejected with ErrReferenceLoops because simple.DirectedGraph cannot hold them.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, invalid damping/tolerance (ErrInvalidParameter).
//   - ErrReferenceLoops.
//
// Complexity:
//   - Time O(V²) per iteration (dense matrix), Space O(V²).
func Reference(g *core.Graph, damping, tolerance float64) (map[string]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrGraphNil)
	}
	o := DefaultOptions()
	o.Damping, o.Tolerance = damping, tolerance
	if err := o.validate(); err != nil {
		return nil, err
	}

	adj := g.AdjacencyList()
	if len(adj) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrEmptyGraph)
	}
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	index := make(map[string]int64, len(ids))
	dg := simple.NewDirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, from := range ids {
		for _, to := range adj[from] {
			if from == to {
				return nil, fmt.Errorf("%w: vertex %q", ErrReferenceLoops, from)
			}
			dg.SetEdge(simple.Edge{F: simple.Node(index[from]), T: simple.Node(index[to])})
		}
	}

	scores := network.PageRank(dg, damping, tolerance)
	out := make(map[string]float64, len(scores))
	for nid, r := range scores {
		out[ids[nid]] = r
	}

	return out, nil
}

// MaxDeviation returns the largest absolute per-vertex difference between two
// rank maps. A vertex present in only one map yields +Inf.
func MaxDeviation(a, b map[string]float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var worst float64
	for id, ra := range a {
		rb, ok := b[id]
		if !ok {
			return math.Inf(1)
		}
		worst = math.Max(worst, math.Abs(ra-rb))
	}

	return worst
}

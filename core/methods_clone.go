// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the graph: same flags, vertices and edges.
// The clone shares no maps with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph(WithCapacity(len(g.vertices)))
	c.allowLoops = g.allowLoops
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
		ensureAdjacency(c, id)
	}
	for from, nbrs := range g.out {
		for to := range nbrs {
			c.out[from][to] = struct{}{}
			c.in[to][from] = struct{}{}
		}
	}
	c.edgeCount = g.edgeCount

	return c
}

// Clear removes all vertices and edges but preserves the loop policy.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]struct{})
	g.out = make(map[string]map[string]struct{})
	g.in = make(map[string]map[string]struct{})
	g.edgeCount = 0
}

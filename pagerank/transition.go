// SPDX-License-Identifier: MIT
//
// File: transition.go
// Role: Sparse column-stochastic transition operator M built from a core.Graph.
//
// Layout:
//   - Row i of M is stored as the list of in-neighbours j (edge j→i) in CSR form:
//     inIdx[inPtr[i]:inPtr[i+1]], ascending j.
//   - invOut[j] = 1/outDeg(j) for non-dangling j, 0 otherwise.
//   - Dangling columns (outDeg 0) are kept as an index list; their conceptual
//     entries are 1/N in every row and are never materialised.
//
// Determinism:
//   - Vertex index = position in lexicographic ID order.
//   - Each row is summed in ascending in-neighbour order whatever the worker count.

package pagerank

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvrank/core"
)

// minRowsPerWorker keeps tiny graphs on the sequential path; goroutine setup
// costs more than a few hundred row sums.
const minRowsPerWorker = 512

// Transition is the sparse O(N+E) representation of the column-stochastic matrix M.
// It is immutable after construction and safe for concurrent reads.
type Transition struct {
	ids      []string
	index    map[string]int
	inPtr    []int
	inIdx    []int
	outDeg   []int
	invOut   []float64
	dangling []int
}

// NewTransition snapshots g and builds its transition operator.
//
// Implementation:
//   - Stage 1: Take one consistent AdjacencyList() snapshot; sort the vertex IDs.
//   - Stage 2: Count in-degrees per row, prefix-sum into inPtr.
//   - Stage 3: Scatter j into the rows of its out-neighbours, j ascending.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph (both joined with ErrInvalidParameter).
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func NewTransition(g *core.Graph) (*Transition, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrGraphNil)
	}
	adj := g.AdjacencyList()
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, ErrEmptyGraph)
	}

	t := &Transition{
		ids:    make([]string, 0, n),
		index:  make(map[string]int, n),
		inPtr:  make([]int, n+1),
		outDeg: make([]int, n),
		invOut: make([]float64, n),
	}
	for id := range adj {
		t.ids = append(t.ids, id)
	}
	sort.Strings(t.ids)
	for i, id := range t.ids {
		t.index[id] = i
	}

	// Stage 2: out-degrees and per-row counts.
	edges := 0
	for j, id := range t.ids {
		nbrs := adj[id]
		t.outDeg[j] = len(nbrs)
		if len(nbrs) == 0 {
			t.dangling = append(t.dangling, j)
			continue
		}
		t.invOut[j] = 1 / float64(len(nbrs))
		for _, to := range nbrs {
			t.inPtr[t.index[to]+1]++
		}
		edges += len(nbrs)
	}
	for i := 0; i < n; i++ {
		t.inPtr[i+1] += t.inPtr[i]
	}

	// Stage 3: fill rows; iterating j ascending keeps every row sorted.
	t.inIdx = make([]int, edges)
	fill := make([]int, n)
	copy(fill, t.inPtr[:n])
	for j, id := range t.ids {
		for _, to := range adj[id] {
			i := t.index[to]
			t.inIdx[fill[i]] = j
			fill[i]++
		}
	}

	return t, nil
}

// Len returns N, the number of vertices.
func (t *Transition) Len() int { return len(t.ids) }

// EdgeCount returns the number of stored (non-dangling) entries.
func (t *Transition) EdgeCount() int { return len(t.inIdx) }

// IDs returns a copy of the index → vertex ID lookup.
func (t *Transition) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Index returns the position of id in the node ordering.
func (t *Transition) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// OutDegree returns the out-degree of the vertex at index j.
func (t *Transition) OutDegree(j int) int { return t.outDeg[j] }

// Dangling returns a copy of the indices of vertices without out-edges, ascending.
func (t *Transition) Dangling() []int {
	out := make([]int, len(t.dangling))
	copy(out, t.dangling)
	return out
}

// InNeighbors returns a copy of the indices j with an edge j→i, ascending.
func (t *Transition) InNeighbors(i int) []int {
	row := t.inIdx[t.inPtr[i]:t.inPtr[i+1]]
	out := make([]int, len(row))
	copy(out, row)
	return out
}

// At returns the conceptual entry M[i][j]: 1/outDeg(j) if j→i, 1/N if j is
// dangling, 0 otherwise.
// Complexity: O(log in(i)).
func (t *Transition) At(i, j int) float64 {
	if t.outDeg[j] == 0 {
		return 1 / float64(len(t.ids))
	}
	row := t.inIdx[t.inPtr[i]:t.inPtr[i+1]]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return t.invOut[j]
	}
	return 0
}

// Dense materialises M as an N×N gonum matrix, dangling columns included.
// Intended for inspection and small graphs: it costs O(N²) memory.
func (t *Transition) Dense() *mat.Dense {
	n := len(t.ids)
	m := mat.NewDense(n, n, nil)
	uniform := 1 / float64(n)
	for _, j := range t.dangling {
		for i := 0; i < n; i++ {
			m.Set(i, j, uniform)
		}
	}
	for i := 0; i < n; i++ {
		for _, j := range t.inIdx[t.inPtr[i]:t.inPtr[i+1]] {
			m.Set(i, j, t.invOut[j])
		}
	}

	return m
}

// step writes next = (1-d)/N·1 + d·M·v.
//
// The teleport term (1-d)/N and the dangling share d·Σ_dangling v[j]/N are
// kept as separate terms; uniformDangling=false drops only the latter.
func (t *Transition) step(next, v []float64, d float64, uniformDangling bool, workers int) {
	n := len(t.ids)
	teleport := (1 - d) / float64(n)

	var danglingShare float64
	if uniformDangling {
		var mass float64
		for _, j := range t.dangling {
			mass += v[j]
		}
		danglingShare = d * mass / float64(n)
	}

	if workers > n/minRowsPerWorker {
		workers = n / minRowsPerWorker
	}
	if workers <= 1 {
		t.rows(next, v, 0, n, d, teleport, danglingShare)
		return
	}

	var eg errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		eg.Go(func() error {
			t.rows(next, v, lo, hi, d, teleport, danglingShare)
			return nil
		})
	}
	_ = eg.Wait() // row workers never fail
}

// rows computes next[lo:hi]; each row touches only its own output slot.
func (t *Transition) rows(next, v []float64, lo, hi int, d, teleport, danglingShare float64) {
	for i := lo; i < hi; i++ {
		var s float64
		for _, j := range t.inIdx[t.inPtr[i]:t.inPtr[i+1]] {
			s += v[j] * t.invOut[j]
		}
		next[i] = teleport + danglingShare + d*s
	}
}

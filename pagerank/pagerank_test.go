// SPDX-License-Identifier: MIT
// Package pagerank_test verifies Compute: parameter validation, the
// probability-vector invariants, convergence behaviour and determinism.

package pagerank_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/stretchr/testify/require"
)

func TestCompute_InvalidParameters(t *testing.T) {
	g := newWebGraph(t)
	cases := []struct {
		name string
		opts []pagerank.Option
	}{
		{"damping zero", []pagerank.Option{pagerank.WithDamping(0)}},
		{"damping one", []pagerank.Option{pagerank.WithDamping(1)}},
		{"damping negative", []pagerank.Option{pagerank.WithDamping(-0.5)}},
		{"damping NaN", []pagerank.Option{pagerank.WithDamping(math.NaN())}},
		{"tolerance zero", []pagerank.Option{pagerank.WithTolerance(0)}},
		{"tolerance negative", []pagerank.Option{pagerank.WithTolerance(-1e-6)}},
		{"tolerance NaN", []pagerank.Option{pagerank.WithTolerance(math.NaN())}},
		{"tolerance Inf", []pagerank.Option{pagerank.WithTolerance(math.Inf(1))}},
		{"iterations zero", []pagerank.Option{pagerank.WithMaxIterations(0)}},
		{"workers zero", []pagerank.Option{pagerank.WithWorkers(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pagerank.Compute(g, tc.opts...)
			require.ErrorIs(t, err, pagerank.ErrInvalidParameter)
			require.Nil(t, res)
		})
	}
}

func TestCompute_NilAndEmptyGraph(t *testing.T) {
	_, err := pagerank.Compute(nil)
	require.ErrorIs(t, err, pagerank.ErrInvalidParameter)
	require.ErrorIs(t, err, pagerank.ErrGraphNil)

	_, err = pagerank.Compute(core.NewGraph())
	require.ErrorIs(t, err, pagerank.ErrInvalidParameter)
	require.ErrorIs(t, err, pagerank.ErrEmptyGraph)

	// A nil graph is reported even when the options are invalid too.
	_, err = pagerank.Compute(nil, pagerank.WithDamping(2))
	require.ErrorIs(t, err, pagerank.ErrGraphNil)
}

func TestCompute_WebGraph(t *testing.T) {
	res, err := pagerank.Compute(newWebGraph(t))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.NoError(t, res.Err())

	require.InDelta(t, 1.0, sum(res.Ranks), sumTolerance)
	require.InDelta(t, webRankA, res.Ranks[pageA], fixedPointSlop)
	require.InDelta(t, webRankB, res.Ranks[pageB], fixedPointSlop)
	require.InDelta(t, webRankB, res.Ranks[pageC], fixedPointSlop)

	// B and C have identical in-neighbourhoods, so their ranks tie exactly.
	require.Equal(t, res.Ranks[pageB], res.Ranks[pageC])
	require.Greater(t, res.Ranks[pageA], res.Ranks[pageC])

	require.Equal(t, []string{pageA, pageB, pageC}, res.Order)
	require.Len(t, res.Residuals, res.Iterations)
	require.Less(t, res.Residuals[len(res.Residuals)-1], pagerank.DefaultTolerance)
}

func TestCompute_ProbabilityVector(t *testing.T) {
	graphs := map[string]*core.Graph{
		"web":      newWebGraph(t),
		"ring":     newRing(t, 7),
		"isolated": newIsolated(t, 5),
		"random":   newRandomGraph(t, 200, 0.02, 42),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			res, err := pagerank.Compute(g)
			require.NoError(t, err)
			require.Len(t, res.Ranks, g.VertexCount())
			require.InDelta(t, 1.0, sum(res.Ranks), sumTolerance)
			for id, r := range res.Ranks {
				require.GreaterOrEqual(t, r, 0.0, "rank of %s", id)
			}
		})
	}
}

func TestCompute_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(pageA))
	res, err := pagerank.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Ranks[pageA], 1e-12)
	require.True(t, res.Converged)

	require.NoError(t, g.AddEdge(pageA, pageA))
	res, err = pagerank.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Ranks[pageA], 1e-12)
}

func TestCompute_SymmetricGraphsAreUniform(t *testing.T) {
	for _, g := range []*core.Graph{newRing(t, 4), newIsolated(t, 4)} {
		res, err := pagerank.Compute(g)
		require.NoError(t, err)
		require.True(t, res.Converged)
		require.Equal(t, 1, res.Iterations)
		for _, r := range res.Vector {
			require.InDelta(t, 0.25, r, 1e-12)
		}
	}
}

func TestCompute_SelfLoopCountsAsOutEdge(t *testing.T) {
	g := newWebGraph(t)
	require.NoError(t, g.AddEdge(pageB, pageB))
	res, err := pagerank.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, sum(res.Ranks), sumTolerance)
	// B keeps its own mass instead of spreading it, so it now outranks C.
	require.Greater(t, res.Ranks[pageB], res.Ranks[pageC])
}

func TestCompute_NonConvergenceIsAdvisory(t *testing.T) {
	res, err := pagerank.Compute(newWebGraph(t), pagerank.WithMaxIterations(1))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.ErrorIs(t, res.Err(), pagerank.ErrNonConvergence)

	require.Len(t, res.Ranks, 3)
	require.InDelta(t, 1.0, sum(res.Ranks), sumTolerance)
}

func TestCompute_ResidualsNonIncreasing(t *testing.T) {
	res, err := pagerank.Compute(newRandomGraph(t, 300, 0.01, 7),
		pagerank.WithTolerance(1e-12), pagerank.WithMaxIterations(1000))
	require.NoError(t, err)
	require.True(t, res.Converged)
	for k := 1; k < len(res.Residuals); k++ {
		require.LessOrEqual(t, res.Residuals[k], res.Residuals[k-1]+1e-14, "iteration %d", k+1)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, err := pagerank.Compute(newRandomGraph(t, 150, 0.03, 3))
	require.NoError(t, err)
	b, err := pagerank.Compute(newRandomGraph(t, 150, 0.03, 3))
	require.NoError(t, err)
	require.Equal(t, a.Vector, b.Vector)
	require.Equal(t, a.Order, b.Order)
	require.Equal(t, a.Iterations, b.Iterations)
}

func TestCompute_WorkersDoNotChangeResult(t *testing.T) {
	g := newRandomGraph(t, 2048, 0.002, 11)
	seq, err := pagerank.Compute(g, pagerank.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 4, 8, 64} {
		par, err := pagerank.Compute(g, pagerank.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, seq.Vector, par.Vector, "workers=%d", w)
		require.Equal(t, seq.Iterations, par.Iterations, "workers=%d", w)
	}
}

func TestCompute_DanglingRedistributionMatters(t *testing.T) {
	g := newWebGraph(t)
	with, err := pagerank.Compute(g)
	require.NoError(t, err)
	without, err := pagerank.Compute(g, pagerank.WithoutDanglingRedistribution())
	require.NoError(t, err)

	// Without redistribution B's mass leaks every step.
	require.Less(t, sum(without.Ranks), 1.0-1e-3)
	require.Greater(t, math.Abs(with.Ranks[pageA]-without.Ranks[pageA]), 1e-3)
}

func TestCompute_OnIterationAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seen []float64
	res, err := pagerank.Compute(newWebGraph(t),
		pagerank.WithMaxIterations(3),
		pagerank.WithLogger(logger),
		pagerank.WithOnIteration(func(iter int, residual float64) {
			require.Equal(t, len(seen)+1, iter)
			seen = append(seen, residual)
		}),
	)
	require.NoError(t, err)
	require.Equal(t, res.Residuals, seen)
	require.Contains(t, buf.String(), "pagerank iteration")
	require.Contains(t, buf.String(), "pagerank did not converge")
}

func TestCompute_NilOptionsIgnored(t *testing.T) {
	res, err := pagerank.Compute(newWebGraph(t), nil, pagerank.WithLogger(nil), pagerank.WithOnIteration(nil))
	require.NoError(t, err)
	require.True(t, res.Converged)
}

func TestResult_TopAndRank(t *testing.T) {
	res, err := pagerank.Compute(newWebGraph(t))
	require.NoError(t, err)

	top := res.Top(2)
	require.Len(t, top, 2)
	require.Equal(t, pageA, top[0].ID)
	require.Equal(t, pageB, top[1].ID, "ties resolve by ID")

	require.Len(t, res.Top(0), 3)
	require.Len(t, res.Top(10), 3)

	r, ok := res.Rank(pageC)
	require.True(t, ok)
	require.Equal(t, res.Ranks[pageC], r)
	_, ok = res.Rank("Z")
	require.False(t, ok)
}

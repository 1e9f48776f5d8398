// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and the Result type of the PageRank engine.

package pagerank

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Default parameters of Compute.
const (
	DefaultDamping       = 0.85
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
	DefaultWorkers       = 1
)

// Sentinel errors for PageRank execution.
var (
	// ErrInvalidParameter is returned before any computation when damping,
	// tolerance, iteration budget, worker count or the graph itself is invalid.
	ErrInvalidParameter = errors.New("pagerank: invalid parameter")

	// ErrGraphNil is returned (joined with ErrInvalidParameter) for a nil graph.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph is returned (joined with ErrInvalidParameter) for a graph without vertices.
	ErrEmptyGraph = errors.New("pagerank: graph has no vertices")

	// ErrNonConvergence is advisory: the iteration budget ran out before the L1
	// distance between successive vectors dropped below the tolerance. Compute
	// still returns the last vector; Result.Err reports this value.
	ErrNonConvergence = errors.New("pagerank: iteration budget exhausted before convergence")

	// ErrReferenceLoops is returned by Reference for graphs with self-loops,
	// which gonum simple graphs cannot represent.
	ErrReferenceLoops = errors.New("pagerank: reference implementation does not accept self-loops")
)

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the parameters of one PageRank run.
type Options struct {
	// Damping is the probability of following an out-edge; 1-Damping is the
	// teleport probability. Must lie in (0,1).
	Damping float64

	// MaxIterations bounds the number of power-iteration steps. Must be ≥ 1.
	MaxIterations int

	// Tolerance is the L1 distance below which two successive vectors are
	// considered converged. Must be finite and > 0.
	Tolerance float64

	// Workers is the number of goroutines sharing the rows of one
	// matrix-vector product. Must be ≥ 1; 1 means fully sequential.
	Workers int

	// Logger receives one debug record per iteration and a warning on
	// non-convergence. nil disables logging.
	Logger *slog.Logger

	// OnIteration is called after every iteration with its 1-based index and
	// the L1 residual.
	OnIteration func(iter int, residual float64)

	// danglingUniform spreads the mass of dangling vertices over all vertices.
	// Only tests switch it off.
	danglingUniform bool
}

// DefaultOptions returns Options with the canonical parameters:
// damping 0.85, 100 iterations, tolerance 1e-6, one worker, no logger, no-op hook.
func DefaultOptions() Options {
	return Options{
		Damping:         DefaultDamping,
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		Workers:         DefaultWorkers,
		OnIteration:     func(int, float64) {},
		danglingUniform: true,
	}
}

// WithDamping sets the damping factor d ∈ (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithMaxIterations sets the iteration budget (≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the L1 convergence threshold (> 0).
func WithTolerance(eps float64) Option {
	return func(o *Options) { o.Tolerance = eps }
}

// WithWorkers sets how many goroutines split the rows of each iteration.
// Results do not depend on the value.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers an observer called after every iteration. nil is ignored.
func WithOnIteration(fn func(iter int, residual float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// validate checks every parameter; comparisons are written so that NaN fails.
func (o *Options) validate() error {
	switch {
	case !(o.Damping > 0 && o.Damping < 1):
		return fmt.Errorf("%w: damping %v not in (0,1)", ErrInvalidParameter, o.Damping)
	case o.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidParameter, o.MaxIterations)
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 1):
		return fmt.Errorf("%w: tolerance %v must be finite and > 0", ErrInvalidParameter, o.Tolerance)
	case o.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidParameter, o.Workers)
	}

	return nil
}

// Ranked pairs a vertex with its rank.
type Ranked struct {
	ID   string  `json:"id" yaml:"id" toml:"id"`
	Rank float64 `json:"rank" yaml:"rank" toml:"rank"`
}

// Result holds the outcome of a PageRank run.
//   - Ranks: vertex ID → rank; ranks are non-negative and sum to ~1.
//   - Order: index → vertex ID (lexicographic); Vector[i] is the rank of Order[i].
//   - Iterations: number of power-iteration steps performed.
//   - Converged: whether the L1 residual dropped below the tolerance.
//   - Residuals: L1 distance between successive vectors, one entry per iteration.
type Result struct {
	Ranks      map[string]float64
	Order      []string
	Vector     []float64
	Iterations int
	Converged  bool
	Residuals  []float64
}

// Rank returns the rank of id and whether id was part of the graph.
func (r *Result) Rank(id string) (float64, bool) {
	v, ok := r.Ranks[id]
	return v, ok
}

// Err reports ErrNonConvergence when the run exhausted its budget, nil otherwise.
// The ranks are usable either way.
func (r *Result) Err() error {
	if r.Converged {
		return nil
	}
	return fmt.Errorf("%w after %d iterations (last residual %g)", ErrNonConvergence, r.Iterations, r.lastResidual())
}

// Top returns the k highest-ranked vertices, ties broken by ID ascending.
// k ≤ 0 or k > N returns all vertices.
func (r *Result) Top(k int) []Ranked {
	out := make([]Ranked, len(r.Order))
	for i, id := range r.Order {
		out[i] = Ranked{ID: id, Rank: r.Vector[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank > out[j].Rank
		}
		return out[i].ID < out[j].ID
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}

func (r *Result) lastResidual() float64 {
	if len(r.Residuals) == 0 {
		return math.NaN()
	}
	return r.Residuals[len(r.Residuals)-1]
}

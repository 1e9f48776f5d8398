// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w ("<Method>: n=1 < min=2: <sentinel>").
//   - Validation order: size first, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the fixture minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1] (or NaN).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core.Graph rejection
// (e.g. a self-loop on a graph built WithoutLoops) while building.
var ErrConstructFailed = errors.New("builder: construction failed")

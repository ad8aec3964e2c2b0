// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidProbability indicates that an edge probability lies outside the
// closed interval [0, 1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates that a constructor could not be applied,
// including the nil-constructor programmer error caught by BuildGraph.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapping */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT
// Package: vicinity/builder

// Package builder provides reusable “functional-options”-style building blocks
// for assembling deterministic graph fixtures. It lives alongside core to
// centralize ID schemes, weight policies, and validation logic so tests,
// examples, and benchmarks stay DRY and reproducible.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG, vertex-ID scheme, and weight function.
//   - Topology constructors (each returns a Constructor):
//     – Path(n):     simple chain 0—1—…—(n-1), n ≥ 2.
//     – Cycle(n):    ring 0—1—…—(n-1)—0, n ≥ 3.
//     – Complete(n): K_n, every unordered pair connected, n ≥ 2.
//     – Star(n):     hub "Center" with n-1 leaves, n ≥ 2.
//     – RandomSparse(n, p): Erdős–Rényi-like sampling, each admissible edge
//       included independently with probability p (RNG required for 0<p<1).
//   - Entry point:
//     – BuildGraph:  creates a core.Graph, applies every Constructor in order,
//       and wraps any failure with build context.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed: WithSeed(s) makes every weight
//     reproducible across runs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices / ErrConstructFailed
//     for invalid build parameters.
//   - Idempotent vertex insertion: constructors tolerate pre-seeded vertices.
//
// See individual constructor documentation for contracts and complexity notes.
package builder

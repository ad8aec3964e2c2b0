// Package vicinity is an in-memory toolkit for closeness-centrality
// analytics — ranking the vertices of a graph by how near they sit to
// everything else, and keeping those ranks fresh as edges come and go.
//
// 🚀 What is vicinity?
//
//	A compact, thread-safe library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversal: BFS with hooks, depth limits and hop-count distances
//		• Shortest paths: Dijkstra over non-negative integer weights
//		• Closeness: batch scores (Freeman / Wasserman–Faust) for one or all vertices
//		• Incremental closeness: update a score map after a single edge
//		  insertion or deletion without rescoring the whole graph
//		• Builders: deterministic path / cycle / star / complete / random-sparse fixtures
//
// ✨ Why choose vicinity?
//
//   - Small API, clear naming – one entry point per concern
//   - Rock-solid guarantees – R/W locks, sentinel errors, restore-on-exit
//   - Exact, never approximate – the incremental path is provably equal
//     to full recomputation; filtering only skips provably unchanged work
//
// Under the hood, everything is organized in five subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/       — breadth-first traversal & unweighted distance maps
//	dijkstra/  — single-source weighted distance maps
//	closeness/ — batch & incremental closeness centrality
//	builder/   — deterministic topology constructors for tests & benchmarks
//
// Quick ASCII example:
//
//	    1───2───3───4───5
//
//	a five-vertex path: vertex 3 is the most central (closeness 0.6667),
//	the endpoints the least. Insert edge (1,5) and only the vertices whose
//	distances could have moved are rescored.
//
//	go get github.com/katalvlaran/vicinity
package vicinity

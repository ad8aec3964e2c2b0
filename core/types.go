// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so you can safely mutate your graphs across
// goroutines with minimal contention.
//
// Graphs are simple: at most one edge joins an ordered pair of endpoints, and
// edges are addressed by those endpoints rather than by synthetic identifiers.
//
// This file declares Vertex, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrDuplicateEdge  - an edge already joins the given endpoints.
//	ErrBadWeight      - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an attempt to add a second edge between the
	// same endpoints. Core graphs are simple; parallel edges are rejected.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Endpoints run From→To; an undirected edge is stored once and mirrored in
// the adjacency index, so From/To preserve the order the edge was added in.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Always zero on unweighted graphs.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	// It always matches the directedness of the owning Graph.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted modes,
// plus optional self-loops. Parallel edges are never allowed.
// muVert protects vertices map; muEdgeAdj protects adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags
	directed   bool // edge directedness
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex

	// adjacency[(from)Vertex.ID][(to)Vertex.ID] = *Edge
	// Undirected edges appear under both orderings, sharing one *Edge.
	adjacency map[string]map[string]*Edge

	// edgeCount tracks distinct edges (mirrored entries counted once).
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges in this graph are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether the graph accepts non-zero edge weights.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

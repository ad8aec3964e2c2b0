package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/vicinity/bfs"
	"github.com/katalvlaran/vicinity/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// source vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	// weighted graph unsupported
	gW := core.NewGraph(core.WithWeighted())
	_ = gW.AddVertex("A")
	if _, err := bfs.BFS(gW, "A"); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Errorf("weighted graph: want ErrWeightedGraph, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	_ = g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("C", "D", 0)
	_ = g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Depth["A"], 0; got != want {
		t.Errorf("Depth[A] = %d; want %d", got, want)
	}
	for _, v := range []string{"B", "D"} {
		if got, want := res.Depth[v], 1; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if got, want := res.Depth["C"], 2; got != want {
		t.Errorf("Depth[C] = %d; want %d", got, want)
	}
}

// TestDistances_Disconnected ensures unreachable vertices are absent.
func TestDistances_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("C", "D", 0)

	dist, err := bfs.Distances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances(A) = %v; want %v", dist, want)
	}
}

// TestBFS_DirectedFollowsOrientation checks directed edges are one-way.
func TestBFS_DirectedFollowsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)

	dist, err := bfs.Distances(g, "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]int{"C": 0}; !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances(C) = %v; want %v (no backward traversal)", dist, want)
	}

	dist, err = bfs.Distances(core.ReversedView(g), "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]int{"C": 0, "B": 1, "A": 2}; !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances(reversed, C) = %v; want %v", dist, want)
	}
}

// TestBFS_MaxDepth verifies the depth cutoff.
func TestBFS_MaxDepth(t *testing.T) {
	// path A-B-C-D
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("C", "D", 0)

	dist, err := bfs.Distances(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dist["D"]; ok {
		t.Errorf("Depth[D] present despite MaxDepth=2: %v", dist)
	}
	if got, want := dist["C"], 2; got != want {
		t.Errorf("Depth[C] = %d; want %d", got, want)
	}
}

// TestBFS_FilterNeighbor verifies that filtered edges are never traversed.
func TestBFS_FilterNeighbor(t *testing.T) {
	// diamond: A-B, A-C, B-D, C-D
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("B", "D", 0)
	_ = g.AddEdge("C", "D", 0)

	// Block every edge touching C; D stays reachable through B only.
	dist, err := bfs.Distances(g, "A", bfs.WithFilterNeighbor(func(curr, neighbor string) bool {
		return curr != "C" && neighbor != "C"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]int{"A": 0, "B": 1, "D": 2}; !reflect.DeepEqual(dist, want) {
		t.Errorf("filtered Distances = %v; want %v", dist, want)
	}
}

// TestBFS_OnVisitAbort checks user hook errors propagate.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, depth int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestBFS_ContextCancel checks cancellation short-circuits the walk.
func TestBFS_ContextCancel(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo reconstructs shortest paths from parent links.
func TestResult_PathTo(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("A", "D", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err = res.PathTo("nope"); err == nil {
		t.Error("PathTo(missing) should fail")
	}
}

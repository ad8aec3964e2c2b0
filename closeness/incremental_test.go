package closeness_test

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/vicinity/bfs"
	"github.com/katalvlaran/vicinity/builder"
	"github.com/katalvlaran/vicinity/closeness"
	"github.com/katalvlaran/vicinity/core"
)

// edgeWeights snapshots g's edge set (with weights) for exact comparison.
func edgeWeights(g *core.Graph) map[[2]string]int64 {
	m := make(map[[2]string]int64)
	for _, e := range g.Edges() {
		m[[2]string{e.From, e.To}] = e.Weight
	}
	return m
}

// requireIntact fails the test when g's vertex or edge set drifted from
// the recorded snapshots.
func requireIntact(t *testing.T, g *core.Graph, vertices []string, edges map[[2]string]int64) {
	t.Helper()
	if got := g.Vertices(); !reflect.DeepEqual(got, vertices) {
		t.Fatalf("vertex set changed: got %v, want %v", got, vertices)
	}
	if got := edgeWeights(g); !reflect.DeepEqual(got, edges) {
		t.Fatalf("edge set changed: got %v, want %v", got, edges)
	}
}

func TestUpdate_Validation(t *testing.T) {
	ins := closeness.EdgeChange{From: "A", To: "B", Op: closeness.EdgeInserted}

	if _, err := closeness.Update(nil, ins, nil); !errors.Is(err, closeness.ErrGraphNil) {
		t.Errorf("Update(nil): error = %v, want ErrGraphNil", err)
	}

	directed := core.NewGraph(core.WithDirected(true))
	if _, err := closeness.Update(directed, ins, nil); !errors.Is(err, closeness.ErrDirectedGraph) {
		t.Errorf("Update(directed): error = %v, want ErrDirectedGraph", err)
	}

	g := pathGraph(t)
	vertices, edges := g.Vertices(), edgeWeights(g)

	// Cache missing a vertex.
	stale := map[string]float64{"1": 0, "2": 0, "3": 0, "4": 0}
	if _, err := closeness.Update(g, ins, stale); !errors.Is(err, closeness.ErrStaleCache) {
		t.Errorf("Update(short cache): error = %v, want ErrStaleCache", err)
	}
	// Cache with a foreign vertex.
	stale["5"], stale["ghost"] = 0, 0
	delete(stale, "1")
	if _, err := closeness.Update(g, ins, stale); !errors.Is(err, closeness.ErrStaleCache) {
		t.Errorf("Update(foreign cache): error = %v, want ErrStaleCache", err)
	}
	requireIntact(t, g, vertices, edges)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}
	bogus := closeness.EdgeChange{From: "1", To: "5", Op: closeness.ChangeOp(99)}
	if _, err = closeness.Update(g, bogus, prev); !errors.Is(err, closeness.ErrOptionViolation) {
		t.Errorf("Update(bogus op): error = %v, want ErrOptionViolation", err)
	}
	requireIntact(t, g, vertices, edges)
}

func TestUpdate_FastPath(t *testing.T) {
	g := pathGraph(t)

	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "5", Op: closeness.EdgeInserted}, nil)
	if err != nil {
		t.Fatalf("Update(fast path): %v", err)
	}

	// Without a cache the change is permanent.
	if !g.HasEdge("1", "5") {
		t.Fatal("fast path did not apply the insertion permanently")
	}

	want, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}
	for id, c := range want {
		if !almostEqual(got[id], c) {
			t.Errorf("fast path diverges at %s: %v vs %v", id, got[id], c)
		}
	}
}

// TestUpdate_InsertReusesCenter pins the work filter: after inserting
// (1,5) into the path 1—2—3—4—5, vertex 3 sits at distance 2 from both
// endpoints, so its prior score must be copied, not recomputed. The
// cached value is deliberately poisoned to observe the copy.
func TestUpdate_InsertReusesCenter(t *testing.T) {
	g := pathGraph(t)
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}
	const poison = 0.4242
	prev["3"] = poison

	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "5", Op: closeness.EdgeInserted}, prev)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got["3"] != poison {
		t.Errorf("vertex 3 was recomputed (%v), want cached value carried over", got["3"])
	}

	// Every other vertex sits at |d_u - d_v| ≥ 2 and is rescored against
	// the changed graph, a 5-cycle where each vertex scores 4/6.
	for _, id := range []string{"1", "2", "4", "5"} {
		if !almostEqual(got[id], 4.0/6.0) {
			t.Errorf("vertex %s = %v, want %v (rescored on the 5-cycle)", id, got[id], 4.0/6.0)
		}
	}

	requireIntact(t, g, vertices, edges)
}

func TestUpdate_InsertEquivalence(t *testing.T) {
	g := pathGraph(t)
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}

	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "5", Op: closeness.EdgeInserted}, prev)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	requireIntact(t, g, vertices, edges)

	changed := g.Clone()
	if err = changed.AddEdge("1", "5", 0); err != nil {
		t.Fatalf("AddEdge(clone): %v", err)
	}
	want, err := closeness.Closeness(changed)
	if err != nil {
		t.Fatalf("Closeness(changed): %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("result size = %d, want %d", len(got), len(want))
	}
	for id, c := range want {
		if !almostEqual(got[id], c) {
			t.Errorf("insert equivalence broken at %s: %v vs %v", id, got[id], c)
		}
	}
}

func TestUpdate_DeleteEquivalence(t *testing.T) {
	// A cycle with a chord, so the deletion genuinely reroutes paths.
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "0"}, {"1", "4"},
	} {
		if err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", pair[0], pair[1], err)
		}
	}
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}

	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "4", Op: closeness.EdgeRemoved}, prev)
	if err != nil {
		t.Fatalf("Update(delete): %v", err)
	}
	requireIntact(t, g, vertices, edges)

	changed := g.Clone()
	if err = changed.RemoveEdge("1", "4"); err != nil {
		t.Fatalf("RemoveEdge(clone): %v", err)
	}
	want, err := closeness.Closeness(changed)
	if err != nil {
		t.Fatalf("Closeness(changed): %v", err)
	}
	for id, c := range want {
		if !almostEqual(got[id], c) {
			t.Errorf("delete equivalence broken at %s: %v vs %v", id, got[id], c)
		}
	}
}

// TestUpdate_RandomizedEquivalence cross-checks Update against a full
// recomputation on random graphs for both change kinds. Deletions get
// twice the trials: their filtering bound is the subtler one.
func TestUpdate_RandomizedEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1729))
	const (
		n      = 9
		trials = 60
	)

	for trial := 0; trial < trials; trial++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(int64(trial) + 1)},
			builder.RandomSparse(n, 0.35))
		if err != nil {
			t.Fatalf("trial %d: BuildGraph: %v", trial, err)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = strconv.Itoa(i)
		}
		var present, absent [][2]string
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasEdge(ids[i], ids[j]) {
					present = append(present, [2]string{ids[i], ids[j]})
				} else {
					absent = append(absent, [2]string{ids[i], ids[j]})
				}
			}
		}

		wantDelete := trial%3 != 2
		var ch closeness.EdgeChange
		switch {
		case wantDelete && len(present) > 0:
			pick := present[rng.Intn(len(present))]
			ch = closeness.EdgeChange{From: pick[0], To: pick[1], Op: closeness.EdgeRemoved}
		case len(absent) > 0:
			pick := absent[rng.Intn(len(absent))]
			ch = closeness.EdgeChange{From: pick[0], To: pick[1], Op: closeness.EdgeInserted}
		default:
			continue
		}

		prev, err := closeness.Closeness(g)
		if err != nil {
			t.Fatalf("trial %d: Closeness: %v", trial, err)
		}
		vertices, edges := g.Vertices(), edgeWeights(g)

		changed := g.Clone()
		if ch.Op == closeness.EdgeRemoved {
			err = changed.RemoveEdge(ch.From, ch.To)
		} else {
			err = changed.AddEdge(ch.From, ch.To, 0)
		}
		if err != nil {
			t.Fatalf("trial %d: apply to clone: %v", trial, err)
		}
		want, err := closeness.Closeness(changed)
		if err != nil {
			t.Fatalf("trial %d: Closeness(changed): %v", trial, err)
		}

		got, err := closeness.Update(g, ch, prev)
		if err != nil {
			t.Fatalf("trial %d: Update(%s %s—%s): %v", trial, ch.Op, ch.From, ch.To, err)
		}

		if len(got) != len(want) {
			t.Fatalf("trial %d: result size %d, want %d", trial, len(got), len(want))
		}
		for id, c := range want {
			if !almostEqual(got[id], c) {
				t.Fatalf("trial %d: %s %s—%s diverges at %s: %v vs %v",
					trial, ch.Op, ch.From, ch.To, id, got[id], c)
			}
		}
		requireIntact(t, g, vertices, edges)
	}
}

// TestUpdate_DeleteMirroredOrientation removes an edge addressed by the
// opposite orientation to the one it was stored with; the restore must
// bring back the stored orientation, not the change's.
func TestUpdate_DeleteMirroredOrientation(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}} {
		if err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", pair[0], pair[1], err)
		}
	}
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}

	// The stored edge is (3,1); the change addresses it as (1,3).
	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "3", Op: closeness.EdgeRemoved}, prev)
	if err != nil {
		t.Fatalf("Update(mirrored delete): %v", err)
	}
	requireIntact(t, g, vertices, edges)

	changed := g.Clone()
	if err = changed.RemoveEdge("1", "3"); err != nil {
		t.Fatalf("RemoveEdge(clone): %v", err)
	}
	want, err := closeness.Closeness(changed)
	if err != nil {
		t.Fatalf("Closeness(changed): %v", err)
	}
	for id, c := range want {
		if !almostEqual(got[id], c) {
			t.Errorf("mirrored delete diverges at %s: %v vs %v", id, got[id], c)
		}
	}
}

func TestUpdate_MutationErrorsPropagated(t *testing.T) {
	g := pathGraph(t)
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}

	// Duplicate insertion.
	dup := closeness.EdgeChange{From: "1", To: "2", Op: closeness.EdgeInserted}
	if _, err = closeness.Update(g, dup, prev); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("duplicate insert: error = %v, want core.ErrDuplicateEdge", err)
	}
	requireIntact(t, g, vertices, edges)

	// Removal of a nonexistent edge.
	miss := closeness.EdgeChange{From: "1", To: "4", Op: closeness.EdgeRemoved}
	if _, err = closeness.Update(g, miss, prev); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("missing remove: error = %v, want core.ErrEdgeNotFound", err)
	}
	requireIntact(t, g, vertices, edges)
}

// TestUpdate_RevertOnError forces a traversal failure after the mutation
// already took effect and verifies the edge comes back with its weight.
func TestUpdate_RevertOnError(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddEdge("A", "B", 7); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("B", "C", 3); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	vertices, edges := g.Vertices(), edgeWeights(g)

	// Keys match the graph, values are irrelevant for this path.
	prev := map[string]float64{"A": 0, "B": 0, "C": 0}

	del := closeness.EdgeChange{From: "A", To: "B", Op: closeness.EdgeRemoved}
	if _, err := closeness.Update(g, del, prev); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Fatalf("Update on weighted graph: error = %v, want bfs.ErrWeightedGraph", err)
	}

	requireIntact(t, g, vertices, edges)
	e, err := g.GetEdge("A", "B")
	if err != nil {
		t.Fatalf("edge A—B not restored: %v", err)
	}
	if e.Weight != 7 {
		t.Errorf("restored weight = %d, want 7", e.Weight)
	}
}

// TestUpdate_InsertNewVertexRejected: the endpoint distances for an
// insertion are measured before the edge exists, so an endpoint absent
// from the graph fails there, prior to any mutation.
func TestUpdate_InsertNewVertexRejected(t *testing.T) {
	g := pathGraph(t)
	vertices, edges := g.Vertices(), edgeWeights(g)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}

	ch := closeness.EdgeChange{From: "1", To: "X", Op: closeness.EdgeInserted}
	if _, err = closeness.Update(g, ch, prev); !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Errorf("insert to unknown vertex: error = %v, want bfs.ErrSourceNotFound", err)
	}
	requireIntact(t, g, vertices, edges)
}

func TestUpdate_PrevNotMutated(t *testing.T) {
	g := pathGraph(t)

	prev, err := closeness.Closeness(g)
	if err != nil {
		t.Fatalf("Closeness: %v", err)
	}
	snapshot := make(map[string]float64, len(prev))
	for k, v := range prev {
		snapshot[k] = v
	}

	got, err := closeness.Update(g, closeness.EdgeChange{From: "1", To: "5", Op: closeness.EdgeInserted}, prev)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !reflect.DeepEqual(prev, snapshot) {
		t.Error("Update mutated the caller's previous result")
	}
	got["1"] = -1 // the returned map must be freshly allocated
	if prev["1"] == -1 {
		t.Error("returned map aliases the previous result")
	}
}

func TestChangeOp_String(t *testing.T) {
	if closeness.EdgeInserted.String() != "insert" {
		t.Errorf("EdgeInserted.String() = %q", closeness.EdgeInserted.String())
	}
	if closeness.EdgeRemoved.String() != "remove" {
		t.Errorf("EdgeRemoved.String() = %q", closeness.EdgeRemoved.String())
	}
	if got := closeness.ChangeOp(7).String(); got != "ChangeOp(7)" {
		t.Errorf("ChangeOp(7).String() = %q", got)
	}
}

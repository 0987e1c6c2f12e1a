package contour

import (
	"testing"

	"github.com/katalvlaran/tilecontour/boundary"
	"github.com/katalvlaran/tilecontour/gridkey"
)

// p is a test shorthand for PackPoint.
func p(x, y uint16) gridkey.PointKey { return gridkey.PackPoint(x, y) }

// edgeSetOf builds an EdgeSet from point pairs.
func edgeSetOf(pairs ...[2]gridkey.PointKey) boundary.EdgeSet {
	s := make(boundary.EdgeSet, len(pairs))
	for _, e := range pairs {
		s[gridkey.PackEdge(e[0], e[1])] = struct{}{}
	}

	return s
}

// newTracer wires a tracer over the given edges with a no-op discard hook.
func newTracer(edges boundary.EdgeSet) *tracer {
	return &tracer{
		edges:     edges,
		adj:       boundary.BuildAdjacency(edges),
		raw:       make([]gridkey.PointKey, 0, len(edges)+1),
		kept:      make([]gridkey.PointKey, 0, len(edges)+1),
		onDiscard: func(DiscardReason, int) {},
	}
}

//----------------------------------------------------------------------------//
// nextVertex priority Tests
//----------------------------------------------------------------------------//

// TestNextVertex_Priority walks the three candidate tiers at a degree-4
// point: straight ahead wins, then the positive-cross turn, then the
// remaining fallback, then failure.
func TestNextVertex_Priority(t *testing.T) {
	// Incoming direction at (1,1) is +x (prev (0,1) → cur (1,1)).
	prev, cur := p(0, 1), p(1, 1)
	straight, turn, fallbk := p(2, 1), p(1, 2), p(1, 0)

	tr := newTracer(edgeSetOf(
		[2]gridkey.PointKey{cur, straight},
		[2]gridkey.PointKey{cur, turn},
		[2]gridkey.PointKey{cur, fallbk},
	))

	for _, step := range []struct {
		name string
		want gridkey.PointKey
	}{
		{"Straight", straight},
		{"Turn", turn},
		{"Fallback", fallbk},
	} {
		next, ok := tr.nextVertex(prev, cur)
		if !ok || next != step.want {
			wx, wy := step.want.Unpack()
			nx, ny := next.Unpack()
			t.Fatalf("%s: nextVertex = (%d,%d), ok=%v; want (%d,%d)", step.name, nx, ny, ok, wx, wy)
		}
		// Consume the chosen edge so the next tier is exercised.
		delete(tr.edges, gridkey.PackEdge(cur, next))
	}

	if _, ok := tr.nextVertex(prev, cur); ok {
		t.Error("nextVertex succeeded with every edge consumed; want failure")
	}
}

// TestNextVertex_NoNeighbors fails cleanly for a point absent from the
// adjacency.
func TestNextVertex_NoNeighbors(t *testing.T) {
	tr := newTracer(edgeSetOf([2]gridkey.PointKey{p(0, 0), p(1, 0)}))
	if _, ok := tr.nextVertex(p(8, 8), p(9, 8)); ok {
		t.Error("nextVertex succeeded for an unknown point; want failure")
	}
}

//----------------------------------------------------------------------------//
// traceLoop Tests
//----------------------------------------------------------------------------//

// TestTraceLoop_ClosesSquare walks the four edges of a unit square back to
// the start and consumes all of them.
func TestTraceLoop_ClosesSquare(t *testing.T) {
	tr := newTracer(edgeSetOf(
		[2]gridkey.PointKey{p(0, 0), p(1, 0)},
		[2]gridkey.PointKey{p(1, 0), p(1, 1)},
		[2]gridkey.PointKey{p(1, 1), p(0, 1)},
		[2]gridkey.PointKey{p(0, 1), p(0, 0)},
	))

	if !tr.traceLoop(tr.minEdge()) {
		t.Fatal("traceLoop failed to close a plain square")
	}
	if len(tr.edges) != 0 {
		t.Errorf("edges remaining = %d; want 0", len(tr.edges))
	}
	if first, last := tr.raw[0], tr.raw[len(tr.raw)-1]; first != last {
		t.Errorf("raw loop open: first=%v last=%v", first, last)
	}
	if len(tr.raw) != 5 {
		t.Errorf("raw loop length = %d; want 5 (closed square)", len(tr.raw))
	}
}

// TestTraceLoop_DanglingChain discards an unclosable open chain, keeps the
// walked edges consumed, and reports a dead end to the hook.
func TestTraceLoop_DanglingChain(t *testing.T) {
	tr := newTracer(edgeSetOf(
		[2]gridkey.PointKey{p(0, 0), p(1, 0)},
		[2]gridkey.PointKey{p(1, 0), p(2, 0)},
	))
	var gotReason DiscardReason
	calls := 0
	tr.onDiscard = func(r DiscardReason, steps int) {
		gotReason = r
		calls++
		if steps < 1 {
			t.Errorf("discard steps = %d; want ≥ 1", steps)
		}
	}

	if tr.traceLoop(tr.minEdge()) {
		t.Fatal("traceLoop closed a dangling chain; want discard")
	}
	if calls != 1 || gotReason != DiscardDeadEnd {
		t.Errorf("discard hook: calls=%d reason=%v; want 1 call, %v", calls, gotReason, DiscardDeadEnd)
	}
	// No un-consuming: walked edges stay removed, so draining terminates.
	if len(tr.edges) != 0 {
		t.Errorf("edges remaining = %d; want 0 (consumed despite discard)", len(tr.edges))
	}
}

//----------------------------------------------------------------------------//
// minEdge Tests
//----------------------------------------------------------------------------//

// TestMinEdge returns the numerically smallest key regardless of insertion.
func TestMinEdge(t *testing.T) {
	edges := edgeSetOf(
		[2]gridkey.PointKey{p(5, 5), p(6, 5)},
		[2]gridkey.PointKey{p(0, 0), p(0, 1)},
		[2]gridkey.PointKey{p(0, 0), p(1, 0)},
		[2]gridkey.PointKey{p(2, 9), p(2, 8)},
	)
	tr := newTracer(edges)

	want := gridkey.PackEdge(p(0, 0), p(0, 1))
	if got := tr.minEdge(); got != want {
		t.Errorf("minEdge = %d; want %d", got, want)
	}
}

//----------------------------------------------------------------------------//
// direction / cross Tests
//----------------------------------------------------------------------------//

// TestDirection_Clamped confirms components clamp to {-1,0,1} even across
// multi-cell spans.
func TestDirection_Clamped(t *testing.T) {
	cases := []struct {
		name     string
		from, to gridkey.PointKey
		dx, dy   int
	}{
		{"UnitRight", p(1, 1), p(2, 1), 1, 0},
		{"UnitUp", p(1, 1), p(1, 2), 0, 1},
		{"FarLeft", p(9, 3), p(2, 3), -1, 0},
		{"Diagonal", p(0, 5), p(4, 0), 1, -1},
		{"Same", p(3, 3), p(3, 3), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := direction(tc.from, tc.to)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("direction = (%d,%d); want (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

package contour

import (
	"github.com/katalvlaran/tilecontour/boundary"
	"github.com/katalvlaran/tilecontour/gridkey"
)

// minSteps is the floor of the per-loop step budget.
const minSteps = 256

// tracer encapsulates the mutable state of one streaming invocation:
// the draining edge set, the read-only adjacency, and the scratch buffers
// reused for every loop.
type tracer struct {
	edges     boundary.EdgeSet
	adj       boundary.Adjacency
	raw       []gridkey.PointKey // current loop, first == last when closed
	kept      []gridkey.PointKey // simplification survivors
	onDiscard func(reason DiscardReason, steps int)
}

// sign clamps v to {-1, 0, 1}.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// direction returns the step vector from one lattice point toward another,
// components clamped to {-1, 0, 1}.
func direction(from, to gridkey.PointKey) (dx, dy int) {
	fx, fy := from.Unpack()
	tx, ty := to.Unpack()

	return sign(int(tx) - int(fx)), sign(int(ty) - int(fy))
}

// cross is the 2D signed cross product of two step vectors.
func cross(ax, ay, bx, by int) int {
	return ax*by - ay*bx
}

// minEdge returns the numerically smallest edge key still in the set.
// Seeding every loop from the smallest key makes the draining order — and
// with it each polygon's winding and the emission order — reproducible
// across runs, which randomized map enumeration would not be.
// Complexity: O(|edges|).
func (t *tracer) minEdge() gridkey.EdgeKey {
	var best gridkey.EdgeKey
	first := true
	for k := range t.edges {
		if first || k < best {
			best, first = k, false
		}
	}

	return best
}

// traceLoop walks one loop from the seed edge, consuming every edge it
// crosses, until the walk returns to its starting point. The closed loop
// is left in t.raw and true is returned. On a dead end or an exhausted
// step budget the partial loop is discarded and false is returned;
// consumed edges stay consumed either way, so draining always terminates.
func (t *tracer) traceLoop(seed gridkey.EdgeKey) bool {
	a, b := seed.Unpack()
	delete(t.edges, seed)

	t.raw = append(t.raw[:0], a, b)
	prev, cur, start := a, b, a

	// Each step consumes an edge, so 4× the remaining count is generous;
	// the cap only matters if the adjacency is malformed.
	budget := 4 * (len(t.edges) + 1)
	if budget < minSteps {
		budget = minSteps
	}

	steps := 0
	for cur != start {
		if steps++; steps > budget {
			t.onDiscard(DiscardStepBudget, steps)

			return false
		}
		next, ok := t.nextVertex(prev, cur)
		if !ok {
			t.onDiscard(DiscardDeadEnd, steps)

			return false
		}
		t.raw = append(t.raw, next)
		delete(t.edges, gridkey.PackEdge(cur, next))
		prev, cur = cur, next
	}

	return true
}

// nextVertex picks cur's successor among neighbors joined by an
// unconsumed edge, by priority:
//
//  1. Straight: the candidate's direction equals the incoming direction —
//     exact match, short-circuits the search.
//  2. Turn: a candidate whose direction has positive signed cross product
//     against the incoming direction.
//  3. Fallback: any remaining candidate.
//
// Unit-edge neighbors of a lattice point all lie in distinct directions
// and the backward edge was consumed on the previous step, so each tier
// holds at most one candidate and the choice is order-independent.
func (t *tracer) nextVertex(prev, cur gridkey.PointKey) (gridkey.PointKey, bool) {
	nbrs, ok := t.adj[cur]
	if !ok || len(nbrs) == 0 {
		return 0, false
	}
	ix, iy := direction(prev, cur)

	var turn, fallback gridkey.PointKey
	haveTurn, haveFallback := false, false
	for _, cand := range nbrs {
		if !t.edges.Contains(cur, cand) {
			continue
		}
		dx, dy := direction(cur, cand)
		switch {
		case dx == ix && dy == iy:
			return cand, true
		case cross(ix, iy, dx, dy) > 0:
			turn, haveTurn = cand, true
		case !haveFallback:
			fallback, haveFallback = cand, true
		}
	}
	if haveTurn {
		return turn, true
	}
	if haveFallback {
		return fallback, true
	}

	return 0, false
}

package boundary

import "github.com/katalvlaran/tilecontour/gridkey"

// ExposedEdges scans the grid once and returns the set of unique exposed
// edges: for every solid cell, each of its four sides bordering an empty
// cell or the grid boundary contributes the unit edge spanning that side,
// expressed as the two cell corners bounding it.
//
// Two adjacent solid cells never expose their shared side, and an edge
// generated from both of its bordering cells collapses to one canonical
// key, so the result holds exactly the exposed boundary, each edge once.
//
// The scan order does not affect the result (EdgeSet is a deduplicating
// set), which is what makes this stage safe to offload to a worker.
//
// Time: O(W×H). Memory: O(B), B = number of exposed edges.
func (g *Grid) ExposedEdges() EdgeSet {
	edges := make(EdgeSet)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == 0 {
				continue
			}
			// Cell corners: (x0,y0) top-left through (x1,y1) bottom-right.
			x0, y0 := uint16(x), uint16(y)
			x1, y1 := uint16(x+1), uint16(y+1)

			if !g.Solid(x, y-1) { // top side exposed
				edges.add(gridkey.PackPoint(x0, y0), gridkey.PackPoint(x1, y0))
			}
			if !g.Solid(x, y+1) { // bottom side exposed
				edges.add(gridkey.PackPoint(x0, y1), gridkey.PackPoint(x1, y1))
			}
			if !g.Solid(x-1, y) { // left side exposed
				edges.add(gridkey.PackPoint(x0, y0), gridkey.PackPoint(x0, y1))
			}
			if !g.Solid(x+1, y) { // right side exposed
				edges.add(gridkey.PackPoint(x1, y0), gridkey.PackPoint(x1, y1))
			}
		}
	}

	return edges
}

// add inserts the canonical edge between two points.
func (s EdgeSet) add(a, b gridkey.PointKey) {
	s[gridkey.PackEdge(a, b)] = struct{}{}
}

// Contains reports whether the canonical edge between a and b is present.
// Complexity: O(1).
func (s EdgeSet) Contains(a, b gridkey.PointKey) bool {
	_, ok := s[gridkey.PackEdge(a, b)]

	return ok
}

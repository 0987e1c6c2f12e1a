package boundary

// BuildAdjacency folds an edge set into a point → neighbor-points map:
// for every edge (a,b), b joins a's list and a joins b's.
//
// The map is built once from the full set and must be treated as read-only
// afterwards — it keeps reflecting the full topology while the tracer
// drains the EdgeSet. For edges derived from axis-aligned cell boundaries
// of a simple grid every point has exactly two neighbors; other degrees
// (T-junctions, dangling edges) are not rejected here — the tracer is
// required to tolerate them.
//
// Time: O(B). Memory: O(B), B = number of edges.
func BuildAdjacency(edges EdgeSet) Adjacency {
	adj := make(Adjacency, len(edges))
	for k := range edges {
		a, b := k.Unpack()
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	return adj
}

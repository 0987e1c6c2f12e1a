// Package gridkey packs 2D grid coordinates and undirected unit edges into
// compact integer keys for hashing, equality, and set membership.
//
// What
//
//   - PointKey: one uint32 holding a (x, y) lattice point, x in the high
//     16 bits, y in the low 16 bits.
//   - EdgeKey: one uint64 holding an undirected edge between two points,
//     with the numerically smaller PointKey always in the high half, so
//     PackEdge(a, b) == PackEdge(b, a) for every pair.
//   - Pure functions only: no state, no side effects, no failure modes.
//
// Why
//
//   - A map keyed by uint32/uint64 is the cheapest possible set and
//     adjacency representation for boundary tracing.
//   - Canonical edge keys deduplicate an edge emitted from both of its
//     bordering cells for free.
//   - Integer comparison of keys doubles as a total order on points
//     (x-major, then y), which downstream code uses for deterministic
//     edge selection.
//
// Range
//
//	Coordinates are uint16 by construction: [0, MaxCoord]. Enforcing grid
//	dimensions against MaxCoord is the caller's job (see boundary.NewGrid);
//	this package cannot receive an out-of-range value.
//
// Complexity
//
//	Every operation is O(1), branch-light, allocation-free.
package gridkey

// Package boundary extracts the exposed boundary of a tile grid as a set of
// canonical edge keys, and builds the point adjacency used for tracing.
//
// What
//
//   - Grid wraps a caller-owned row-major []byte of width×height cells;
//     any nonzero byte is solid, zero is empty. The grid is borrowed,
//     never copied, and only ever read.
//   - Grid.ExposedEdges scans every solid cell's four sides and emits the
//     unit edge wherever a side borders an empty cell or the grid boundary.
//     Canonical keys (gridkey.PackEdge) deduplicate shared sides for free,
//     so the result holds exactly the exposed boundary, each edge once.
//   - BuildAdjacency folds an EdgeSet into a Point → neighbor-points map,
//     built once and read-only during tracing.
//
// Why
//
//   - The exposed boundary is the whole input to contour tracing: interior
//     edges between two solid cells never appear, so what remains is the
//     outline of every region and every hole.
//   - Keeping extraction independent of all later stages makes it safe to
//     run off the calling goroutine (see contour.StreamPolygons).
//
// Complexity
//
//   - ExposedEdges:   O(W×H) time, O(B) memory (B = exposed edge count).
//   - BuildAdjacency: O(B) time and memory.
//
// Errors
//
//   - ErrEmptyGrid:         width or height below 1.
//   - ErrDimensionMismatch: len(cells) differs from width×height.
//   - ErrGridTooLarge:      a dimension exceeds gridkey.MaxCoord, so corner
//     coordinates would not fit 16 bits. Checked at construction; the
//     pipeline never silently truncates a coordinate.
package boundary

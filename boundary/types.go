// Package boundary defines the Grid input type, edge-set and adjacency
// collections, and sentinel errors for boundary extraction.
package boundary

import (
	"errors"

	"github.com/katalvlaran/tilecontour/gridkey"
)

// Sentinel errors for Grid construction.
var (
	// ErrEmptyGrid indicates width or height below one cell.
	ErrEmptyGrid = errors.New("boundary: grid must be at least 1×1")
	// ErrDimensionMismatch indicates len(cells) != width*height.
	ErrDimensionMismatch = errors.New("boundary: cell slice length must equal width*height")
	// ErrGridTooLarge indicates a dimension whose corner coordinates would
	// overflow 16 bits (gridkey.MaxCoord).
	ErrGridTooLarge = errors.New("boundary: grid dimension exceeds the 16-bit coordinate range")
)

// EdgeSet is the working set of not-yet-consumed exposed edges, keyed by
// canonical edge key. The contour tracer drains it; empty means done.
type EdgeSet map[gridkey.EdgeKey]struct{}

// Adjacency maps a lattice point to the points it shares an exposed edge
// with. Built once from the full EdgeSet, then read-only: it reflects the
// full topology even while the EdgeSet is drained.
type Adjacency map[gridkey.PointKey][]gridkey.PointKey

// Grid is a read-only view over a caller-owned, row-major tile array.
// Any nonzero cell byte is solid. The cell slice is borrowed, not copied:
// the caller must not mutate it for the lifetime of any operation using
// the Grid.
type Grid struct {
	width, height int
	cells         []byte
}

package boundary

import "github.com/katalvlaran/tilecontour/gridkey"

// NewGrid wraps a row-major cell slice as a validated Grid.
// The slice is borrowed as-is; no copy is made.
// Returns ErrEmptyGrid for width or height < 1,
// ErrDimensionMismatch when len(cells) != width*height,
// ErrGridTooLarge when a dimension exceeds gridkey.MaxCoord
// (cell corners range up to (width, height) and must fit 16 bits).
// Complexity: O(1).
func NewGrid(cells []byte, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width > gridkey.MaxCoord || height > gridkey.MaxCoord {
		return nil, ErrGridTooLarge
	}
	if len(cells) != width*height {
		return nil, ErrDimensionMismatch
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether cell (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Solid reports whether cell (x,y) holds a nonzero byte.
// Out-of-bounds cells report false, so callers can probe neighbors of
// border cells without their own bounds checks.
// Complexity: O(1).
func (g *Grid) Solid(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] != 0
}

package contour

import "github.com/katalvlaran/tilecontour/gridkey"

// simplify removes duplicate and collinear vertices from the closed loop
// held in t.raw, writing survivors into t.kept. Returns the survivor
// slice, or nil when the loop degenerates below three vertices.
//
// Steps:
//  1. Collapse consecutive duplicate vertices (in place).
//  2. Drop the explicit closing repeat (loops are stored open).
//  3. Fewer than three vertices left → degenerate, nil.
//  4. One circular pass: drop vertex b when the signed cross product of
//     (b-a) and (c-b) is exactly zero, with a and c taken from the
//     original sequence. This is one pass only, not iterated to a
//     fixpoint: dropping a collinear vertex can expose a new collinearity
//     between its former neighbors that the same call will not catch.
//  5. Fewer than three survivors → degenerate, nil.
//
// All arithmetic is exact: coordinates are 16-bit, so every delta and
// cross product fits comfortably in an int.
//
// Time: O(n). Memory: none beyond the reused scratch buffers.
func (t *tracer) simplify() []gridkey.PointKey {
	loop := t.raw

	// 1) Consecutive duplicates.
	w := 0
	for _, p := range loop {
		if w == 0 || loop[w-1] != p {
			loop[w] = p
			w++
		}
	}
	loop = loop[:w]

	// 2) Closing repeat.
	if len(loop) > 1 && loop[len(loop)-1] == loop[0] {
		loop = loop[:len(loop)-1]
	}

	// 3) Degenerate before the collinear pass.
	if len(loop) < 3 {
		return nil
	}

	// 4) Collinear vertices, one circular pass against original neighbors.
	n := len(loop)
	t.kept = t.kept[:0]
	for i := 0; i < n; i++ {
		ax, ay := loop[(i+n-1)%n].Unpack()
		bx, by := loop[i].Unpack()
		cx, cy := loop[(i+1)%n].Unpack()

		abx, aby := int(bx)-int(ax), int(by)-int(ay)
		bcx, bcy := int(cx)-int(bx), int(cy)-int(by)
		if cross(abx, aby, bcx, bcy) != 0 {
			t.kept = append(t.kept, loop[i])
		}
	}

	// 5) Degenerate after the collinear pass.
	if len(t.kept) < 3 {
		return nil
	}

	return t.kept
}

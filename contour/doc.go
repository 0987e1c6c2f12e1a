// Package contour traces the exposed boundary of a tile grid into closed,
// simplified polygons and streams them to a caller-supplied callback
// through a caller-owned buffer.
//
// What
//
//   - StreamPolygons is the single entry point: grid in, polygons out,
//     one synchronous callback per polygon.
//   - Tracing repeatedly pulls the smallest unconsumed edge and walks the
//     adjacency until the loop closes, consuming edges as it goes; the
//     edge set reaching empty ends the stage.
//   - At every vertex the successor is chosen by priority: straight ahead,
//     then the turn with positive cross product against the incoming
//     direction, then any remaining candidate — integer cross products
//     only, no angles, no trigonometry.
//   - Each closed loop is simplified in a single pass: consecutive
//     duplicates collapse, the closing repeat drops, exactly-collinear
//     vertices drop. Loops left with fewer than three vertices are
//     discarded.
//   - Emission writes vertices into the caller's buffer from index 0 and
//     invokes the callback with the valid-prefix length; the buffer is
//     reused for the next polygon.
//
// Why
//
//   - Collision shapes, destructible terrain, and networked or replayable
//     geometry need boundary polygons that are bit-for-bit repeatable.
//   - Grid corners and cross products stay in exact integer arithmetic,
//     so every decision is platform-independent.
//
// Determinism
//
//	Loops are seeded from the numerically smallest edge key, and the
//	candidate tiers at each vertex hold at most one point each, so two
//	calls on the same grid produce identical polygons — order, starting
//	vertex, and winding included.
//
// Concurrency
//
//	The boundary scan runs on one worker goroutine; awaiting it is the
//	pipeline's only suspension point and the only cancellation check.
//	Adjacency build, tracing, simplification, and emission then run
//	synchronously to completion. Every invocation owns its intermediate
//	state exclusively; no locking, no sharing.
//
// Allocation discipline
//
//	Scratch loop buffers are sized once per invocation (a loop can visit
//	at most every edge once) and reused for every polygon; output lands
//	in the caller's buffer. After the scan completes, producing a polygon
//	allocates nothing.
//
// Limitations
//
//   - Simplification is one pass, not a fixpoint: removing a collinear
//     vertex can expose a new collinearity between its former neighbors
//     that the same call will not catch.
//   - Malformed topology (dead ends, never-closing walks) is discarded
//     silently and tracing continues; use WithOnLoopDiscard to observe it.
//
// Usage
//
//	g, err := boundary.NewGrid(tiles, width, height)
//	if err != nil { ... }
//
//	buf := make([]contour.Coordinate, 64)
//	err = contour.StreamPolygons(g, buf, func(buf []contour.Coordinate, n int) error {
//	    use(buf[:n]) // valid only during this call
//	    return nil
//	})
//
// Options
//
//   - DefaultOptions(): background Context, no-op discard hook.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithOnLoopDiscard(fn):  observe discarded loops (reason, steps).
//
// Errors
//
//   - ErrNilGrid         if the grid pointer is nil.
//   - ErrNilCallback     if no callback is supplied.
//   - ErrBufferOverflow  if a polygon exceeds the output buffer (fatal).
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ctx.Err()          if cancellation fires before the scan completes.
//   - Any error returned by the polygon callback.
//
// Complexity (W×H grid, B exposed edges)
//
//   - Time:   O(W×H + B)
//   - Memory: O(B) for the edge set, adjacency, and scratch buffers.
package contour

package contour

import (
	"github.com/katalvlaran/tilecontour/boundary"
	"github.com/katalvlaran/tilecontour/gridkey"
)

// StreamPolygons traces the exposed boundary of g into closed, simplified
// polygons and hands each one to fn through the caller-provided buffer.
//
// The boundary scan runs on a worker goroutine; awaiting it is the single
// suspension point, and the only moment cancellation is checked. If the
// context is done before the scan completes, StreamPolygons waits for the
// in-flight scan to finish and returns ctx.Err() without tracing — once
// stitching begins, the pipeline runs to completion.
//
// buf is written from index 0 for every polygon and handed to fn with the
// valid-prefix length; its contents are only valid for the duration of
// that one call. A polygon larger than buf aborts the whole stream with
// ErrBufferOverflow before anything is written.
//
// All intermediate state (edge set, adjacency, loop scratch) is owned by
// this one invocation: concurrent calls are safe as long as they use
// independent grids and buffers. After the scan, no allocation happens
// per polygon — scratch buffers are sized once and reused.
//
// Returns ErrNilGrid, ErrNilCallback, ErrOptionViolation,
// ErrBufferOverflow, a context error on cancellation, or any error
// returned by fn. Malformed topology is not an error: unclosable loops
// are discarded and draining continues (observable via WithOnLoopDiscard).
//
// Time: O(W×H + B) for a grid with B exposed edges (each edge is
// extracted once, adjacency-linked once, and walked once).
func StreamPolygons(g *boundary.Grid, buf []Coordinate, fn PolygonFunc, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if fn == nil {
		return ErrNilCallback
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 1) Offload the grid scan; it depends on no pipeline state.
	scanned := make(chan boundary.EdgeSet, 1)
	go func() { scanned <- g.ExposedEdges() }()

	var edges boundary.EdgeSet
	select {
	case edges = <-scanned:
		// Cancellation that raced scan completion still takes priority.
		if err := o.Ctx.Err(); err != nil {
			return err
		}
	case <-o.Ctx.Done():
		// Let the in-flight scan finish so worker-owned memory settles.
		<-scanned

		return o.Ctx.Err()
	}

	// 2) Full topology, read-only from here on.
	adj := boundary.BuildAdjacency(edges)

	// 3) Drain the edge set into loops. A loop can visit at most every
	// edge once, so capacity len(edges)+1 guarantees the scratch buffers
	// never grow again.
	t := &tracer{
		edges:     edges,
		adj:       adj,
		raw:       make([]gridkey.PointKey, 0, len(edges)+1),
		kept:      make([]gridkey.PointKey, 0, len(edges)+1),
		onDiscard: o.OnLoopDiscard,
	}
	for len(t.edges) > 0 {
		if !t.traceLoop(t.minEdge()) {
			continue // discard hook already notified
		}
		poly := t.simplify()
		if poly == nil {
			t.onDiscard(DiscardDegenerate, len(t.raw))

			continue
		}
		if err := emit(buf, poly, fn); err != nil {
			return err
		}
	}

	return nil
}

// emit unpacks the surviving vertices into the caller's buffer and
// invokes the callback. Capacity is checked before any vertex is written:
// a truncated polygon would be geometrically wrong.
func emit(buf []Coordinate, poly []gridkey.PointKey, fn PolygonFunc) error {
	if len(poly) > len(buf) {
		return ErrBufferOverflow
	}
	for i, p := range poly {
		x, y := p.Unpack()
		buf[i] = Coordinate{X: float64(x), Y: float64(y)}
	}

	return fn(buf, len(poly))
}

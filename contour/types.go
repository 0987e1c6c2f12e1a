// Package contour defines the caller-visible coordinate type, streaming
// options, hooks, and sentinel errors for polygon streaming.
package contour

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for polygon streaming.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("contour: grid is nil")

	// ErrNilCallback is returned if no polygon callback is supplied.
	ErrNilCallback = errors.New("contour: polygon callback is nil")

	// ErrBufferOverflow is returned when a polygon needs more vertices than
	// the output buffer holds. The whole stream aborts: truncating would
	// hand the caller geometrically wrong polygon data.
	ErrBufferOverflow = errors.New("contour: polygon exceeds output buffer capacity")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("contour: invalid option supplied")
)

// Coordinate is one caller-visible polygon vertex in geometry space.
// Grid corners are integral; the float fields exist so callers can feed
// the output straight into physics or rendering math.
type Coordinate struct {
	X, Y float64
}

// PolygonFunc receives each non-degenerate polygon as it is produced.
// buf[0:n] holds the vertices in traced order; the slice is reused for the
// next polygon, so its contents are valid only for the duration of the
// call. Returning a non-nil error aborts the stream and propagates the
// error to the StreamPolygons caller.
type PolygonFunc func(buf []Coordinate, n int) error

// DiscardReason classifies why a traced loop was dropped instead of
// emitted. Dropped loops are a local recovery, never a stream error.
type DiscardReason int

const (
	// DiscardDeadEnd: a vertex had no unconsumed edge to continue through.
	DiscardDeadEnd DiscardReason = iota
	// DiscardStepBudget: the walk exceeded its step cap without closing.
	DiscardStepBudget
	// DiscardDegenerate: simplification left fewer than three vertices.
	DiscardDegenerate
)

// String names the reason for diagnostics.
func (r DiscardReason) String() string {
	switch r {
	case DiscardDeadEnd:
		return "dead-end"
	case DiscardStepBudget:
		return "step-budget"
	case DiscardDegenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("DiscardReason(%d)", int(r))
	}
}

// Option configures streaming behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when StreamPolygons is invoked.
type Option func(*StreamOptions)

// StreamOptions holds parameters and callbacks to customize streaming.
type StreamOptions struct {
	// Ctx allows cancellation, checked once: at the boundary-scan await.
	Ctx context.Context

	// OnLoopDiscard is called when a traced loop is dropped, with the
	// classification and the number of steps walked before dropping.
	// Malformed topology degrades silently unless this hook observes it.
	OnLoopDiscard func(reason DiscardReason, steps int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a StreamOptions with sane defaults:
//   - context.Background()
//   - no-op OnLoopDiscard hook
//   - error channel clear.
func DefaultOptions() StreamOptions {
	return StreamOptions{
		Ctx:           context.Background(),
		OnLoopDiscard: func(DiscardReason, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *StreamOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLoopDiscard registers a diagnostic callback for dropped loops.
func WithOnLoopDiscard(fn func(reason DiscardReason, steps int)) Option {
	return func(o *StreamOptions) {
		if fn != nil {
			o.OnLoopDiscard = fn
		}
	}
}

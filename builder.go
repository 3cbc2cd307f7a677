package track

import "slices"

// Builder accumulates control points placed one at a time into a chain of
// segments, the way a user draws a track by clicking.
//
// The first segment is complete after four points. Every later segment
// needs three, as it starts at the end of its predecessor.
//
// The zero value is ready to use and builds tracks of [DefaultWidth] with
// [DefaultPointsPerSegment] samples per segment.
type Builder struct {
	Width            float64
	PointsPerSegment int
	Mode             BoundaryMode

	segments []CubicBez
	pending  []Point
}

// NewBuilder returns a builder for tracks of the given width.
func NewBuilder(width float64, pointsPerSegment int) *Builder {
	return &Builder{Width: width, PointsPerSegment: pointsPerSegment}
}

// Needed returns the number of points required to complete the next
// segment.
func (b *Builder) Needed() int {
	if len(b.segments) == 0 {
		return 4
	}
	return 3
}

// Push adds a control point. It reports whether the point completed a
// segment.
func (b *Builder) Push(pt Point) bool {
	b.pending = append(b.pending, pt)
	if len(b.pending) < b.Needed() {
		return false
	}
	var seg CubicBez
	if len(b.segments) == 0 {
		seg = CubicBez{b.pending[0], b.pending[1], b.pending[2], b.pending[3]}
	} else {
		seg = Chain(b.segments[len(b.segments)-1], b.pending[0], b.pending[1], b.pending[2])
	}
	b.segments = append(b.segments, seg)
	b.pending = b.pending[:0]
	return true
}

// Undo removes the most recently pushed point that isn't yet part of a
// segment. Completed segments are never undone. It reports whether a point
// was removed.
func (b *Builder) Undo() bool {
	if len(b.pending) == 0 {
		return false
	}
	b.pending = b.pending[:len(b.pending)-1]
	return true
}

// Pending returns the points not yet part of a segment.
func (b *Builder) Pending() []Point {
	return slices.Clone(b.pending)
}

// Segments returns the completed segments.
func (b *Builder) Segments() []CubicBez {
	return slices.Clone(b.segments)
}

// Track builds the track from the completed segments. Pending points are
// ignored. It returns nil if no segment has been completed.
func (b *Builder) Track() *Track {
	if len(b.segments) == 0 {
		return nil
	}
	width := b.Width
	if width == 0 {
		width = DefaultWidth
	}
	n := b.PointsPerSegment
	if n == 0 {
		n = DefaultPointsPerSegment
	}
	return Build(b.Segments(), width, n, b.Mode)
}

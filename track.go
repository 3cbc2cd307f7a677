package track

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultWidth and DefaultPointsPerSegment are the settings the drawing tool
// uses unless configured otherwise.
const (
	DefaultWidth            = 5.0
	DefaultPointsPerSegment = 100
)

// Track is a drivable surface: a chain of cubic segments describing its
// centerline, its full lateral width, and the sampled left and right
// boundaries.
//
// For tracks produced by [Build], Left and Right have one point per
// centerline sample, that is, len(Segments) times the samples per segment.
type Track struct {
	Width    float64
	Segments []CubicBez
	Left     []Point
	Right    []Point
}

// Centerline samples every segment with n arc-length-uniform samples and
// concatenates the results. Segment boundaries are not deduplicated: the last
// sample of segment i and the first of segment i+1 are the same point.
func Centerline(segments []CubicBez, n int) (points, tangents []Point) {
	points = make([]Point, 0, len(segments)*max(n, 0))
	tangents = make([]Point, 0, len(segments)*max(n, 0))
	for _, seg := range segments {
		p, t := seg.SampleArclen(n)
		points = append(points, p...)
		tangents = append(tangents, t...)
	}
	return points, tangents
}

// Build samples the segments and computes the boundaries of a track of the
// given width.
func Build(segments []CubicBez, width float64, pointsPerSegment int, mode BoundaryMode) *Track {
	points, tangents := Centerline(segments, pointsPerSegment)
	left, right := BoundariesMode(points, tangents, width, mode)
	return &Track{
		Width:    width,
		Segments: segments,
		Left:     left,
		Right:    right,
	}
}

// BoundingBox returns the smallest rectangle enclosing all control points
// and boundary points. The zero Rect is returned for an empty track.
func (t *Track) BoundingBox() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = NewRectFromPoints(pt, pt)
			first = false
			return
		}
		r = r.UnionPoint(pt)
	}
	for _, seg := range t.Segments {
		bbox := seg.BoundingBox()
		add(Pt(bbox.X0, bbox.Y0))
		add(Pt(bbox.X1, bbox.Y1))
	}
	for _, pt := range t.Left {
		add(pt)
	}
	for _, pt := range t.Right {
		add(pt)
	}
	return r
}

// CumulativeLength returns the distance traveled along the left boundary up
// to each of its points. The first entry is 0.
func (t *Track) CumulativeLength() []float64 {
	if len(t.Left) == 0 {
		return nil
	}
	out := make([]float64, len(t.Left))
	for i := 1; i < len(t.Left); i++ {
		out[i] = out[i-1] + t.Left[i].Distance(t.Left[i-1])
	}
	return out
}

// Length returns the total length of the track, measured along its left
// boundary.
func (t *Track) Length() float64 {
	cl := t.CumulativeLength()
	if len(cl) == 0 {
		return 0
	}
	return cl[len(cl)-1]
}

// ValidationError lists the problems found by [Track.Validate].
type ValidationError struct {
	Problems []string

	discontinuous bool
}

func (e *ValidationError) Error() string {
	return "invalid track: " + strings.Join(e.Problems, "; ")
}

// Is reports whether target is [ErrDiscontinuous] and e lists a
// discontinuity.
func (e *ValidationError) Is(target error) bool {
	return target == ErrDiscontinuous && e.discontinuous
}

// ErrDiscontinuous matches, via [errors.Is], validation errors of tracks
// with segments that don't start where their predecessor ends.
var ErrDiscontinuous = errors.New("segments are not continuous")

// Validate checks the structural requirements a simulator places on a loaded
// track: a positive width, non-empty boundaries of equal length, and
// segments with finite control points that chain end to start. It does not
// check geometric properties such as self-intersection.
func (t *Track) Validate() error {
	var problems []string
	discontinuous := false
	if !(t.Width > 0) {
		problems = append(problems, fmt.Sprintf("width must be positive, got %g", t.Width))
	}
	if len(t.Left) == 0 {
		problems = append(problems, "left boundary is empty")
	}
	if len(t.Right) == 0 {
		problems = append(problems, "right boundary is empty")
	}
	if len(t.Left) != len(t.Right) {
		problems = append(problems, fmt.Sprintf("left boundary has %d points, right boundary has %d", len(t.Left), len(t.Right)))
	}
	for i, seg := range t.Segments {
		if seg.IsNaN() || seg.IsInf() {
			problems = append(problems, fmt.Sprintf("segment %d has non-finite control points", i))
		}
	}
	for i := 1; i < len(t.Segments); i++ {
		if t.Segments[i].Start() != t.Segments[i-1].End() {
			discontinuous = true
			problems = append(problems, fmt.Sprintf("%s: segment %d starts at %v, segment %d ends at %v",
				ErrDiscontinuous, i, t.Segments[i].P0, i-1, t.Segments[i-1].P3))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems, discontinuous: discontinuous}
	}
	return nil
}

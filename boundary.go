package track

import "fmt"

// BoundaryMode selects what boundary points are offset from.
type BoundaryMode int

const (
	// AnchorCenterline offsets each boundary point from its centerline
	// point, placing the boundaries along the physical track.
	AnchorCenterline BoundaryMode = iota
	// AnchorTangent offsets each boundary point from the normalized tangent
	// vector instead of the centerline point. The resulting boundaries
	// cluster around the origin. Track files written by the original
	// drawing tool were produced this way; the mode exists to regenerate
	// them bit for bit.
	AnchorTangent
)

func (m BoundaryMode) String() string {
	switch m {
	case AnchorCenterline:
		return "centerline"
	case AnchorTangent:
		return "tangent"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// ParseBoundaryMode parses the names returned by [BoundaryMode.String].
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch s {
	case "centerline", "":
		return AnchorCenterline, nil
	case "tangent":
		return AnchorTangent, nil
	default:
		return 0, fmt.Errorf("unknown boundary mode %q", s)
	}
}

// Boundaries computes the left and right edges of a track of the given full
// width around a sampled centerline. For each sample, the boundary points lie
// half the width away from the centerline point along the normal of the
// tangent, on its left and right side respectively.
//
// Zero tangents have a zero normal, so both boundary points coincide with the
// centerline point. points and tangents should have equal length; excess
// elements of the longer one are ignored.
func Boundaries(points, tangents []Point, width float64) (left, right []Point) {
	return BoundariesMode(points, tangents, width, AnchorCenterline)
}

// LegacyBoundaries computes boundaries the way the original drawing tool did,
// relative to the normalized tangent rather than the centerline point. See
// [AnchorTangent].
func LegacyBoundaries(points, tangents []Point, width float64) (left, right []Point) {
	return BoundariesMode(points, tangents, width, AnchorTangent)
}

// BoundariesMode is like [Boundaries] but lets the caller choose the anchor of
// the offsets.
func BoundariesMode(points, tangents []Point, width float64, mode BoundaryMode) (left, right []Point) {
	n := min(len(points), len(tangents))
	left = make([]Point, n)
	right = make([]Point, n)
	halfWidth := width * 0.5
	for i := range n {
		dir := tangents[i].Normalize()
		offset := dir.Normal().Mul(halfWidth)
		anchor := points[i]
		if mode == AnchorTangent {
			anchor = dir
		}
		left[i] = anchor.Add(offset)
		right[i] = anchor.Sub(offset)
	}
	return left, right
}

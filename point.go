package track

import (
	"math"
	"strconv"
)

// Point is a position or direction in the plane. Tangents and normals are
// represented as points, too; the distinction is purely one of
// interpretation.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns the point in its track file representation, "x y".
func (pt Point) String() string {
	return formatFloat(pt.X) + " " + formatFloat(pt.Y)
}

// Add adds two points component-wise.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Hypot returns the magnitude of the point, interpreted as a vector.
func (pt Point) Hypot() float64 {
	return math.Sqrt(pt.X*pt.X + pt.Y*pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// Normalize returns a vector of magnitude 1.0 with the same angle as pt.
// Unlike a plain division by the magnitude, the zero vector normalizes to the
// zero vector instead of NaN.
func (pt Point) Normalize() Point {
	h := pt.Hypot()
	if h == 0 {
		return Point{}
	}
	return pt.Div(h)
}

// Normal returns pt rotated by 90° counter-clockwise, (x, y) → (−y, x).
//
// In a y-up coordinate system the result points to the left of pt.
func (pt Point) Normal() Point {
	return Point{
		X: -pt.Y,
		Y: pt.X,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (1-t)*pt.X + t*o.X,
		Y: (1-t)*pt.Y + t*o.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// formatFloat formats n with the fewest digits that parse back to exactly n.
func formatFloat(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

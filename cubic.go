package track

// CubicBez is one segment of a track's centerline. P0 is where the segment
// starts and P3 where it ends; P1 and P2 shape the interior. The order of the
// points determines the direction of travel and thus the sign of tangents.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Chain returns the segment that continues prev, starting exactly where prev
// ends.
func Chain(prev CubicBez, p1, p2, p3 Point) CubicBez {
	return CubicBez{prev.End(), p1, p2, p3}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t ∈ [0, 1] using de Casteljau's algorithm.
//
// Eval(0) is exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float64) Point {
	p := [4]Point{c.P0, c.P1, c.P2, c.P3}
	// Each pass collapses n points into n-1.
	for n := 3; n > 0; n-- {
		for i := range n {
			p[i] = p[i].Lerp(p[i+1], t)
		}
	}
	return p[0]
}

// Differentiate returns the hodograph of the cubic, a quadratic Bézier whose
// evaluation yields the (unnormalized) derivative of c.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

// Deriv returns the derivative of the curve at t. Its magnitude is the speed
// of the parametrization, not 1.
func (c CubicBez) Deriv(t float64) Point {
	return c.Differentiate().Eval(t)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// ControlPoints returns the four points defining the curve, in order.
func (c CubicBez) ControlPoints() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// BoundingBox returns the bounds of the control polygon. Since a Bézier lies
// within the convex hull of its control points, this encloses the curve.
func (c CubicBez) BoundingBox() Rect {
	return NewRectFromPoints(c.P0, c.P1).UnionPoint(c.P2).UnionPoint(c.P3)
}

package track

// QuadBez is a quadratic Bézier. In this package it mostly appears as the
// hodograph of a [CubicBez], in which case its points are interpreted as
// vectors.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t using de Casteljau's algorithm.
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

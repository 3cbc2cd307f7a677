package track

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// DenseSamples is the number of uniformly spaced parameter values at which
// [CubicBez.SampleArclen] measures a curve before inverting its arc length.
const DenseSamples = 1000

// Sample is a point on a curve together with the curve's unnormalized
// derivative at that point.
type Sample struct {
	Point   Point
	Tangent Point
}

// SampleArclen returns n points on the curve that are approximately equally
// spaced by distance traveled along the curve, together with the curve's
// derivative at each of them. The first point is P0 and the last is P3.
//
// The arc length is measured as the chord length of a polyline through
// [DenseSamples] points of uniform parameter, and parameters for the target
// distances are found by piecewise-linear interpolation in that table.
// Tangents are not normalized.
//
// For n == 1 the result is the start of the curve. For n <= 0 it is empty.
func (c CubicBez) SampleArclen(n int) (points, tangents []Point) {
	ts := c.arclenParams(n)
	points = make([]Point, len(ts))
	tangents = make([]Point, len(ts))
	d := c.Differentiate()
	for i, t := range ts {
		points[i] = c.Eval(t)
		tangents[i] = d.Eval(t)
	}
	return points, tangents
}

// Samples is like [CubicBez.SampleArclen] but returns index-aligned pairs.
func (c CubicBez) Samples(n int) []Sample {
	points, tangents := c.SampleArclen(n)
	out := make([]Sample, len(points))
	for i := range points {
		out[i] = Sample{points[i], tangents[i]}
	}
	return out
}

// arclenParams returns n parameter values whose points are spaced uniformly by
// arc length.
func (c CubicBez) arclenParams(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}

	denseT := floats.Span(make([]float64, DenseSamples), 0, 1)
	// Pin the end exactly, Span computes it as l + step*(n-1).
	denseT[DenseSamples-1] = 1
	dist := make([]float64, DenseSamples)
	prev := c.Eval(denseT[0])
	for i := 1; i < DenseSamples; i++ {
		p := c.Eval(denseT[i])
		dist[i] = dist[i-1] + p.Distance(prev)
		prev = p
	}
	total := dist[DenseSamples-1]

	if total == 0 {
		// Every point of the curve coincides, so any parametrization is
		// uniform by arc length.
		ts := floats.Span(make([]float64, n), 0, 1)
		ts[n-1] = 1
		return ts
	}

	// PiecewiseLinear requires strictly increasing knots. Stretches of zero
	// length produce repeated distances; keep the first parameter reaching
	// each distance.
	xs := make([]float64, 0, DenseSamples)
	ys := make([]float64, 0, DenseSamples)
	for i, d := range dist {
		if len(xs) > 0 && d <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, d)
		ys = append(ys, denseT[i])
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		// total > 0 guarantees at least two knots.
		panic(err)
	}

	targets := floats.Span(make([]float64, n), 0, total)
	targets[n-1] = total
	ts := make([]float64, n)
	for i, target := range targets {
		ts[i] = pl.Predict(target)
	}
	return ts
}

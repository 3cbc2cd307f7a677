package track

import (
	"testing"
)

// arch is a symmetric arch from (0, 0) up and over to (10, 0).
var arch = CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}

func TestCubicBezEvalEndpoints(t *testing.T) {
	curves := []CubicBez{
		arch,
		{Pt(0.1, 0.2), Pt(3.3, -7.1), Pt(1e6, 0.3), Pt(-1.0/3.0, 2.0/7.0)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	}
	for _, c := range curves {
		if got := c.Eval(0); got != c.P0 {
			t.Errorf("got %v at t=0, want %v", got, c.P0)
		}
		if got := c.Eval(1); got != c.P3 {
			t.Errorf("got %v at t=1, want %v", got, c.P3)
		}
	}
}

func TestCubicBezEvalMidpoint(t *testing.T) {
	if got, want := arch.Eval(0.5), Pt(5, 7.5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCubicBezEvalBernstein(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(9.7, 9.3)}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		mt := 1 - ts
		want := c.P0.Mul(mt * mt * mt).
			Add(c.P1.Mul(3 * mt * mt * ts)).
			Add(c.P2.Mul(3 * mt * ts * ts)).
			Add(c.P3.Mul(ts * ts * ts))
		assertNear(t, want, c.Eval(ts), 1e-12)
	}
}

func TestCubicBezContinuity(t *testing.T) {
	const n = 1000
	prev := arch.Eval(0)
	dists := make([]float64, 0, n)
	var sum float64
	for i := 1; i <= n; i++ {
		p := arch.Eval(float64(i) / n)
		d := p.Distance(prev)
		dists = append(dists, d)
		sum += d
		prev = p
	}
	mean := sum / n
	for i, d := range dists {
		if d > 3*mean {
			t.Errorf("step %d has length %g, more than 3× the mean %g", i, d, mean)
		}
	}
}

func TestCubicBezDifferentiate(t *testing.T) {
	q := arch.Differentiate()
	want := QuadBez{Pt(0, 30), Pt(30, 0), Pt(0, -30)}
	diff(t, want, q)
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezDerivEndpoints(t *testing.T) {
	// The derivative at the ends points along the first and last legs of the
	// control polygon.
	diff(t, Pt(0, 30), arch.Deriv(0))
	diff(t, Pt(0, -30), arch.Deriv(1))
	diff(t, Pt(15, 0), arch.Deriv(0.5))
}

func TestChain(t *testing.T) {
	next := Chain(arch, Pt(10, -10), Pt(20, -10), Pt(20, 0))
	if next.P0 != arch.P3 {
		t.Errorf("chained segment starts at %v, want %v", next.P0, arch.P3)
	}
	want := CubicBez{Pt(10, 0), Pt(10, -10), Pt(20, -10), Pt(20, 0)}
	diff(t, want, next)
}

func TestCubicBezBoundingBox(t *testing.T) {
	diff(t, Rect{0, 0, 10, 10}, arch.BoundingBox())
	// The curve lies within its control polygon's bounds.
	bbox := arch.BoundingBox().Inflate(1e-9, 1e-9)
	for i := range 101 {
		p := arch.Eval(float64(i) / 100)
		if p.X < bbox.X0 || p.X > bbox.X1 || p.Y < bbox.Y0 || p.Y > bbox.Y1 {
			t.Errorf("point %v lies outside %v", p, bbox)
		}
	}
}

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	if got := q.Eval(0); got != q.P0 {
		t.Errorf("got %v at t=0, want %v", got, q.P0)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("got %v at t=1, want %v", got, q.P2)
	}
	diff(t, Pt(1, 1), q.Eval(0.5))
}

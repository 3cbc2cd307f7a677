package track

// Side identifies a track boundary.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Wall is the piece of a track boundary between two consecutive boundary
// points, as used for collision detection.
type Wall struct {
	Line
	Side Side
	// Normal is the unit normal of the wall pointing towards the interior of
	// the track. It is zero for walls of zero length.
	Normal Point
}

// Walls splits both boundaries into walls. Walls are ordered left first,
// then right, each in boundary order.
//
// A wall's normal is oriented using the point of the opposite boundary at the
// same index, which is known to be inside the track. If the boundaries have
// different lengths, only the common prefix is used.
func (t *Track) Walls() []Wall {
	n := min(len(t.Left), len(t.Right))
	if n < 2 {
		return nil
	}
	out := make([]Wall, 0, 2*(n-1))
	for i := 0; i < n-1; i++ {
		out = append(out, newWall(Line{t.Left[i], t.Left[i+1]}, Left, t.Right[i]))
	}
	for i := 0; i < n-1; i++ {
		out = append(out, newWall(Line{t.Right[i], t.Right[i+1]}, Right, t.Left[i]))
	}
	return out
}

func newWall(l Line, side Side, interior Point) Wall {
	w := Wall{Line: l, Side: side}
	length := l.Length()
	if length == 0 {
		return w
	}
	w.Normal = l.P1.Sub(l.P0).Div(length).Normal()
	if interior.Sub(l.P0).Dot(w.Normal) < 0 {
		w.Normal = w.Normal.Mul(-1)
	}
	return w
}

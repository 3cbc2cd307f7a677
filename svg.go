package track

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Margin is added around the track's bounding box to form the view box.
	Margin float64
}

// SVGPath returns the segments as SVG path commands, one move followed by
// one cubic command per segment. A new move is emitted whenever a segment
// doesn't start where the previous one ended.
func SVGPath(segments []CubicBez, opts SVGOptions) string {
	sb := &strings.Builder{}
	writeSVGPath(sb, segments, opts)
	return sb.String()
}

// WriteSVG writes t as a standalone SVG document: the centerline as a path of
// cubic Béziers and the boundaries as polylines. The y axis is flipped so
// that the drawing has the same orientation as the track's y-up coordinate
// space.
func WriteSVG(w io.Writer, t *Track, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := svgFormatter(opts)

	bbox := t.BoundingBox().Inflate(opts.Margin, opts.Margin)
	writef(`<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		format(bbox.X0), format(-bbox.Y1), format(bbox.Width()), format(bbox.Height()))
	writef(`<g transform="scale(1,-1)" fill="none">` + "\n")
	polyline := func(pts []Point, stroke string) {
		if len(pts) == 0 {
			return
		}
		writef(`<polyline stroke="%s" points="`, stroke)
		for i, pt := range pts {
			if i > 0 {
				writef(" ")
			}
			writef("%s,%s", format(pt.X), format(pt.Y))
		}
		writef(`" />` + "\n")
	}
	polyline(t.Left, "green")
	polyline(t.Right, "red")
	if len(t.Segments) > 0 {
		writef(`<path stroke="blue" d="`)
		if err == nil {
			err = writeSVGPath(w, t.Segments, opts)
		}
		writef(`" />` + "\n")
	}
	writef("</g>\n</svg>\n")
	return err
}

func svgFormatter(opts SVGOptions) func(float64) string {
	return func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
}

func writeSVGPath(w io.Writer, segments []CubicBez, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := svgFormatter(opts)
	for i, seg := range segments {
		if i > 0 {
			writef(" ")
		}
		if i == 0 || seg.P0 != segments[i-1].P3 {
			writef("M%s,%s ", format(seg.P0.X), format(seg.P0.Y))
		}
		writef("C%s,%s %s,%s %s,%s",
			format(seg.P1.X), format(seg.P1.Y),
			format(seg.P2.X), format(seg.P2.Y),
			format(seg.P3.X), format(seg.P3.Y))
	}
	return err
}

// Package render draws previews of tracks with gonum/plot, replacing the
// interactive plot of the drawing tool with an image file.
package render

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/racesim/track"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	centerlineColor = color.RGBA{B: 255, A: 255}
	leftColor       = color.RGBA{G: 128, A: 255}
	rightColor      = color.RGBA{R: 255, A: 255}
	controlColor    = color.RGBA{R: 200, A: 255}
)

// Options controls how a track is drawn.
type Options struct {
	Title string
	// PointsPerSegment is the sample density of the drawn centerline. Zero
	// means track.DefaultPointsPerSegment.
	PointsPerSegment int
	// ControlPoints draws markers at the segments' control points.
	ControlPoints bool
	// Width and Height are the size of the image in inches.
	Width, Height float64
}

// Plot draws the centerline (solid), the left and right boundaries (dashed),
// and optionally the control points of t. The axes are scaled equally so that
// the track isn't distorted.
func Plot(t *track.Track, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	n := opts.PointsPerSegment
	if n == 0 {
		n = track.DefaultPointsPerSegment
	}
	centerline, _ := track.Centerline(t.Segments, n)

	if len(centerline) > 0 {
		line, err := plotter.NewLine(xys(centerline))
		if err != nil {
			return nil, fmt.Errorf("centerline: %w", err)
		}
		line.Color = centerlineColor
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("Centerline", line)
	}

	for _, b := range []struct {
		name  string
		pts   []track.Point
		color color.Color
	}{
		{"Left", t.Left, leftColor},
		{"Right", t.Right, rightColor},
	} {
		if len(b.pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys(b.pts))
		if err != nil {
			return nil, fmt.Errorf("%s boundary: %w", strings.ToLower(b.name), err)
		}
		line.Color = b.color
		line.Width = vg.Points(1.5)
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(b.name, line)
	}

	if opts.ControlPoints && len(t.Segments) > 0 {
		var cps []track.Point
		for _, seg := range t.Segments {
			c := seg.ControlPoints()
			cps = append(cps, c[:]...)
		}
		sc, err := plotter.NewScatter(xys(cps))
		if err != nil {
			return nil, fmt.Errorf("control points: %w", err)
		}
		sc.GlyphStyle.Color = controlColor
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	setEqualAxes(p, t, opts.Width, opts.Height)
	return p, nil
}

// Save draws t into the file at path. The image format is chosen by the
// file's extension (png, svg, pdf, ...).
func Save(path string, t *track.Track, opts Options) error {
	opts = withSize(opts)
	p, err := Plot(t, opts)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save preview %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Write draws t to w in the given image format.
func Write(w io.Writer, format string, t *track.Track, opts Options) error {
	opts = withSize(opts)
	p, err := Plot(t, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func withSize(opts Options) Options {
	if opts.Width <= 0 {
		opts.Width = 8
	}
	if opts.Height <= 0 {
		opts.Height = 8
	}
	return opts
}

func xys(pts []track.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

// setEqualAxes sets the axis ranges to the track's bounds, widening the
// shorter side so that one unit has the same length on both axes.
func setEqualAxes(p *plot.Plot, t *track.Track, width, height float64) {
	bbox := t.BoundingBox()
	if bbox.Width() == 0 && bbox.Height() == 0 {
		bbox = bbox.Inflate(1, 1)
	}
	bbox = bbox.Inflate(0.05*bbox.Width(), 0.05*bbox.Height())
	aspect := 1.0
	if width > 0 && height > 0 {
		aspect = width / height
	}
	w, h := bbox.Width(), bbox.Height()
	if w < h*aspect {
		bbox = bbox.Inflate((h*aspect-w)/2, 0)
	} else {
		bbox = bbox.Inflate(0, (w/aspect-h)/2)
	}
	p.X.Min, p.X.Max = bbox.X0, bbox.X1
	p.Y.Min, p.Y.Max = bbox.Y0, bbox.Y1
}

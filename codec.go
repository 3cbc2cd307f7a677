package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keywords of the track file format.
const (
	kwWidth         = "WIDTH"
	kwSegments      = "SEGMENTS"
	kwSegment       = "SEGMENT"
	kwControlPoints = "CONTROL_POINTS"
	kwLeftBoundary  = "LEFT_BOUNDARY"
	kwRightBoundary = "RIGHT_BOUNDARY"
)

func isKeyword(s string) bool {
	switch s {
	case kwWidth, kwSegments, kwSegment, kwControlPoints, kwLeftBoundary, kwRightBoundary:
		return true
	}
	return false
}

// controlPoints is the only value of CONTROL_POINTS the format allows.
const controlPoints = 4

// maxPrealloc caps allocations sized by counts read from untrusted input.
const maxPrealloc = 1 << 16

// WriteTrack writes t to w in the track file format:
//
//	WIDTH <float>
//	SEGMENTS <count>
//
//	SEGMENT <index>
//	CONTROL_POINTS 4
//	<x> <y>
//	<x> <y>
//	<x> <y>
//	<x> <y>
//
//	LEFT_BOUNDARY <count>
//	<x> <y>
//	...
//
//	RIGHT_BOUNDARY <count>
//	<x> <y>
//	...
//
// Numbers are written with the fewest digits that parse back to the same
// float64, so reading the output with [ReadTrack] reproduces t exactly.
func WriteTrack(w io.Writer, t *Track) error {
	bw := bufio.NewWriter(w)
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, s, v...)
	}
	writePoints := func(pts []Point) {
		for _, pt := range pts {
			writef("%s\n", pt)
		}
	}

	writef("%s %s\n", kwWidth, formatFloat(t.Width))
	writef("%s %d\n", kwSegments, len(t.Segments))
	writef("\n")
	for i, seg := range t.Segments {
		cp := seg.ControlPoints()
		writef("%s %d\n", kwSegment, i)
		writef("%s %d\n", kwControlPoints, len(cp))
		writePoints(cp[:])
		writef("\n")
	}
	writef("%s %d\n", kwLeftBoundary, len(t.Left))
	writePoints(t.Left)
	writef("\n")
	writef("%s %d\n", kwRightBoundary, len(t.Right))
	writePoints(t.Right)

	if err != nil {
		return err
	}
	return bw.Flush()
}

// ReadTrack parses a track in the format written by [WriteTrack].
//
// Blank lines between records are ignored. Any deviation from the format is
// reported as a [*FormatError], numbers that can't be parsed as a
// [*ParseError]. Errors from r are returned wrapped. No partial track is
// returned on error.
//
// The indices of SEGMENT records aren't checked, nor is the continuity of
// segments; see [Track.Validate].
func ReadTrack(r io.Reader) (*Track, error) {
	d := &decoder{sc: bufio.NewScanner(r)}

	width, err := d.floatValue(kwWidth)
	if err != nil {
		return nil, err
	}
	nsegs, err := d.count(kwSegments)
	if err != nil {
		return nil, err
	}

	t := &Track{
		Width:    width,
		Segments: make([]CubicBez, 0, min(nsegs, maxPrealloc)),
	}
	for range nsegs {
		if _, err := d.intValue(kwSegment); err != nil {
			return nil, err
		}
		n, err := d.intValue(kwControlPoints)
		if err != nil {
			return nil, err
		}
		if n != controlPoints {
			return nil, d.errorf("expected %d control points, got %d", controlPoints, n)
		}
		var cp [controlPoints]Point
		for j := range cp {
			if cp[j], err = d.point(); err != nil {
				return nil, err
			}
		}
		t.Segments = append(t.Segments, CubicBez{cp[0], cp[1], cp[2], cp[3]})
	}

	if t.Left, err = d.points(kwLeftBoundary); err != nil {
		return nil, err
	}
	if t.Right, err = d.points(kwRightBoundary); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads the track file at path.
func LoadFile(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTrack(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveFile writes t to the file at path. The track is written to a
// temporary file in the same directory first, which replaces path only once
// it has been written completely, so an existing file is never left
// truncated.
func SaveFile(path string, t *Track) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := WriteTrack(f, t); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WriteTrackFile saves a track given as its parts. See [SaveFile].
func WriteTrackFile(path string, segments []CubicBez, left, right []Point, width float64) error {
	return SaveFile(path, &Track{Width: width, Segments: segments, Left: left, Right: right})
}

// ReadTrackFile loads a track and returns its parts. See [LoadFile].
func ReadTrackFile(path string) (width float64, segments []CubicBez, left, right []Point, err error) {
	t, err := LoadFile(path)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	return t.Width, t.Segments, t.Left, t.Right, nil
}

// decoder reads a track file one non-blank line at a time.
type decoder struct {
	sc   *bufio.Scanner
	line int
}

func (d *decoder) errorf(format string, v ...any) error {
	return &FormatError{Line: d.line, Msg: fmt.Sprintf(format, v...)}
}

// next returns the fields of the next line that isn't blank. what describes
// the expected record for the error at end of input.
func (d *decoder) next(what string) ([]string, error) {
	for d.sc.Scan() {
		d.line++
		if fields := strings.Fields(d.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := d.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading track: %w", err)
	}
	return nil, d.errorf("unexpected end of input, expected %s", what)
}

// keyword reads a "<keyword> <value>" line and returns the value.
func (d *decoder) keyword(kw string) (string, error) {
	fields, err := d.next(kw)
	if err != nil {
		return "", err
	}
	if fields[0] != kw || len(fields) != 2 {
		return "", d.errorf("expected %s", kw)
	}
	return fields[1], nil
}

func (d *decoder) floatValue(kw string) (float64, error) {
	tok, err := d.keyword(kw)
	if err != nil {
		return 0, err
	}
	return d.parseFloat(tok)
}

func (d *decoder) intValue(kw string) (int, error) {
	tok, err := d.keyword(kw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Line: d.line, Token: tok, Err: err}
	}
	return n, nil
}

// count is like intValue but rejects negative values.
func (d *decoder) count(kw string) (int, error) {
	n, err := d.intValue(kw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, d.errorf("negative %s count %d", kw, n)
	}
	return n, nil
}

func (d *decoder) parseFloat(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Line: d.line, Token: tok, Err: err}
	}
	return f, nil
}

func (d *decoder) point() (Point, error) {
	fields, err := d.next("point")
	if err != nil {
		return Point{}, err
	}
	if isKeyword(fields[0]) {
		// A record ended before its announced number of points.
		return Point{}, d.errorf("expected point coordinates, got %s", fields[0])
	}
	if len(fields) != 2 {
		return Point{}, d.errorf("expected point coordinates, got %d fields", len(fields))
	}
	x, err := d.parseFloat(fields[0])
	if err != nil {
		return Point{}, err
	}
	y, err := d.parseFloat(fields[1])
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}

// points reads a "<keyword> <count>" line followed by count points.
func (d *decoder) points(kw string) ([]Point, error) {
	n, err := d.count(kw)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, min(n, maxPrealloc))
	for range n {
		pt, err := d.point()
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

// ParsePoint parses a point in its track file representation, "x y".
func ParsePoint(s string) (Point, error) {
	d := &decoder{sc: bufio.NewScanner(strings.NewReader(s))}
	pt, err := d.point()
	// Errors refer to s, not to a line of a file.
	switch err := err.(type) {
	case *FormatError:
		err.Line = 0
	case *ParseError:
		err.Line = 0
	}
	return pt, err
}

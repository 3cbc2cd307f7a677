package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/racesim/track"
)

// readPoints reads control points, one "x y" pair per line. Blank lines and
// lines starting with '#' are skipped.
func readPoints(r io.Reader) ([]track.Point, error) {
	var out []track.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		pt, err := track.ParsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readPointsFile(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := readPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

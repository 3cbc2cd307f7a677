package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racesim/track"
)

const points = `# first segment
0 0
0 10
10 10
10 0

# second segment
10 -10
20 -10
20 0
25 25
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadPoints(t *testing.T) {
	pts, err := readPoints(strings.NewReader(points))
	require.NoError(t, err)
	require.Len(t, pts, 8)
	assert.Equal(t, track.Pt(0, 10), pts[1])
	assert.Equal(t, track.Pt(25, 25), pts[7])

	_, err = readPoints(strings.NewReader("0 0\n\n1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3:")
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "points.txt", points)
	out := filepath.Join(dir, "tracks", "track_001.txt")
	preview := filepath.Join(dir, "preview.png")

	err := run([]string{"build", "-width", "4", "-n", "10", "-preview", preview, in, out}, &bytes.Buffer{})
	require.NoError(t, err)

	tr, err := track.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4.0, tr.Width)
	assert.Len(t, tr.Segments, 2)
	assert.Len(t, tr.Left, 20)
	assert.Len(t, tr.Right, 20)
	assert.NoError(t, tr.Validate())
	assert.FileExists(t, preview)
}

func TestBuildConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "points.txt", points)
	outDir := filepath.Join(dir, "out")
	cfg := writeFile(t, dir, "config.json", `{"width": 3, "points_per_segment": 5, "output_dir": "`+filepath.ToSlash(outDir)+`"}`)

	require.NoError(t, run([]string{"build", "-config", cfg, in, "oval.txt"}, &bytes.Buffer{}))

	tr, err := track.LoadFile(filepath.Join(outDir, "oval.txt"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tr.Width)
	assert.Len(t, tr.Left, 10)
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	few := writeFile(t, dir, "few.txt", "0 0\n1 1\n2 2\n")
	out := filepath.Join(dir, "track.txt")

	err := run([]string{"build", few, out}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 4 control points")
	assert.NoFileExists(t, out)

	in := writeFile(t, dir, "points.txt", points)
	err = run([]string{"build", "-mode", "sideways", in, out}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown boundary mode")

	err = run([]string{"build", in}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "usage")
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "points.txt", points)
	out := filepath.Join(dir, "track.txt")
	require.NoError(t, run([]string{"build", "-n", "10", in, out}, &bytes.Buffer{}))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"info", out}, &stdout))
	assert.Contains(t, stdout.String(), "segments:         2\n")
	assert.Contains(t, stdout.String(), "walls:            38\n")
	assert.True(t, strings.HasSuffix(stdout.String(), "valid\n"))
}

func TestInfoInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.txt")
	require.NoError(t, track.SaveFile(path, &track.Track{Width: -1}))

	var stdout bytes.Buffer
	err := run([]string{"info", path}, &stdout)
	require.Error(t, err)
	var verr *track.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.NotContains(t, stdout.String(), "valid\n")
}

func TestSVG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "points.txt", points)
	out := filepath.Join(dir, "track.txt")
	svg := filepath.Join(dir, "track.svg")
	require.NoError(t, run([]string{"build", "-n", "5", in, out}, &bytes.Buffer{}))
	require.NoError(t, run([]string{"svg", out, svg}, &bytes.Buffer{}))

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `d="M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"`)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "points.txt", points)
	out := filepath.Join(dir, "track.txt")
	img := filepath.Join(dir, "track.png")
	require.NoError(t, run([]string{"build", "-n", "5", in, out}, &bytes.Buffer{}))
	require.NoError(t, run([]string{"render", "-controls=false", out, img}, &bytes.Buffer{}))
	assert.FileExists(t, img)
}

func TestRunUsage(t *testing.T) {
	assert.ErrorIs(t, run(nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{"frobnicate"}, &bytes.Buffer{}), errUsage)
}

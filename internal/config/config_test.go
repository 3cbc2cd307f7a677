package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racesim/track"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, track.DefaultWidth, cfg.GetWidth())
	assert.Equal(t, track.DefaultPointsPerSegment, cfg.GetPointsPerSegment())
	assert.Equal(t, track.AnchorCenterline, cfg.GetBoundaryMode())
	assert.Equal(t, DefaultOutputDir, cfg.GetOutputDir())
	w, h := cfg.GetPreviewSize()
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 8.0, h)
}

func TestEmptyUsesDefaults(t *testing.T) {
	cfg := Empty()
	def := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, def.GetWidth(), cfg.GetWidth())
	assert.Equal(t, def.GetPointsPerSegment(), cfg.GetPointsPerSegment())
	assert.Equal(t, def.GetBoundaryMode(), cfg.GetBoundaryMode())
	assert.Equal(t, def.GetOutputDir(), cfg.GetOutputDir())
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "trackdrawer.json", `{
  "width": 7.5,
  "points_per_segment": 40,
  "boundary_mode": "tangent",
  "output_dir": "out",
  "preview_width_inches": 12
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7.5, cfg.GetWidth())
	assert.Equal(t, 40, cfg.GetPointsPerSegment())
	assert.Equal(t, track.AnchorTangent, cfg.GetBoundaryMode())
	assert.Equal(t, "out", cfg.GetOutputDir())
	w, h := cfg.GetPreviewSize()
	assert.Equal(t, 12.0, w)
	assert.Equal(t, 8.0, h, "omitted fields keep their default")
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"width": 3}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.GetWidth())
	assert.Nil(t, cfg.PointsPerSegment)
	assert.Equal(t, track.DefaultPointsPerSegment, cfg.GetPointsPerSegment())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
		want     string
	}{
		{"extension", "config.yaml", `{}`, ".json extension"},
		{"syntax", "config.json", `{"width": }`, "failed to parse config JSON"},
		{"type", "config.json", `{"width": "wide"}`, "failed to parse config JSON"},
		{"zero width", "config.json", `{"width": 0}`, "width must be positive"},
		{"few points", "config.json", `{"points_per_segment": 1}`, "points_per_segment must be at least 2"},
		{"mode", "config.json", `{"boundary_mode": "sideways"}`, "invalid boundary_mode"},
		{"preview", "config.json", `{"preview_height_inches": -1}`, "preview_height_inches must be positive"},
		{"too large", "config.json", `{"output_dir": "` + strings.Repeat("a", 2<<20) + `"}`, "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvePath(t *testing.T) {
	cfg := Empty()
	assert.Equal(t, filepath.Join(DefaultOutputDir, "track_001.txt"), cfg.ResolvePath("track_001.txt"))

	dir := "custom"
	cfg.OutputDir = &dir
	assert.Equal(t, filepath.Join("custom", "oval.txt"), cfg.ResolvePath("oval.txt"))
	assert.Equal(t, filepath.Join("elsewhere", "oval.txt"), cfg.ResolvePath(filepath.Join("elsewhere", "oval.txt")))

	abs := filepath.Join(t.TempDir(), "oval.txt")
	assert.Equal(t, abs, cfg.ResolvePath(abs))
}

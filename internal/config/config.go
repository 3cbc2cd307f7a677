// Package config loads the settings of the track drawing tool from a JSON
// file. Every field is optional; the Get* methods fall back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/racesim/track"
)

// DefaultOutputDir is the directory, relative to the working directory,
// into which tracks are saved when no directory is configured.
const DefaultOutputDir = "tracks"

// Config represents the settings of the track drawing tool.
type Config struct {
	Width            *float64 `json:"width,omitempty"`
	PointsPerSegment *int     `json:"points_per_segment,omitempty"`
	// BoundaryMode is "centerline" or "tangent", see track.BoundaryMode.
	BoundaryMode *string `json:"boundary_mode,omitempty"`
	OutputDir    *string `json:"output_dir,omitempty"`

	// Preview params
	PreviewWidthInches  *float64 `json:"preview_width_inches,omitempty"`
	PreviewHeightInches *float64 `json:"preview_height_inches,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// Empty returns a Config with all fields set to nil.
func Empty() *Config {
	return &Config{}
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		Width:               ptrFloat64(track.DefaultWidth),
		PointsPerSegment:    ptrInt(track.DefaultPointsPerSegment),
		BoundaryMode:        ptrString(track.AnchorCenterline.String()),
		OutputDir:           ptrString(DefaultOutputDir),
		PreviewWidthInches:  ptrFloat64(8),
		PreviewHeightInches: ptrFloat64(8),
	}
}

// Load loads a Config from a JSON file.
// Fields omitted from the file are left nil, so partial configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Width != nil && !(*c.Width > 0) {
		return fmt.Errorf("width must be positive, got %g", *c.Width)
	}
	if c.PointsPerSegment != nil && *c.PointsPerSegment < 2 {
		return fmt.Errorf("points_per_segment must be at least 2, got %d", *c.PointsPerSegment)
	}
	if c.BoundaryMode != nil {
		if _, err := track.ParseBoundaryMode(*c.BoundaryMode); err != nil {
			return fmt.Errorf("invalid boundary_mode: %w", err)
		}
	}
	if c.PreviewWidthInches != nil && !(*c.PreviewWidthInches > 0) {
		return fmt.Errorf("preview_width_inches must be positive, got %g", *c.PreviewWidthInches)
	}
	if c.PreviewHeightInches != nil && !(*c.PreviewHeightInches > 0) {
		return fmt.Errorf("preview_height_inches must be positive, got %g", *c.PreviewHeightInches)
	}
	return nil
}

// GetWidth returns the width value or the default.
func (c *Config) GetWidth() float64 {
	if c.Width == nil {
		return track.DefaultWidth
	}
	return *c.Width
}

// GetPointsPerSegment returns the points_per_segment value or the default.
func (c *Config) GetPointsPerSegment() int {
	if c.PointsPerSegment == nil {
		return track.DefaultPointsPerSegment
	}
	return *c.PointsPerSegment
}

// GetBoundaryMode returns the boundary_mode value or the default.
func (c *Config) GetBoundaryMode() track.BoundaryMode {
	if c.BoundaryMode == nil {
		return track.AnchorCenterline
	}
	m, err := track.ParseBoundaryMode(*c.BoundaryMode)
	if err != nil {
		return track.AnchorCenterline // default on parse error
	}
	return m
}

// GetOutputDir returns the output_dir value or the default.
func (c *Config) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return DefaultOutputDir
	}
	return *c.OutputDir
}

// GetPreviewSize returns the preview dimensions in inches.
func (c *Config) GetPreviewSize() (width, height float64) {
	width, height = 8, 8
	if c.PreviewWidthInches != nil {
		width = *c.PreviewWidthInches
	}
	if c.PreviewHeightInches != nil {
		height = *c.PreviewHeightInches
	}
	return width, height
}

// ResolvePath returns where a track named name is stored. Names that are
// absolute or contain a directory are used as is.
func (c *Config) ResolvePath(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(c.GetOutputDir(), name)
}

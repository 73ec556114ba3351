// Package config provides TOML-based configuration for pinboard.
//
// The configuration holds the tunables of the geometry engine: snap
// threshold, grid pitch, safe-area inset, distance-guide reach, block size
// limits and rotation snapping. A missing file yields DefaultConfig.
//
// Example config.toml:
//
//	[snap]
//	threshold = 1.0
//	grid_size = 2.5
//	safe_area = 40
//	distance_threshold = 15
//
//	[size]
//	min_width = 40
//	max_width = 2000
//
//	[rotation]
//	snap = true
//
//	[log]
//	level = "debug"
//
//	[cache]
//	enabled = true
//	dir = "/tmp/pinboard-cache"
package config

import (
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
)

// Config is the root configuration.
type Config struct {
	Snap     SnapConfig     `toml:"snap"`
	Size     SizeConfig     `toml:"size"`
	Rotation RotationConfig `toml:"rotation"`
	Log      LogConfig      `toml:"log"`
	Cache    CacheConfig    `toml:"cache"`
}

// SnapConfig tunes drag snapping. Percent values are shares of the canvas.
type SnapConfig struct {
	Threshold         float64 `toml:"threshold"`
	GridSize          float64 `toml:"grid_size"`
	SafeArea          float64 `toml:"safe_area"`
	DistanceThreshold float64 `toml:"distance_threshold"`
}

// SizeConfig bounds block sizes in pixels.
type SizeConfig struct {
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`
	MaxWidth  float64 `toml:"max_width"`
	MaxHeight float64 `toml:"max_height"`
}

// RotationConfig controls rotation snapping.
type RotationConfig struct {
	Snap bool `toml:"snap"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig controls the PNG/PDF conversion cache. An empty Dir means
// the user cache directory.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	snap := geom.DefaultSnapOptions()
	return &Config{
		Snap: SnapConfig{
			Threshold:         float64(snap.Threshold),
			GridSize:          float64(snap.GridSize),
			SafeArea:          float64(snap.SafeArea),
			DistanceThreshold: float64(snap.DistanceThreshold),
		},
		Size: SizeConfig{
			MinWidth:  float64(geom.MinWidth),
			MinHeight: float64(geom.MinHeight),
			MaxWidth:  float64(geom.MaxWidth),
			MaxHeight: float64(geom.MaxHeight),
		},
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{Enabled: true},
	}
}

// SnapOptions converts the snap section for geom.CalculateSnap.
func (c *Config) SnapOptions() geom.SnapOptions {
	return geom.SnapOptions{
		Threshold:         geom.Percent(c.Snap.Threshold),
		GridSize:          geom.Percent(c.Snap.GridSize),
		SafeArea:          geom.Pixels(c.Snap.SafeArea),
		DistanceThreshold: geom.Percent(c.Snap.DistanceThreshold),
	}
}

// Bounds converts the size section for geom.ClampSize.
func (c *Config) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.Size{Width: geom.Pixels(c.Size.MinWidth), Height: geom.Pixels(c.Size.MinHeight)},
		Max: geom.Size{Width: geom.Pixels(c.Size.MaxWidth), Height: geom.Pixels(c.Size.MaxHeight)},
	}
}

// Validate rejects settings the engine cannot use.
func (c *Config) Validate() error {
	if c.Snap.Threshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.threshold must not be negative, got %v", c.Snap.Threshold)
	}
	if c.Snap.GridSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.grid_size must not be negative, got %v", c.Snap.GridSize)
	}
	if c.Snap.SafeArea < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.safe_area must not be negative, got %v", c.Snap.SafeArea)
	}
	if c.Snap.DistanceThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.distance_threshold must not be negative, got %v", c.Snap.DistanceThreshold)
	}
	if c.Size.MinWidth <= 0 || c.Size.MinHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "size minimums must be positive")
	}
	if c.Size.MaxWidth < c.Size.MinWidth || c.Size.MaxHeight < c.Size.MinHeight {
		return errors.New(errors.ErrCodeInvalidConfig, "size maximums must not be below the minimums")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}

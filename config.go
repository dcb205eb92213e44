package rivegg

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rivegg/scene"
)

// DefaultMeshOverdraw is the scale applied to each mesh triangle about its
// centroid so that neighbouring triangles overlap and no seams show.
const DefaultMeshOverdraw = 1.03

// Config holds renderer settings, usually loaded from a TOML file:
//
//	mesh_overdraw    = 1.03
//	gradient_stops   = "sort"    # or "reject"
//	image_cache_size = 64
//	decode_workers   = 4
//	log_level        = "info"
//	base_color       = "#000000"
//	width            = 800
//	height           = 600
type Config struct {
	MeshOverdraw   float64 `toml:"mesh_overdraw"`
	GradientStops  string  `toml:"gradient_stops"`
	ImageCacheSize int     `toml:"image_cache_size"`
	DecodeWorkers  int     `toml:"decode_workers"`
	LogLevel       string  `toml:"log_level"`
	BaseColor      string  `toml:"base_color"`
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		MeshOverdraw:   DefaultMeshOverdraw,
		GradientStops:  StopsSort.String(),
		ImageCacheSize: 64,
		DecodeWorkers:  4,
		LogLevel:       "info",
		BaseColor:      "#000000",
		Width:          800,
		Height:         600,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("rivegg: load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("rivegg: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig decodes TOML text on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("rivegg: parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("rivegg: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.MeshOverdraw < 1 || math.IsInf(c.MeshOverdraw, 0) || math.IsNaN(c.MeshOverdraw) {
		errs = append(errs, fmt.Errorf("mesh_overdraw %v must be a finite value >= 1", c.MeshOverdraw))
	}
	if _, err := ParseStopPolicy(c.GradientStops); err != nil {
		errs = append(errs, err)
	}
	if c.ImageCacheSize < 0 {
		errs = append(errs, fmt.Errorf("image_cache_size %d must not be negative", c.ImageCacheSize))
	}
	if c.DecodeWorkers < 1 {
		errs = append(errs, fmt.Errorf("decode_workers %d must be at least 1", c.DecodeWorkers))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseHexColor(c.BaseColor); err != nil {
		errs = append(errs, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rivegg: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// StopPolicy returns the parsed gradient stop policy, StopsSort when unset
// or invalid.
func (c Config) StopPolicy() StopPolicy {
	p, err := ParseStopPolicy(c.GradientStops)
	if err != nil {
		return StopsSort
	}
	return p
}

// Level returns the parsed log level, slog.LevelInfo when invalid.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Base returns the parsed base color, opaque black when invalid.
func (c Config) Base() scene.Color {
	col, err := ParseHexColor(c.BaseColor)
	if err != nil {
		return scene.RGBA8(0, 0, 0, 255)
	}
	return col
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, err)
	}
	return l, nil
}

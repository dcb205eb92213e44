package rivegg

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/rivegg/scene"
)

// StopPolicy decides how gradient stops that are out of order or outside
// [0, 1] are handled.
type StopPolicy uint8

const (
	// StopsSort stably sorts stops by offset and clamps offsets to [0, 1].
	StopsSort StopPolicy = iota
	// StopsReject fails on unsorted or out-of-range offsets.
	StopsReject
)

// String returns the policy name as used in configuration files.
func (p StopPolicy) String() string {
	switch p {
	case StopsSort:
		return "sort"
	case StopsReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseStopPolicy parses "sort" or "reject".
func ParseStopPolicy(s string) (StopPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sort":
		return StopsSort, nil
	case "reject":
		return StopsReject, nil
	default:
		return 0, fmt.Errorf("rivegg: unknown gradient stop policy %q", s)
	}
}

// ColorStops pairs packed 0xAARRGGBB colors with offsets and normalizes
// them under policy. The result is always sorted with offsets in [0, 1].
//
// Mismatched lengths, an empty list and NaN or infinite offsets are
// rejected under every policy.
func ColorStops(colors []uint32, offsets []float32, policy StopPolicy) ([]scene.ColorStop, error) {
	if len(colors) != len(offsets) {
		return nil, fmt.Errorf("rivegg: %d colors for %d stops: %w", len(colors), len(offsets), ErrInvalidGradient)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("rivegg: no stops: %w", ErrInvalidGradient)
	}

	stops := make([]scene.ColorStop, len(colors))
	for i, off := range offsets {
		o := float64(off)
		if math.IsNaN(o) || math.IsInf(o, 0) {
			return nil, fmt.Errorf("rivegg: stop %d offset %v: %w", i, off, ErrInvalidGradient)
		}
		stops[i] = scene.ColorStop{Offset: off, Color: ColorFromBGRA8(colors[i])}
	}

	if policy == StopsReject {
		for i, s := range stops {
			if s.Offset < 0 || s.Offset > 1 {
				return nil, fmt.Errorf("rivegg: stop %d offset %v outside [0,1]: %w", i, s.Offset, ErrInvalidGradient)
			}
			if i > 0 && s.Offset < stops[i-1].Offset {
				return nil, fmt.Errorf("rivegg: stop %d offset %v before %v: %w", i, s.Offset, stops[i-1].Offset, ErrInvalidGradient)
			}
		}
		return stops, nil
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
	for i := range stops {
		stops[i].Offset = min(max(stops[i].Offset, 0), 1)
	}
	return stops, nil
}

// NewLinearGradient creates a linear gradient from (sx, sy) to (ex, ey).
// Stops are normalized with StopsSort.
func NewLinearGradient(sx, sy, ex, ey float32, colors []uint32, offsets []float32) (*scene.Gradient, error) {
	stops, err := ColorStops(colors, offsets, StopsSort)
	if err != nil {
		return nil, err
	}
	return scene.NewLinearGradient(scene.Point{X: sx, Y: sy}, scene.Point{X: ex, Y: ey}, stops), nil
}

// NewRadialGradient creates a radial gradient of radius r around (cx, cy).
// Stops are normalized with StopsSort.
func NewRadialGradient(cx, cy, r float32, colors []uint32, offsets []float32) (*scene.Gradient, error) {
	stops, err := ColorStops(colors, offsets, StopsSort)
	if err != nil {
		return nil, err
	}
	return scene.NewRadialGradient(scene.Point{X: cx, Y: cy}, r, stops), nil
}

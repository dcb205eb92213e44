package rivegg

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/rivegg/scene"
)

func TestColorStopsSort(t *testing.T) {
	colors := []uint32{0xff0000ff, 0xffff0000, 0xff00ff00, 0xff000000}
	offsets := []float32{0.8, -0.5, 0.2, 1.5}

	stops, err := ColorStops(colors, offsets, StopsSort)
	if err != nil {
		t.Fatalf("ColorStops() error = %v", err)
	}
	wantOffsets := []float32{0, 0.2, 0.8, 1}
	wantColors := []scene.Color{
		scene.RGBA8(255, 0, 0, 255),
		scene.RGBA8(0, 255, 0, 255),
		scene.RGBA8(0, 0, 255, 255),
		scene.RGBA8(0, 0, 0, 255),
	}
	for i, s := range stops {
		if s.Offset != wantOffsets[i] || s.Color != wantColors[i] {
			t.Errorf("stop[%d] = %+v, want offset %v color %+v", i, s, wantOffsets[i], wantColors[i])
		}
	}
	if offsets[0] != 0.8 {
		t.Error("ColorStops() must not modify its input")
	}
}

func TestColorStopsStable(t *testing.T) {
	stops, err := ColorStops([]uint32{1, 2, 3}, []float32{0.5, 0.5, 0}, StopsSort)
	if err != nil {
		t.Fatal(err)
	}
	if stops[1].Color.B != 1 || stops[2].Color.B != 2 {
		t.Errorf("equal offsets should keep input order: %+v", stops)
	}
}

func TestColorStopsErrors(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name    string
		colors  []uint32
		offsets []float32
		policy  StopPolicy
	}{
		{"length mismatch", []uint32{1, 2}, []float32{0}, StopsSort},
		{"empty", nil, nil, StopsSort},
		{"nan", []uint32{1}, []float32{nan}, StopsSort},
		{"reject unsorted", []uint32{1, 2}, []float32{1, 0}, StopsReject},
		{"reject out of range", []uint32{1, 2}, []float32{0, 1.1}, StopsReject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ColorStops(tt.colors, tt.offsets, tt.policy); !errors.Is(err, ErrInvalidGradient) {
				t.Errorf("error = %v, want ErrInvalidGradient", err)
			}
		})
	}

	if _, err := ColorStops([]uint32{1, 2}, []float32{0, 1}, StopsReject); err != nil {
		t.Errorf("valid stops rejected: %v", err)
	}
}

func TestGradientConstructors(t *testing.T) {
	lin, err := NewLinearGradient(1, 2, 3, 4, []uint32{0xff000000}, []float32{0})
	if err != nil {
		t.Fatal(err)
	}
	if lin.Kind != scene.GradientLinear || lin.Start != (scene.Point{X: 1, Y: 2}) || lin.End != (scene.Point{X: 3, Y: 4}) {
		t.Errorf("linear = %+v", lin)
	}

	rad, err := NewRadialGradient(5, 6, 7, []uint32{0xff000000}, []float32{0})
	if err != nil {
		t.Fatal(err)
	}
	if rad.Kind != scene.GradientRadial || rad.Radius != 7 || rad.Center != (scene.Point{X: 5, Y: 6}) {
		t.Errorf("radial = %+v", rad)
	}

	if _, err := NewRadialGradient(0, 0, 1, nil, []float32{0}); err == nil {
		t.Error("mismatched stops should fail")
	}
}

func TestParseStopPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    StopPolicy
		wantErr bool
	}{
		{"", StopsSort, false},
		{"sort", StopsSort, false},
		{" Reject ", StopsReject, false},
		{"ignore", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStopPolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStopPolicy(%q) = %v, %v", tt.in, got, err)
		}
	}
}

package rivegg

import (
	"errors"
	"math"
	"testing"
)

func TestMapTriangle(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [3]Point
	}{
		{
			"reference",
			[3]Point{Pt(1, 1), Pt(3, 1), Pt(1, 3)},
			[3]Point{Pt(4, 4), Pt(4, -1), Pt(-2, 4)},
		},
		{
			"identity",
			[3]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
			[3]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
		},
		{
			"clockwise source",
			[3]Point{Pt(0, 0), Pt(0, 10), Pt(10, 0)},
			[3]Point{Pt(5, 5), Pt(5, 25), Pt(-15, 5)},
		},
		{
			"collapse onto a point",
			[3]Point{Pt(0, 0), Pt(2, 0), Pt(0, 2)},
			[3]Point{Pt(7, 7), Pt(7, 7), Pt(7, 7)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MapTriangle(tt.src, tt.dst)
			if err != nil {
				t.Fatalf("MapTriangle() error = %v", err)
			}
			for i := range 3 {
				if got := m.TransformPoint(tt.src[i]); !nearPoint(got, tt.dst[i]) {
					t.Errorf("T(%v) = %v, want %v", tt.src[i], got, tt.dst[i])
				}
			}
		})
	}
}

func TestMapTriangleDegenerate(t *testing.T) {
	dst := [3]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	tests := []struct {
		name string
		src  [3]Point
	}{
		{"collinear", [3]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}},
		{"repeated point", [3]Point{Pt(3, 3), Pt(3, 3), Pt(4, 5)}},
		{"underflow", [3]Point{Pt(0, 0), Pt(1e-300, 0), Pt(0, 1e-300)}},
		{"nan", [3]Point{Pt(math.NaN(), 0), Pt(1, 0), Pt(0, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MapTriangle(tt.src, dst)
			if !errors.Is(err, ErrDegenerateTriangle) {
				t.Fatalf("MapTriangle() error = %v, want ErrDegenerateTriangle", err)
			}
			if !m.IsFinite() {
				t.Errorf("MapTriangle() returned non-finite %+v", m)
			}
		})
	}
}

func TestMapUVs(t *testing.T) {
	pos := [3]Point{Pt(10, 10), Pt(30, 10), Pt(10, 50)}
	uvs := [3]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}

	m, err := MapUVs(pos, uvs, 20, 40)
	if err != nil {
		t.Fatalf("MapUVs() error = %v", err)
	}
	// Pixel (20, 0) is the UV (1, 0) corner.
	if got := m.TransformPoint(Pt(20, 0)); !nearPoint(got, pos[1]) {
		t.Errorf("T(20,0) = %v, want %v", got, pos[1])
	}
	if got := m.TransformPoint(Pt(0, 40)); !nearPoint(got, pos[2]) {
		t.Errorf("T(0,40) = %v, want %v", got, pos[2])
	}

	if _, err := MapUVs(pos, uvs, 0, 40); !errors.Is(err, ErrDegenerateTriangle) {
		t.Errorf("zero-width image error = %v, want ErrDegenerateTriangle", err)
	}
}

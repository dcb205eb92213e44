package rivegg

import (
	"testing"

	"github.com/gogpu/rivegg/scene"
)

func fragment() *scene.Scene {
	s := scene.NewScene()
	s.Fill(scene.FillNonZero, scene.IdentityAffine(), scene.SolidBrush(scene.RGBA8(0, 0, 255, 255)), nil,
		scene.NewRectShape(0, 0, 100, 100))
	return s
}

func TestComposeTiled(t *testing.T) {
	tests := []struct {
		factor int
		fills  int
	}{
		{0, 1},
		{1, 1},
		{2, 4},
		{3, 9},
	}
	for _, tt := range tests {
		dst := scene.NewScene()
		ComposeTiled(dst, fragment(), tt.factor, 100, 100)
		if got := countTag(replay(dst.Encoding()), scene.TagFill); got != tt.fills {
			t.Errorf("ComposeTiled(factor=%d) fills = %d, want %d", tt.factor, got, tt.fills)
		}
	}
}

func TestComposeTiledGrid(t *testing.T) {
	dst := scene.NewScene()
	ComposeTiled(dst, fragment(), 2, 200, 100)

	b := dst.Bounds()
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 150 || b.MaxY != 100 {
		t.Errorf("Bounds() = %+v, want (0,0)-(150,100)", b)
	}

	events := replay(dst.Encoding())
	x, y := events[3].transform.TransformPoint(0, 0)
	if x != 100 || y != 50 {
		t.Errorf("last tile origin = (%v,%v), want (100,50)", x, y)
	}
}

func TestEnsureBaseColor(t *testing.T) {
	s := scene.NewScene()
	if !EnsureBaseColor(s) {
		t.Fatal("EnsureBaseColor() on empty scene = false")
	}
	events := replay(s.Encoding())
	if len(events) != 1 || events[0].tag != scene.TagFill || events[0].brush.Color != scene.Transparent {
		t.Errorf("events = %+v, want one transparent fill", events)
	}
	if EnsureBaseColor(s) {
		t.Error("EnsureBaseColor() on non-empty scene = true")
	}
	if EnsureBaseColor(nil) {
		t.Error("EnsureBaseColor(nil) = true")
	}
}

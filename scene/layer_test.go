package scene

import "testing"

func TestLayerStackRoot(t *testing.T) {
	s := NewLayerStack()
	if !s.IsRoot() || s.Depth() != 1 {
		t.Fatalf("new stack depth = %d, want 1", s.Depth())
	}
	if s.Pop() != nil {
		t.Error("Pop() on root should return nil")
	}
	if s.Top() != s.Root() {
		t.Error("Top() should be Root() on a fresh stack")
	}
}

func TestLayerStackPushPop(t *testing.T) {
	s := NewLayerStack()
	layer := s.AcquireLayer()
	layer.BlendMode = BlendOverlay
	s.Push(layer)

	if s.Depth() != 2 || s.Top() != layer {
		t.Fatalf("Depth() = %d, want 2 with pushed layer on top", s.Depth())
	}
	if got := s.Pop(); got != layer {
		t.Error("Pop() should return the pushed layer")
	}

	s.ReleaseLayer(layer)
	reused := s.AcquireLayer()
	if reused != layer {
		t.Error("AcquireLayer() should reuse released layers")
	}
	if reused.BlendMode != BlendNormal || reused.Alpha != 1 || !reused.IsEmpty() {
		t.Errorf("reused layer not reset: %+v", reused)
	}
}

func TestLayerStackReset(t *testing.T) {
	s := NewLayerStack()
	s.Root().Encoding.EncodePopLayer()
	s.Push(s.AcquireLayer())
	s.Push(s.AcquireLayer())

	s.Reset()
	if s.Depth() != 1 {
		t.Errorf("Depth() after Reset = %d, want 1", s.Depth())
	}
	if !s.Root().IsEmpty() {
		t.Error("Reset() should clear the root encoding")
	}
}

func TestClampAlpha(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := clampAlpha(tt.in); got != tt.want {
			t.Errorf("clampAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

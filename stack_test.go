package rivegg

import "testing"

func TestStackNeverEmpty(t *testing.T) {
	tests := []struct {
		name            string
		saves, restores int
	}{
		{"restore on root", 0, 1},
		{"one extra", 2, 3},
		{"many extra", 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			for range tt.saves {
				s.Transform(Translate(1, 2))
				s.MarkClip()
				s.Save()
			}
			for range tt.restores {
				s.Restore()
			}
			if s.Depth() != 1 {
				t.Errorf("Depth() = %d, want 1", s.Depth())
			}
			if !s.Current().IsIdentity() {
				t.Errorf("Current() = %+v, want identity", s.Current())
			}
			if s.ClipActive() {
				t.Error("ClipActive() = true, want false")
			}
		})
	}
}

func TestStackTransformScopedToFrame(t *testing.T) {
	s := NewStack()
	s.Transform(Translate(10, 0))
	before := s.Current()

	s.Save()
	if s.Current() != before {
		t.Error("Save() should copy the current transform")
	}
	s.Transform(Scale(3, 3))
	s.Transform(Translate(5, 5))
	s.Restore()

	if s.Current() != before {
		t.Errorf("Current() after Restore = %+v, want %+v", s.Current(), before)
	}
}

func TestStackTransformRightMultiplies(t *testing.T) {
	s := NewStack()
	s.Transform(Translate(10, 0))
	s.Transform(Scale(2, 2))

	got := s.Current().TransformPoint(Pt(1, 1))
	if got != Pt(12, 2) {
		t.Errorf("TransformPoint(1,1) = %v, want (12,2)", got)
	}
}

func TestStackClipFlags(t *testing.T) {
	s := NewStack()
	s.Save()
	if s.ClipActive() {
		t.Fatal("new frame should start without clip")
	}
	if s.MarkClip() {
		t.Error("first MarkClip() = true, want false")
	}
	if !s.MarkClip() {
		t.Error("second MarkClip() = false, want true")
	}
	if !s.Restore() {
		t.Error("Restore() = false for clipped frame")
	}
	if s.Restore() {
		t.Error("Restore() of unclipped root = true")
	}
}

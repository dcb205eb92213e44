package scene

import "testing"

func TestPathBuilder(t *testing.T) {
	p := NewPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		CubicTo(10, 5, 5, 10, 0, 10).
		Close()

	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbCubicTo, VerbClose}
	if len(p.Verbs()) != len(wantVerbs) {
		t.Fatalf("Verbs() len = %d, want %d", len(p.Verbs()), len(wantVerbs))
	}
	for i, v := range wantVerbs {
		if p.Verbs()[i] != v {
			t.Errorf("verb[%d] = %v, want %v", i, p.Verbs()[i], v)
		}
	}
	if len(p.Points()) != 10 {
		t.Errorf("Points() len = %d, want 10", len(p.Points()))
	}

	b := p.Bounds()
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 10 || b.MaxY != 10 {
		t.Errorf("Bounds() = %+v, want (0,0)-(10,10)", b)
	}
}

func TestPathVerbString(t *testing.T) {
	tests := []struct {
		verb PathVerb
		want string
	}{
		{VerbMoveTo, "MoveTo"},
		{VerbLineTo, "LineTo"},
		{VerbCubicTo, "CubicTo"},
		{VerbClose, "Close"},
		{PathVerb(42), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.verb.String(); got != tt.want {
			t.Errorf("PathVerb(%d).String() = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath().Rectangle(0, 0, 5, 5)
	p.Reset()
	if !p.IsEmpty() || len(p.Points()) != 0 {
		t.Error("Reset() should clear verbs and points")
	}
	if !p.Bounds().IsEmpty() {
		t.Errorf("Bounds() after Reset = %+v, want empty", p.Bounds())
	}
}

func TestPathTransform(t *testing.T) {
	src := NewPath().Rectangle(0, 0, 10, 10)
	dst := src.Transform(TranslateAffine(5, 7))

	if dst.Points()[0] != 5 || dst.Points()[1] != 7 {
		t.Errorf("first point = (%v,%v), want (5,7)", dst.Points()[0], dst.Points()[1])
	}
	if src.Points()[0] != 0 {
		t.Error("Transform() must not modify the source path")
	}
	b := dst.Bounds()
	if b.MinX != 5 || b.MaxY != 17 {
		t.Errorf("Bounds() = %+v, want min x 5, max y 17", b)
	}
}

func TestPathAppend(t *testing.T) {
	a := NewPath().Rectangle(0, 0, 1, 1)
	b := NewPath().Rectangle(10, 10, 1, 1)
	a.Append(b)
	a.Append(nil)

	if len(a.Verbs()) != 10 {
		t.Errorf("Verbs() len = %d, want 10", len(a.Verbs()))
	}
	if len(b.Verbs()) != 5 {
		t.Error("Append() must not modify its argument")
	}
	if a.Bounds().MaxX != 11 {
		t.Errorf("Bounds().MaxX = %v, want 11", a.Bounds().MaxX)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath().MoveTo(1, 1).LineTo(2, 2)
	c := p.Clone()
	p.LineTo(3, 3)

	if len(c.Verbs()) != 2 {
		t.Errorf("clone Verbs() len = %d, want 2", len(c.Verbs()))
	}
}

func TestPathElements(t *testing.T) {
	p := NewPath().MoveTo(1, 2).CubicTo(3, 4, 5, 6, 7, 8).Close()

	var elems []PathElement
	for e := range p.Elements() {
		elems = append(elems, e)
	}
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
	if elems[0].Points[0] != (Point{1, 2}) {
		t.Errorf("MoveTo point = %+v, want (1,2)", elems[0].Points[0])
	}
	if len(elems[1].Points) != 3 || elems[1].Points[2] != (Point{7, 8}) {
		t.Errorf("CubicTo points = %+v", elems[1].Points)
	}
	if len(elems[2].Points) != 0 {
		t.Errorf("Close points = %+v, want none", elems[2].Points)
	}

	count := 0
	for range p.Elements() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break visited %d elements, want 1", count)
	}
}

func TestRectShape(t *testing.T) {
	r := RectShapeFrom(Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6})
	if r.Width != 3 || r.Height != 4 {
		t.Errorf("RectShapeFrom() = %+v, want 3x4", r)
	}

	var s Shape = r
	p := s.ToPath()
	if len(p.Verbs()) != 5 {
		t.Errorf("ToPath() verbs = %d, want 5", len(p.Verbs()))
	}
	if s.Bounds() != p.Bounds() {
		t.Errorf("Bounds() = %+v, path bounds %+v", s.Bounds(), p.Bounds())
	}

	var ps Shape = p
	if ps.ToPath() != p {
		t.Error("(*Path).ToPath() should return the path itself")
	}
}

package scene

import (
	"slices"
	"testing"
)

// commandTags strips path construction tags so tests can compare the
// command structure of an encoding.
func commandTags(enc *Encoding) []Tag {
	var out []Tag
	for _, tag := range enc.Tags() {
		if !tag.IsPathCommand() {
			out = append(out, tag)
		}
	}
	return out
}

func TestSceneFill(t *testing.T) {
	s := NewScene()
	s.Fill(FillEvenOdd, TranslateAffine(5, 5), SolidBrush(RGBA8(255, 0, 0, 255)), nil, NewRectShape(0, 0, 10, 10))

	enc := s.Encoding()
	want := []Tag{TagTransform, TagFill}
	if got := commandTags(enc); !slices.Equal(got, want) {
		t.Errorf("command tags = %v, want %v", got, want)
	}
	b := s.Bounds()
	if b.MinX != 5 || b.MaxX != 15 {
		t.Errorf("Bounds() = %+v, want x in [5,15]", b)
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true after Fill")
	}
}

func TestSceneFillSkipsEmptyShapes(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, nil)
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, NewPath())
	s.Stroke(nil, IdentityAffine(), SolidBrush(Transparent), nil, NewPath())

	if !s.IsEmpty() {
		t.Errorf("tags = %v, want none", s.Encoding().Tags())
	}
}

func TestSceneFillZeroRectIsRecorded(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, NewRectShape(0, 0, 0, 0))
	if s.IsEmpty() {
		t.Error("a zero-area rect still has geometry and must be recorded")
	}
}

func TestSceneFillBrushTransform(t *testing.T) {
	img := NewImage(8, 8, make([]byte, 256))
	bt := ScaleAffine(2, 2)

	s := NewScene()
	s.Fill(FillNonZero, IdentityAffine(), ImageBrush(img), &bt, NewRectShape(0, 0, 1, 1))

	enc := s.Encoding()
	want := []Tag{TagTransform, TagBrushTransform, TagFill}
	if got := commandTags(enc); !slices.Equal(got, want) {
		t.Errorf("command tags = %v, want %v", got, want)
	}
	if got := s.Images(); len(got) != 1 || got[0] != img {
		t.Errorf("Images() = %v, want [img]", got)
	}
}

func TestSceneStrokeDefaultStyle(t *testing.T) {
	s := NewScene()
	s.Stroke(nil, IdentityAffine(), SolidBrush(RGBA8(0, 0, 0, 255)), nil, NewRectShape(0, 0, 4, 4))

	dec := NewDecoder(s.Encoding())
	for dec.Next() {
		if dec.Tag() == TagTransform {
			_ = dec.Transform()
		}
		if dec.Tag() == TagStroke {
			_, style := dec.Stroke()
			if *style != *DefaultStrokeStyle() {
				t.Errorf("stroke style = %+v, want default", *style)
			}
			return
		}
	}
	t.Fatal("no stroke recorded")
}

func TestSceneLayerStructure(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendMultiply, 0.5, IdentityAffine(), NewRectShape(0, 0, 100, 100))
	if s.LayerDepth() != 1 {
		t.Errorf("LayerDepth() = %d, want 1", s.LayerDepth())
	}
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(RGBA8(0, 255, 0, 255)), nil, NewRectShape(10, 10, 20, 20))
	if !s.PopLayer() {
		t.Fatal("PopLayer() = false, want true")
	}

	want := []Tag{
		TagPushLayer, TagTransform, TagBeginClip,
		TagTransform, TagFill,
		TagEndClip, TagPopLayer,
	}
	if got := commandTags(s.Encoding()); !slices.Equal(got, want) {
		t.Errorf("command tags = %v, want %v", got, want)
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth() = %d, want 0", s.LayerDepth())
	}
}

func TestSceneLayerAlphaClamped(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendScreen, 3, IdentityAffine(), nil)
	s.PopLayer()

	dec := NewDecoder(s.Encoding())
	dec.Next()
	if _, alpha := dec.PushLayer(); alpha != 1 {
		t.Errorf("alpha = %v, want 1", alpha)
	}
}

func TestSceneLayerWithoutClip(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendScreen, 1, IdentityAffine(), nil)
	s.PopLayer()

	want := []Tag{TagPushLayer, TagPopLayer}
	if got := s.Encoding().Tags(); !slices.Equal(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestSceneLayerWithEmptyClip(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendClip, 1, IdentityAffine(), NewPath())
	s.PopLayer()

	want := []Tag{TagPushLayer, TagTransform, TagBeginPath, TagEndPath, TagBeginClip, TagEndClip, TagPopLayer}
	if got := s.Encoding().Tags(); !slices.Equal(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestScenePopLayerAtRoot(t *testing.T) {
	s := NewScene()
	if s.PopLayer() {
		t.Error("PopLayer() at root = true, want false")
	}
}

func TestSceneFinishClosesLayers(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendClip, 1, IdentityAffine(), NewRectShape(0, 0, 1, 1))
	s.PushLayer(BlendDarken, 1, IdentityAffine(), NewRectShape(0, 0, 1, 1))

	if n := s.Finish(); n != 2 {
		t.Errorf("Finish() = %d, want 2", n)
	}
	if n := s.Finish(); n != 0 {
		t.Errorf("second Finish() = %d, want 0", n)
	}

	var pushes, pops int
	for _, tag := range s.Encoding().Tags() {
		switch tag {
		case TagPushLayer:
			pushes++
		case TagPopLayer:
			pops++
		}
	}
	if pushes != 2 || pops != 2 {
		t.Errorf("push/pop = %d/%d, want 2/2", pushes, pops)
	}
}

func TestSceneAppend(t *testing.T) {
	img := NewImage(2, 2, make([]byte, 16))

	fragment := NewScene()
	fragment.Fill(FillNonZero, IdentityAffine(), SolidBrush(RGBA8(1, 1, 1, 255)), nil, NewRectShape(0, 0, 10, 10))
	fragment.DrawImage(img, IdentityAffine())

	s := NewScene()
	for i := range 4 {
		tile := TranslateAffine(float32(i)*10, 0).Multiply(ScaleAffine(0.5, 0.5))
		s.Append(fragment, &tile)
	}

	enc := s.Encoding()
	if enc.ShapeCount() != 8 {
		t.Errorf("ShapeCount() = %d, want 8", enc.ShapeCount())
	}
	if len(enc.Images()) != 4 {
		t.Errorf("Images() len = %d, want 4", len(enc.Images()))
	}
	b := enc.Bounds()
	if b.MinX != 0 || b.MaxX != 35 {
		t.Errorf("Bounds() x = [%v,%v], want [0,35]", b.MinX, b.MaxX)
	}
}

func TestSceneAppendSelfIgnored(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, NewRectShape(0, 0, 1, 1))
	before := len(s.Encoding().Tags())
	s.Append(s, nil)
	s.Append(nil, nil)
	if after := len(s.Encoding().Tags()); after != before {
		t.Errorf("tags %d -> %d, want unchanged", before, after)
	}
}

func TestSceneResetAndVersion(t *testing.T) {
	s := NewScene()
	v0 := s.Version()
	s.PushLayer(BlendClip, 1, IdentityAffine(), NewRectShape(0, 0, 1, 1))
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, NewRectShape(0, 0, 1, 1))
	if s.Version() == v0 {
		t.Error("Version() should change on modification")
	}

	s.Reset()
	if !s.IsEmpty() || s.LayerDepth() != 0 {
		t.Error("Reset() should clear content and layers")
	}
}

func TestScenePool(t *testing.T) {
	pool := NewScenePool()
	s := pool.Get()
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(Transparent), nil, NewRectShape(0, 0, 1, 1))
	pool.Put(s)
	pool.Put(nil)

	if got := pool.Get(); !got.IsEmpty() {
		t.Error("Get() should return a reset scene")
	}
}

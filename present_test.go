package rivegg

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rivegg/scene"
)

type fakeRasterizer struct {
	calls  int
	tags   []scene.Tag
	images []*scene.Image
	params RenderParams
	err    error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, enc *scene.Encoding, images []*scene.Image, params RenderParams) (gpucontext.Texture, error) {
	f.calls++
	f.tags = eventTags(replay(enc))
	f.images = images
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return scene.NewImage(int(params.Width), int(params.Height), nil), nil
}

func TestPresent(t *testing.T) {
	r := NewRenderer()
	img := scene.NewImage(2, 2, make([]byte, 16))
	r.Save()
	r.ClipPath(rectPath(0, 0, 10, 10))
	r.DrawImage(img, scene.BlendMultiply, 1)
	// Frame left unbalanced on purpose.

	rast := &fakeRasterizer{}
	params := ParamsFromConfig(DefaultConfig())
	tex, err := r.Present(context.Background(), rast, params)
	if err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if tex.Width() != 800 || tex.Height() != 600 {
		t.Errorf("texture = %dx%d, want 800x600", tex.Width(), tex.Height())
	}
	if countTag(toEvents(rast.tags), scene.TagPushLayer) != countTag(toEvents(rast.tags), scene.TagPopLayer) {
		t.Errorf("unbalanced layers handed to rasterizer: %v", rast.tags)
	}
	if len(rast.images) != 1 || rast.images[0] != img {
		t.Errorf("images = %v, want the drawn image", rast.images)
	}
	if rast.params.BaseColor.A != 1 {
		t.Errorf("base color = %+v, want opaque", rast.params.BaseColor)
	}
	if !r.Scene().IsEmpty() || r.StackDepth() != 1 {
		t.Error("Present() should reset the renderer")
	}
}

func TestPresentEmptyFrame(t *testing.T) {
	rast := &fakeRasterizer{}
	if _, err := NewRenderer().Present(context.Background(), rast, RenderParams{}); err != nil {
		t.Fatal(err)
	}
	if len(rast.tags) != 1 || rast.tags[0] != scene.TagFill {
		t.Errorf("empty frame tags = %v, want a single base-color fill", rast.tags)
	}
}

func TestPresentError(t *testing.T) {
	boom := errors.New("device lost")
	r := NewRenderer()
	r.DrawPath(rectPath(0, 0, 1, 1), NewPaint())

	_, err := r.Present(context.Background(), &fakeRasterizer{err: boom}, RenderParams{})
	if !errors.Is(err, boom) {
		t.Errorf("Present() error = %v, want %v", err, boom)
	}
	if !r.Scene().IsEmpty() {
		t.Error("Present() should reset even when rasterization fails")
	}
}

func toEvents(tags []scene.Tag) []event {
	out := make([]event, len(tags))
	for i, tag := range tags {
		out[i].tag = tag
	}
	return out
}

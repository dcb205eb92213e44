package rivegg

import (
	"github.com/gogpu/rivegg/scene"
)

// Renderer turns draw calls into a display list. It owns a transform/clip
// Stack and keeps the layers of its Scene paired with it: every clip
// opened through ClipPath is closed exactly once, when the frame that
// opened it is restored or the clip is replaced.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	stack    *Stack
	scene    *scene.Scene
	overdraw float64
}

// NewRenderer creates a renderer with an empty scene and a root stack frame.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scene == nil {
		o.scene = scene.NewScene()
	}
	return &Renderer{
		stack:    NewStack(),
		scene:    o.scene,
		overdraw: o.overdraw,
	}
}

// Save pushes a stack frame.
func (r *Renderer) Save() {
	r.stack.Save()
}

// Restore pops a stack frame, closing its clip layer if it opened one.
// Restoring past the root resets to an identity frame.
func (r *Renderer) Restore() {
	if r.stack.Restore() {
		r.scene.PopLayer()
	}
}

// Transform right-multiplies the current transform by m.
func (r *Renderer) Transform(m Matrix) {
	r.stack.Transform(m)
}

// CurrentTransform returns the transform draw calls use.
func (r *Renderer) CurrentTransform() Matrix {
	return r.stack.Current()
}

// StackDepth returns the number of stack frames, root included.
func (r *Renderer) StackDepth() int {
	return r.stack.Depth()
}

// ClipPath restricts subsequent drawing to path under the current
// transform. A second clip in the same frame replaces the first.
func (r *Renderer) ClipPath(path *Path) {
	if path == nil {
		return
	}
	if r.stack.MarkClip() {
		r.scene.PopLayer()
	}
	r.scene.PushLayer(scene.BlendClip, 1, r.stack.Current().Affine(), path)
}

// DrawPath fills or strokes path with paint under the current transform.
// Non-normal blend modes wrap the draw in a layer bounded by the path.
func (r *Renderer) DrawPath(path *Path, paint *Paint) {
	if path == nil || paint == nil || path.IsEmpty() {
		return
	}
	t := r.stack.Current().Affine()

	blended := paint.BlendMode() != scene.BlendNormal
	if blended {
		r.scene.PushLayer(paint.BlendMode(), 1, t, scene.RectShapeFrom(path.BoundingBox()))
	}

	if stroke := paint.Stroke(); stroke != nil {
		r.scene.Stroke(stroke, t, paint.Brush(), nil, path)
	} else {
		r.scene.Fill(path.FillRule().style(), t, paint.Brush(), nil, path)
	}

	if blended {
		r.scene.PopLayer()
	}
}

// DrawImage draws img centered on the origin of the current transform.
//
// A layer over the image rectangle is pushed only for normal blending at
// full opacity; every other combination draws without a layer. Note the
// condition is the inverse of the one DrawPath uses.
func (r *Renderer) DrawImage(img *scene.Image, blend scene.BlendMode, opacity float32) {
	if img == nil || img.IsEmpty() {
		return
	}
	w, h := float64(img.Width()), float64(img.Height())
	t := r.stack.Current().PreTranslate(-w/2, -h/2).Affine()

	layered := blend == scene.BlendNormal && opacity == 1
	if layered {
		r.scene.PushLayer(blend, opacity, t, scene.NewRectShape(0, 0, float32(w), float32(h)))
	}
	r.scene.DrawImage(img, t)
	if layered {
		r.scene.PopLayer()
	}
}

// Scene returns the scene being recorded.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Reset starts a new frame: the scene is cleared and the stack returns to
// its root frame.
func (r *Renderer) Reset() {
	r.scene.Reset()
	r.stack.Reset()
}

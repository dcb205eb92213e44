package scene

// Scene is the retained display list for one frame.
// It builds an Encoding that can be handed to a rasterizer or cached.
//
// Drawing commands carry their own transforms; the scene keeps no
// transform state of its own. Layers nest: everything drawn between
// PushLayer and the matching PopLayer is composited as a group with the
// layer's blend mode and alpha, masked by the layer's clip shape.
//
// Example:
//
//	s := NewScene()
//	s.PushLayer(BlendMultiply, 0.5, IdentityAffine(), clip)
//	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(RGBA8(255, 0, 0, 255)), nil, rect)
//	s.PopLayer()
//	enc := s.Encoding()
type Scene struct {
	// layerStack manages the hierarchy of compositing layers. The root
	// layer's encoding is the scene output.
	layerStack *LayerStack

	// version is incremented on each modification for cache invalidation
	version uint64
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{
		layerStack: NewLayerStack(),
	}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.layerStack.Reset()
	s.version++
}

// Fill fills a shape with the given style, transform, and brush.
// A non-nil brushTransform maps brush space to shape space for this
// fill only.
func (s *Scene) Fill(style FillStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	path := shapePath(shape)
	if path == nil {
		return
	}

	enc := s.currentEncoding()
	enc.EncodeTransform(transform)
	if brushTransform != nil {
		enc.EncodeBrushTransform(*brushTransform)
	}
	enc.EncodePath(path)
	enc.EncodeFill(brush, style)
	s.version++
}

// Stroke strokes a shape with the given style, transform, and brush.
func (s *Scene) Stroke(style *StrokeStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	path := shapePath(shape)
	if path == nil {
		return
	}
	if style == nil {
		style = DefaultStrokeStyle()
	}

	enc := s.currentEncoding()
	enc.EncodeTransform(transform)
	if brushTransform != nil {
		enc.EncodeBrushTransform(*brushTransform)
	}
	enc.EncodePath(path)
	enc.EncodeStroke(brush, style)
	s.version++
}

// DrawImage draws an image at the given transform.
func (s *Scene) DrawImage(img *Image, transform Affine) {
	if img == nil {
		return
	}
	s.currentEncoding().EncodeImage(img, transform)
	s.version++
}

// PushLayer opens a compositing layer. The clip shape is encoded under
// transform; a nil clip leaves the layer unbounded and a clip with no
// geometry masks out everything drawn inside the layer.
// Call PopLayer to composite the layer with the content below.
func (s *Scene) PushLayer(blend BlendMode, alpha float32, transform Affine, clip Shape) {
	layer := s.layerStack.AcquireLayer()
	layer.BlendMode = blend
	layer.Alpha = clampAlpha(alpha)
	layer.Clip = clip
	layer.Transform = transform

	parentEnc := s.currentEncoding()
	parentEnc.EncodePushLayer(blend, layer.Alpha)

	if clip != nil {
		parentEnc.EncodeTransform(transform)
		if !parentEnc.EncodePath(shapePath(clip)) {
			parentEnc.tags = append(parentEnc.tags, TagBeginPath, TagEndPath)
		}
		parentEnc.EncodeBeginClip()
	}

	s.layerStack.Push(layer)
	s.version++
}

// PopLayer closes the innermost layer and composites it with the content
// below. Returns false if there's no layer to pop (only root layer remains).
func (s *Scene) PopLayer() bool {
	layer := s.layerStack.Pop()
	if layer == nil {
		return false
	}

	parentEnc := s.currentEncoding()
	parentEnc.Append(layer.Encoding, nil)
	if layer.HasClip() {
		parentEnc.EncodeEndClip()
	}
	parentEnc.EncodePopLayer()

	s.layerStack.ReleaseLayer(layer)
	s.version++
	return true
}

// Append splices a finished fragment scene into the current layer,
// premultiplying its transforms by transform when non-nil.
// The fragment's open layers are closed first.
func (s *Scene) Append(fragment *Scene, transform *Affine) {
	if fragment == nil || fragment == s {
		return
	}
	s.currentEncoding().Append(fragment.Encoding(), transform)
	s.version++
}

// Finish closes any layers left open and returns how many were closed.
func (s *Scene) Finish() int {
	closed := 0
	for s.PopLayer() {
		closed++
	}
	return closed
}

// Encoding closes any open layers and returns the root encoding
// containing all scene commands.
func (s *Scene) Encoding() *Encoding {
	s.Finish()
	return s.layerStack.Root().Encoding
}

// Images closes any open layers and returns all images the scene
// references.
func (s *Scene) Images() []*Image {
	return s.Encoding().Images()
}

// Bounds returns the device-space bounding box of content recorded so far
// at the root level.
func (s *Scene) Bounds() Rect {
	return s.layerStack.Root().Encoding.Bounds()
}

// Version returns the scene version number.
// This is incremented on each modification and can be used for cache invalidation.
func (s *Scene) Version() uint64 {
	return s.version
}

// IsEmpty returns true if the scene has no content.
func (s *Scene) IsEmpty() bool {
	for _, layer := range s.layerStack.layers {
		if !layer.IsEmpty() {
			return false
		}
	}
	return true
}

// LayerDepth returns the number of open layers above the root.
func (s *Scene) LayerDepth() int {
	return s.layerStack.Depth() - 1
}

// currentEncoding returns the encoding for the current layer.
func (s *Scene) currentEncoding() *Encoding {
	return s.layerStack.Top().Encoding
}

// shapePath returns the path for shape, or nil if there is nothing to encode.
func shapePath(shape Shape) *Path {
	if shape == nil {
		return nil
	}
	path := shape.ToPath()
	if path == nil || path.IsEmpty() {
		return nil
	}
	return path
}

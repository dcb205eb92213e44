package scene

// LayerState represents an open compositing layer. Content drawn while
// the layer is on top is recorded into its own Encoding and spliced into
// the parent when the layer is popped.
type LayerState struct {
	// BlendMode specifies how this layer composites with layers below.
	// BlendClip layers only mask their content.
	BlendMode BlendMode

	// Alpha is the layer opacity (0.0 to 1.0)
	Alpha float32

	// Clip is the layer shape, in the space of Transform.
	// If nil, the layer has no clip (infinite bounds).
	Clip Shape

	// Transform is the transform the clip shape was encoded under.
	Transform Affine

	// Encoding holds the layer's drawing commands.
	Encoding *Encoding
}

// Reset clears the layer state for reuse.
func (ls *LayerState) Reset() {
	ls.BlendMode = BlendNormal
	ls.Alpha = 1.0
	ls.Clip = nil
	ls.Transform = IdentityAffine()
	if ls.Encoding != nil {
		ls.Encoding.Reset()
	}
}

// IsEmpty returns true if the layer has no content.
func (ls *LayerState) IsEmpty() bool {
	return ls.Encoding == nil || ls.Encoding.IsEmpty()
}

// HasClip returns true if the layer has a clip shape.
func (ls *LayerState) HasClip() bool {
	return ls.Clip != nil
}

// clampAlpha clamps alpha to [0, 1] range.
func clampAlpha(alpha float32) float32 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// LayerStack manages a stack of active layers.
// The stack always has at least one layer (the root layer).
type LayerStack struct {
	layers []*LayerState
	free   []*LayerState
}

// NewLayerStack creates a new layer stack with a root layer.
func NewLayerStack() *LayerStack {
	stack := &LayerStack{
		layers: make([]*LayerState, 0, 8),
		free:   make([]*LayerState, 0, 8),
	}
	stack.layers = append(stack.layers, stack.AcquireLayer())
	return stack
}

// Push adds a new layer to the stack.
func (s *LayerStack) Push(layer *LayerState) {
	s.layers = append(s.layers, layer)
}

// Pop removes and returns the top layer.
// Returns nil if only the root layer remains.
func (s *LayerStack) Pop() *LayerState {
	if len(s.layers) <= 1 {
		return nil
	}
	layer := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return layer
}

// Top returns the current (topmost) layer without removing it.
func (s *LayerStack) Top() *LayerState {
	return s.layers[len(s.layers)-1]
}

// Root returns the root (bottom) layer.
func (s *LayerStack) Root() *LayerState {
	return s.layers[0]
}

// Depth returns the current stack depth (1 = only root).
func (s *LayerStack) Depth() int {
	return len(s.layers)
}

// IsRoot returns true if only the root layer is on the stack.
func (s *LayerStack) IsRoot() bool {
	return len(s.layers) == 1
}

// Reset clears the stack, returning to just the root layer.
func (s *LayerStack) Reset() {
	for i := len(s.layers) - 1; i > 0; i-- {
		s.ReleaseLayer(s.layers[i])
	}
	s.layers = s.layers[:1]
	s.layers[0].Reset()
}

// AcquireLayer gets a reset layer from the free list or allocates one.
func (s *LayerStack) AcquireLayer() *LayerState {
	if n := len(s.free); n > 0 {
		layer := s.free[n-1]
		s.free = s.free[:n-1]
		layer.Reset()
		return layer
	}
	layer := &LayerState{Encoding: NewEncoding()}
	layer.Reset()
	return layer
}

// ReleaseLayer returns a layer to the free list.
func (s *LayerStack) ReleaseLayer(layer *LayerState) {
	if layer == nil {
		return
	}
	layer.Reset()
	s.free = append(s.free, layer)
}

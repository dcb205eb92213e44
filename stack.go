package rivegg

// SaveFrame is one level of the transform/clip stack.
type SaveFrame struct {
	Transform Matrix
	// ClipActive is set once a clip layer has been opened at this level.
	ClipActive bool
}

// Stack is the save/restore stack of transforms and clip flags.
// It always holds at least the root frame.
type Stack struct {
	frames []SaveFrame
}

// NewStack creates a stack holding only the root frame.
func NewStack() *Stack {
	s := &Stack{frames: make([]SaveFrame, 0, 8)}
	s.Reset()
	return s
}

// Reset drops every frame and starts over from the root frame
// (identity transform, no clip).
func (s *Stack) Reset() {
	s.frames = append(s.frames[:0], SaveFrame{Transform: Identity()})
}

func (s *Stack) top() *SaveFrame {
	return &s.frames[len(s.frames)-1]
}

// Save pushes a frame with the current transform and no clip.
func (s *Stack) Save() {
	s.frames = append(s.frames, SaveFrame{Transform: s.top().Transform})
}

// Restore pops the top frame and reports whether it had a clip layer
// open. Popping the last frame resets the stack to the root frame.
func (s *Stack) Restore() (clipWasActive bool) {
	popped := *s.top()
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.frames) == 0 {
		Logger().Debug("rivegg: restore past root, resetting stack")
		s.Reset()
	}
	return popped.ClipActive
}

// Transform right-multiplies the top transform by delta.
func (s *Stack) Transform(delta Matrix) {
	t := s.top()
	t.Transform = t.Transform.Multiply(delta)
}

// Current returns the top transform.
func (s *Stack) Current() Matrix {
	return s.top().Transform
}

// ClipActive reports whether the top frame has a clip layer open.
func (s *Stack) ClipActive() bool {
	return s.top().ClipActive
}

// MarkClip flags the top frame as clipped and reports whether it already
// was, in which case the caller must close the previous clip layer.
func (s *Stack) MarkClip() (wasActive bool) {
	t := s.top()
	wasActive = t.ClipActive
	t.ClipActive = true
	return wasActive
}

// Depth returns the number of frames, root included.
func (s *Stack) Depth() int {
	return len(s.frames)
}

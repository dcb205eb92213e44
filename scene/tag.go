// Package scene is the retained display list handed to a rasterizer.
//
// Commands are recorded into an Encoding: a compact tag stream (1 byte
// per command) indexing separate streams for path coordinates, draw
// parameters and transforms, plus brush and image tables. Scene builds
// an Encoding with nested compositing layers; Decoder plays it back.
package scene

// Tag represents a single-byte command identifier in the encoding stream.
// Tags are organized into groups by their high nibble:
//
//	0x0X: Transform operations
//	0x1X: Path commands
//	0x2X: Fill/Stroke operations
//	0x3X: Layer operations
//	0x4X: Clip operations
//	0x5X: Image operations
type Tag byte

// Tag constants define all encoding commands.
// Each tag has a fixed data layout documented in its comment.
const (
	// TagTransform encodes an affine transformation.
	// Data: 6 float32 values [a, b, c, d, e, f] representing the matrix:
	//   | a  b  c |
	//   | d  e  f |
	TagTransform Tag = 0x01

	// TagBrushTransform sets the brush-space transform of the next
	// fill or stroke only.
	// Data: 1 Affine from the transform stream.
	TagBrushTransform Tag = 0x02

	// TagBeginPath marks the start of a new path.
	// Data: none (marker only)
	TagBeginPath Tag = 0x10

	// TagMoveTo moves the current point without drawing.
	// Data: 2 float32 values [x, y]
	TagMoveTo Tag = 0x11

	// TagLineTo draws a line to the specified point.
	// Data: 2 float32 values [x, y]
	TagLineTo Tag = 0x12

	// TagCubicTo draws a cubic Bezier curve.
	// Data: 6 float32 values [c1x, c1y, c2x, c2y, x, y] (control1, control2, end)
	TagCubicTo Tag = 0x14

	// TagClosePath closes the current subpath.
	// Data: none (uses implicit return to subpath start)
	TagClosePath Tag = 0x16

	// TagEndPath marks the end of a path definition.
	// Data: none (marker only)
	TagEndPath Tag = 0x17

	// TagFill fills the current path.
	// Data: 1 uint32 for brush index, 1 uint32 for fill style (NonZero=0, EvenOdd=1)
	TagFill Tag = 0x20

	// TagStroke strokes the current path.
	// Data: 1 uint32 for brush index, then stroke style:
	//   4 float32: [lineWidth, miterLimit, lineCap, lineJoin]
	TagStroke Tag = 0x21

	// TagPushLayer pushes a new compositing layer.
	// Data: 1 uint32 for blend mode, 1 float32 for alpha
	TagPushLayer Tag = 0x30

	// TagPopLayer pops the current compositing layer.
	// Data: none
	TagPopLayer Tag = 0x31

	// TagBeginClip marks the preceding path as the clip shape of the
	// layer just pushed. Data: none
	TagBeginClip Tag = 0x40

	// TagEndClip ends the current clipping region.
	// Data: none
	TagEndClip Tag = 0x41

	// TagImage draws an image resource.
	// Data: 1 uint32 image index, 1 Affine from the transform stream
	TagImage Tag = 0x51
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagTransform:
		return "Transform"
	case TagBrushTransform:
		return "BrushTransform"
	case TagBeginPath:
		return "BeginPath"
	case TagMoveTo:
		return "MoveTo"
	case TagLineTo:
		return "LineTo"
	case TagCubicTo:
		return "CubicTo"
	case TagClosePath:
		return "ClosePath"
	case TagEndPath:
		return "EndPath"
	case TagFill:
		return "Fill"
	case TagStroke:
		return "Stroke"
	case TagPushLayer:
		return "PushLayer"
	case TagPopLayer:
		return "PopLayer"
	case TagBeginClip:
		return "BeginClip"
	case TagEndClip:
		return "EndClip"
	case TagImage:
		return "Image"
	default:
		return unknownStr
	}
}

// IsPathCommand returns true if the tag is a path construction command.
func (t Tag) IsPathCommand() bool {
	return t >= TagBeginPath && t <= TagEndPath
}

// IsDrawCommand returns true if the tag is a draw command (fill/stroke).
func (t Tag) IsDrawCommand() bool {
	return t == TagFill || t == TagStroke
}

// IsLayerCommand returns true if the tag is a layer command.
func (t Tag) IsLayerCommand() bool {
	return t == TagPushLayer || t == TagPopLayer
}

// IsClipCommand returns true if the tag is a clip command.
func (t Tag) IsClipCommand() bool {
	return t == TagBeginClip || t == TagEndClip
}

// PathDataSize returns the number of float32 values this tag consumes
// from the path data stream.
func (t Tag) PathDataSize() int {
	switch t {
	case TagMoveTo, TagLineTo:
		return 2
	case TagCubicTo:
		return 6
	default:
		return 0
	}
}

// DrawDataSize returns the number of uint32 values this tag consumes
// from the draw data stream.
func (t Tag) DrawDataSize() int {
	switch t {
	case TagFill, TagPushLayer:
		return 2
	case TagStroke:
		return 5
	case TagImage:
		return 1
	default:
		return 0
	}
}

// UsesTransform returns true if the tag consumes one transform entry.
func (t Tag) UsesTransform() bool {
	return t == TagTransform || t == TagBrushTransform || t == TagImage
}

package scene

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Color is a straight-alpha RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black.
var Transparent = Color{}

// RGBA8 creates a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Packed returns the color as 0xRRGGBBAA, used for hashing and encoding.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// BrushKind identifies the type of brush.
type BrushKind uint32

const (
	BrushSolid BrushKind = iota
	BrushLinearGradient
	BrushRadialGradient
	BrushImage
)

// String returns a human-readable name for the brush kind.
func (k BrushKind) String() string {
	switch k {
	case BrushSolid:
		return "Solid"
	case BrushLinearGradient:
		return "LinearGradient"
	case BrushRadialGradient:
		return "RadialGradient"
	case BrushImage:
		return "Image"
	default:
		return unknownStr
	}
}

// Brush represents a paint source for fill/stroke operations.
// Gradient and Image are shared read-only references; the brush never
// owns them.
type Brush struct {
	Kind     BrushKind
	Color    Color     // For solid brushes
	Gradient *Gradient // For gradient brushes
	Image    *Image    // For image brushes
}

// SolidBrush creates a solid color brush.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// GradientBrush creates a brush painting with g.
// A nil gradient yields a transparent solid brush.
func GradientBrush(g *Gradient) Brush {
	if g == nil {
		return SolidBrush(Transparent)
	}
	kind := BrushLinearGradient
	if g.Kind == GradientRadial {
		kind = BrushRadialGradient
	}
	return Brush{Kind: kind, Gradient: g}
}

// ImageBrush creates a brush sampling img.
func ImageBrush(img *Image) Brush {
	return Brush{Kind: BrushImage, Image: img}
}

// GradientKind identifies the gradient geometry.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float32
	Color  Color
}

// Gradient describes a linear or radial color ramp.
// Stops are kept in the order given; callers that need a monotonic
// ramp normalize the stops before building the gradient.
type Gradient struct {
	Kind GradientKind

	// Start and End are the linear gradient endpoints.
	Start, End Point

	// Center and Radius describe a radial gradient.
	Center Point
	Radius float32

	Stops []ColorStop
}

// NewLinearGradient creates a linear gradient from start to end.
func NewLinearGradient(start, end Point, stops []ColorStop) *Gradient {
	return &Gradient{Kind: GradientLinear, Start: start, End: end, Stops: stops}
}

// NewRadialGradient creates a radial gradient around center.
func NewRadialGradient(center Point, radius float32, stops []ColorStop) *Gradient {
	return &Gradient{Kind: GradientRadial, Center: center, Radius: radius, Stops: stops}
}

// Image is a decoded pixel buffer. It is immutable after creation and
// may be referenced by any number of draw commands.
type Image struct {
	width  int
	height int
	data   []byte
	format gputypes.TextureFormat
}

var _ gpucontext.Texture = (*Image)(nil)

// NewImage wraps an RGBA8 pixel buffer of width*height*4 bytes.
// The buffer must not be modified afterwards.
func NewImage(width, height int, data []byte) *Image {
	return &Image{
		width:  width,
		height: height,
		data:   data,
		format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Data returns the pixel buffer. Callers must treat it as read-only.
func (img *Image) Data() []byte { return img.data }

// Format returns the pixel layout.
func (img *Image) Format() gputypes.TextureFormat { return img.format }

// Bounds returns the image bounds as a Rect.
func (img *Image) Bounds() Rect {
	return Rect{
		MinX: 0,
		MinY: 0,
		MaxX: float32(img.width),
		MaxY: float32(img.height),
	}
}

// IsEmpty returns true if the image has no dimensions.
func (img *Image) IsEmpty() bool {
	return img.width <= 0 || img.height <= 0
}

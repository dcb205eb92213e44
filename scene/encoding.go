package scene

import (
	"math"
)

// BlendMode represents a compositing blend mode.
type BlendMode uint32

// Blend mode constants. BlendClip is not a color blend: a layer pushed
// with it only restricts what is drawn inside it to the layer shape.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendClip
)

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	// HSL blend modes
	case BlendHue:
		return "Hue"
	case BlendSaturation:
		return "Saturation"
	case BlendColor:
		return "Color"
	case BlendLuminosity:
		return "Luminosity"
	case BlendClip:
		return "Clip"
	default:
		return unknownStr
	}
}

// IsSeparable returns true if the mode blends each channel independently.
func (mode BlendMode) IsSeparable() bool {
	return mode <= BlendExclusion
}

// IsHSL returns true if this is an HSL-based non-separable blend mode.
func (mode BlendMode) IsHSL() bool {
	return mode >= BlendHue && mode <= BlendLuminosity
}

// FillStyle represents the fill rule for paths.
type FillStyle uint32

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillStyle = 0
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd FillStyle = 1
)

// String returns a human-readable name for the fill style.
func (f FillStyle) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// StrokeStyle contains stroke parameters.
type StrokeStyle struct {
	Width      float32
	MiterLimit float32
	Cap        LineCap
	Join       LineJoin
}

// LineCap represents line endpoint shapes. The cap applies to both ends
// of every open subpath.
type LineCap uint32

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin represents line join shapes.
type LineJoin uint32

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// DefaultStrokeStyle returns the stroke a fill turns into when a stroke
// parameter is first set: zero width, miter limit 4, miter joins and
// butt caps.
func DefaultStrokeStyle() *StrokeStyle {
	return &StrokeStyle{
		Width:      0,
		MiterLimit: 4,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
	}
}

// Rect represents a bounding rectangle.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min(r.MinX, x),
		MinY: min(r.MinY, y),
		MaxX: max(r.MaxX, x),
		MaxY: max(r.MaxY, y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// Multiply returns a*b: b is applied first, then a.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a == IdentityAffine()
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (a Affine) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return r
	}
	corners := [4][2]float32{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
	result := EmptyRect()
	for _, c := range corners {
		x, y := a.TransformPoint(c[0], c[1])
		result = result.UnionPoint(x, y)
	}
	return result
}

// Encoding holds the dual-stream encoded representation of drawing commands.
// Tags (1 byte each) index into separate streams for path coordinates,
// draw parameters, transforms, brushes and images.
type Encoding struct {
	tags []Tag

	// pathData holds coordinates: MoveTo/LineTo 2, CubicTo 6.
	pathData []float32

	// drawData holds draw parameters:
	// Fill: brush index, fill style.
	// Stroke: brush index, width, miter limit, cap, join.
	// PushLayer: blend mode, alpha.
	// Image: image index.
	drawData []uint32

	// transforms holds one entry per TagTransform, TagBrushTransform
	// and TagImage, in tag order.
	transforms []Affine

	brushes []Brush
	images  []*Image

	bounds     Rect
	pathBounds Rect

	// lastTransform is the most recent TagTransform value, used to skip
	// redundant transform tags.
	lastTransform Affine
	hasTransform  bool

	pathCount  int
	shapeCount int
}

// NewEncoding creates a new empty encoding.
func NewEncoding() *Encoding {
	return &Encoding{
		tags:       make([]Tag, 0, 64),
		pathData:   make([]float32, 0, 256),
		drawData:   make([]uint32, 0, 32),
		transforms: make([]Affine, 0, 8),
		brushes:    make([]Brush, 0, 16),
		bounds:     EmptyRect(),
		pathBounds: EmptyRect(),
	}
}

// Reset clears the encoding for reuse without deallocating memory.
func (e *Encoding) Reset() {
	e.tags = e.tags[:0]
	e.pathData = e.pathData[:0]
	e.drawData = e.drawData[:0]
	e.transforms = e.transforms[:0]
	clear(e.brushes)
	e.brushes = e.brushes[:0]
	clear(e.images)
	e.images = e.images[:0]
	e.bounds = EmptyRect()
	e.pathBounds = EmptyRect()
	e.lastTransform = Affine{}
	e.hasTransform = false
	e.pathCount = 0
	e.shapeCount = 0
}

// EncodeTransform sets the transform for subsequent paths.
// It returns false when t equals the transform already in effect and
// nothing was written.
func (e *Encoding) EncodeTransform(t Affine) bool {
	if e.hasTransform && e.lastTransform == t {
		return false
	}
	e.tags = append(e.tags, TagTransform)
	e.transforms = append(e.transforms, t)
	e.lastTransform = t
	e.hasTransform = true
	return true
}

// CurrentTransform returns the transform in effect at the end of the
// stream, identity if none was encoded.
func (e *Encoding) CurrentTransform() Affine {
	if !e.hasTransform {
		return IdentityAffine()
	}
	return e.lastTransform
}

// EncodeBrushTransform sets the brush-space transform of the next fill
// or stroke. It is consumed by that draw and does not persist.
func (e *Encoding) EncodeBrushTransform(t Affine) {
	e.tags = append(e.tags, TagBrushTransform)
	e.transforms = append(e.transforms, t)
}

// EncodePath encodes a complete path. Empty paths are skipped and
// false is returned.
func (e *Encoding) EncodePath(p *Path) bool {
	if p == nil || p.IsEmpty() {
		return false
	}

	e.tags = append(e.tags, TagBeginPath)
	e.pathBounds = EmptyRect()
	e.pathCount++

	pts := p.points
	idx := 0
	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo:
			e.tags = append(e.tags, TagMoveTo)
		case VerbLineTo:
			e.tags = append(e.tags, TagLineTo)
		case VerbCubicTo:
			e.tags = append(e.tags, TagCubicTo)
		case VerbClose:
			e.tags = append(e.tags, TagClosePath)
			continue
		}
		n := verb.PointCount()
		for i := 0; i < n; i += 2 {
			e.pathBounds = e.pathBounds.UnionPoint(pts[idx+i], pts[idx+i+1])
		}
		e.pathData = append(e.pathData, pts[idx:idx+n]...)
		idx += n
	}

	e.tags = append(e.tags, TagEndPath)
	e.bounds = e.bounds.Union(e.CurrentTransform().TransformRect(e.pathBounds))
	return true
}

// EncodeFill adds a fill command with the given brush and fill style.
func (e *Encoding) EncodeFill(brush Brush, style FillStyle) {
	brushIdx := e.addBrush(brush)
	e.tags = append(e.tags, TagFill)
	e.drawData = append(e.drawData, brushIdx, uint32(style))
	e.shapeCount++
}

// EncodeStroke adds a stroke command with the given brush and stroke style.
func (e *Encoding) EncodeStroke(brush Brush, style *StrokeStyle) {
	if style == nil {
		style = DefaultStrokeStyle()
	}
	brushIdx := e.addBrush(brush)
	e.tags = append(e.tags, TagStroke)
	e.drawData = append(e.drawData,
		brushIdx,
		math.Float32bits(style.Width),
		math.Float32bits(style.MiterLimit),
		uint32(style.Cap),
		uint32(style.Join),
	)
	e.shapeCount++
}

func (e *Encoding) addBrush(brush Brush) uint32 {
	if brush.Kind == BrushImage && brush.Image != nil {
		e.internImage(brush.Image)
	}
	idx := len(e.brushes)
	e.brushes = append(e.brushes, brush)
	//nolint:gosec // brush index is bounded by slice length
	return uint32(idx)
}

// EncodePushLayer pushes a new compositing layer.
func (e *Encoding) EncodePushLayer(blend BlendMode, alpha float32) {
	e.tags = append(e.tags, TagPushLayer)
	e.drawData = append(e.drawData, uint32(blend), math.Float32bits(alpha))
}

// EncodePopLayer pops the current compositing layer.
func (e *Encoding) EncodePopLayer() {
	e.tags = append(e.tags, TagPopLayer)
}

// EncodeBeginClip makes the preceding path the clip of the open layer.
func (e *Encoding) EncodeBeginClip() {
	e.tags = append(e.tags, TagBeginClip)
}

// EncodeEndClip ends the current clipping region.
func (e *Encoding) EncodeEndClip() {
	e.tags = append(e.tags, TagEndClip)
}

// EncodeImage draws img under transform. Images are interned by
// pointer: repeated draws of the same image share an index.
func (e *Encoding) EncodeImage(img *Image, transform Affine) {
	idx := e.internImage(img)
	e.tags = append(e.tags, TagImage)
	e.drawData = append(e.drawData, idx)
	e.transforms = append(e.transforms, transform)
	e.bounds = e.bounds.Union(transform.TransformRect(img.Bounds()))
	e.shapeCount++
}

func (e *Encoding) internImage(img *Image) uint32 {
	for i, registered := range e.images {
		if registered == img {
			//nolint:gosec // image index is bounded by slice length
			return uint32(i)
		}
	}
	e.images = append(e.images, img)
	//nolint:gosec // image index is bounded by slice length
	return uint32(len(e.images) - 1)
}

// Bounds returns the cumulative device-space bounding box of all
// encoded paths and images.
func (e *Encoding) Bounds() Rect {
	return e.bounds
}

// Hash computes a 64-bit FNV-1a hash of the encoding for cache keys.
func (e *Encoding) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)

	hash := uint64(fnvOffset)
	mix := func(v uint32) {
		hash ^= uint64(v)
		hash *= fnvPrime
	}

	for _, t := range e.tags {
		mix(uint32(t))
	}
	for _, v := range e.pathData {
		mix(math.Float32bits(v))
	}
	for _, v := range e.drawData {
		mix(v)
	}
	for _, t := range e.transforms {
		for _, v := range [6]float32{t.A, t.B, t.C, t.D, t.E, t.F} {
			mix(math.Float32bits(v))
		}
	}
	for _, b := range e.brushes {
		mix(uint32(b.Kind))
		mix(b.Color.Packed())
	}
	return hash
}

// Append merges other into e. When t is non-nil every transform in
// other (including image placements) is premultiplied by t; brush
// transforms are brush-space relative and are left unchanged.
// Brush and image indices are rebased onto e's tables.
func (e *Encoding) Append(other *Encoding, t *Affine) {
	if other == nil || len(other.tags) == 0 {
		return
	}

	base := IdentityAffine()
	if t != nil {
		base = *t
	}
	// Paths in other that precede its first transform tag are drawn
	// under base.
	if other.pathBeforeTransform() {
		e.EncodeTransform(base)
	}

	//nolint:gosec // table lengths are bounded
	brushOffset, imageOffset := uint32(len(e.brushes)), uint32(len(e.images))
	drawStart := len(e.drawData)
	transStart := len(e.transforms)

	e.tags = append(e.tags, other.tags...)
	e.pathData = append(e.pathData, other.pathData...)
	e.drawData = append(e.drawData, other.drawData...)
	e.transforms = append(e.transforms, other.transforms...)
	e.brushes = append(e.brushes, other.brushes...)
	e.images = append(e.images, other.images...)

	drawIdx, transIdx := 0, 0
	for _, tag := range other.tags {
		switch tag {
		case TagTransform:
			if t != nil {
				e.transforms[transStart+transIdx] = base.Multiply(other.transforms[transIdx])
			}
			e.lastTransform = e.transforms[transStart+transIdx]
			e.hasTransform = true
		case TagImage:
			e.drawData[drawStart+drawIdx] += imageOffset
			if t != nil {
				e.transforms[transStart+transIdx] = base.Multiply(other.transforms[transIdx])
			}
		case TagFill, TagStroke:
			e.drawData[drawStart+drawIdx] += brushOffset
		}
		drawIdx += tag.DrawDataSize()
		if tag.UsesTransform() {
			transIdx++
		}
	}

	if t != nil {
		e.bounds = e.bounds.Union(base.TransformRect(other.bounds))
	} else {
		e.bounds = e.bounds.Union(other.bounds)
	}
	e.pathCount += other.pathCount
	e.shapeCount += other.shapeCount
}

func (e *Encoding) pathBeforeTransform() bool {
	for _, tag := range e.tags {
		switch tag {
		case TagTransform:
			return false
		case TagBeginPath:
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the encoding.
func (e *Encoding) Clone() *Encoding {
	clone := &Encoding{
		tags:          append([]Tag(nil), e.tags...),
		pathData:      append([]float32(nil), e.pathData...),
		drawData:      append([]uint32(nil), e.drawData...),
		transforms:    append([]Affine(nil), e.transforms...),
		brushes:       append([]Brush(nil), e.brushes...),
		images:        append([]*Image(nil), e.images...),
		bounds:        e.bounds,
		pathBounds:    e.pathBounds,
		lastTransform: e.lastTransform,
		hasTransform:  e.hasTransform,
		pathCount:     e.pathCount,
		shapeCount:    e.shapeCount,
	}
	return clone
}

// Tags returns the tag stream (read-only access for iteration).
func (e *Encoding) Tags() []Tag {
	return e.tags
}

// PathData returns the path data stream.
func (e *Encoding) PathData() []float32 {
	return e.pathData
}

// DrawData returns the draw data stream.
func (e *Encoding) DrawData() []uint32 {
	return e.drawData
}

// Transforms returns the transform stream.
func (e *Encoding) Transforms() []Affine {
	return e.transforms
}

// Brushes returns the brush definitions.
func (e *Encoding) Brushes() []Brush {
	return e.brushes
}

// Images returns the images referenced by TagImage commands and image
// brushes, in index order.
func (e *Encoding) Images() []*Image {
	return e.images
}

// PathCount returns the number of paths encoded.
func (e *Encoding) PathCount() int {
	return e.pathCount
}

// ShapeCount returns the number of fills, strokes and images encoded.
func (e *Encoding) ShapeCount() int {
	return e.shapeCount
}

// IsEmpty returns true if the encoding contains no commands.
func (e *Encoding) IsEmpty() bool {
	return len(e.tags) == 0
}

// Size returns the approximate memory size in bytes.
func (e *Encoding) Size() int {
	return len(e.tags) +
		len(e.pathData)*4 +
		len(e.drawData)*4 +
		len(e.transforms)*24 +
		len(e.brushes)*32
}

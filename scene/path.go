package scene

import "iter"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo begins a new subpath.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a straight segment.
	VerbLineTo
	// VerbCubicTo draws a cubic Bezier segment.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of float32 values this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Point is a 2D point in path space.
type Point struct {
	X, Y float32
}

// PathElement is a single verb with its points, yielded by Path.Elements.
type PathElement struct {
	Verb   PathVerb
	Points []Point
}

// Path represents a vector path for encoding.
// Verbs and coordinates are stored in separate streams, the same layout
// the Encoding uses, so a path can be copied into an encoding without
// reformatting.
type Path struct {
	verbs  []PathVerb
	points []float32
	bounds Rect
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = EmptyRect()
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	// Control points are included: conservative but cheap.
	p.bounds = p.bounds.UnionPoint(c1x, c1y)
	p.bounds = p.bounds.UnionPoint(c2x, c2y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Bounds returns the bounding rectangle of the path.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point data stream.
func (p *Path) Points() []float32 {
	return p.points
}

// Transform returns a new path with all points transformed by t.
func (p *Path) Transform(t Affine) *Path {
	result := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		bounds: EmptyRect(),
	}
	copy(result.verbs, p.verbs)

	for i := 0; i < len(p.points); i += 2 {
		x, y := t.TransformPoint(p.points[i], p.points[i+1])
		result.points[i] = x
		result.points[i+1] = y
		result.bounds = result.bounds.UnionPoint(x, y)
	}
	return result
}

// Append adds all verbs of other to the end of p. Other is not modified.
func (p *Path) Append(other *Path) *Path {
	if other == nil || other.IsEmpty() {
		return p
	}
	p.verbs = append(p.verbs, other.verbs...)
	p.points = append(p.points, other.points...)
	p.bounds = p.bounds.Union(other.bounds)
	return p
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		bounds: p.bounds,
	}
	copy(result.verbs, p.verbs)
	copy(result.points, p.points)
	return result
}

// Elements returns an iterator over all path elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0
		for _, verb := range p.verbs {
			elem := PathElement{Verb: verb}
			n := verb.PointCount()
			for i := 0; i < n; i += 2 {
				elem.Points = append(elem.Points, Point{p.points[pointIdx+i], p.points[pointIdx+i+1]})
			}
			pointIdx += n
			if !yield(elem) {
				return
			}
		}
	}
}

// Shape is anything that can be encoded as a path.
type Shape interface {
	// ToPath converts the shape to a Path for encoding.
	ToPath() *Path

	// Bounds returns the bounding rectangle of the shape.
	Bounds() Rect
}

// ToPath returns p itself, so a *Path can be used wherever a Shape is expected.
func (p *Path) ToPath() *Path {
	return p
}

// RectShape represents an axis-aligned rectangle.
type RectShape struct {
	X, Y          float32
	Width, Height float32
}

// NewRectShape creates a rectangle shape.
func NewRectShape(x, y, width, height float32) *RectShape {
	return &RectShape{X: x, Y: y, Width: width, Height: height}
}

// RectShapeFrom creates a rectangle shape covering r.
func RectShapeFrom(r Rect) *RectShape {
	return NewRectShape(r.MinX, r.MinY, r.Width(), r.Height())
}

// ToPath converts the rectangle to a closed path.
func (r *RectShape) ToPath() *Path {
	return NewPath().Rectangle(r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the rectangle itself.
func (r *RectShape) Bounds() Rect {
	return Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}

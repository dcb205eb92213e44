package rivegg

import (
	"fmt"

	"github.com/gogpu/rivegg/scene"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	return r.style().String()
}

func (r FillRule) style() scene.FillStyle {
	if r == FillRuleEvenOdd {
		return scene.FillEvenOdd
	}
	return scene.FillNonZero
}

// Path is a mutable sequence of path verbs in local space plus the rule
// used to fill it.
//
// Path implements scene.Shape, so it can be handed to the display list
// directly.
type Path struct {
	geom *scene.Path
	rule FillRule
}

// NewPath creates an empty non-zero path.
func NewPath() *Path {
	return &Path{geom: scene.NewPath()}
}

// NewPathFromCommands builds a path from parallel verb and point lists.
// Each move and line consumes one point, each cubic three, and close none.
func NewPathFromCommands(verbs []scene.PathVerb, points []Point, rule FillRule) (*Path, error) {
	p := NewPath()
	p.rule = rule

	i := 0
	take := func(n int) ([]Point, bool) {
		if i+n > len(points) {
			return nil, false
		}
		pts := points[i : i+n]
		i += n
		return pts, true
	}

	for vi, v := range verbs {
		n := v.PointCount() / 2
		pts, ok := take(n)
		if !ok {
			return nil, fmt.Errorf("rivegg: verb %d (%v): %w", vi, v, ErrMalformedPath)
		}
		switch v {
		case scene.VerbMoveTo:
			p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case scene.VerbLineTo:
			p.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case scene.VerbCubicTo:
			p.CubicTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case scene.VerbClose:
			p.Close()
		default:
			return nil, fmt.Errorf("rivegg: verb %d: %w", vi, &EnumError{Kind: "PathVerb", Value: uint32(v)})
		}
	}
	if i != len(points) {
		return nil, fmt.Errorf("rivegg: %d unused points: %w", len(points)-i, ErrMalformedPath)
	}
	return p, nil
}

// SetFillRule sets the fill rule.
func (p *Path) SetFillRule(rule FillRule) { p.rule = rule }

// FillRule returns the fill rule.
func (p *Path) FillRule() FillRule { return p.rule }

// Rewind clears all verbs. The fill rule is kept.
func (p *Path) Rewind() { p.geom.Reset() }

// Extend appends a copy of other's verbs transformed by m.
// Other is not modified.
func (p *Path) Extend(other *Path, m Matrix) {
	if other == nil || other.geom.IsEmpty() {
		return
	}
	p.geom.Append(other.geom.Transform(m.Affine()))
}

// MoveTo begins a new subpath.
func (p *Path) MoveTo(x, y float32) { p.geom.MoveTo(x, y) }

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float32) { p.geom.LineTo(x, y) }

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.geom.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() { p.geom.Close() }

// BoundingBox returns the local-space bounds of all points, control
// points included.
func (p *Path) BoundingBox() scene.Rect { return p.geom.Bounds() }

// Verbs returns the verb stream. The slice is owned by the path.
func (p *Path) Verbs() []scene.PathVerb { return p.geom.Verbs() }

// Points returns the flattened coordinate stream.
func (p *Path) Points() []float32 { return p.geom.Points() }

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return p.geom.IsEmpty() }

// ToPath implements scene.Shape.
func (p *Path) ToPath() *scene.Path { return p.geom }

// Bounds implements scene.Shape.
func (p *Path) Bounds() scene.Rect { return p.geom.Bounds() }

var _ scene.Shape = (*Path)(nil)

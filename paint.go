package rivegg

import "github.com/gogpu/rivegg/scene"

// PaintStyle selects whether a paint fills or strokes.
type PaintStyle uint8

const (
	// StyleFill fills the path interior.
	StyleFill PaintStyle = iota
	// StyleStroke strokes the path outline.
	StyleStroke
)

// String returns the style name.
func (s PaintStyle) String() string {
	if s == StyleStroke {
		return "Stroke"
	}
	return "Fill"
}

// Paint holds the styling for a draw call: fill or stroke, the brush and
// the blend mode.
//
// The zero value is not usable; call NewPaint.
type Paint struct {
	// stroke is nil while the paint fills.
	stroke *scene.StrokeStyle
	brush  scene.Brush
	blend  scene.BlendMode
}

// NewPaint creates a fill paint with a transparent solid brush and
// normal blending.
func NewPaint() *Paint {
	return &Paint{
		brush: scene.SolidBrush(scene.Transparent),
		blend: scene.BlendNormal,
	}
}

// SetStyle switches between fill and stroke. Switching to stroke always
// starts from a fresh default stroke.
func (p *Paint) SetStyle(style PaintStyle) {
	if style == StyleStroke {
		p.stroke = scene.DefaultStrokeStyle()
		return
	}
	p.stroke = nil
}

// Style returns the current style.
func (p *Paint) Style() PaintStyle {
	if p.stroke != nil {
		return StyleStroke
	}
	return StyleFill
}

// strokeStyle returns the stroke, converting a fill paint to a default
// stroke first.
func (p *Paint) strokeStyle() *scene.StrokeStyle {
	if p.stroke == nil {
		p.stroke = scene.DefaultStrokeStyle()
	}
	return p.stroke
}

// SetThickness sets the stroke width, turning a fill into a stroke.
func (p *Paint) SetThickness(width float32) { p.strokeStyle().Width = width }

// SetJoin sets the stroke join, turning a fill into a stroke.
func (p *Paint) SetJoin(join scene.LineJoin) { p.strokeStyle().Join = join }

// SetCap sets the stroke cap, turning a fill into a stroke.
func (p *Paint) SetCap(c scene.LineCap) { p.strokeStyle().Cap = c }

// Stroke returns a copy of the stroke parameters, or nil for a fill paint.
func (p *Paint) Stroke() *scene.StrokeStyle {
	if p.stroke == nil {
		return nil
	}
	s := *p.stroke
	return &s
}

// SetColor replaces the brush with a solid color.
func (p *Paint) SetColor(c scene.Color) { p.brush = scene.SolidBrush(c) }

// SetGradient replaces the brush with a gradient. A nil gradient leaves
// the brush unchanged.
func (p *Paint) SetGradient(g *scene.Gradient) {
	if g == nil {
		return
	}
	p.brush = scene.GradientBrush(g)
}

// Brush returns the current brush.
func (p *Paint) Brush() scene.Brush { return p.brush }

// SetBlendMode sets the blend mode.
func (p *Paint) SetBlendMode(mode scene.BlendMode) { p.blend = mode }

// BlendMode returns the blend mode.
func (p *Paint) BlendMode() scene.BlendMode { return p.blend }

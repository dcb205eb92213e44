package rivegg

import (
	"math"

	"github.com/gogpu/rivegg/scene"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// MatrixFromCoefficients decodes six coefficients in column order
// [xx, xy, yx, yy, tx, ty], where x' = xx*x + yx*y + tx and
// y' = xy*x + yy*y + ty.
func MatrixFromCoefficients(c [6]float32) Matrix {
	return Matrix{
		A: float64(c[0]), B: float64(c[2]), C: float64(c[4]),
		D: float64(c[1]), E: float64(c[3]), F: float64(c[5]),
	}
}

// Coefficients is the inverse of MatrixFromCoefficients.
func (m Matrix) Coefficients() [6]float32 {
	return [6]float32{
		float32(m.A), float32(m.D),
		float32(m.B), float32(m.E),
		float32(m.C), float32(m.F),
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreTranslate returns m * Translate(dx, dy): the translation happens in
// m's local space, before m.
func (m Matrix) PreTranslate(dx, dy float64) Matrix {
	return m.Multiply(Translate(dx, dy))
}

// PreScaleAbout returns m composed with a uniform scale by s about
// center, applied before m.
func (m Matrix) PreScaleAbout(s float64, center Point) Matrix {
	return m.Multiply(Translate(center.X, center.Y)).
		Multiply(Scale(s, s)).
		Multiply(Translate(-center.X, -center.Y))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every coefficient is neither NaN nor infinite.
func (m Matrix) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Affine narrows m to the display list's float32 transform.
func (m Matrix) Affine() scene.Affine {
	return scene.Affine{
		A: float32(m.A), B: float32(m.B), C: float32(m.C),
		D: float32(m.D), E: float32(m.E), F: float32(m.F),
	}
}

package rivegg

// MapTriangle returns the unique affine transform T with T(src[i]) == dst[i]
// for i in 0..2.
//
// The system is solved in closed form with Cramer's rule. Let
//
//	Δ = a.x(b.y−c.y) + b.x(c.y−a.y) + c.x(a.y−b.y)
//
// be twice the signed area of the source triangle. Each coefficient is a
// cofactor-weighted combination of the destination points divided by Δ.
//
// A collinear source triangle (Δ == 0), or one whose solution overflows,
// yields ErrDegenerateTriangle and the zero Matrix. The result is never
// non-finite.
func MapTriangle(src, dst [3]Point) (Matrix, error) {
	a, b, c := src[0], src[1], src[2]
	d, e, f := dst[0], dst[1], dst[2]

	det := a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
	if det == 0 {
		return Matrix{}, ErrDegenerateTriangle
	}

	// Cofactors of the source system, shared by both output rows.
	ya, yb, yc := b.Y-c.Y, c.Y-a.Y, a.Y-b.Y
	xa, xb, xc := c.X-b.X, a.X-c.X, b.X-a.X
	ta, tb, tc := b.X*c.Y-c.X*b.Y, c.X*a.Y-a.X*c.Y, a.X*b.Y-b.X*a.Y

	inv := 1 / det
	m := Matrix{
		A: (d.X*ya + e.X*yb + f.X*yc) * inv,
		B: (d.X*xa + e.X*xb + f.X*xc) * inv,
		C: (d.X*ta + e.X*tb + f.X*tc) * inv,
		D: (d.Y*ya + e.Y*yb + f.Y*yc) * inv,
		E: (d.Y*xa + e.Y*xb + f.Y*xc) * inv,
		F: (d.Y*ta + e.Y*tb + f.Y*tc) * inv,
	}
	if !m.IsFinite() {
		return Matrix{}, ErrDegenerateTriangle
	}
	return m, nil
}

// MapUVs returns the transform from image pixel space onto a triangle.
// UVs are normalized texture coordinates; they are scaled by the image
// size before being mapped onto positions.
func MapUVs(positions, uvs [3]Point, width, height int) (Matrix, error) {
	w, h := float64(width), float64(height)
	var src [3]Point
	for i, uv := range uvs {
		src[i] = Point{X: uv.X * w, Y: uv.Y * h}
	}
	return MapTriangle(src, positions)
}

package rivegg

import (
	"github.com/gogpu/rivegg/scene"
)

// DrawImageMesh draws a textured triangle mesh. Each consecutive group of
// three indices selects a triangle from vertices and the matching texture
// coordinates from uvs; a trailing group shorter than three is ignored.
// UVs are normalized to the image size.
//
// Every index is checked before anything is recorded. An index outside
// vertices or uvs fails the whole call with a *MeshIndexError.
//
// Each triangle is scaled slightly about its centroid (see
// WithMeshOverdraw) to hide seams between neighbours. Triangles whose UVs
// are collinear cannot be mapped and are skipped. A non-normal blend
// wraps each triangle in a layer with the given opacity; with normal
// blending opacity is not applied.
//
// DrawImageMesh returns the number of triangles drawn.
func (r *Renderer) DrawImageMesh(img *scene.Image, vertices, uvs []Point, indices []uint16,
	blend scene.BlendMode, opacity float32) (int, error) {
	if img == nil || img.IsEmpty() {
		return 0, nil
	}

	n := len(indices) / 3 * 3
	for i, idx := range indices[:n] {
		if int(idx) >= len(vertices) || int(idx) >= len(uvs) {
			return 0, &MeshIndexError{Position: i, Index: idx, Vertices: len(vertices), UVs: len(uvs)}
		}
	}

	current := r.stack.Current()
	brush := scene.ImageBrush(img)
	tri := scene.NewPath()
	drawn := 0

	for i := 0; i < n; i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		pos := [3]Point{vertices[a], vertices[b], vertices[c]}
		uv := [3]Point{uvs[a], uvs[b], uvs[c]}

		brushTransform, err := MapUVs(pos, uv, img.Width(), img.Height())
		if err != nil {
			Logger().Warn("rivegg: skipping mesh triangle",
				"triangle", i/3, "err", err)
			continue
		}
		bt := brushTransform.Affine()
		t := current.PreScaleAbout(r.overdraw, Centroid(pos[0], pos[1], pos[2])).Affine()

		tri.Reset()
		p0, p1, p2 := pos[0].scenePoint(), pos[1].scenePoint(), pos[2].scenePoint()
		tri.MoveTo(p0.X, p0.Y).LineTo(p1.X, p1.Y).LineTo(p2.X, p2.Y).Close()

		blended := blend != scene.BlendNormal
		if blended {
			r.scene.PushLayer(blend, opacity, t, scene.RectShapeFrom(tri.Bounds()))
		}
		r.scene.Fill(scene.FillNonZero, t, brush, &bt, tri)
		if blended {
			r.scene.PopLayer()
		}
		drawn++
	}
	return drawn, nil
}

package rivegg

import "github.com/gogpu/rivegg/scene"

// ComposeTiled appends factor² copies of fragment to dst, each scaled by
// 1/factor and placed on a factor×factor grid covering width×height.
// A factor below 1 is treated as 1.
func ComposeTiled(dst, fragment *scene.Scene, factor int, width, height float64) {
	if dst == nil || fragment == nil {
		return
	}
	factor = max(factor, 1)
	f := float64(factor)
	for i := range factor * factor {
		tx := float64(i%factor) * width / f
		ty := float64(i/factor) * height / f
		t := Translate(tx, ty).Multiply(Scale(1/f, 1/f)).Affine()
		dst.Append(fragment, &t)
	}
}

// EnsureBaseColor records an invisible fill into an empty scene. Some
// rasterizers skip a scene with no geometry entirely, including the
// clear to the base color. Returns true if a fill was added.
func EnsureBaseColor(dst *scene.Scene) bool {
	if dst == nil || !dst.IsEmpty() {
		return false
	}
	dst.Fill(scene.FillNonZero, scene.IdentityAffine(), scene.SolidBrush(scene.Transparent), nil,
		scene.NewRectShape(0, 0, 0, 0))
	return true
}

// Package rivegg is the composition core of a Rive-style vector renderer
// that records into a retained display list for a GPU rasterizer.
//
// # Overview
//
// Callers build Path and Paint values, then drive a Renderer with
// save/restore, transform and clip calls interleaved with draw calls.
// The Renderer keeps a transform/clip Stack and emits fills, strokes,
// images and blend/clip layers into a scene.Scene. Once a frame is
// complete the scene's encoding is handed to a Rasterizer.
//
// # Quick Start
//
//	r := rivegg.NewRenderer()
//
//	p := rivegg.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//	p.Close()
//
//	paint := rivegg.NewPaint()
//	paint.SetColor(scene.RGBA8(255, 0, 0, 255))
//
//	r.Save()
//	r.Transform(rivegg.Translate(10, 10))
//	r.DrawPath(p, paint)
//	r.Restore()
//
//	enc := r.Scene().Encoding()
//
// # Handles
//
// Registry exposes the same operations through generational integer
// handles with plain-data parameters (packed colors, six-float
// transforms, numeric enumerations) for use behind a foreign-function
// boundary. Stale or released handles are reported as ErrInvalidHandle.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package rivegg

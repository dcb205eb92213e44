package rivegg

import "github.com/gogpu/rivegg/scene"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := rivegg.NewRenderer(rivegg.WithMeshOverdraw(1.05))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	overdraw float64
	scene    *scene.Scene
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{overdraw: DefaultMeshOverdraw}
}

// WithConfig applies the renderer settings from cfg.
func WithConfig(cfg Config) RendererOption {
	return WithMeshOverdraw(cfg.MeshOverdraw)
}

// WithMeshOverdraw sets the per-triangle scale used by DrawImageMesh.
// Values below 1 are ignored.
func WithMeshOverdraw(s float64) RendererOption {
	return func(o *rendererOptions) {
		if s >= 1 {
			o.overdraw = s
		}
	}
}

// WithScene records into s instead of a fresh scene, typically one taken
// from a scene.ScenePool.
func WithScene(s *scene.Scene) RendererOption {
	return func(o *rendererOptions) {
		o.scene = s
	}
}

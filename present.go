package rivegg

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/rivegg/scene"
)

// RenderParams describes the target of a frame.
type RenderParams struct {
	BaseColor gputypes.Color
	Width     uint32
	Height    uint32
}

// ParamsFromConfig builds render parameters from configured size and
// base color.
func ParamsFromConfig(cfg Config) RenderParams {
	return RenderParams{
		BaseColor: gpuColor(cfg.Base()),
		Width:     uint32(max(cfg.Width, 0)),  //nolint:gosec // clamped
		Height:    uint32(max(cfg.Height, 0)), //nolint:gosec // clamped
	}
}

// Rasterizer turns a finished display list into pixels. Implementations
// live outside this module, typically on a GPU.
type Rasterizer interface {
	Rasterize(ctx context.Context, enc *scene.Encoding, images []*scene.Image, params RenderParams) (gpucontext.Texture, error)
}

// Present closes any layers left open by unbalanced saves, hands the
// frame to rast and resets the renderer for the next frame.
//
// The encoding passed to rast is only valid until Present returns.
func (r *Renderer) Present(ctx context.Context, rast Rasterizer, params RenderParams) (gpucontext.Texture, error) {
	if n := r.scene.Finish(); n > 0 {
		Logger().Warn("rivegg: closing layers left open at end of frame", "layers", n)
	}
	EnsureBaseColor(r.scene)

	enc := r.scene.Encoding()
	Logger().Debug("rivegg: presenting frame",
		"bytes", enc.Size(), "shapes", enc.ShapeCount(), "images", len(enc.Images()))

	tex, err := rast.Rasterize(ctx, enc, enc.Images(), params)
	r.Reset()
	if err != nil {
		return nil, fmt.Errorf("rivegg: present: %w", err)
	}
	return tex, nil
}

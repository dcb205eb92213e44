package rivegg

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/rivegg/cache"
	"github.com/gogpu/rivegg/scene"
)

// Registry owns every resource created through the handle API and
// resolves handles back to them. Operations on null, released or
// wrong-kind handles fail with ErrInvalidHandle.
//
// Table access is synchronized, but a renderer must still be driven from
// one goroutine at a time.
type Registry struct {
	gradients *table[*scene.Gradient]
	images    *table[*scene.Image]
	paints    *table[*Paint]
	paths     *table[*Path]
	renderers *table[*Renderer]

	cfg     Config
	policy  StopPolicy
	decoder ImageDecoder

	// decoded memoizes decodes by content digest; nil when disabled.
	decoded  *cache.LRU[cache.ContentKey, *scene.Image]
	inflight singleflight.Group
}

// NewRegistry creates an empty registry. A nil decoder selects
// StdDecoder. An ImageCacheSize of zero disables decode memoization.
func NewRegistry(cfg Config, decoder ImageDecoder) *Registry {
	if decoder == nil {
		decoder = StdDecoder{}
	}
	r := &Registry{
		gradients: newTable[*scene.Gradient](kindGradient),
		images:    newTable[*scene.Image](kindImage),
		paints:    newTable[*Paint](kindPaint),
		paths:     newTable[*Path](kindPath),
		renderers: newTable[*Renderer](kindRenderer),
		cfg:       cfg,
		policy:    cfg.StopPolicy(),
		decoder:   decoder,
	}
	if cfg.ImageCacheSize > 0 {
		r.decoded = cache.New[cache.ContentKey, *scene.Image](cfg.ImageCacheSize)
	}
	return r
}

// Live returns the number of unreleased handles of every kind.
func (r *Registry) Live() int {
	return r.gradients.count() + r.images.count() + r.paints.count() +
		r.paths.count() + r.renderers.count()
}

// CacheStats returns decode cache statistics; zero when disabled.
func (r *Registry) CacheStats() cache.Stats {
	if r.decoded == nil {
		return cache.Stats{}
	}
	return r.decoded.Stats()
}

// Gradients

// CreateLinearGradient creates a linear gradient. Colors are packed
// 0xAARRGGBB and pair one-to-one with stops.
func (r *Registry) CreateLinearGradient(sx, sy, ex, ey float32, colors []uint32, stops []float32) (Handle, error) {
	cs, err := ColorStops(colors, stops, r.policy)
	if err != nil {
		return NullHandle, err
	}
	g := scene.NewLinearGradient(scene.Point{X: sx, Y: sy}, scene.Point{X: ex, Y: ey}, cs)
	return r.gradients.insert(g), nil
}

// CreateRadialGradient creates a radial gradient.
func (r *Registry) CreateRadialGradient(cx, cy, radius float32, colors []uint32, stops []float32) (Handle, error) {
	cs, err := ColorStops(colors, stops, r.policy)
	if err != nil {
		return NullHandle, err
	}
	g := scene.NewRadialGradient(scene.Point{X: cx, Y: cy}, radius, cs)
	return r.gradients.insert(g), nil
}

// ReleaseGradient releases a gradient. Paints already using it keep it.
func (r *Registry) ReleaseGradient(h Handle) error {
	return r.gradients.remove(h)
}

// Images

// CreateImage decodes data and returns a handle to the pixels. Failed
// decodes return no handle. Identical bytes share one decoded image.
func (r *Registry) CreateImage(data []byte) (Handle, error) {
	img, err := r.decode(data)
	if err != nil {
		return NullHandle, fmt.Errorf("rivegg: create image: %w", err)
	}
	return r.images.insert(img), nil
}

// CreateImages decodes blobs concurrently, using at most DecodeWorkers
// decoders, and returns one handle per blob in order. If any blob fails
// no handles are created.
func (r *Registry) CreateImages(ctx context.Context, blobs [][]byte) ([]Handle, error) {
	images, err := DecodeAll(ctx, registryDecoder{r}, blobs, r.cfg.DecodeWorkers)
	if err != nil {
		return nil, fmt.Errorf("rivegg: create images: %w", err)
	}
	handles := make([]Handle, len(images))
	for i, img := range images {
		handles[i] = r.images.insert(img)
	}
	return handles, nil
}

// registryDecoder routes batch decodes through the registry's cache.
type registryDecoder struct {
	r *Registry
}

func (d registryDecoder) Decode(data []byte) (*scene.Image, error) {
	return d.r.decode(data)
}

// decode consults the cache, then decodes outside the cache lock.
// Concurrent decodes of the same bytes share one call.
func (r *Registry) decode(data []byte) (*scene.Image, error) {
	if r.decoded == nil || len(data) == 0 {
		return r.decoder.Decode(data)
	}
	key := cache.KeyOf(data)
	if img, ok := r.decoded.Get(key); ok {
		return img, nil
	}
	v, err, _ := r.inflight.Do(string(key[:]), func() (any, error) {
		if img, ok := r.decoded.Peek(key); ok {
			return img, nil
		}
		img, err := r.decoder.Decode(data)
		if err != nil {
			return nil, err
		}
		r.decoded.Set(key, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*scene.Image), nil
}

// Image resolves an image handle.
func (r *Registry) Image(h Handle) (*scene.Image, error) {
	return r.images.get(h)
}

// ReleaseImage releases an image.
func (r *Registry) ReleaseImage(h Handle) error {
	return r.images.remove(h)
}

// Paints

// CreatePaint creates a default paint.
func (r *Registry) CreatePaint() Handle {
	return r.paints.insert(NewPaint())
}

// Paint resolves a paint handle.
func (r *Registry) Paint(h Handle) (*Paint, error) {
	return r.paints.get(h)
}

// ReleasePaint releases a paint.
func (r *Registry) ReleasePaint(h Handle) error {
	return r.paints.remove(h)
}

// PaintSetStyle sets the paint style from a boundary value.
func (r *Registry) PaintSetStyle(h Handle, style uint32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	s, err := PaintStyleFromEnum(style)
	if err != nil {
		return err
	}
	p.SetStyle(s)
	return nil
}

// PaintSetColor sets a solid 0xAARRGGBB color.
func (r *Registry) PaintSetColor(h Handle, color uint32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	p.SetColor(ColorFromBGRA8(color))
	return nil
}

// PaintSetGradient sets a gradient brush. A null gradient handle leaves
// the brush unchanged.
func (r *Registry) PaintSetGradient(h, gradient Handle) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	if gradient == NullHandle {
		return nil
	}
	g, err := r.gradients.get(gradient)
	if err != nil {
		return err
	}
	p.SetGradient(g)
	return nil
}

// PaintSetThickness sets the stroke width.
func (r *Registry) PaintSetThickness(h Handle, width float32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	p.SetThickness(width)
	return nil
}

// PaintSetJoin sets the stroke join from a boundary value.
func (r *Registry) PaintSetJoin(h Handle, join uint32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	j, err := JoinFromEnum(join)
	if err != nil {
		return err
	}
	p.SetJoin(j)
	return nil
}

// PaintSetCap sets the stroke cap from a boundary value.
func (r *Registry) PaintSetCap(h Handle, c uint32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	lc, err := CapFromEnum(c)
	if err != nil {
		return err
	}
	p.SetCap(lc)
	return nil
}

// PaintSetBlendMode sets the blend mode from a boundary value.
func (r *Registry) PaintSetBlendMode(h Handle, mode uint32) error {
	p, err := r.paints.get(h)
	if err != nil {
		return err
	}
	m, err := BlendModeFromEnum(mode)
	if err != nil {
		return err
	}
	p.SetBlendMode(m)
	return nil
}

// Paths

// CreatePath creates an empty non-zero path.
func (r *Registry) CreatePath() Handle {
	return r.paths.insert(NewPath())
}

// CreatePathFromCommands builds a path from boundary verbs and flattened
// x, y point pairs. Every verb consumes its points in order: move and
// line one pair, cubic three, close none.
func (r *Registry) CreatePathFromCommands(verbs []uint8, points []float32, fillRule uint32) (Handle, error) {
	rule, err := FillRuleFromEnum(fillRule)
	if err != nil {
		return NullHandle, err
	}
	if len(points)%2 != 0 {
		return NullHandle, fmt.Errorf("rivegg: odd coordinate count %d: %w", len(points), ErrMalformedPath)
	}
	vs := make([]scene.PathVerb, len(verbs))
	for i, v := range verbs {
		if vs[i], err = PathVerbFromEnum(v); err != nil {
			return NullHandle, err
		}
	}
	p, err := NewPathFromCommands(vs, pointPairs(points), rule)
	if err != nil {
		return NullHandle, err
	}
	return r.paths.insert(p), nil
}

// Path resolves a path handle.
func (r *Registry) Path(h Handle) (*Path, error) {
	return r.paths.get(h)
}

// ReleasePath releases a path.
func (r *Registry) ReleasePath(h Handle) error {
	return r.paths.remove(h)
}

// PathSetFillRule sets the fill rule from a boundary value.
func (r *Registry) PathSetFillRule(h Handle, rule uint32) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	fr, err := FillRuleFromEnum(rule)
	if err != nil {
		return err
	}
	p.SetFillRule(fr)
	return nil
}

// PathRewind clears a path.
func (r *Registry) PathRewind(h Handle) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	p.Rewind()
	return nil
}

// PathExtend appends from, transformed by six column-order coefficients,
// to h.
func (r *Registry) PathExtend(h, from Handle, transform [6]float32) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	src, err := r.paths.get(from)
	if err != nil {
		return err
	}
	p.Extend(src, MatrixFromCoefficients(transform))
	return nil
}

// PathMoveTo begins a subpath.
func (r *Registry) PathMoveTo(h Handle, x, y float32) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	p.MoveTo(x, y)
	return nil
}

// PathLineTo adds a line.
func (r *Registry) PathLineTo(h Handle, x, y float32) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	p.LineTo(x, y)
	return nil
}

// PathCubicTo adds a cubic segment.
func (r *Registry) PathCubicTo(h Handle, c1x, c1y, c2x, c2y, x, y float32) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return nil
}

// PathClose closes the current subpath.
func (r *Registry) PathClose(h Handle) error {
	p, err := r.paths.get(h)
	if err != nil {
		return err
	}
	p.Close()
	return nil
}

// Renderers

// CreateRenderer creates a renderer configured from the registry config.
func (r *Registry) CreateRenderer() Handle {
	return r.renderers.insert(NewRenderer(WithConfig(r.cfg)))
}

// Renderer resolves a renderer handle.
func (r *Registry) Renderer(h Handle) (*Renderer, error) {
	return r.renderers.get(h)
}

// ReleaseRenderer releases a renderer.
func (r *Registry) ReleaseRenderer(h Handle) error {
	return r.renderers.remove(h)
}

// RendererSave pushes a stack frame.
func (r *Registry) RendererSave(h Handle) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	rr.Save()
	return nil
}

// RendererRestore pops a stack frame.
func (r *Registry) RendererRestore(h Handle) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	rr.Restore()
	return nil
}

// RendererTransform right-multiplies the current transform by six
// column-order coefficients.
func (r *Registry) RendererTransform(h Handle, transform [6]float32) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	rr.Transform(MatrixFromCoefficients(transform))
	return nil
}

// RendererDrawPath draws a path with a paint.
func (r *Registry) RendererDrawPath(h, path, paint Handle) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	p, err := r.paths.get(path)
	if err != nil {
		return err
	}
	pt, err := r.paints.get(paint)
	if err != nil {
		return err
	}
	rr.DrawPath(p, pt)
	return nil
}

// RendererClipPath clips to a path.
func (r *Registry) RendererClipPath(h, path Handle) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	p, err := r.paths.get(path)
	if err != nil {
		return err
	}
	rr.ClipPath(p)
	return nil
}

// RendererDrawImage draws an image centered on the current origin.
func (r *Registry) RendererDrawImage(h, image Handle, blend uint32, opacity float32) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	img, err := r.images.get(image)
	if err != nil {
		return err
	}
	m, err := BlendModeFromEnum(blend)
	if err != nil {
		return err
	}
	rr.DrawImage(img, m, opacity)
	return nil
}

// RendererDrawImageMesh draws a textured mesh. Vertices and UVs are
// flattened x, y pairs; a trailing odd coordinate is ignored.
func (r *Registry) RendererDrawImageMesh(h, image Handle, vertices, uvs []float32, indices []uint16,
	blend uint32, opacity float32) error {
	rr, err := r.renderers.get(h)
	if err != nil {
		return err
	}
	img, err := r.images.get(image)
	if err != nil {
		return err
	}
	m, err := BlendModeFromEnum(blend)
	if err != nil {
		return err
	}
	_, err = rr.DrawImageMesh(img, pointPairs(vertices), pointPairs(uvs), indices, m, opacity)
	return err
}

// RendererPresent hands the renderer's frame to rast and starts a new one.
func (r *Registry) RendererPresent(ctx context.Context, h Handle, rast Rasterizer) (gpucontext.Texture, error) {
	rr, err := r.renderers.get(h)
	if err != nil {
		return nil, err
	}
	return rr.Present(ctx, rast, ParamsFromConfig(r.cfg))
}

func pointPairs(xy []float32) []Point {
	pts := make([]Point, len(xy)/2)
	for i := range pts {
		pts[i] = Point{X: float64(xy[2*i]), Y: float64(xy[2*i+1])}
	}
	return pts
}

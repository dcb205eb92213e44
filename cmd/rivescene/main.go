// Command rivescene records a demo frame through the rivegg handle API
// and prints the resulting display list.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rivegg"
	"github.com/gogpu/rivegg/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		tiles      = flag.Int("tiles", 1, "draw the frame tiles x tiles times")
		textures   = flag.String("textures", "", "comma-separated image files, one textured mesh each")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := rivegg.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = rivegg.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	rivegg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	reg := rivegg.NewRegistry(cfg, rivegg.StdDecoder{MaxDimension: 2048})
	r := reg.CreateRenderer()

	var files []string
	if *textures != "" {
		files = strings.Split(*textures, ",")
	}
	if err := drawFrame(context.Background(), reg, r, files); err != nil {
		log.Fatalf("Failed to record frame: %v", err)
	}

	renderer, err := reg.Renderer(r)
	if err != nil {
		log.Fatal(err)
	}
	pool := scene.NewScenePool()
	frame := pool.Get()
	defer pool.Put(frame)
	rivegg.ComposeTiled(frame, renderer.Scene(), *tiles, float64(cfg.Width), float64(cfg.Height))
	renderer.Reset()

	dump := &listing{w: os.Stdout}
	enc := frame.Encoding()
	if _, err := dump.Rasterize(context.Background(), enc, enc.Images(), rivegg.ParamsFromConfig(cfg)); err != nil {
		log.Fatal(err)
	}
	slog.Info("frame recorded", "bytes", enc.Size(), "shapes", enc.ShapeCount(), "live_handles", reg.Live())
}

func drawFrame(ctx context.Context, reg *rivegg.Registry, r rivegg.Handle, files []string) error {
	star, err := reg.CreatePathFromCommands(
		[]uint8{rivegg.EnumVerbMove, rivegg.EnumVerbLine, rivegg.EnumVerbLine, rivegg.EnumVerbLine,
			rivegg.EnumVerbLine, rivegg.EnumVerbClose},
		[]float32{100, 10, 160, 190, 10, 75, 190, 75, 40, 190},
		rivegg.EnumFillEvenOdd)
	if err != nil {
		return err
	}
	defer func() { _ = reg.ReleasePath(star) }()

	grad, err := reg.CreateLinearGradient(0, 0, 200, 200,
		[]uint32{0xffff4040, 0xff4040ff, 0xff40ff40}, []float32{0, 1, 0.5})
	if err != nil {
		return err
	}
	defer func() { _ = reg.ReleaseGradient(grad) }()

	fill := reg.CreatePaint()
	defer func() { _ = reg.ReleasePaint(fill) }()
	outline := reg.CreatePaint()
	defer func() { _ = reg.ReleasePaint(outline) }()

	steps := []error{
		reg.PaintSetGradient(fill, grad),
		reg.PaintSetBlendMode(fill, rivegg.EnumBlendMultiply),
		reg.PaintSetColor(outline, 0xffffffff),
		reg.PaintSetThickness(outline, 4),
		reg.PaintSetJoin(outline, rivegg.EnumJoinRound),

		reg.RendererSave(r),
		reg.RendererTransform(r, [6]float32{1, 0, 0, 1, 50, 50}),
		reg.RendererClipPath(r, star),
		reg.RendererDrawPath(r, star, fill),
		reg.RendererDrawPath(r, star, outline),
		reg.RendererRestore(r),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}

	if len(files) == 0 {
		return nil
	}
	blobs := make([][]byte, len(files))
	for i, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		blobs[i] = data
	}
	images, err := reg.CreateImages(ctx, blobs)
	if err != nil {
		return err
	}

	for i, img := range images {
		x, y := float32(300+(i%3)*210), float32(50+(i/3)*210)
		err := reg.RendererDrawImageMesh(r, img,
			[]float32{x, y, x + 200, y, x + 200, y + 200, x, y + 200},
			[]float32{0, 0, 1, 0, 1, 1, 0, 1},
			[]uint16{0, 1, 2, 0, 2, 3},
			rivegg.EnumBlendSrcOver, 1)
		_ = reg.ReleaseImage(img)
		if err != nil {
			return err
		}
	}
	return nil
}

// listing is a Rasterizer that prints the display list instead of
// drawing it.
type listing struct {
	w io.Writer
}

func (l *listing) Rasterize(_ context.Context, enc *scene.Encoding, images []*scene.Image, params rivegg.RenderParams) (gpucontext.Texture, error) {
	fmt.Fprintf(l.w, "frame %dx%d base=%+v images=%d\n", params.Width, params.Height, params.BaseColor, len(images))

	depth := 0
	d := scene.NewDecoder(enc)
	for d.Next() {
		tag := d.Tag()
		switch tag {
		case scene.TagBeginPath:
			p := d.CollectPath()
			fmt.Fprintf(l.w, "%*spath verbs=%d bounds=%+v\n", depth*2, "", len(p.Verbs()), p.Bounds())
			continue
		case scene.TagTransform, scene.TagBrushTransform:
			fmt.Fprintf(l.w, "%*s%v %+v\n", depth*2, "", tag, d.Transform())
		case scene.TagFill:
			brush, style := d.Fill()
			fmt.Fprintf(l.w, "%*sfill %v %v\n", depth*2, "", style, brush.Kind)
		case scene.TagStroke:
			brush, style := d.Stroke()
			fmt.Fprintf(l.w, "%*sstroke width=%v %v\n", depth*2, "", style.Width, brush.Kind)
		case scene.TagPushLayer:
			blend, alpha := d.PushLayer()
			fmt.Fprintf(l.w, "%*spush %v alpha=%v\n", depth*2, "", blend, alpha)
			depth++
		case scene.TagPopLayer:
			depth--
			fmt.Fprintf(l.w, "%*spop\n", depth*2, "")
		case scene.TagImage:
			img, t := d.Image()
			fmt.Fprintf(l.w, "%*simage %dx%d %+v\n", depth*2, "", img.Width(), img.Height(), t)
		default:
			fmt.Fprintf(l.w, "%*s%v\n", depth*2, "", tag)
		}
	}
	return nil, nil
}

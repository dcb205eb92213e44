package rivegg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/rivegg/scene"
)

// ImageDecoder turns encoded image bytes into straight-alpha RGBA8 pixels.
type ImageDecoder interface {
	Decode(data []byte) (*scene.Image, error)
}

// StdDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP.
type StdDecoder struct {
	// MaxDimension, when positive, downscales images whose width or height
	// exceeds it, keeping the aspect ratio.
	MaxDimension int
}

// Decode implements ImageDecoder. Empty input fails with ErrEmptyData;
// unsupported or corrupt input fails with an error wrapping ErrDecode.
func (d StdDecoder) Decode(data []byte) (*scene.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := src.Bounds()
	w, h := d.fit(b.Dx(), b.Dy())
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrDecode, format)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		Logger().Debug("rivegg: downscaled image",
			"format", format, "from", b.Size(), "to", dst.Bounds().Size())
	}
	return scene.NewImage(w, h, dst.Pix), nil
}

func (d StdDecoder) fit(w, h int) (int, int) {
	limit := d.MaxDimension
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// DecodeAll decodes blobs concurrently with at most workers decoders in
// flight. The result is index-aligned with blobs. The first failure
// cancels the remaining work and is returned with its blob index.
func DecodeAll(ctx context.Context, dec ImageDecoder, blobs [][]byte, workers int) ([]*scene.Image, error) {
	if dec == nil {
		return nil, errors.New("rivegg: nil decoder")
	}
	images := make([]*scene.Image, len(blobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, data := range blobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := dec.Decode(data)
			if err != nil {
				return fmt.Errorf("rivegg: image %d: %w", i, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"os"
)

// watermarkMargin is the gap between the watermark and the image edges.
const watermarkMargin = 10

// Watermarker composites a watermark image onto uploaded avatars.
type Watermarker struct {
	mark image.Image
}

// NewWatermarker loads the watermark image from path. An empty path returns a
// pass-through Watermarker that re-encodes without marking.
func NewWatermarker(path string) (*Watermarker, error) {
	if path == "" {
		return &Watermarker{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open watermark: %w", err)
	}
	defer f.Close()

	mark, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode watermark: %w", err)
	}
	return &Watermarker{mark: mark}, nil
}

// Apply decodes an uploaded avatar (JPEG or PNG), composites the watermark at
// one fifth of the avatar's width in the bottom-right corner, and returns the
// result re-encoded as JPEG.
func (w *Watermarker) Apply(avatar []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(avatar))
	if err != nil {
		return nil, fmt.Errorf("decode avatar: %w", err)
	}

	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	if w.mark != nil {
		mark := scaleTo(w.mark, bounds.Dx()/5, bounds.Dy()/5)
		markBounds := mark.Bounds()
		offset := image.Pt(
			bounds.Max.X-markBounds.Dx()-watermarkMargin,
			bounds.Max.Y-markBounds.Dy()-watermarkMargin,
		)
		draw.Draw(canvas, markBounds.Add(offset), mark, markBounds.Min, draw.Over)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, canvas, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return out.Bytes(), nil
}

// scaleTo resizes img to at most w x h with nearest-neighbour sampling.
func scaleTo(img image.Image, w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := src.Min.X + x*src.Dx()/w
			sy := src.Min.Y + y*src.Dy()/h
			dst.Set(x, y, img.At(sx, sy))
		}
	}
	return dst
}

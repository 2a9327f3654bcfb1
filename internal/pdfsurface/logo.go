package pdfsurface

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// Decoders for logo formats.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// pixelsPerPoint is the raster density of normalized logos.
const pixelsPerPoint = 4

type normalizedLogo struct {
	png    []byte
	width  float64 // points
	height float64 // points
}

func loadLogo(path string, boxW, boxH float64) (normalizedLogo, error) {
	f, err := os.Open(path)
	if err != nil {
		return normalizedLogo{}, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return normalizedLogo{}, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return normalizeLogo(src, boxW, boxH)
}

// normalizeLogo scales src to fit the box preserving its aspect ratio and
// re-encodes it as PNG.
func normalizeLogo(src image.Image, boxW, boxH float64) (normalizedLogo, error) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return normalizedLogo{}, fmt.Errorf("logo has empty bounds %v", b)
	}

	scale := boxW / float64(b.Dx())
	if s := boxH / float64(b.Dy()); s < scale {
		scale = s
	}
	w := float64(b.Dx()) * scale
	h := float64(b.Dy()) * scale

	dst := image.NewNRGBA(image.Rect(0, 0, max(1, int(w*pixelsPerPoint)), max(1, int(h*pixelsPerPoint))))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return normalizedLogo{}, fmt.Errorf("encode logo: %w", err)
	}
	return normalizedLogo{png: buf.Bytes(), width: w, height: h}, nil
}

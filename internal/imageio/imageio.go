// Package imageio loads, saves, crops and fits the images the editor works
// on. JPEG, PNG, GIF, BMP and TIFF go through imaging; WebP is decoded and
// encoded with chai2010/webp.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrEmptyCrop is returned by Crop when the rectangle does not overlap the
// image.
var ErrEmptyCrop = errors.New("empty crop rectangle")

// DefaultQuality is the JPEG and lossy WebP quality used by Save.
const DefaultQuality = 92

// Load opens an image file. imaging's registered decoders are tried first,
// then an explicit WebP decode.
func Load(path string) (image.Image, error) {
	img, openErr := imaging.Open(path, imaging.AutoOrientation(true))
	if openErr == nil {
		return img, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, err = webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w (webp: %v)", path, openErr, err)
	}
	return img, nil
}

// Save writes img to path in the format named by the file extension.
// Unknown extensions are rejected.
func Save(img image.Image, path string, quality int) error {
	if quality <= 0 {
		quality = DefaultQuality
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return f.Close()
	case ".jpg", ".jpeg":
		if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	case ".png", ".gif", ".bmp", ".tif", ".tiff":
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("save %s: unsupported extension %q", path, ext)
	}
}

// Crop cuts r out of img. r is relative to the image's top-left corner and
// is intersected with the image first.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	b := img.Bounds()
	r = r.Add(b.Min).Intersect(b)
	if r.Empty() {
		return nil, ErrEmptyCrop
	}
	return imaging.Crop(img, r), nil
}

// Fit downscales img so neither side exceeds maxDim, keeping the aspect
// ratio. Images already within bounds, or a non-positive maxDim, are
// returned unchanged. The second result is the applied scale factor.
func Fit(img image.Image, maxDim int) (image.Image, float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img, 1
	}
	scale := float64(maxDim) / float64(max(w, h))
	dw := max(int(float64(w)*scale+0.5), 1)
	dh := max(int(float64(h)*scale+0.5), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, scale
}

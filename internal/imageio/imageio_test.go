package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{A: 255}
			if (x/4+y/4)%2 == 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, Save(checker(20, 10), path, 0))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestSaveLoadWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.webp")
	require.NoError(t, Save(checker(16, 8), path, 90))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
}

func TestSaveUnsupportedExtension(t *testing.T) {
	err := Save(checker(2, 2), filepath.Join(t.TempDir(), "img.xyz"), 0)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestLoadCorruptFileKeepsDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image at all"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.ErrorContains(t, err, "decode image "+path)
	assert.ErrorContains(t, err, "webp:")
}

func TestCrop(t *testing.T) {
	img := checker(20, 10)

	out, err := Crop(img, image.Rect(2, 3, 12, 8))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Bounds().Dx())
	assert.Equal(t, 5, out.Bounds().Dy())

	// Clipped to the image.
	out, err = Crop(img, image.Rect(15, 5, 40, 40))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 5), out.Bounds())
}

func TestCropEmpty(t *testing.T) {
	_, err := Crop(checker(10, 10), image.Rect(3, 3, 3, 8))
	assert.ErrorIs(t, err, ErrEmptyCrop)

	_, err = Crop(checker(10, 10), image.Rect(20, 20, 30, 30))
	assert.ErrorIs(t, err, ErrEmptyCrop)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, maxDim int
		wantW, wantH int
		wantScale    float64
	}{
		{"within bounds", 100, 50, 200, 100, 50, 1},
		{"disabled", 100, 50, 0, 100, 50, 1},
		{"landscape", 400, 200, 100, 100, 50, 0.25},
		{"portrait", 200, 400, 100, 50, 100, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, scale := Fit(checker(tt.w, tt.h), tt.maxDim)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
			assert.InDelta(t, tt.wantScale, scale, 1e-9)
		})
	}
}

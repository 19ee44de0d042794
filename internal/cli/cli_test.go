package cli

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/boxzoom"
	"github.com/phanxgames/boxzoom/internal/imageio"
)

func writeTestImage(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, imageio.Save(img, path, 0))
	return path
}

func committedBox(x, y, w, h, cw, ch float64) boxzoom.Data {
	return boxzoom.Data{
		Offset:       boxzoom.Point{X: x, Y: y},
		Width:        w,
		Height:       h,
		CanvasWidth:  cw,
		CanvasHeight: ch,
		Committed:    true,
	}
}

func TestRecordSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	rec := newRecord("photo.png", 400, 200, committedBox(20, 20, 40, 30, 200, 100))

	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, [4]int{40, 40, 80, 60}, rec.Pixels)

	require.NoError(t, rec.Save(path))
	got, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Box, got.Box)
	assert.Equal(t, rec.Natural, got.Natural)
	assert.True(t, rec.Created.Equal(got.Created))
}

func TestLoadRecordErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRecord(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read record")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("box: [unclosed"), 0o644))
	_, err = LoadRecord(bad)
	assert.ErrorContains(t, err, "parse record")

	badID := filepath.Join(dir, "id.yaml")
	require.NoError(t, os.WriteFile(badID, []byte("id: not-a-uuid\n"), 0o644))
	_, err = LoadRecord(badID)
	assert.ErrorContains(t, err, "bad id")

	empty := filepath.Join(dir, "empty.yaml")
	rec := newRecord("x.png", 10, 10, boxzoom.Data{CanvasWidth: 10, CanvasHeight: 10})
	require.NoError(t, rec.Save(empty))
	_, err = LoadRecord(empty)
	assert.ErrorIs(t, err, errEmptyBox)
}

func TestRunCrop(t *testing.T) {
	imgPath := writeTestImage(t, "photo.png", 100, 50)
	recPath := filepath.Join(t.TempDir(), "box.yaml")
	// Drawn on a half-size canvas; the crop maps it onto the full image.
	require.NoError(t, newRecord("photo.png", 100, 50, committedBox(5, 5, 20, 10, 50, 25)).Save(recPath))

	out := filepath.Join(t.TempDir(), "crop.png")
	require.NoError(t, runCrop(imgPath, recPath, out, 0))

	img, err := imageio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestCropCommand(t *testing.T) {
	imgPath := writeTestImage(t, "photo.png", 60, 60)
	recPath := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, newRecord("photo.png", 60, 60, committedBox(0, 0, 30, 30, 60, 60)).Save(recPath))
	out := filepath.Join(t.TempDir(), "out.webp")

	var stdout bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"crop", imgPath, recPath, "-o", out})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "wrote "+out)

	img, err := imageio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())
}

func TestCropCommandArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"crop", "only-one.png"})
	assert.Error(t, cmd.Execute())
}

func TestDefaultCropPath(t *testing.T) {
	assert.Equal(t, "dir/photo_crop.jpg", defaultCropPath("dir/photo.jpg"))
	assert.Equal(t, "noext_crop", defaultCropPath("noext"))
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxzoom.yaml")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init-config", path})
	require.NoError(t, cmd.Execute())

	cfg, err := boxzoom.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, boxzoom.DefaultConfig(), cfg)

	cmd = NewRootCommand()
	cmd.SetArgs([]string{"init-config", path})
	assert.ErrorContains(t, cmd.Execute(), "already exists")
}

func TestGlobalFlagsLoadConfig(t *testing.T) {
	g := &globalFlags{Debug: true}
	cfg, err := g.loadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	g = &globalFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err = g.loadConfig()
	assert.ErrorContains(t, err, "read config")
}

func TestSessionCommitWritesRecord(t *testing.T) {
	imgPath := writeTestImage(t, "photo.png", 200, 100)
	out := filepath.Join(t.TempDir(), "box.yaml")
	var stdout bytes.Buffer

	s, err := newSession(&stdout, imgPath, boxzoom.DefaultConfig(), &viewFlags{out: out, maxDim: 4096})
	require.NoError(t, err)
	s.editor.SetContainer(boxzoom.Size{Width: 200, Height: 100})

	s.editor.InjectDrag(boxzoom.Point{X: 20, Y: 20}, boxzoom.Point{X: 60, Y: 50}, 5)
	for s.editor.Injecting() {
		s.editor.Update(1.0/60, nil)
	}

	assert.Equal(t, "box 20,20 40x30\n", stdout.String())
	rec, err := LoadRecord(out)
	require.NoError(t, err)
	assert.Equal(t, "photo.png", rec.Image)
	assert.Equal(t, [4]int{20, 20, 40, 30}, rec.Pixels)
}

func TestSessionDownscalesAndRestores(t *testing.T) {
	imgPath := writeTestImage(t, "photo.png", 200, 100)
	recPath := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, newRecord("photo.png", 200, 100, committedBox(20, 10, 100, 50, 200, 100)).Save(recPath))

	var stdout bytes.Buffer
	s, err := newSession(&stdout, imgPath, boxzoom.DefaultConfig(), &viewFlags{restore: recPath, maxDim: 100})
	require.NoError(t, err)

	assert.Equal(t, image.Pt(200, 100), s.natural)
	assert.Equal(t, 100, s.display.Bounds().Dx())

	d := s.editor.Data()
	assert.True(t, d.Committed)
	assert.InDelta(t, 10, d.Offset.X, 1e-9)
	assert.InDelta(t, 5, d.Offset.Y, 1e-9)
	assert.InDelta(t, 50, d.Width, 1e-9)
	assert.InDelta(t, 25, d.Height, 1e-9)
	assert.Equal(t, "box 20,10 100x50\n", stdout.String())
}

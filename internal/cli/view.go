package cli

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/boxzoom"
	"github.com/phanxgames/boxzoom/ebitenview"
	"github.com/phanxgames/boxzoom/internal/imageio"
)

type viewFlags struct {
	out           string
	restore       string
	script        string
	screenshotDir string
	moveMode      bool
	maxDim        int
	width, height int
	hud           bool
	exitAfter     bool
}

func newViewCommand(g *globalFlags) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "view <image>",
		Short: "Open an image and draw a box on it",
		Long: `View opens an image in a window. One finger (or the left mouse button) draws
a box, then resizes it; two fingers pinch-zoom and pan. Press M to make one
finger pan instead, R to reset and Esc to quit.

Every committed box is printed to stdout and, with --out, written as a record.

Examples:
  boxzoom view photo.jpg
  boxzoom view photo.jpg --out box.yaml
  boxzoom view photo.jpg --script session.yaml --screenshot-dir shots`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			return runView(cmd.OutOrStdout(), args[0], cfg, f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write each committed box to this YAML record")
	cmd.Flags().StringVar(&f.restore, "box", "", "Restore the box of an existing record")
	cmd.Flags().StringVar(&f.script, "script", "", "Play a YAML/JSON input script")
	cmd.Flags().StringVar(&f.screenshotDir, "screenshot-dir", "screenshots", "Directory for script screenshots")
	cmd.Flags().BoolVar(&f.moveMode, "move-mode", false, "Start with one-finger panning")
	cmd.Flags().IntVar(&f.maxDim, "max-dim", 4096, "Downscale images larger than this before display")
	cmd.Flags().IntVar(&f.width, "width", 800, "Window width")
	cmd.Flags().IntVar(&f.height, "height", 600, "Window height")
	cmd.Flags().BoolVar(&f.hud, "hud", true, "Show zoom and box info")
	cmd.Flags().BoolVar(&f.exitAfter, "exit-after-script", false, "Close the window when --script finishes")
	return cmd
}

// session wires an editor to the loaded image and the record output. It is
// kept apart from the window so it can be driven without one.
type session struct {
	editor  *boxzoom.Editor
	display image.Image
	natural image.Point
	image   string
	out     string
	stdout  io.Writer
}

func newSession(stdout io.Writer, imagePath string, cfg boxzoom.Config, f *viewFlags) (*session, error) {
	src, err := imageio.Load(imagePath)
	if err != nil {
		return nil, err
	}
	display, scale := imageio.Fit(src, f.maxDim)
	if scale != 1 {
		log.Printf("downscaled %s by %.3f for display", imagePath, scale)
	}
	db := display.Bounds()
	s := &session{
		editor:  boxzoom.NewEditor(cfg, boxzoom.Size{Width: float64(db.Dx()), Height: float64(db.Dy())}),
		display: display,
		natural: src.Bounds().Size(),
		image:   imagePath,
		out:     f.out,
		stdout:  stdout,
	}
	s.editor.SetMoveMode(f.moveMode)
	s.editor.OnCommit(s.commit)

	if f.restore != "" {
		rec, err := LoadRecord(f.restore)
		if err != nil {
			return nil, err
		}
		s.editor.SetBox(rescale(rec.Box, db.Dx(), db.Dy()))
	}
	return s, nil
}

// rescale maps a stored box onto a canvas of the given size.
func rescale(d boxzoom.Data, w, h int) boxzoom.Rect {
	p := d.Percent()
	fw, fh := float64(w)/100, float64(h)/100
	return boxzoom.Rect{X: p.X * fw, Y: p.Y * fh, Width: p.Width * fw, Height: p.Height * fh}
}

// commit prints the box and, with an output path, saves it as a record.
func (s *session) commit(d boxzoom.Data) {
	r := d.PixelRect(s.natural.X, s.natural.Y)
	_, _ = fmt.Fprintf(s.stdout, "box %d,%d %dx%d\n", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if s.out == "" || !d.Valid() {
		return
	}
	rec := newRecord(filepath.Base(s.image), s.natural.X, s.natural.Y, d)
	if err := rec.Save(s.out); err != nil {
		log.Printf("save record: %v", err)
		_, _ = fmt.Fprintf(os.Stderr, "boxzoom: %v\n", err)
	}
}

func runView(stdout io.Writer, imagePath string, cfg boxzoom.Config, f *viewFlags) error {
	s, err := newSession(stdout, imagePath, cfg, f)
	if err != nil {
		return err
	}
	v := ebitenview.New(s.editor, s.display, ebitenview.Options{
		Title:              "boxzoom - " + filepath.Base(imagePath),
		Width:              f.width,
		Height:             f.height,
		ScreenshotDir:      f.screenshotDir,
		HUD:                f.hud,
		QuitWhenScriptDone: f.exitAfter,
	})
	if f.script != "" {
		data, err := os.ReadFile(f.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := boxzoom.LoadTestScript(data)
		if err != nil {
			return err
		}
		v.AttachScript(runner)
	}
	return ebitenview.Run(v)
}

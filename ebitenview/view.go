// Package ebitenview hosts a boxzoom.Editor in an Ebitengine window: touches
// (or the left mouse button) drive the gestures, the image is drawn through
// the viewport transform and the box is stroked on top.
package ebitenview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/boxzoom"
)

// wheelZoomStep is the zoom factor change per mouse wheel notch.
const wheelZoomStep = 0.1

// boxStroke is the box outline width in screen pixels.
const boxStroke = 2

var (
	backgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	boxColor        = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
	boxDragColor    = color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}
)

var whitePixel *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Options configures a View.
type Options struct {
	Title         string
	Width, Height int
	// ScreenshotDir receives the PNGs of "screenshot" script steps.
	ScreenshotDir string
	// HUD draws the zoom factor, mode and box in the top-left corner.
	HUD bool
	// QuitWhenScriptDone closes the window once an attached script has run
	// all its steps.
	QuitWhenScriptDone bool
}

// View implements ebiten.Game around an Editor.
type View struct {
	editor *boxzoom.Editor
	image  *ebiten.Image
	opts   Options

	screenshotQueue []string

	touches   touchSlots
	container image.Point
	script    *boxzoom.TestRunner
}

// New creates a view drawing img under the editor. The editor's content
// size should match img's size.
func New(editor *boxzoom.Editor, img image.Image, opts Options) *View {
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	return &View{
		editor: editor,
		image:  ebiten.NewImageFromImage(img),
		opts:   opts,
	}
}

// Editor returns the hosted editor.
func (v *View) Editor() *boxzoom.Editor {
	return v.editor
}

// AttachScript plays a test script through the editor, routing its
// screenshot steps to this view.
func (v *View) AttachScript(r *boxzoom.TestRunner) {
	r.OnScreenshot(v.Screenshot)
	v.editor.SetTestRunner(r)
	v.script = r
}

// Update polls input and advances the editor by one tick.
func (v *View) Update() error {
	if v.opts.QuitWhenScriptDone && v.script != nil && v.script.Done() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.editor.SetMoveMode(!v.editor.MoveMode())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.editor.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.wheelZoom()
	v.editor.Update(1/float64(ebiten.TPS()), v.touches.poll())
	return nil
}

// wheelZoom zooms about the cursor on desktop, where there is no pinch.
// Ignored during a touch session.
func (v *View) wheelZoom() {
	_, dy := ebiten.Wheel()
	if dy == 0 || v.editor.Gesture() != boxzoom.GestureIdle {
		return
	}
	vp := v.editor.Viewport()
	x, y := ebiten.CursorPosition()
	vp.StopAnimation()
	vp.ZoomAbout(boxzoom.Point{X: float64(x), Y: float64(y)}, vp.Transform().Zoom+dy*wheelZoomStep)
	vp.GuardScale()
	vp.GuardTranslate()
}

// Draw renders the image through the viewport transform and the box on top.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	vp := v.editor.Viewport()
	m := vp.Transform().Matrix()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.image, op)

	v.drawBox(screen)
	if v.opts.HUD {
		v.drawHUD(screen)
	}
	v.flushScreenshots(screen)
}

func (v *View) drawBox(screen *ebiten.Image) {
	st := v.editor.Box()
	drawing := v.editor.Gesture() == boxzoom.GestureDraw || v.editor.Gesture() == boxzoom.GestureResize
	if !v.editor.HasBox() && !drawing {
		return
	}
	c := boxColor
	if drawing {
		c = boxDragColor
	}
	r := v.editor.Viewport().ScreenRect(st.Rect())
	// Outline drawn outside the box so a zero-size box still shows.
	w := float64(boxStroke)
	fillRect(screen, r.X-w, r.Y-w, r.Width+2*w, w, c)
	fillRect(screen, r.X-w, r.Y+r.Height, r.Width+2*w, w, c)
	fillRect(screen, r.X-w, r.Y, w, r.Height, c)
	fillRect(screen, r.X+r.Width, r.Y, w, r.Height, c)
}

// fillRect fills a screen rectangle by stretching the white pixel.
func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	a := float32(c.A) / 255
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, a)
	dst.DrawImage(ensureWhitePixel(), op)
}

func (v *View) drawHUD(screen *ebiten.Image) {
	t := v.editor.Transform()
	mode := "draw"
	if v.editor.MoveMode() {
		mode = "move"
	}
	d := v.editor.Data()
	clip := ""
	if d.Committed && boxClipped(v.editor.Viewport().VisibleBounds(), d.Rect()) {
		clip = " (clipped)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"zoom %.2f  mode %s  gesture %s\nbox %.0f,%.0f %.0fx%.0f%s\n[M] mode  [R] reset  [Esc] quit",
		t.Zoom, mode, v.editor.Gesture(), d.Offset.X, d.Offset.Y, d.Width, d.Height, clip))
}

// boxClipped reports whether part of box lies outside the visible content.
func boxClipped(visible, box boxzoom.Rect) bool {
	return !visible.Contains(box.Min()) || !visible.Contains(box.Max())
}

// Layout reports the window size as the screen size and measures the
// editor's container from it.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	p := image.Pt(outsideWidth, outsideHeight)
	if p != v.container {
		v.container = p
		v.editor.SetContainer(boxzoom.Size{Width: float64(p.X), Height: float64(p.Y)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the view until it is closed. When the window
// closes the editor's container is unmounted, aborting any live gesture.
func Run(v *View) error {
	w, h := v.opts.Width, v.opts.Height
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	ebiten.SetWindowTitle(v.opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer v.editor.Unmount()
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("run view: %w", err)
	}
	return nil
}

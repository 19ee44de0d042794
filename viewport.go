package boxzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transform is the viewport's affine mapping:
//
//	screen = (content + Translate) * Zoom
//
// Translate is expressed in content pixels so that a pan does not have to be
// rescaled when the zoom changes.
type Transform struct {
	Zoom      float64
	Translate Point
}

// IdentityTransform is the transform of a freshly reset viewport.
var IdentityTransform = Transform{Zoom: 1}

// Matrix returns the transform as a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Zoom, 0, 0, t.Zoom, t.Zoom * t.Translate.X, t.Zoom * t.Translate.Y}
}

// zoomAnim holds the tweens of an animated auto-zoom and the exact
// transform committed when they finish.
type zoomAnim struct {
	zoom   *gween.Tween
	tx, ty *gween.Tween
	target Transform
}

// Viewport owns the single transform shared by pan and zoom and converts
// points between screen and content space.
//
// Every mutating operation is a silent no-op until the container has been
// measured with a positive size.
type Viewport struct {
	minZoom, maxZoom float64
	underscroll      float64
	animDuration     float64

	container Size
	content   Size
	measured  bool

	t    Transform
	anim *zoomAnim

	// onChange is invoked after every committed transform change.
	onChange func(Transform)
}

// NewViewport creates a viewport over content of the given size. The
// container stays unmeasured until SetContainer is called.
func NewViewport(cfg Config, content Size) *Viewport {
	return &Viewport{
		minZoom:      cfg.MinZoomScale,
		maxZoom:      cfg.MaxZoomScale,
		underscroll:  cfg.ZoomUnderscroll,
		animDuration: cfg.AutoZoomDuration,
		content:      content,
		t:            IdentityTransform,
	}
}

// SetContainer records the measured size of the viewport container. A zero
// or negative size leaves the viewport unmeasured. A new usable size
// re-applies GuardScale and GuardTranslate.
func (v *Viewport) SetContainer(s Size) {
	changed := !v.measured || s != v.container
	v.container = s
	v.measured = !s.Empty()
	if v.measured && changed {
		v.GuardScale()
		v.GuardTranslate()
	}
}

// Unmount marks the container as gone. Any running animation is dropped.
func (v *Viewport) Unmount() {
	v.measured = false
	v.anim = nil
}

// Measured reports whether the container has a usable size.
func (v *Viewport) Measured() bool {
	return v.measured
}

// Container returns the last measured container size.
func (v *Viewport) Container() Size {
	return v.container
}

// Content returns the size of the drawable surface in content pixels.
func (v *Viewport) Content() Size {
	return v.content
}

// SetContent changes the drawable surface size, e.g. after a new image load.
func (v *Viewport) SetContent(s Size) {
	v.content = s
}

// Transform returns a copy of the current transform.
func (v *Viewport) Transform() Transform {
	return v.t
}

// ZoomLimits returns the configured zoom bounds.
func (v *Viewport) ZoomLimits() (min, max float64) {
	return v.minZoom, v.maxZoom
}

// ToContent converts a screen-space point to content space.
func (v *Viewport) ToContent(p Point) Point {
	return p.Scale(1 / v.t.Zoom).Sub(v.t.Translate)
}

// ToScreen converts a content-space point to screen space.
func (v *Viewport) ToScreen(p Point) Point {
	return p.Add(v.t.Translate).Scale(v.t.Zoom)
}

// ScreenRect maps a content-space rectangle to screen space.
func (v *Viewport) ScreenRect(r Rect) Rect {
	p := v.ToScreen(r.Min())
	return Rect{X: p.X, Y: p.Y, Width: r.Width * v.t.Zoom, Height: r.Height * v.t.Zoom}
}

// VisibleBounds returns the content-space rectangle currently visible
// through the container.
func (v *Viewport) VisibleBounds() Rect {
	tl := v.ToContent(Point{})
	br := v.ToContent(v.container.Point())
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// SetTransform commits zoom and translate together. It refuses zoom factors
// below MinZoomScale*ZoomUnderscroll, leaving a little room for a pinch to be
// released under the floor before GuardScale snaps it back. Reports whether
// the transform was applied.
func (v *Viewport) SetTransform(zoom float64, translate Point) bool {
	if !v.measured {
		return false
	}
	if zoom < v.minZoom*v.underscroll {
		return false
	}
	v.t = Transform{Zoom: zoom, Translate: translate}
	if v.onChange != nil {
		v.onChange(v.t)
	}
	return true
}

// SetTranslate changes only the translate.
func (v *Viewport) SetTranslate(translate Point) bool {
	return v.SetTransform(v.t.Zoom, translate)
}

// Nudge pans by d content pixels without leaving the legal translate range.
func (v *Viewport) Nudge(d Point) bool {
	t := v.t.Translate.Add(d)
	if v.t.Zoom >= v.minZoom {
		t = v.clampTranslate(v.t.Zoom, t)
	}
	if t == v.t.Translate {
		return false
	}
	return v.SetTranslate(t)
}

// ZoomAbout changes the zoom factor while keeping the content point under
// the screen-space anchor fixed.
func (v *Viewport) ZoomAbout(anchor Point, zoom float64) bool {
	if zoom <= 0 {
		return false
	}
	c := v.ToContent(anchor)
	return v.SetTransform(zoom, anchor.Scale(1/zoom).Sub(c))
}

// GuardScale clamps the zoom factor into [MinZoomScale, MaxZoomScale],
// zooming about the container centre.
func (v *Viewport) GuardScale() {
	if !v.measured {
		return
	}
	z := clamp(v.t.Zoom, v.minZoom, v.maxZoom)
	if z != v.t.Zoom {
		v.ZoomAbout(v.container.Point().Scale(0.5), z)
	}
}

// GuardTranslate clamps the translate so the content always fills the
// container; content smaller than the container on an axis is centred on
// that axis. Skipped while the zoom is still under MinZoomScale.
func (v *Viewport) GuardTranslate() {
	if !v.measured || v.t.Zoom < v.minZoom {
		return
	}
	t := v.clampTranslate(v.t.Zoom, v.t.Translate)
	if t != v.t.Translate {
		v.SetTranslate(t)
	}
}

// clampTranslate bounds t to the legal translate range at the given zoom.
func (v *Viewport) clampTranslate(zoom float64, t Point) Point {
	loX, hiX := translateRange(v.container.Width, v.content.Width, zoom)
	loY, hiY := translateRange(v.container.Height, v.content.Height, zoom)
	return Point{clamp(t.X, loX, hiX), clamp(t.Y, loY, hiY)}
}

// translateRange returns the legal translate interval on one axis.
//
//	left edge on screen:  t*zoom           <= 0
//	right edge on screen: (content+t)*zoom >= container
func translateRange(container, content, zoom float64) (lo, hi float64) {
	diff := container - content*zoom
	if diff >= 0 {
		c := diff / (2 * zoom)
		return c, c
	}
	return diff / zoom, 0
}

// AutoZoomToPosition centres the content point p in the container at
// targetZoom, then guards the translate. With a configured AutoZoomDuration
// the move is animated and advanced by Update.
func (v *Viewport) AutoZoomToPosition(p Point, targetZoom float64) {
	if !v.measured || targetZoom <= 0 {
		return
	}
	t := v.container.Point().Scale(1 / (2 * targetZoom)).Sub(p)
	if v.animDuration <= 0 {
		v.SetTransform(targetZoom, t)
		v.GuardTranslate()
		return
	}
	if targetZoom < v.minZoom*v.underscroll {
		return
	}
	if targetZoom >= v.minZoom {
		t = v.clampTranslate(targetZoom, t)
	}
	d := float32(v.animDuration)
	v.anim = &zoomAnim{
		zoom:   gween.New(float32(v.t.Zoom), float32(targetZoom), d, ease.OutCubic),
		tx:     gween.New(float32(v.t.Translate.X), float32(t.X), d, ease.OutCubic),
		ty:     gween.New(float32(v.t.Translate.Y), float32(t.Y), d, ease.OutCubic),
		target: Transform{Zoom: targetZoom, Translate: t},
	}
}

// Animating reports whether an auto-zoom animation is in flight.
func (v *Viewport) Animating() bool {
	return v.anim != nil
}

// StopAnimation freezes a running auto-zoom at its current frame.
func (v *Viewport) StopAnimation() {
	v.anim = nil
}

// Update advances a running auto-zoom animation by dt seconds.
func (v *Viewport) Update(dt float64) {
	a := v.anim
	if a == nil {
		return
	}
	z, doneZ := a.zoom.Update(float32(dt))
	x, doneX := a.tx.Update(float32(dt))
	y, doneY := a.ty.Update(float32(dt))
	if !(doneZ && doneX && doneY) {
		v.SetTransform(float64(z), Point{float64(x), float64(y)})
		return
	}
	v.anim = nil
	v.SetTransform(a.target.Zoom, a.target.Translate)
	v.GuardScale()
	v.GuardTranslate()
}

// Reset restores the identity transform, measured or not.
func (v *Viewport) Reset() {
	v.anim = nil
	v.t = IdentityTransform
	if v.onChange != nil {
		v.onChange(v.t)
	}
}

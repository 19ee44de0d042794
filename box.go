package boxzoom

import "math"

// BoxState is the box in content space plus the bookkeeping of the drag
// that is shaping it.
type BoxState struct {
	Offset        Point
	Width, Height float64

	// Ord holds the edges the current drag moves. Zero outside a gesture.
	Ord Ordinal
	// XInversed and YInversed report a draw dragged left of or above its
	// starting point.
	XInversed, YInversed bool
	// XCrossOver and YCrossOver report a resize whose moving edge was
	// stopped on the opposite, fixed edge.
	XCrossOver, YCrossOver bool

	// Start is the content point where the current drag began; Last is the
	// most recent drag point.
	Start, Last Point
}

// Rect returns the box rectangle.
func (b BoxState) Rect() Rect {
	return Rect{X: b.Offset.X, Y: b.Offset.Y, Width: b.Width, Height: b.Height}
}

// Center returns the box midpoint.
func (b BoxState) Center() Point {
	return b.Rect().Center()
}

// BoxEngine owns the single box. Only the draw and resize gestures mutate it.
type BoxEngine struct {
	vp *Viewport

	autoZoomDivisor float64
	nudge           bool
	nudgeMargin     float64
	nudgeStep       float64

	state     BoxState
	committed bool

	onCommit func()
}

// NewBoxEngine creates an empty box engine drawing over vp's content.
func NewBoxEngine(vp *Viewport, cfg Config) *BoxEngine {
	return &BoxEngine{
		vp:              vp,
		autoZoomDivisor: cfg.AutoZoomDivisor,
		nudge:           cfg.EdgeNudge,
		nudgeMargin:     cfg.EdgeNudgeMargin,
		nudgeStep:       cfg.EdgeNudgeStep,
	}
}

// HasBox reports whether a box has been committed.
func (b *BoxEngine) HasBox() bool {
	return b.committed
}

// State returns a copy of the box and its drag bookkeeping.
func (b *BoxEngine) State() BoxState {
	return b.state
}

// SetBox commits r as the box, e.g. to restore a stored selection. The
// rectangle is clamped into the content bounds. No auto-zoom happens.
func (b *BoxEngine) SetBox(r Rect) {
	c := b.vp.Content()
	r = r.Within(Rect{Width: c.Width, Height: c.Height})
	b.state = BoxState{Offset: r.Min(), Width: r.Width, Height: r.Height}
	b.committed = true
}

// Reset clears the box.
func (b *BoxEngine) Reset() {
	b.state = BoxState{}
	b.committed = false
}

// contentPoint converts a screen point into content space, bounded to the
// content rectangle so the box can never leave it.
func (b *BoxEngine) contentPoint(p Point) Point {
	return b.vp.ToContent(p).Clamp(Point{}, b.vp.Content().Point())
}

// commit marks the box as committed, clears the drag bookkeeping and zooms
// onto the box.
func (b *BoxEngine) commit() {
	b.committed = true
	b.state = BoxState{Offset: b.state.Offset, Width: b.state.Width, Height: b.state.Height}
	b.vp.AutoZoomToPosition(b.state.Center(), b.AutoZoomTarget())
	if b.onCommit != nil {
		b.onCommit()
	}
}

// AutoZoomTarget returns the zoom factor that shows the box's longer side
// at 1/AutoZoomDivisor of the container's shorter side, never below 1 or
// MinZoomScale and never above MaxZoomScale. A zero-size box gets
// MaxZoomScale.
func (b *BoxEngine) AutoZoomTarget() float64 {
	minZoom, maxZoom := b.vp.ZoomLimits()
	side := math.Max(b.state.Width, b.state.Height)
	if side <= 0 {
		return maxZoom
	}
	c := b.vp.Container()
	z := math.Min(c.Width, c.Height) / (b.autoZoomDivisor * side)
	return math.Min(math.Max(z, math.Max(minZoom, 1)), maxZoom)
}

// nudgeAtEdge pans the viewport towards any container edge the box is
// touching on screen.
func (b *BoxEngine) nudgeAtEdge() {
	if !b.nudge {
		return
	}
	sr := b.vp.ScreenRect(b.state.Rect())
	c := b.vp.Container()
	var d Point
	if sr.X < b.nudgeMargin {
		d.X += b.nudgeStep
	}
	if sr.X+sr.Width > c.Width-b.nudgeMargin {
		d.X -= b.nudgeStep
	}
	if sr.Y < b.nudgeMargin {
		d.Y += b.nudgeStep
	}
	if sr.Y+sr.Height > c.Height-b.nudgeMargin {
		d.Y -= b.nudgeStep
	}
	if d != (Point{}) {
		b.vp.Nudge(d)
	}
}

// drawGesture drags out a new box from the touch-down point.
type drawGesture struct {
	box    *BoxEngine
	origin Point
}

func newDrawGesture(box *BoxEngine) *drawGesture {
	return &drawGesture{box: box}
}

func (g *drawGesture) kind() GestureKind { return GestureDraw }

func (g *drawGesture) fits(s Sample) bool { return len(s) == 1 }

func (g *drawGesture) start(s Sample) {
	p, _ := s.Primary()
	g.origin = g.box.contentPoint(p)
	g.box.committed = false
	g.box.state = BoxState{Offset: g.origin, Start: g.origin, Last: g.origin}
}

// move spans the box over the drag rectangle. The quadrant the finger is in
// relative to the start point picks the ordinal; the offset is always the
// rectangle's top-left corner, so dragging in any direction gives the same box.
func (g *drawGesture) move(s Sample) {
	p, _ := s.Primary()
	p = g.box.contentPoint(p)
	d := p.Sub(g.origin)

	st := &g.box.state
	st.XInversed = d.X < 0
	st.YInversed = d.Y < 0
	st.Ord = OrdS
	if st.YInversed {
		st.Ord = OrdN
	}
	if st.XInversed {
		st.Ord |= OrdW
	} else {
		st.Ord |= OrdE
	}
	st.Width = math.Abs(d.X)
	st.Height = math.Abs(d.Y)
	st.Offset = Point{math.Min(g.origin.X, p.X), math.Min(g.origin.Y, p.Y)}
	st.Last = p

	g.box.nudgeAtEdge()
}

func (g *drawGesture) end() {
	g.box.commit()
}

// resizeGesture drags the edges of the committed box.
type resizeGesture struct {
	box       *BoxEngine
	origin    Point
	startRect Rect
	ord       Ordinal
}

func newResizeGesture(box *BoxEngine) *resizeGesture {
	return &resizeGesture{box: box}
}

func (g *resizeGesture) kind() GestureKind { return GestureResize }

func (g *resizeGesture) fits(s Sample) bool { return len(s) == 1 }

func (g *resizeGesture) start(s Sample) {
	p, _ := s.Primary()
	g.origin = g.box.contentPoint(p)
	g.startRect = g.box.state.Rect()
	g.ord = pickOrdinal(g.startRect, g.origin)

	st := &g.box.state
	st.Ord = g.ord
	st.Start = g.origin
	st.Last = g.origin
	st.XCrossOver, st.YCrossOver = false, false
}

// pickOrdinal chooses the edges a resize moves from where the touch lands
// relative to the box midpoint. A touch within the central third of an axis
// grabs only the edge on the other axis; a touch near the centre on both
// axes keeps the corner.
func pickOrdinal(r Rect, p Point) Ordinal {
	mid := r.Center()

	vert := OrdS
	if p.Y < mid.Y {
		vert = OrdN
	}
	horz := OrdE
	if p.X < mid.X {
		horz = OrdW
	}

	centralX := math.Abs(p.X-mid.X) < r.Width/6
	centralY := math.Abs(p.Y-mid.Y) < r.Height/6
	switch {
	case centralX && !centralY:
		return vert
	case centralY && !centralX:
		return horz
	default:
		return vert | horz
	}
}

// move shifts each grabbed edge by the drag distance since start. An edge
// pushed past the opposite, fixed edge stops on it and flags crossover,
// which keeps width and height from going negative or oscillating. Edges
// also stop at the content bounds.
func (g *resizeGesture) move(s Sample) {
	p, _ := s.Primary()
	p = g.box.contentPoint(p)
	d := p.Sub(g.origin)
	content := g.box.vp.Content()

	left, top := g.startRect.X, g.startRect.Y
	right, bottom := left+g.startRect.Width, top+g.startRect.Height
	var xCross, yCross bool

	switch {
	case g.ord.Has(OrdW):
		left, xCross = moveEdge(left+d.X, right, false)
		left = math.Max(left, 0)
	case g.ord.Has(OrdE):
		right, xCross = moveEdge(right+d.X, left, true)
		right = math.Min(right, content.Width)
	}
	switch {
	case g.ord.Has(OrdN):
		top, yCross = moveEdge(top+d.Y, bottom, false)
		top = math.Max(top, 0)
	case g.ord.Has(OrdS):
		bottom, yCross = moveEdge(bottom+d.Y, top, true)
		bottom = math.Min(bottom, content.Height)
	}

	st := &g.box.state
	st.Offset = Point{left, top}
	st.Width = clamp(right-left, 0, content.Width)
	st.Height = clamp(bottom-top, 0, content.Height)
	st.XCrossOver = xCross
	st.YCrossOver = yCross
	st.Last = p

	g.box.nudgeAtEdge()
}

// moveEdge stops a moving edge on the fixed edge it would cross. far is true
// for the right and bottom edges, which must stay at or past fixed.
func moveEdge(edge, fixed float64, far bool) (float64, bool) {
	if far && edge <= fixed {
		return fixed, edge < fixed
	}
	if !far && edge >= fixed {
		return fixed, edge > fixed
	}
	return edge, false
}

func (g *resizeGesture) end() {
	g.box.commit()
}

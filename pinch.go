package boxzoom

// pinchGesture zooms by finger spread and pans by midpoint drift.
type pinchGesture struct {
	vp         *Viewport
	sens       float64
	startMid   Point
	startDist  float64
	startZoom  float64
	startTrans Point
}

func newPinchGesture(vp *Viewport, sensitivity float64) *pinchGesture {
	return &pinchGesture{vp: vp, sens: sensitivity}
}

func (g *pinchGesture) kind() GestureKind { return GesturePinch }

func (g *pinchGesture) fits(s Sample) bool { return len(s) >= 2 }

func (g *pinchGesture) start(s Sample) {
	a, b, _ := s.Pair()
	g.startMid = a.Mid(b)
	g.startDist = a.Dist(b)
	t := g.vp.Transform()
	g.startZoom = t.Zoom
	g.startTrans = t.Translate
}

// move commits a new transform on every frame. The zoom grows linearly with
// the change in finger distance. The translate keeps the content point that
// was under the starting midpoint under the current midpoint, which layers
// two-finger panning on top of zooming about the fingers.
func (g *pinchGesture) move(s Sample) {
	a, b, _ := s.Pair()
	zoom := g.startZoom + (a.Dist(b)-g.startDist)*g.sens
	if zoom <= 0 {
		return
	}
	mid := a.Mid(b)
	drift := mid.Scale(1 / zoom).Sub(g.startMid.Scale(1 / g.startZoom))
	g.vp.SetTransform(zoom, g.startTrans.Add(drift))
}

func (g *pinchGesture) end() {
	g.vp.GuardScale()
	g.vp.GuardTranslate()
}

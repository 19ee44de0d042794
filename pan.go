package boxzoom

// panGesture moves the viewport with a single finger.
type panGesture struct {
	vp             *Viewport
	startPoint     Point
	startTranslate Point
}

func newPanGesture(vp *Viewport) *panGesture {
	return &panGesture{vp: vp}
}

func (g *panGesture) kind() GestureKind { return GesturePan }

func (g *panGesture) fits(s Sample) bool { return len(s) == 1 }

func (g *panGesture) start(s Sample) {
	g.startPoint, _ = s.Primary()
	g.startTranslate = g.vp.Transform().Translate
}

// move applies the finger's drift since start. Touch deltas are screen
// pixels while translate is content pixels, hence the division by zoom.
func (g *panGesture) move(s Sample) {
	p, _ := s.Primary()
	zoom := g.vp.Transform().Zoom
	g.vp.SetTranslate(g.startTranslate.Add(p.Sub(g.startPoint).Scale(1 / zoom)))
}

// end only guards the translate; a pan never changes the zoom.
func (g *panGesture) end() {
	g.vp.GuardTranslate()
}

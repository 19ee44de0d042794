package boxzoom

// gesture is the handler owning one touch session. A fresh value is created
// for every session, so per-session state never leaks between gestures.
type gesture interface {
	kind() GestureKind
	// fits reports whether a sample carries the pointers this gesture reads.
	fits(s Sample) bool
	start(s Sample)
	move(s Sample)
	end()
}

// Router classifies touch sessions and forwards their samples to exactly one
// gesture handler. The handler is picked once, at Begin, from the touch
// count, the move-mode flag and whether a box exists; nothing re-routes a
// session until it ends or is aborted.
type Router struct {
	vp  *Viewport
	box *BoxEngine

	moveMode         bool
	active           gesture
	pinchSensitivity float64

	// Feed bookkeeping: single-touch sessions are held back for
	// settleFrames frames so a second finger landing a frame late still
	// starts a pinch.
	settleFrames int
	pending      int
	held         Sample

	onGesture func(GestureEvent)
}

// NewRouter creates an idle router over the given viewport and box engine.
func NewRouter(vp *Viewport, box *BoxEngine, cfg Config) *Router {
	return &Router{
		vp:               vp,
		box:              box,
		pinchSensitivity: cfg.PinchSensitivity,
		settleFrames:     cfg.TouchSettleFrames,
	}
}

// SetMoveMode toggles single-touch panning. The change applies to the next
// session; an active one keeps its handler.
func (r *Router) SetMoveMode(on bool) {
	r.moveMode = on
}

// MoveMode reports the current move-mode flag.
func (r *Router) MoveMode() bool {
	return r.moveMode
}

// Active returns the kind of the running session, or GestureIdle.
func (r *Router) Active() GestureKind {
	if r.active == nil {
		return GestureIdle
	}
	return r.active.kind()
}

// selectGesture applies the routing priority: two pointers always pinch,
// then move mode pans, then an existing box is resized, else a box is drawn.
func (r *Router) selectGesture(s Sample) gesture {
	switch {
	case len(s) >= 2:
		return newPinchGesture(r.vp, r.pinchSensitivity)
	case r.moveMode:
		return newPanGesture(r.vp)
	case r.box.HasBox():
		return newResizeGesture(r.box)
	default:
		return newDrawGesture(r.box)
	}
}

// Begin starts a session with the first sample. It is refused while another
// session is active, for an empty sample, and while the viewport container
// is unmeasured. Reports whether a session started.
func (r *Router) Begin(s Sample) bool {
	if r.active != nil || len(s) == 0 || !r.vp.Measured() {
		return false
	}
	r.vp.StopAnimation()
	g := r.selectGesture(s)
	g.start(s)
	r.active = g
	r.emit(GestureEvent{Kind: g.kind(), Phase: PhaseBegan})
	return true
}

// Move forwards a sample to the active handler. Samples with a pointer
// count the handler cannot use are dropped. A container lost mid-session
// aborts it.
func (r *Router) Move(s Sample) {
	if r.active == nil {
		return
	}
	if !r.vp.Measured() {
		r.Abort()
		return
	}
	if r.active.fits(s) {
		r.active.move(s)
	}
}

// End finishes the active session: the handler's end runs exactly once,
// then the zoom and translate guards, and the router returns to idle.
func (r *Router) End() {
	g := r.active
	if g == nil {
		return
	}
	if !r.vp.Measured() {
		r.Abort()
		return
	}
	r.active = nil
	g.end()
	r.vp.GuardScale()
	r.vp.GuardTranslate()
	r.emit(GestureEvent{Kind: g.kind(), Phase: PhaseEnded})
}

// Abort drops the active session without running its end.
func (r *Router) Abort() {
	r.pending = 0
	r.held = r.held[:0]
	g := r.active
	if g == nil {
		return
	}
	r.active = nil
	r.emit(GestureEvent{Kind: g.kind(), Phase: PhaseAborted})
}

// Feed drives the router from one frame of pointer positions: the first
// non-empty frame begins a session, later non-empty frames move it, and the
// first empty frame ends it.
func (r *Router) Feed(s Sample) {
	if r.active != nil {
		if len(s) == 0 {
			r.End()
			return
		}
		r.Move(s)
		return
	}

	if len(s) == 0 {
		// A tap released inside the settle window still begins and ends.
		if r.pending > 0 {
			held := append(Sample(nil), r.held...)
			r.pending = 0
			r.held = r.held[:0]
			if r.Begin(held) {
				r.End()
			}
		}
		return
	}
	if len(s) < 2 && r.pending < r.settleFrames {
		if r.pending == 0 {
			r.held = append(r.held[:0], s...)
		}
		r.pending++
		return
	}
	if len(s) < 2 && r.pending > 0 {
		// Begin where the finger landed, then catch up with the frames
		// spent settling.
		first := append(Sample(nil), r.held...)
		r.pending = 0
		r.held = r.held[:0]
		if r.Begin(first) {
			r.Move(s)
		}
		return
	}
	r.pending = 0
	r.held = r.held[:0]
	r.Begin(s)
}

func (r *Router) emit(ev GestureEvent) {
	if r.onGesture != nil {
		r.onGesture(ev)
	}
}

package boxzoom

// Editor is the top-level object that owns the viewport, the box engine, the
// gesture router, callbacks and injected input. It is driven one frame at a
// time by Update and is not safe for concurrent use.
type Editor struct {
	cfg    Config
	vp     *Viewport
	box    *BoxEngine
	router *Router

	handlers    handlerRegistry
	injectQueue []Sample
	testRunner  *TestRunner
	debug       bool
}

// NewEditor creates an editor over content of the given size. The viewport
// container must be measured with SetContainer before gestures take effect.
func NewEditor(cfg Config, content Size) *Editor {
	e := &Editor{cfg: cfg}
	e.vp = NewViewport(cfg, content)
	e.box = NewBoxEngine(e.vp, cfg)
	e.router = NewRouter(e.vp, e.box, cfg)

	e.vp.onChange = e.fireTransform
	e.box.onCommit = func() { e.fireCommit(e.Data()) }
	e.router.onGesture = e.fireGesture
	e.SetDebugMode(cfg.Debug)
	return e
}

// Config returns the configuration the editor was created with.
func (e *Editor) Config() Config {
	return e.cfg
}

// Viewport returns the editor's viewport.
func (e *Editor) Viewport() *Viewport {
	return e.vp
}

// Router returns the editor's gesture router.
func (e *Editor) Router() *Router {
	return e.router
}

// Transform returns the current viewport transform.
func (e *Editor) Transform() Transform {
	return e.vp.Transform()
}

// Box returns the current box state.
func (e *Editor) Box() BoxState {
	return e.box.State()
}

// HasBox reports whether a box has been committed.
func (e *Editor) HasBox() bool {
	return e.box.HasBox()
}

// Gesture returns the kind of the active touch session.
func (e *Editor) Gesture() GestureKind {
	return e.router.Active()
}

// SetContainer records the measured viewport container size.
func (e *Editor) SetContainer(s Size) {
	e.vp.SetContainer(s)
}

// SetContent changes the drawable surface size. The box is cleared because
// its coordinates belong to the previous content.
func (e *Editor) SetContent(s Size) {
	e.router.Abort()
	e.box.Reset()
	e.vp.SetContent(s)
}

// Unmount drops the container. An in-progress gesture is aborted without
// its end running.
func (e *Editor) Unmount() {
	e.vp.Unmount()
	e.router.Abort()
}

// SetMoveMode toggles single-touch panning.
func (e *Editor) SetMoveMode(on bool) {
	e.router.SetMoveMode(on)
}

// MoveMode reports whether single-touch gestures pan.
func (e *Editor) MoveMode() bool {
	return e.router.MoveMode()
}

// Update runs one frame: the test runner step, then input, then the
// auto-zoom animation. Queued injected samples take precedence over live
// input until the queue drains.
func (e *Editor) Update(dt float64, live Sample) {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	if s, ok := e.popInjected(); ok {
		live = s
	}
	e.router.Feed(live)
	e.vp.Update(dt)
}

// Data returns the box in content coordinates and the content size.
func (e *Editor) Data() Data {
	st := e.box.State()
	c := e.vp.Content()
	return Data{
		Offset:       st.Offset,
		Width:        st.Width,
		Height:       st.Height,
		CanvasWidth:  c.Width,
		CanvasHeight: c.Height,
		Committed:    e.box.HasBox(),
	}
}

// SetBox commits a box without a gesture, e.g. to restore a stored one.
func (e *Editor) SetBox(r Rect) {
	e.router.Abort()
	e.box.SetBox(r)
	e.fireCommit(e.Data())
}

// Reset returns the transform to identity, clears the box and drops any
// in-progress gesture and injected input.
func (e *Editor) Reset() {
	e.router.Abort()
	e.injectQueue = e.injectQueue[:0]
	e.box.Reset()
	e.vp.Reset()
}

// SetDebugMode enables or disables the gesture trace on stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

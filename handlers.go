package boxzoom

// EventType identifies a kind of editor callback.
type EventType uint8

const (
	EventTransform EventType = iota // fires after every committed viewport transform change
	EventCommit                     // fires when a draw or resize gesture commits the box
	EventGesture                    // fires when a gesture session begins, ends, or is aborted
)

// GesturePhase is the lifecycle step reported by an EventGesture callback.
type GesturePhase uint8

const (
	PhaseBegan   GesturePhase = iota // router selected a handler
	PhaseEnded                       // handler end ran and guards were applied
	PhaseAborted                     // session dropped without end
)

// GestureEvent is passed to OnGesture callbacks.
type GestureEvent struct {
	Kind  GestureKind
	Phase GesturePhase
}

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	transform []handler[func(Transform)]
	commit    []handler[func(Data)]
	gesture   []handler[func(GestureEvent)]
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTransform:
		h.reg.transform = removeHandler(h.reg.transform, h.id)
	case EventCommit:
		h.reg.commit = removeHandler(h.reg.commit, h.id)
	case EventGesture:
		h.reg.gesture = removeHandler(h.reg.gesture, h.id)
	}
}

func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnTransform registers a callback fired after every transform change. The
// render layer uses it to repaint.
func (e *Editor) OnTransform(fn func(Transform)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.transform = append(e.handlers.transform, handler[func(Transform)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventTransform}
}

// OnCommit registers a callback fired when the box is committed at the end
// of a draw or resize gesture.
func (e *Editor) OnCommit(fn func(Data)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.commit = append(e.handlers.commit, handler[func(Data)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventCommit}
}

// OnGesture registers a callback fired when a gesture session begins, ends
// or is aborted.
func (e *Editor) OnGesture(fn func(GestureEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.gesture = append(e.handlers.gesture, handler[func(GestureEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventGesture}
}

func (e *Editor) fireTransform(t Transform) {
	for _, h := range e.handlers.transform {
		h.fn(t)
	}
}

func (e *Editor) fireCommit(d Data) {
	for _, h := range e.handlers.commit {
		h.fn(d)
	}
}

func (e *Editor) fireGesture(ev GestureEvent) {
	e.debugGesture(ev)
	for _, h := range e.handlers.gesture {
		h.fn(ev)
	}
}

package boxzoom

// Injected samples use screen coordinates, the same space live touches are
// reported in. Each queued sample replaces live input for one frame; an
// empty sample is a release.

// InjectTouch queues one frame with the given touch points held down.
func (e *Editor) InjectTouch(points ...Point) {
	e.injectQueue = append(e.injectQueue, append(Sample(nil), points...))
	e.debugInject(len(e.injectQueue))
}

// InjectRelease queues one frame with no touches, ending any session.
func (e *Editor) InjectRelease() {
	e.injectQueue = append(e.injectQueue, Sample{})
}

// InjectTap queues a touch followed by a release at the same point.
// Consumes two frames.
func (e *Editor) InjectTap(p Point) {
	e.InjectTouch(p)
	e.InjectRelease()
}

// InjectDrag queues a single-finger drag: a touch at from, linearly
// interpolated moves over frames-2 intermediate frames, a final move onto
// to and a release. The sequence consumes frames+1 frames. Minimum frames
// is 2 (touch + move).
func (e *Editor) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		e.InjectTouch(lerp(from, to, t))
	}
	e.InjectRelease()
}

// InjectPinch queues a two-finger pinch about center. The fingers sit on a
// horizontal line and their distance changes linearly from fromDist to
// toDist. Consumes frames+1 frames.
func (e *Editor) InjectPinch(center Point, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		e.InjectTouch(
			Point{center.X - half, center.Y},
			Point{center.X + half, center.Y},
		)
	}
	e.InjectRelease()
}

// Injecting reports whether injected samples are still queued.
func (e *Editor) Injecting() bool {
	return len(e.injectQueue) > 0
}

// popInjected removes and returns the oldest queued sample.
func (e *Editor) popInjected() (Sample, bool) {
	if len(e.injectQueue) == 0 {
		return nil, false
	}
	s := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue[len(e.injectQueue)-1] = nil
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	return s, true
}

func lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Scale(t))
}

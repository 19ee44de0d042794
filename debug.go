package boxzoom

import (
	"fmt"
	"os"
)

var gesturePhaseNames = [...]string{"began", "ended", "aborted"}

// debugGesture prints a gesture lifecycle line with the transform and box
// at that moment. Only called when the editor is in debug mode.
func (e *Editor) debugGesture(ev GestureEvent) {
	if !e.debug {
		return
	}
	phase := "?"
	if int(ev.Phase) < len(gesturePhaseNames) {
		phase = gesturePhaseNames[ev.Phase]
	}
	t := e.vp.Transform()
	st := e.box.State()
	fixed := ""
	if st.Ord != 0 {
		fixed = fmt.Sprintf(" fixed=%q", st.Ord.Inverse().String())
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[boxzoom] %s %s | zoom: %.4f | translate: (%.2f, %.2f) | box: (%.2f, %.2f) %.2fx%.2f ord=%q%s\n",
		ev.Kind, phase, t.Zoom, t.Translate.X, t.Translate.Y,
		st.Offset.X, st.Offset.Y, st.Width, st.Height, st.Ord.String(), fixed)
}

// debugInject warns when injected input is queued while no container is
// measured, which would silently drop it.
func (e *Editor) debugInject(n int) {
	if !e.debug || e.vp.Measured() {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[boxzoom] warning: %d samples queued before the container was measured\n", n)
}

package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/boxzoom"
)

// maxTouches bounds the tracked touch slots. Only the first two are ever
// read by the gestures; the rest keep slot order stable while extra fingers
// come and go.
const maxTouches = 10

// touchSlots maps ebiten touch IDs to stable slots so the two pinch fingers
// keep their order for the whole session even when ebiten reorders IDs.
type touchSlots struct {
	ids  [maxTouches]ebiten.TouchID
	used [maxTouches]bool

	scratch []ebiten.TouchID
	sample  boxzoom.Sample
}

// slot returns the existing slot for tid or allocates a new one. Returns -1
// if full.
func (t *touchSlots) slot(tid ebiten.TouchID) int {
	for i := range t.ids {
		if t.used[i] && t.ids[i] == tid {
			return i
		}
	}
	for i := range t.ids {
		if !t.used[i] {
			t.used[i] = true
			t.ids[i] = tid
			return i
		}
	}
	return -1
}

// update rebuilds the frame sample from the currently pressed touch IDs in
// slot order. Slots whose touch was lifted are freed.
func (t *touchSlots) update(ids []ebiten.TouchID, pos func(ebiten.TouchID) (int, int)) boxzoom.Sample {
	var active [maxTouches]bool
	var pts [maxTouches]boxzoom.Point
	for _, tid := range ids {
		i := t.slot(tid)
		if i < 0 {
			continue
		}
		x, y := pos(tid)
		active[i] = true
		pts[i] = boxzoom.Point{X: float64(x), Y: float64(y)}
	}

	t.sample = t.sample[:0]
	for i := range t.ids {
		if !active[i] {
			t.used[i] = false
			t.ids[i] = 0
			continue
		}
		t.sample = append(t.sample, pts[i])
	}
	return t.sample
}

// poll reads this frame's touches, falling back to the left mouse button
// when no finger is down.
func (t *touchSlots) poll() boxzoom.Sample {
	t.scratch = ebiten.AppendTouchIDs(t.scratch[:0])
	s := t.update(t.scratch, ebiten.TouchPosition)
	if len(s) > 0 {
		return s
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.sample = append(t.sample[:0], boxzoom.Point{X: float64(x), Y: float64(y)})
		return t.sample
	}
	return t.sample[:0]
}

package boxzoom

import "math"

// Point is a 2D coordinate. A Point lives either in screen space (pixels
// relative to the viewport container) or in content space (pixels of the
// unscaled, untranslated drawable surface); converting between the two always
// goes through a Viewport.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q, the offset that moves q onto p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Clamp returns p with each component bounded to [lo, hi] on that axis.
func (p Point) Clamp(lo, hi Point) Point {
	return Point{clamp(p.X, lo.X, hi.X), clamp(p.Y, lo.Y, hi.Y)}
}

// Size is a non-negative width and height.
type Size struct {
	Width, Height float64
}

// Scale returns s with both extents multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

// Empty reports whether either extent is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point returns the size as the point (Width, Height).
func (s Size) Point() Point {
	return Point{s.Width, s.Height}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.X + r.Width, r.Y + r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Within returns r shifted and shrunk as little as possible so that it lies
// inside bounds. Width and Height never go negative.
func (r Rect) Within(bounds Rect) Rect {
	w := clamp(r.Width, 0, bounds.Width)
	h := clamp(r.Height, 0, bounds.Height)
	x := clamp(r.X, bounds.X, bounds.X+bounds.Width-w)
	y := clamp(r.Y, bounds.Y, bounds.Y+bounds.Height-h)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// clamp bounds v to [lo, hi]. When lo > hi, hi wins.
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// GestureKind identifies which behaviour owns the current touch session.
type GestureKind uint8

const (
	GestureIdle   GestureKind = iota // no touch session in progress
	GesturePan                       // single touch moves the viewport
	GesturePinch                     // two touches zoom and pan the viewport
	GestureDraw                      // single touch draws a new box
	GestureResize                    // single touch drags the edges of the box
)

var gestureNames = [...]string{"idle", "pan", "pinch", "draw", "resize"}

func (g GestureKind) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "unknown"
}

// Ordinal is a bitmask of the box edges a drag is moving. Corners combine a
// vertical and a horizontal edge.
type Ordinal uint8

const (
	OrdN Ordinal = 1 << iota // top edge
	OrdS                     // bottom edge
	OrdE                     // right edge
	OrdW                     // left edge
)

// Has reports whether every edge in e is part of o.
func (o Ordinal) Has(e Ordinal) bool {
	return e != 0 && o&e == e
}

// String returns the compass tag of the ordinal ("n", "se", ...), or "" for
// no edges.
func (o Ordinal) String() string {
	var s string
	if o.Has(OrdN) {
		s += "n"
	} else if o.Has(OrdS) {
		s += "s"
	}
	if o.Has(OrdE) {
		s += "e"
	} else if o.Has(OrdW) {
		s += "w"
	}
	return s
}

// Inverse returns the ordinal of the opposite edge or corner.
func (o Ordinal) Inverse() Ordinal {
	var inv Ordinal
	if o.Has(OrdN) {
		inv |= OrdS
	}
	if o.Has(OrdS) {
		inv |= OrdN
	}
	if o.Has(OrdE) {
		inv |= OrdW
	}
	if o.Has(OrdW) {
		inv |= OrdE
	}
	return inv
}

// Sample is the list of active pointer positions for one input frame, in
// screen space. Only the first two pointers are ever consulted.
type Sample []Point

// Primary returns the first pointer. ok is false for an empty sample.
func (s Sample) Primary() (p Point, ok bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[0], true
}

// Pair returns the first two pointers. ok is false when fewer than two are down.
func (s Sample) Pair() (a, b Point, ok bool) {
	if len(s) < 2 {
		return Point{}, Point{}, false
	}
	return s[0], s[1], true
}

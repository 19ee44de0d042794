package boxzoom

import "testing"

func TestPointOps(t *testing.T) {
	p := Point{3, 4}
	q := Point{1, -2}
	if got := p.Add(q); got != (Point{4, 2}) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(q); got != (Point{2, 6}) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := p.Scale(0.5); got != (Point{1.5, 2}) {
		t.Errorf("Scale = %v, want (1.5,2)", got)
	}
	if got := (Point{}).Dist(p); !approxEqual(got, 5, epsilon) {
		t.Errorf("Dist = %f, want 5", got)
	}
	if got := p.Mid(q); got != (Point{2, 1}) {
		t.Errorf("Mid = %v, want (2,1)", got)
	}
	if got := (Point{-5, 50}).Clamp(Point{}, Point{10, 10}); got != (Point{0, 10}) {
		t.Errorf("Clamp = %v, want (0,10)", got)
	}
}

func TestRectWithin(t *testing.T) {
	bounds := Rect{Width: 100, Height: 50}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", Rect{10, 10, 20, 20}, Rect{10, 10, 20, 20}},
		{"shifted back", Rect{90, 40, 20, 20}, Rect{80, 30, 20, 20}},
		{"negative origin", Rect{-5, -5, 10, 10}, Rect{0, 0, 10, 10}},
		{"too large", Rect{0, 0, 200, 80}, Rect{0, 0, 100, 50}},
		{"negative size", Rect{10, 10, -4, -4}, Rect{10, 10, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Within(bounds); got != tt.want {
				t.Errorf("Within = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !r.Contains(Point{10, 30}) {
		t.Error("edge point should be inside")
	}
	if r.Contains(Point{31, 15}) {
		t.Error("point right of rect should be outside")
	}
	if c := r.Center(); c != (Point{20, 20}) {
		t.Errorf("Center = %v, want (20,20)", c)
	}
}

func TestOrdinalString(t *testing.T) {
	tests := []struct {
		o    Ordinal
		want string
	}{
		{0, ""},
		{OrdN, "n"},
		{OrdN | OrdE, "ne"},
		{OrdE, "e"},
		{OrdS | OrdE, "se"},
		{OrdS, "s"},
		{OrdS | OrdW, "sw"},
		{OrdW, "w"},
		{OrdN | OrdW, "nw"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Ordinal(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestOrdinalInverse(t *testing.T) {
	if got := (OrdN | OrdW).Inverse(); got != OrdS|OrdE {
		t.Errorf("nw inverse = %q, want se", got)
	}
	if got := OrdE.Inverse(); got != OrdW {
		t.Errorf("e inverse = %q, want w", got)
	}
	if (OrdN | OrdE).Has(0) {
		t.Error("Has(0) should be false")
	}
}

func TestGestureKindString(t *testing.T) {
	if GesturePinch.String() != "pinch" {
		t.Errorf("GesturePinch = %q", GesturePinch.String())
	}
	if GestureKind(99).String() != "unknown" {
		t.Errorf("GestureKind(99) = %q", GestureKind(99).String())
	}
}

func TestSampleAccessors(t *testing.T) {
	var empty Sample
	if _, ok := empty.Primary(); ok {
		t.Error("empty sample should have no primary")
	}
	one := Sample{{1, 2}}
	if p, ok := one.Primary(); !ok || p != (Point{1, 2}) {
		t.Errorf("Primary = %v, %v", p, ok)
	}
	if _, _, ok := one.Pair(); ok {
		t.Error("single-touch sample should have no pair")
	}
	three := Sample{{1, 1}, {2, 2}, {3, 3}}
	a, b, ok := three.Pair()
	if !ok || a != (Point{1, 1}) || b != (Point{2, 2}) {
		t.Errorf("Pair = %v, %v, %v", a, b, ok)
	}
}

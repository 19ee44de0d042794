package boxzoom

import "testing"

func TestPanScalesByZoom(t *testing.T) {
	v := newTestViewport(Size{400, 300}, Size{800, 600})
	v.SetTransform(2, Point{-100, -75})
	g := newPanGesture(v)
	g.start(Sample{{100, 100}})

	g.move(Sample{{140, 80}})
	if got := v.Transform().Translate; !approxPoint(got, Point{-80, -85}, epsilon) {
		t.Errorf("Translate = %v, want (-80,-85)", got)
	}
	g.end()
	if got := v.Transform().Translate; !approxPoint(got, Point{-80, -85}, epsilon) {
		t.Errorf("Translate after end = %v, want unchanged (-80,-85)", got)
	}
}

func TestPanUsesTotalDelta(t *testing.T) {
	v := newTestViewport(Size{400, 300}, Size{800, 600})
	v.SetTranslate(Point{-200, -200})
	g := newPanGesture(v)
	g.start(Sample{{0, 0}})
	g.move(Sample{{10, 10}})
	g.move(Sample{{30, -5}})
	if got := v.Transform().Translate; got != (Point{-170, -205}) {
		t.Errorf("Translate = %v, want (-170,-205)", got)
	}
}

func TestPanEndGuardsTranslate(t *testing.T) {
	v := newTestViewport(Size{400, 300}, Size{800, 600})
	g := newPanGesture(v)
	g.start(Sample{{200, 150}})
	g.move(Sample{{-600, -600}})
	g.end()
	if got := v.Transform().Translate; got != (Point{-400, -300}) {
		t.Errorf("Translate = %v, want (-400,-300)", got)
	}
	if z := v.Transform().Zoom; z != 1 {
		t.Errorf("pan changed zoom to %f", z)
	}
}

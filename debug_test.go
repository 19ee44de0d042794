package boxzoom

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDebugTrace(t *testing.T) {
	e := newTestEditor(DefaultConfig())
	e.SetDebugMode(true)
	out := captureStderr(t, func() {
		drag(e, Point{10, 10}, Point{50, 40})
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "[boxzoom] draw began") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[boxzoom] draw ended") || !strings.Contains(lines[1], "40.00x30.00") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestDebugTraceNamesFixedCorner(t *testing.T) {
	e := newTestEditor(DefaultConfig())
	e.SetBox(Rect{X: 100, Y: 100, Width: 100, Height: 100})
	e.SetDebugMode(true)
	out := captureStderr(t, func() {
		liveDrag(e, Point{100, 100}, Point{90, 90})
	})
	if !strings.HasPrefix(out, "[boxzoom] resize began") {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(out, `ord="nw" fixed="se"`) {
		t.Errorf("output = %q, want ord nw with fixed se", out)
	}
}

func TestDebugOffIsSilent(t *testing.T) {
	e := newTestEditor(DefaultConfig())
	out := captureStderr(t, func() {
		drag(e, Point{10, 10}, Point{50, 40})
	})
	if out != "" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDebugInjectWarnsUnmeasured(t *testing.T) {
	e := NewEditor(Config{MinZoomScale: 1, MaxZoomScale: 4, ZoomUnderscroll: 0.8, Debug: true}, Size{10, 10})
	out := captureStderr(t, func() {
		e.InjectTap(Point{1, 1})
	})
	if !strings.Contains(out, "before the container was measured") {
		t.Errorf("output = %q", out)
	}
}

package boxzoom

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	From   float64 `yaml:"from,omitempty"`
	To     float64 `yaml:"to,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	On     bool    `yaml:"on,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var knownActions = map[string]bool{
	"tap": true, "drag": true, "pinch": true, "wait": true,
	"mode": true, "reset": true, "screenshot": true,
}

// TestRunner sequences injected touches, mode switches and screenshots
// across frames for scripted testing. Attach to an Editor via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	screenshot func(label string)
}

// LoadTestScript parses a YAML or JSON test script and returns a TestRunner
// ready to be attached to an Editor via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// OnScreenshot sets the function called for "screenshot" steps. Without one
// those steps are skipped.
func (r *TestRunner) OnScreenshot(fn func(label string)) {
	r.screenshot = fn
}

// SetTestRunner attaches a TestRunner to the editor. The runner's step
// method is called from Editor.Update before input is read each frame.
func (e *Editor) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Editor.Update.
func (r *TestRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if e.Injecting() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if r.screenshot != nil {
			r.screenshot(st.Label)
		}
	case "tap":
		e.InjectTap(Point{st.X, st.Y})
	case "drag":
		e.InjectDrag(Point{st.FromX, st.FromY}, Point{st.ToX, st.ToY}, st.Frames)
	case "pinch":
		e.InjectPinch(Point{st.X, st.Y}, st.From, st.To, st.Frames)
	case "mode":
		e.SetMoveMode(st.On)
	case "reset":
		e.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !e.Injecting() {
		r.done = true
	}
}

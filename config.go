package boxzoom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of an Editor. The zero value is not usable; start
// from DefaultConfig and override fields, or load a YAML file with LoadConfig.
type Config struct {
	// MinZoomScale and MaxZoomScale bound the zoom factor after every gesture.
	MinZoomScale float64 `yaml:"min_zoom_scale"`
	MaxZoomScale float64 `yaml:"max_zoom_scale"`

	// ZoomUnderscroll is the fraction of MinZoomScale a live pinch may reach
	// before transform updates are refused. GuardScale snaps back on release.
	ZoomUnderscroll float64 `yaml:"zoom_underscroll"`

	// PinchSensitivity converts a change in finger distance (screen pixels)
	// into a change of zoom factor.
	PinchSensitivity float64 `yaml:"pinch_sensitivity"`

	// AutoZoomDivisor sizes the auto-zoom after a box commit: the box's
	// longer side is fitted into 1/AutoZoomDivisor of the container's
	// shorter side.
	AutoZoomDivisor float64 `yaml:"auto_zoom_divisor"`

	// AutoZoomDuration animates auto-zoom over this many seconds.
	// Zero applies the new transform immediately.
	AutoZoomDuration float64 `yaml:"auto_zoom_duration"`

	// TouchSettleFrames delays the start of a single-touch session by up to
	// this many frames so a second finger landing slightly later still
	// starts a pinch. Zero begins on the first touched frame.
	TouchSettleFrames int `yaml:"touch_settle_frames"`

	// EdgeNudge pans the viewport while drawing or resizing when the box
	// comes within EdgeNudgeMargin screen pixels of the container edge.
	EdgeNudge       bool    `yaml:"edge_nudge"`
	EdgeNudgeMargin float64 `yaml:"edge_nudge_margin"`
	EdgeNudgeStep   float64 `yaml:"edge_nudge_step"`

	// Debug enables the [boxzoom] gesture trace on stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		MinZoomScale:     1.0,
		MaxZoomScale:     4.0,
		ZoomUnderscroll:  0.8,
		PinchSensitivity: 0.01,
		AutoZoomDivisor:  3,
		EdgeNudgeMargin:  3,
		EdgeNudgeStep:    5,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first setting that would make the viewport unusable.
func (c Config) Validate() error {
	switch {
	case c.MinZoomScale <= 0:
		return errors.New("min_zoom_scale must be positive")
	case c.MaxZoomScale < c.MinZoomScale:
		return fmt.Errorf("max_zoom_scale %g is below min_zoom_scale %g", c.MaxZoomScale, c.MinZoomScale)
	case c.ZoomUnderscroll <= 0 || c.ZoomUnderscroll > 1:
		return errors.New("zoom_underscroll must be in (0, 1]")
	case c.PinchSensitivity <= 0:
		return errors.New("pinch_sensitivity must be positive")
	case c.AutoZoomDivisor <= 0:
		return errors.New("auto_zoom_divisor must be positive")
	case c.AutoZoomDuration < 0:
		return errors.New("auto_zoom_duration must not be negative")
	case c.TouchSettleFrames < 0:
		return errors.New("touch_settle_frames must not be negative")
	case c.EdgeNudge && (c.EdgeNudgeMargin < 0 || c.EdgeNudgeStep <= 0):
		return errors.New("edge_nudge needs a non-negative margin and a positive step")
	}
	return nil
}

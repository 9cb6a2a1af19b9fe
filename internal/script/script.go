// Package script loads and replays recorded selection scenarios.
//
// A scenario describes a selection session and a sequence of handle
// events, such as one captured from a presentation layer while
// debugging. Replaying it drives a [xselect.Session] exactly the way
// the live events would have.
package script

import (
	"errors"
	"fmt"
	"os"
	"time"

	"deedles.dev/xselect"
	"deedles.dev/xselect/drag"
	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for an event kind that isn't recognized.
var ErrUnknownKind = errors.New("unknown event kind")

// Rect is a rectangle as it appears in a scenario file.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) rect() geom.Rect[float64] {
	return geom.XYWH(r.X, r.Y, r.Width, r.Height)
}

// Size is a size as it appears in a scenario file.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Event is a single event as it appears in a scenario file.
type Event struct {
	Kind      string        `yaml:"kind"`
	Direction string        `yaml:"direction"`
	DX        float64       `yaml:"dx"`
	DY        float64       `yaml:"dy"`
	At        time.Duration `yaml:"at"`
}

// Script is a parsed scenario. Fields that were left out of the file
// are nil and fall back to the defaults of [xselect.NewSession].
type Script struct {
	Container         *Rect         `yaml:"container"`
	Selection         *Rect         `yaml:"selection"`
	Aspect            *Size         `yaml:"aspect"`
	Hold              time.Duration `yaml:"hold"`
	KnobRadius        *float64      `yaml:"knob_radius"`
	RequireCalculable bool          `yaml:"require_calculable"`
	Events            []Event       `yaml:"events"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return s, nil
}

// Parse parses a scenario.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every event names a known kind and direction.
// Geometry is not validated; degenerate sizes are legitimate input.
func (s *Script) Validate() error {
	if s.Hold < 0 {
		return fmt.Errorf("hold must be >= 0, got %v", s.Hold)
	}
	for i, ev := range s.Events {
		if _, err := ParseKind(ev.Kind); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if _, err := handle.ParseDirection(ev.Direction); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// ParseKind returns the event kind with the given name, as returned
// by [drag.EventKind.String].
func ParseKind(name string) (drag.EventKind, error) {
	for _, k := range [...]drag.EventKind{drag.Began, drag.Held, drag.Changed, drag.Ended, drag.Cancelled} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Session returns a new session configured as the scenario describes.
func (s *Script) Session() *xselect.Session {
	opts := []xselect.SessionOption{
		xselect.WithDragOptions(
			drag.WithHoldDuration(s.Hold),
			drag.WithRequireCalculable(s.RequireCalculable),
		),
	}
	if s.Container != nil {
		opts = append(opts, xselect.WithContainer(s.Container.rect()))
	}
	if s.Selection != nil {
		opts = append(opts, xselect.WithSelection(s.Selection.rect()))
	}
	if s.Aspect != nil {
		opts = append(opts, xselect.WithAspect(geom.Pt(s.Aspect.Width, s.Aspect.Height)))
	}
	if s.KnobRadius != nil {
		opts = append(opts, xselect.WithKnobRadius(*s.KnobRadius))
	}
	return xselect.NewSession(opts...)
}

// DragEvents converts the scenario's events, timestamping them
// relative to start. The script must have been validated.
func (s *Script) DragEvents(start time.Time) []drag.Event[float64] {
	events := make([]drag.Event[float64], 0, len(s.Events))
	for _, ev := range s.Events {
		kind, _ := ParseKind(ev.Kind)
		dir, _ := handle.ParseDirection(ev.Direction)
		events = append(events, drag.Event[float64]{
			Kind:        kind,
			Direction:   dir,
			Translation: geom.Pt(ev.DX, ev.DY),
			At:          start.Add(ev.At),
		})
	}
	return events
}

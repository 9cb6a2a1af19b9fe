// Package xselect ties together a resizable selection and an inner
// rectangle that is kept aspect-fitted and centered inside of it.
//
// The geometry lives in the geom and handle packages and the gesture
// tracking in drag. A [Session] recomputes the inner rectangle
// explicitly whenever one of its inputs changes, so a presentation
// layer only has to forward events and draw what the session reports.
package xselect

import (
	"iter"
	"log/slog"

	"deedles.dev/xselect/drag"
	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
)

// Defaults used by NewSession when no option overrides them.
var (
	DefaultContainer  = geom.XYWH(0.0, 0, 800, 800)
	DefaultSelection  = geom.XYWH(20.0, 20, 200, 200)
	DefaultAspect     = geom.Pt(1.0, 1)
	DefaultKnobRadius = 10.0
)

// SetLogger sets the logger for this package and its subpackages. See
// [drag.SetLogger].
func SetLogger(l *slog.Logger) {
	drag.SetLogger(l)
}

type sessionOptions struct {
	container geom.Rect[float64]
	selection geom.Rect[float64]
	aspect    geom.Point[float64]
	radius    float64
	drag      []drag.Option
}

// SessionOption configures a [Session].
type SessionOption func(*sessionOptions)

// WithContainer sets the bounds of the surface that the selection is
// drawn on.
func WithContainer(r geom.Rect[float64]) SessionOption {
	return func(o *sessionOptions) {
		o.container = r
	}
}

// WithSelection sets the initial committed selection.
func WithSelection(r geom.Rect[float64]) SessionOption {
	return func(o *sessionOptions) {
		o.selection = r
	}
}

// WithAspect sets the width and height whose ratio the inner rectangle
// keeps.
func WithAspect(size geom.Point[float64]) SessionOption {
	return func(o *sessionOptions) {
		o.aspect = size
	}
}

// WithKnobRadius sets the radius of the handle knobs.
func WithKnobRadius(radius float64) SessionOption {
	return func(o *sessionOptions) {
		o.radius = radius
	}
}

// WithDragOptions passes options through to the underlying
// [drag.Selection].
func WithDragOptions(opts ...drag.Option) SessionOption {
	return func(o *sessionOptions) {
		o.drag = append(o.drag, opts...)
	}
}

// Session is a selection on a container surface together with the
// inner rectangle that is fitted to it.
//
// A Session is not safe for concurrent use.
type Session struct {
	container geom.Rect[float64]
	aspect    geom.Point[float64]
	radius    float64

	sel   *drag.Selection[float64]
	inner geom.Rect[float64]
}

// NewSession returns a new session configured by opts.
func NewSession(opts ...SessionOption) *Session {
	o := sessionOptions{
		container: DefaultContainer,
		selection: DefaultSelection,
		aspect:    DefaultAspect,
		radius:    DefaultKnobRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := Session{
		container: o.container,
		aspect:    o.aspect,
		radius:    o.radius,
		sel:       drag.New(o.selection, o.drag...),
	}
	s.update()
	return &s
}

func (s *Session) fit(target geom.Rect[float64]) geom.Rect[float64] {
	return geom.FitRect(geom.Rect[float64]{Max: s.aspect}, target)
}

func (s *Session) update() {
	s.inner = s.fit(s.sel.Base())
}

// Container returns the bounds of the surface.
func (s *Session) Container() geom.Rect[float64] {
	return s.container
}

// SetContainer replaces the bounds of the surface.
func (s *Session) SetContainer(r geom.Rect[float64]) {
	s.container = r
}

// Contained reports whether the previewed selection lies entirely
// within the container. Neither dragging nor committing is limited by
// the container, so a selection may be moved partly or wholly outside
// of it.
func (s *Session) Contained() bool {
	return s.container.Canon().Contains(s.sel.Current().Canon())
}

// Aspect returns the size whose ratio the inner rectangle keeps.
func (s *Session) Aspect() geom.Point[float64] {
	return s.aspect
}

// SetAspect changes the aspect size and refits the inner rectangle. A
// size that isn't calculable is accepted and produces an empty inner
// rectangle.
func (s *Session) SetAspect(size geom.Point[float64]) {
	s.aspect = size
	s.update()
}

// Selection returns the committed selection.
func (s *Session) Selection() geom.Rect[float64] {
	return s.sel.Base()
}

// SetSelection replaces the committed selection and refits the inner
// rectangle.
func (s *Session) SetSelection(r geom.Rect[float64]) {
	s.sel.SetBase(r)
	s.update()
}

// Preview returns the selection as it currently appears, including
// any drag in progress.
func (s *Session) Preview() geom.Rect[float64] {
	return s.sel.Current()
}

// Inner returns the inner rectangle fitted to the committed selection.
func (s *Session) Inner() geom.Rect[float64] {
	return s.inner
}

// PreviewInner returns the inner rectangle fitted to the previewed
// selection.
func (s *Session) PreviewInner() geom.Rect[float64] {
	if s.sel.Phase() != drag.Dragging {
		return s.inner
	}
	return s.fit(s.sel.Current())
}

// Phase returns the phase of the gesture in progress.
func (s *Session) Phase() drag.Phase {
	return s.sel.Phase()
}

// Knobs yields the knob rectangles of the previewed selection.
func (s *Session) Knobs() iter.Seq2[handle.Direction, geom.Rect[float64]] {
	return s.sel.Knobs(s.radius)
}

// HitTest returns the handle whose knob contains p, if any.
func (s *Session) HitTest(p geom.Point[float64]) (handle.Direction, bool) {
	return handle.HitTest(s.sel.Current(), s.radius, p)
}

// Handle forwards ev to the selection. If the event commits a new
// selection, the inner rectangle is refitted.
func (s *Session) Handle(ev drag.Event[float64]) drag.Update[float64] {
	u := s.sel.Handle(ev)
	if u.Committed {
		s.update()
	}
	return u
}

// Cancel abandons any gesture in progress.
func (s *Session) Cancel() {
	s.sel.Reset()
}

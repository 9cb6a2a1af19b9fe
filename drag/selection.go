package drag

import (
	"iter"
	"time"

	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
)

type options struct {
	hold              time.Duration
	requireCalculable bool
}

// Option configures a [Selection].
type Option func(*options)

// WithHoldDuration sets how long the pointer must be held on a handle
// before it becomes a press. The default is zero, meaning that the
// press begins as soon as the pointer goes down.
func WithHoldDuration(hold time.Duration) Option {
	return func(o *options) {
		o.hold = hold
	}
}

// WithRequireCalculable makes the selection refuse to commit a drag
// that would leave it with a zero, negative or non-finite size. The
// committed rectangle keeps its previous value instead. By default any
// result is committed.
func WithRequireCalculable(require bool) Option {
	return func(o *options) {
		o.requireCalculable = require
	}
}

// Update describes the state of a [Selection] after it handles an
// event.
type Update[T geom.Float] struct {
	// Phase is the phase of the gesture after the event.
	Phase Phase

	// Base is the committed rectangle.
	Base geom.Rect[T]

	// Current is the rectangle that should be displayed. It differs
	// from Base only while dragging.
	Current geom.Rect[T]

	// Committed is true if the event replaced Base.
	Committed bool
}

// Selection is a rectangular selection that can be resized by
// dragging its handles. At most one gesture is tracked at a time. If a
// gesture begins on another handle while one is in progress, the old
// one is discarded without committing.
//
// A Selection is not safe for concurrent use.
type Selection[T geom.Float] struct {
	opts    options
	base    geom.Rect[T]
	gesture Gesture[T]
}

// New returns a selection whose committed rectangle is base.
func New[T geom.Float](base geom.Rect[T], opts ...Option) *Selection[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Selection[T]{
		opts:    o,
		base:    base,
		gesture: Gesture[T]{hold: o.hold},
	}
}

// Base returns the committed rectangle.
func (s *Selection[T]) Base() geom.Rect[T] {
	return s.base
}

// SetBase replaces the committed rectangle. A gesture in progress
// continues and is applied to the new rectangle.
func (s *Selection[T]) SetBase(r geom.Rect[T]) {
	s.base = r
}

// Current returns the rectangle as it would be if the gesture in
// progress ended now. This is a preview; nothing is committed.
func (s *Selection[T]) Current() geom.Rect[T] {
	return s.gesture.Apply(s.base)
}

// Phase returns the phase of the gesture in progress.
func (s *Selection[T]) Phase() Phase {
	return s.gesture.Phase()
}

// Gesture returns a copy of the gesture in progress.
func (s *Selection[T]) Gesture() Gesture[T] {
	return s.gesture
}

// Reset abandons the gesture in progress without committing it.
func (s *Selection[T]) Reset() {
	s.gesture.Reset()
}

// Knobs yields the knob rectangles of the current rectangle's handles.
func (s *Selection[T]) Knobs(radius T) iter.Seq2[handle.Direction, geom.Rect[T]] {
	return handle.Knobs(s.Current(), radius)
}

// Handle advances the gesture by one event and commits its result if
// the event ends a drag.
func (s *Selection[T]) Handle(ev Event[T]) Update[T] {
	d, v, ok := s.gesture.Handle(ev)
	committed := ok && s.commit(handle.Translate(d, s.base, v))

	return Update[T]{
		Phase:     s.gesture.Phase(),
		Base:      s.base,
		Current:   s.Current(),
		Committed: committed,
	}
}

func (s *Selection[T]) commit(r geom.Rect[T]) bool {
	if s.opts.requireCalculable && !geom.RectCalculable(r) {
		Logger().Debug("commit dropped", "rect", r)
		return false
	}

	Logger().Debug("commit", "from", s.base, "to", r)
	s.base = r
	return true
}

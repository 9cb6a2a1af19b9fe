// Package drag tracks handle-drag gestures on a rectangular selection.
//
// The collaborator that owns the input devices translates its pointer
// events into [Event] values and feeds them, in order, to a
// [Selection]. The selection keeps the committed rectangle and the
// phase of the single gesture that is in progress, and it can report
// a live preview of the rectangle at any time.
//
// Nothing in this package returns errors. Events that don't make sense
// in the current phase are ignored.
package drag

import (
	"fmt"
	"time"

	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
)

// Typical hold durations. A pointer device can start dragging almost
// immediately, while a touch needs to be held to distinguish a drag
// from a scroll.
const (
	PointerHoldDuration = 10 * time.Millisecond
	TouchHoldDuration   = 300 * time.Millisecond
)

// Phase is the phase of a gesture.
type Phase uint8

const (
	// Inactive means that there is no gesture, or that the pointer is
	// down but hasn't yet been held long enough to become a press.
	Inactive Phase = iota

	// Pressing means that the pointer has been held on a handle but has
	// not moved.
	Pressing

	// Dragging means that the pointer has moved since the press began.
	// Only this phase has a translation and a direction.
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Inactive:
		return "inactive"
	case Pressing:
		return "pressing"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// EventKind is the kind of an [Event].
type EventKind uint8

const (
	// Began is sent when the pointer goes down on a handle.
	Began EventKind = iota + 1

	// Held is sent when the pointer has stayed down for the hold
	// duration without moving or being released.
	Held

	// Changed is sent when the pointer moves. Its translation is the
	// total movement since Began.
	Changed

	// Ended is sent when the pointer is released.
	Ended

	// Cancelled is sent when the gesture is interrupted, such as when
	// the pointer is lost. It ends the gesture whatever its direction.
	Cancelled
)

func (k EventKind) String() string {
	switch k {
	case Began:
		return "began"
	case Held:
		return "held"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a single step of a handle-drag gesture.
type Event[T geom.Float] struct {
	Kind        EventKind
	Direction   handle.Direction
	Translation geom.Point[T]

	// At is when the event happened. It is only consulted to decide
	// whether a Changed event that arrives without a preceding Held
	// came after the hold duration. It may be left zero if the
	// collaborator always sends Held.
	At time.Time
}

// Gesture is the state of a single handle-drag gesture. The zero value
// is an inactive gesture that requires no hold before pressing.
type Gesture[T geom.Float] struct {
	hold time.Duration

	phase       Phase
	armed       bool
	began       time.Time
	dir         handle.Direction
	translation geom.Point[T]
}

// NewGesture returns an inactive gesture that must be held for hold
// before it becomes a press. A hold of zero or less means that a press
// begins as soon as the pointer goes down.
func NewGesture[T geom.Float](hold time.Duration) *Gesture[T] {
	return &Gesture[T]{hold: hold}
}

// Phase returns the current phase of the gesture.
func (g Gesture[T]) Phase() Phase {
	return g.phase
}

// Active reports whether the pointer is down on a handle, even if it
// hasn't become a press yet.
func (g Gesture[T]) Active() bool {
	return g.armed || g.phase != Inactive
}

// Direction returns the handle that is being dragged. It returns false
// if the gesture is not dragging.
func (g Gesture[T]) Direction() (handle.Direction, bool) {
	return g.dir, g.phase == Dragging
}

// Translation returns the current drag translation, which is zero
// unless the gesture is dragging.
func (g Gesture[T]) Translation() geom.Point[T] {
	if g.phase != Dragging {
		return geom.Point[T]{}
	}
	return g.translation
}

// Apply returns r as it would be if the gesture ended now. Unless the
// gesture is dragging, that's r itself.
func (g Gesture[T]) Apply(r geom.Rect[T]) geom.Rect[T] {
	if g.phase != Dragging {
		return r
	}
	return handle.Translate(g.dir, r, g.translation)
}

// Reset returns the gesture to the inactive phase.
func (g *Gesture[T]) Reset() {
	*g = Gesture[T]{hold: g.hold}
}

// Handle advances the gesture by one event. If the event ends a drag,
// it returns the dragged handle and the final translation with ok set
// to true. The gesture is inactive again afterwards.
func (g *Gesture[T]) Handle(ev Event[T]) (d handle.Direction, v geom.Point[T], ok bool) {
	prev := g.phase
	defer func() {
		if g.phase != prev {
			Logger().Debug("gesture phase changed",
				"event", ev.Kind,
				"direction", ev.Direction,
				"from", prev,
				"to", g.phase,
			)
		}
	}()

	switch ev.Kind {
	case Began:
		if ev.Direction.Valid() {
			g.begin(ev)
		}

	case Held:
		if g.armed && ev.Direction == g.dir {
			g.armed = false
			g.phase = Pressing
		}

	case Changed:
		if !g.Active() || ev.Direction != g.dir {
			return d, v, false
		}
		if g.armed {
			if !g.heldUntil(ev.At) {
				// Moved before the hold completed, so it wasn't a press.
				g.Reset()
				return d, v, false
			}
			g.armed = false
		}
		g.phase = Dragging
		g.translation = ev.Translation

	case Ended:
		if !g.Active() || ev.Direction != g.dir {
			return d, v, false
		}
		d, v, ok = g.dir, g.translation, g.phase == Dragging
		g.Reset()
		return d, v, ok

	case Cancelled:
		g.Reset()
	}

	return d, v, false
}

func (g *Gesture[T]) begin(ev Event[T]) {
	if g.Active() {
		Logger().Debug("gesture replaced", "old", g.dir, "new", ev.Direction)
	}

	g.Reset()
	g.dir = ev.Direction
	g.began = ev.At
	if g.hold <= 0 {
		g.phase = Pressing
		return
	}
	g.armed = true
}

func (g *Gesture[T]) heldUntil(at time.Time) bool {
	if at.IsZero() || g.began.IsZero() {
		return false
	}
	return at.Sub(g.began) >= g.hold
}

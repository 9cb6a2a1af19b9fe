// Package handle implements the eight resize handles of a rectangular
// selection and the way that dragging each of them reshapes the
// selection.
//
// Dragging a handle moves only the edges adjacent to it. The edge or
// corner opposite the handle, its anchor, never moves.
package handle

import (
	"errors"
	"fmt"
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xselect/geom"
)

// ErrUnknownDirection is returned when parsing a direction name that
// isn't one of the eight handles.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction identifies a handle. The directions are ordered counter
// clockwise starting from Top.
type Direction uint8

const (
	Top Direction = iota
	TopLeft
	Left
	BottomLeft
	Bottom
	BottomRight
	Right
	TopRight

	numDirections = iota
)

var directions = [numDirections]struct {
	name   string
	edges  geom.Edges
	cursor string
}{
	Top:         {"top", geom.EdgeTop, "top_side"},
	TopLeft:     {"topLeft", geom.EdgeTop | geom.EdgeLeft, "top_left_corner"},
	Left:        {"left", geom.EdgeLeft, "left_side"},
	BottomLeft:  {"bottomLeft", geom.EdgeBottom | geom.EdgeLeft, "bottom_left_corner"},
	Bottom:      {"bottom", geom.EdgeBottom, "bottom_side"},
	BottomRight: {"bottomRight", geom.EdgeBottom | geom.EdgeRight, "bottom_right_corner"},
	Right:       {"right", geom.EdgeRight, "right_side"},
	TopRight:    {"topRight", geom.EdgeTop | geom.EdgeRight, "top_right_corner"},
}

// Directions returns an iterator over all eight directions in order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := range Direction(numDirections) {
			if !yield(d) {
				return
			}
		}
	}
}

// ParseDirection returns the direction with the given name, as
// returned by [Direction.String].
func ParseDirection(name string) (Direction, error) {
	for d := range Directions() {
		if directions[d].name == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directions[d].name
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Edges returns the edges of a rectangle that d moves.
func (d Direction) Edges() geom.Edges {
	if !d.Valid() {
		return geom.EdgeNone
	}
	return directions[d].edges
}

// Cursor returns the name of the Xcursor theme cursor that is
// conventionally shown while hovering over or dragging d, such as
// "top_left_corner".
func (d Direction) Cursor() string {
	if !d.Valid() {
		return ""
	}
	return directions[d].cursor
}

// Opposite returns the direction of the handle across the rectangle
// from d.
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

// Translate returns r reshaped by dragging the handle d by v. Only the
// edges returned by d.Edges move. The result is not clamped, so a
// large enough drag produces a rectangle with a negative size.
//
// In terms of origin and size, for v = (tx, ty):
//
//	Top          y += ty           h -= ty
//	TopLeft      x += tx, y += ty  w -= tx, h -= ty
//	Left         x += tx           w -= tx
//	BottomLeft   x += tx           w -= tx, h += ty
//	Bottom                         h += ty
//	BottomRight                    w += tx, h += ty
//	Right                          w += tx
//	TopRight     y += ty           w += tx, h -= ty
func Translate[T geom.Scalar](d Direction, r geom.Rect[T], v geom.Point[T]) geom.Rect[T] {
	edges := d.Edges()
	if edges.Has(geom.EdgeTop) {
		r.Min.Y += v.Y
	}
	if edges.Has(geom.EdgeBottom) {
		r.Max.Y += v.Y
	}
	if edges.Has(geom.EdgeLeft) {
		r.Min.X += v.X
	}
	if edges.Has(geom.EdgeRight) {
		r.Max.X += v.X
	}
	return r
}

// TranslatePoint returns the origin of Translate(d, r, v).
func TranslatePoint[T geom.Scalar](d Direction, r geom.Rect[T], v geom.Point[T]) geom.Point[T] {
	return Translate(d, r, v).Origin()
}

// TranslateSize returns the size of Translate(d, r, v).
func TranslateSize[T geom.Scalar](d Direction, r geom.Rect[T], v geom.Point[T]) geom.Point[T] {
	return Translate(d, r, v).Size()
}

// Point returns the compass point of r that the handle d sits on.
func Point[T geom.Scalar](d Direction, r geom.Rect[T]) geom.Point[T] {
	p := r.Center()
	edges := d.Edges()
	switch {
	case edges.Has(geom.EdgeTop):
		p.Y = r.Min.Y
	case edges.Has(geom.EdgeBottom):
		p.Y = r.Max.Y
	}
	switch {
	case edges.Has(geom.EdgeLeft):
		p.X = r.Min.X
	case edges.Has(geom.EdgeRight):
		p.X = r.Max.X
	}
	return p
}

// Anchor returns the point of r that stays fixed while the handle d
// is dragged.
func Anchor[T geom.Scalar](d Direction, r geom.Rect[T]) geom.Point[T] {
	return Point(d.Opposite(), r)
}

// KnobRect returns the square, with sides of length 2*radius, that is
// centered on the handle d of r.
func KnobRect[T geom.Scalar](d Direction, r geom.Rect[T], radius T) geom.Rect[T] {
	p := Point(d, r)
	return geom.Rt(p.X-radius, p.Y-radius, p.X+radius, p.Y+radius)
}

// Knobs yields the knob rectangle of each handle of r in direction
// order.
func Knobs[T geom.Scalar](r geom.Rect[T], radius T) iter.Seq2[Direction, geom.Rect[T]] {
	return func(yield func(Direction, geom.Rect[T]) bool) {
		for d := range Directions() {
			if !yield(d, KnobRect(d, r, radius)) {
				return
			}
		}
	}
}

// KnobRects returns the knob rectangles of every handle of r, indexed
// by direction.
func KnobRects[T geom.Scalar](r geom.Rect[T], radius T) (knobs [numDirections]geom.Rect[T]) {
	for i, d := range xiter.Enumerate(Directions()) {
		knobs[i] = KnobRect(d, r, radius)
	}
	return knobs
}

// HitTest returns the first handle of r whose knob contains p. Corner
// handles are checked before edge handles so that the corners of a
// very small selection remain reachable.
func HitTest[T geom.Scalar](r geom.Rect[T], radius T, p geom.Point[T]) (Direction, bool) {
	for _, group := range [...][4]Direction{
		{TopLeft, BottomLeft, BottomRight, TopRight},
		{Top, Left, Bottom, Right},
	} {
		for _, d := range group {
			if p.In(KnobRect(d, r, radius)) {
				return d, true
			}
		}
	}
	return 0, false
}

// Package geom provides utilities for manipulating rectangular geometry
// and for fitting one rectangle inside of another.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over its coordinate type and does not canonicalize
// rectangles behind the caller's back. A rectangle whose Max is less
// than its Min is a legitimate value, such as the result of dragging
// a selection edge past the opposite one.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for the floating point types that the
// aspect-fitting functions require.
type Float interface {
	constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, n := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&n.e == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, n.name...)
	}
	return string(buf)
}

package geom

import "fmt"

// Rect is an axis-aligned rectangle containing the points with
// Min.X <= X < Max.X and Min.Y <= Y < Max.Y. Its origin is Min and its
// size is Max-Min. Every other property is derived from those two
// points, so they cannot disagree with one another.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// Unlike image.Rect, it does not canonicalize the result.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// RectOf returns the rectangle with the given origin and size.
func RectOf[T Scalar](origin, size Point[T]) Rect[T] {
	return Rect[T]{Min: origin, Max: origin.Add(size)}
}

// XYWH returns the rectangle with origin (x, y) and size (w, h).
func XYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rt(x, y, x+w, y+h)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Origin returns r.Min.
func (r Rect[T]) Origin() Point[T] { return r.Min }

// MinX returns the X coordinate of r's origin.
func (r Rect[T]) MinX() T { return r.Min.X }

// MinY returns the Y coordinate of r's origin.
func (r Rect[T]) MinY() T { return r.Min.Y }

// MaxX returns r.Min.X plus r's width.
func (r Rect[T]) MaxX() T { return r.Max.X }

// MaxY returns r.Min.Y plus r's height.
func (r Rect[T]) MaxY() T { return r.Max.Y }

// MidX returns the X coordinate halfway between r's left and right
// edges.
func (r Rect[T]) MidX() T { return r.Min.X + r.Dx()/2 }

// MidY returns the Y coordinate halfway between r's top and bottom
// edges.
func (r Rect[T]) MidY() T { return r.Min.Y + r.Dy()/2 }

// Dx returns r's width.
func (r Rect[T]) Dx() T { return r.Max.X - r.Min.X }

// Dy returns r's height.
func (r Rect[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Size returns r's width and height.
func (r Rect[T]) Size() Point[T] { return r.Max.Sub(r.Min) }

// Center returns the point at the center of r.
func (r Rect[T]) Center() Point[T] { return Pt(r.MidX(), r.MidY()) }

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// Resize returns a rectangle with the same origin as r but with the
// given size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return RectOf(r.Min, size)
}

// Move returns a rectangle with the same size as r but with the given
// origin.
func (r Rect[T]) Move(origin Point[T]) Rect[T] {
	return RectOf(origin, r.Size())
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	size := r.Size()
	return RectOf(p.Sub(size.Div(2)), size)
}

// Canon returns the canonical version of r. The returned rectangle
// has minimum and maximum coordinates swapped if necessary so that it
// is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Eq reports whether r and s contain the same set of points. All
// empty rectangles are considered equal.
func (r Rect[T]) Eq(s Rect[T]) bool {
	return r == s || r.Empty() && s.Empty()
}

// Contains reports whether s lies entirely within r.
func (r Rect[T]) Contains(s Rect[T]) bool {
	return r.Min.X <= s.Min.X && s.Max.X <= r.Max.X &&
		r.Min.Y <= s.Min.Y && s.Max.Y <= r.Max.Y
}

// ConvRect converts a rectangle to a rectangle with a different
// coordinate type.
func ConvRect[Out, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{Min: Conv[Out](r.Min), Max: Conv[Out](r.Max)}
}

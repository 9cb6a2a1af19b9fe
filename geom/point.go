package geom

import "fmt"

// Point is an X, Y coordinate pair. When used as a size, X is the
// width and Y is the height, the same as the return value of
// image.Rectangle.Size.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector p*k.
func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// Div returns the vector p/k.
func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{X: p.X / k, Y: p.Y / k}
}

// Neg returns the vector -p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	r = r.Canon()
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Eq reports whether p and q are equal.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// Conv converts a point to a point with a different coordinate type.
func Conv[Out, In Scalar](p Point[In]) Point[Out] {
	return Point[Out]{X: Out(p.X), Y: Out(p.Y)}
}

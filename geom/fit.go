package geom

import "math"

// huge returns the largest finite value of T. Values at or beyond it
// are treated as infinite.
func huge[T Float]() T {
	m := math.MaxFloat64
	h := T(m)
	if math.IsInf(float64(h), 0) {
		return T(float32(math.MaxFloat32))
	}
	return h
}

func finite[T Float](v T) bool {
	h := huge[T]()
	return v > -h && v < h
}

// SizeCalculable reports whether size can take part in an aspect-fit
// calculation. Both dimensions must be strictly positive and finite.
// NaN is never calculable.
func SizeCalculable[T Float](size Point[T]) bool {
	h := huge[T]()
	return size.X > 0 && size.Y > 0 &&
		size.X < h && size.Y < h
}

// PointCalculable reports whether both coordinates of p are finite.
// Zero and negative coordinates are allowed.
func PointCalculable[T Float](p Point[T]) bool {
	return finite(p.X) && finite(p.Y)
}

// RectCalculable reports whether r has a finite origin and a
// calculable size.
func RectCalculable[T Float](r Rect[T]) bool {
	return PointCalculable(r.Min) && SizeCalculable(r.Size())
}

// FitSize returns the largest size with the same aspect ratio as
// original that does not exceed target in either dimension. If either
// size is not calculable, the zero size is returned.
func FitSize[T Float](original, target Point[T]) Point[T] {
	if !SizeCalculable(original) || !SizeCalculable(target) {
		return Point[T]{}
	}

	if original.X > original.Y {
		// Landscape.
		aspect := original.Y / original.X
		targetAspect := target.Y / target.X
		if aspect > targetAspect {
			return Pt(target.Y/aspect, target.Y)
		}
		return Pt(target.X, target.X*aspect)
	}

	// Portrait or square.
	aspect := original.X / original.Y
	targetAspect := target.X / target.Y
	if aspect > targetAspect {
		return Pt(target.X, target.X/aspect)
	}
	return Pt(target.Y*aspect, target.Y)
}

// FitScale returns the uniform factor by which FitSize scales
// original to fit target, or 0 if either is not calculable.
func FitScale[T Float](original, target Point[T]) T {
	fit := FitSize(original, target)
	if fit.X == 0 {
		return 0
	}
	return fit.X / original.X
}

// FitRect resizes original to fit target as [FitSize] does and then
// centers it in target with [CenterAlign]. The origin of original is
// ignored. If either size is not calculable, the result is an empty
// rectangle at the center of target.
func FitRect[T Float](original, target Rect[T]) Rect[T] {
	size := FitSize(original.Size(), target.Size())
	return CenterAlign(Rect[T]{Max: size}, target)
}

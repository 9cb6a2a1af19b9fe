package geom

// CenterAlign returns r moved so that its center coincides with the
// center of target. Its size is unchanged. If r is larger than target
// the result overhangs target on both sides; it is not clamped.
func CenterAlign[T Scalar](r, target Rect[T]) Rect[T] {
	size := r.Size()
	origin := Pt(
		target.Min.X+(target.Dx()-size.X)/2,
		target.Min.Y+(target.Dy()-size.Y)/2,
	)
	return RectOf(origin, size)
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Axes with no edges
// specified are centered, so Align(outer, inner, EdgeNone) is the same
// as CenterAlign(inner, outer).
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = CenterAlign(inner, outer)
	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y+inner.Dy()
		if edges&EdgeBottom != 0 {
			inner.Max.Y = outer.Max.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = outer.Max.Y-inner.Dy(), outer.Max.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X+inner.Dx()
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = outer.Max.X-inner.Dx(), outer.Max.X
	}

	return inner
}

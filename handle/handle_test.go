package handle_test

import (
	"slices"
	"testing"

	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	r := geom.XYWH(10.0, 10, 50, 50)
	v := geom.Pt(5.0, 5)

	tests := []struct {
		dir      handle.Direction
		expected geom.Rect[float64]
	}{
		{handle.Top, geom.XYWH(10.0, 15, 50, 45)},
		{handle.TopLeft, geom.XYWH(15.0, 15, 45, 45)},
		{handle.Left, geom.XYWH(15.0, 10, 45, 50)},
		{handle.BottomLeft, geom.XYWH(15.0, 10, 45, 55)},
		{handle.Bottom, geom.XYWH(10.0, 10, 50, 55)},
		{handle.BottomRight, geom.XYWH(10.0, 10, 55, 55)},
		{handle.Right, geom.XYWH(10.0, 10, 55, 50)},
		{handle.TopRight, geom.XYWH(10.0, 15, 55, 45)},
	}

	for _, test := range tests {
		t.Run(test.dir.String(), func(t *testing.T) {
			require.Equal(t, test.expected, handle.Translate(test.dir, r, v))
			require.Equal(t, test.expected.Origin(), handle.TranslatePoint(test.dir, r, v))
			require.Equal(t, test.expected.Size(), handle.TranslateSize(test.dir, r, v))
		})
	}
}

func TestTranslateInverse(t *testing.T) {
	rects := []geom.Rect[float64]{
		geom.XYWH(10.0, 10, 50, 50),
		geom.XYWH(-3.5, 0, 0.25, 1e4),
		geom.XYWH(0.0, 0, 0, 0),
	}
	vecs := []geom.Point[float64]{
		geom.Pt(0.0, 0),
		geom.Pt(5.0, -7),
		geom.Pt(-1000.0, 0.1),
		geom.Pt(1e-3, 333.333),
	}

	for d := range handle.Directions() {
		for _, r := range rects {
			for _, v := range vecs {
				back := handle.Translate(d, handle.Translate(d, r, v), v.Neg())
				require.InDelta(t, r.Min.X, back.Min.X, 1e-9, "%v %v %v", d, r, v)
				require.InDelta(t, r.Min.Y, back.Min.Y, 1e-9, "%v %v %v", d, r, v)
				require.InDelta(t, r.Max.X, back.Max.X, 1e-9, "%v %v %v", d, r, v)
				require.InDelta(t, r.Max.Y, back.Max.Y, 1e-9, "%v %v %v", d, r, v)
			}
		}
	}
}

func TestTranslateKeepsAnchor(t *testing.T) {
	r := geom.XYWH(10.0, 10, 50, 50)
	for d := range handle.Directions() {
		for _, v := range []geom.Point[float64]{geom.Pt(5.0, 5), geom.Pt(-80.0, 120)} {
			moved := handle.Translate(d, r, v)
			require.Equal(t, handle.Anchor(d, r), handle.Anchor(d, moved), "%v by %v", d, v)
		}
	}

	moved := handle.Translate(handle.BottomRight, r, geom.Pt(5.0, 5))
	require.Equal(t, r.Min, moved.Min)

	moved = handle.Translate(handle.TopLeft, r, geom.Pt(5.0, 5))
	require.Equal(t, geom.Pt(60.0, 60), moved.Max)
}

func TestTranslateUnclamped(t *testing.T) {
	r := geom.XYWH(0, 0, 10, 10)
	moved := handle.Translate(handle.Right, r, geom.Pt(-30, 0))
	require.Equal(t, -20, moved.Dx())
	require.Equal(t, 10, moved.Dy())
}

func TestDirections(t *testing.T) {
	dirs := slices.Collect(handle.Directions())
	require.Equal(t, []handle.Direction{
		handle.Top,
		handle.TopLeft,
		handle.Left,
		handle.BottomLeft,
		handle.Bottom,
		handle.BottomRight,
		handle.Right,
		handle.TopRight,
	}, dirs)

	for _, d := range dirs {
		require.Equal(t, d, d.Opposite().Opposite())
		require.NotEqual(t, d, d.Opposite())

		parsed, err := handle.ParseDirection(d.String())
		require.Nil(t, err)
		require.Equal(t, d, parsed)
	}
	require.Equal(t, handle.BottomRight, handle.TopLeft.Opposite())
	require.Equal(t, handle.Bottom, handle.Top.Opposite())

	_, err := handle.ParseDirection("north")
	require.ErrorIs(t, err, handle.ErrUnknownDirection)
	require.False(t, handle.Direction(8).Valid())
	require.Equal(t, geom.EdgeNone, handle.Direction(8).Edges())
}

func TestCursor(t *testing.T) {
	require.Equal(t, "top_left_corner", handle.TopLeft.Cursor())
	require.Equal(t, "right_side", handle.Right.Cursor())
	require.Empty(t, handle.Direction(8).Cursor())
}

func TestDirectionText(t *testing.T) {
	var d handle.Direction
	require.Nil(t, d.UnmarshalText([]byte("bottomLeft")))
	require.Equal(t, handle.BottomLeft, d)

	text, err := d.MarshalText()
	require.Nil(t, err)
	require.Equal(t, "bottomLeft", string(text))

	require.ErrorIs(t, d.UnmarshalText([]byte("")), handle.ErrUnknownDirection)
}

func TestKnobs(t *testing.T) {
	r := geom.XYWH(40.0, 40, 320, 480)

	expected := map[handle.Direction]geom.Point[float64]{
		handle.Top:         geom.Pt(200.0, 40),
		handle.TopLeft:     geom.Pt(40.0, 40),
		handle.Left:        geom.Pt(40.0, 280),
		handle.BottomLeft:  geom.Pt(40.0, 520),
		handle.Bottom:      geom.Pt(200.0, 520),
		handle.BottomRight: geom.Pt(360.0, 520),
		handle.Right:       geom.Pt(360.0, 280),
		handle.TopRight:    geom.Pt(360.0, 40),
	}

	var n int
	for d, knob := range handle.Knobs(r, 10) {
		require.Equal(t, handle.Direction(n), d)
		require.Equal(t, geom.Pt(20.0, 20), knob.Size())
		require.Equal(t, expected[d], knob.Center())
		n++
	}
	require.Equal(t, 8, n)

	knobs := handle.KnobRects(r, 10)
	for d, knob := range handle.Knobs(r, 10) {
		require.Equal(t, knob, knobs[d])
	}
}

func TestHitTest(t *testing.T) {
	r := geom.XYWH(40.0, 40, 320, 480)

	d, ok := handle.HitTest(r, 10, geom.Pt(45.0, 35))
	require.True(t, ok)
	require.Equal(t, handle.TopLeft, d)

	d, ok = handle.HitTest(r, 10, geom.Pt(365.0, 280))
	require.True(t, ok)
	require.Equal(t, handle.Right, d)

	_, ok = handle.HitTest(r, 10, r.Center())
	require.False(t, ok)

	// Knobs overlap on a tiny selection; the corner wins.
	d, ok = handle.HitTest(geom.XYWH(0.0, 0, 4, 4), 10, geom.Pt(2.0, 0))
	require.True(t, ok)
	require.Equal(t, handle.TopLeft, d)
}

package xselect_test

import (
	"testing"

	"deedles.dev/xselect"
	"deedles.dev/xselect/drag"
	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaults(t *testing.T) {
	s := xselect.NewSession()
	require.Equal(t, xselect.DefaultContainer, s.Container())
	require.Equal(t, xselect.DefaultSelection, s.Selection())
	require.Equal(t, xselect.DefaultAspect, s.Aspect())
	require.Equal(t, geom.XYWH(20.0, 20, 200, 200), s.Inner())
	require.Equal(t, drag.Inactive, s.Phase())
}

func TestSessionAspect(t *testing.T) {
	s := xselect.NewSession(xselect.WithAspect(geom.Pt(16.0, 9)))
	require.Equal(t, geom.XYWH(20.0, 63.75, 200, 112.5), s.Inner())

	s.SetAspect(geom.Pt(1.0, 2))
	require.Equal(t, geom.XYWH(70.0, 20, 100, 200), s.Inner())

	s.SetAspect(geom.Pt(0.0, 2))
	require.Equal(t, geom.Pt(0.0, 0), s.Inner().Size())
	require.Equal(t, s.Selection().Center(), s.Inner().Min)
}

func TestSessionDrag(t *testing.T) {
	s := xselect.NewSession(
		xselect.WithSelection(geom.XYWH(0.0, 0, 100, 100)),
		xselect.WithAspect(geom.Pt(1.0, 1)),
	)
	before := s.Inner()

	s.Handle(drag.Event[float64]{Kind: drag.Began, Direction: handle.Right})
	u := s.Handle(drag.Event[float64]{Kind: drag.Changed, Direction: handle.Right, Translation: geom.Pt(100.0, 0)})
	require.False(t, u.Committed)
	require.Equal(t, geom.XYWH(0.0, 0, 200, 100), s.Preview())

	// The committed inner rectangle waits for the commit.
	require.Equal(t, before, s.Inner())
	require.Equal(t, geom.XYWH(50.0, 0, 100, 100), s.PreviewInner())

	u = s.Handle(drag.Event[float64]{Kind: drag.Ended, Direction: handle.Right})
	require.True(t, u.Committed)
	require.Equal(t, geom.XYWH(0.0, 0, 200, 100), s.Selection())
	require.Equal(t, geom.XYWH(50.0, 0, 100, 100), s.Inner())
	require.Equal(t, s.Inner(), s.PreviewInner())
}

func TestSessionCancel(t *testing.T) {
	s := xselect.NewSession()
	s.Handle(drag.Event[float64]{Kind: drag.Began, Direction: handle.Left})
	s.Handle(drag.Event[float64]{Kind: drag.Changed, Direction: handle.Left, Translation: geom.Pt(10.0, 0)})
	require.Equal(t, drag.Dragging, s.Phase())

	s.Cancel()
	require.Equal(t, drag.Inactive, s.Phase())
	require.Equal(t, xselect.DefaultSelection, s.Preview())
}

func TestSessionKnobs(t *testing.T) {
	s := xselect.NewSession(xselect.WithKnobRadius(5))

	var n int
	for _, knob := range s.Knobs() {
		require.Equal(t, geom.Pt(10.0, 10), knob.Size())
		n++
	}
	require.Equal(t, 8, n)

	d, ok := s.HitTest(geom.Pt(220.0, 220))
	require.True(t, ok)
	require.Equal(t, handle.BottomRight, d)
}

func TestSessionSetSelection(t *testing.T) {
	s := xselect.NewSession(xselect.WithDragOptions(drag.WithRequireCalculable(true)))
	s.SetSelection(geom.XYWH(0.0, 0, 50, 10))
	require.Equal(t, geom.XYWH(20.0, 0, 10, 10), s.Inner())

	s.SetContainer(geom.XYWH(0.0, 0, 10, 10))
	require.Equal(t, geom.XYWH(0.0, 0, 10, 10), s.Container())
}

func TestSessionContained(t *testing.T) {
	s := xselect.NewSession(
		xselect.WithContainer(geom.XYWH(0.0, 0, 100, 100)),
		xselect.WithSelection(geom.XYWH(10.0, 10, 50, 50)),
	)
	require.True(t, s.Contained())

	s.Handle(drag.Event[float64]{Kind: drag.Began, Direction: handle.Right})
	s.Handle(drag.Event[float64]{Kind: drag.Changed, Direction: handle.Right, Translation: geom.Pt(60.0, 0)})
	require.False(t, s.Contained())

	s.Handle(drag.Event[float64]{Kind: drag.Ended, Direction: handle.Right})
	require.Equal(t, geom.XYWH(10.0, 10, 110, 50), s.Selection())
	require.False(t, s.Contained())

	s.SetContainer(geom.XYWH(0.0, 0, 200, 200))
	require.True(t, s.Contained())

	// A selection dragged inside out is compared by its canonical bounds.
	s.Handle(drag.Event[float64]{Kind: drag.Began, Direction: handle.Left})
	s.Handle(drag.Event[float64]{Kind: drag.Changed, Direction: handle.Left, Translation: geom.Pt(150.0, 0)})
	require.Equal(t, geom.Rt(160.0, 10, 120, 60), s.Preview())
	require.True(t, s.Contained())
}

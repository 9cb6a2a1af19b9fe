package script

import (
	"fmt"
	"io"
	"time"

	"deedles.dev/xselect"
	"deedles.dev/xselect/drag"
	"deedles.dev/xselect/geom"
)

// Step is the outcome of replaying a single event.
type Step struct {
	Event  drag.Event[float64]
	Update drag.Update[float64]

	// Inner is the inner rectangle fitted to the previewed selection
	// after the event.
	Inner geom.Rect[float64]
}

// Replay runs the scenario's events through a fresh session and
// returns the result of each one along with the final session.
func (s *Script) Replay(start time.Time) ([]Step, *xselect.Session) {
	session := s.Session()

	events := s.DragEvents(start)
	steps := make([]Step, 0, len(events))
	for _, ev := range events {
		u := session.Handle(ev)
		steps = append(steps, Step{
			Event:  ev,
			Update: u,
			Inner:  session.PreviewInner(),
		})
	}

	return steps, session
}

// Print writes a human-readable report of a replay to w.
func Print(w io.Writer, start time.Time, steps []Step, session *xselect.Session) error {
	for i, step := range steps {
		mark := ""
		if step.Update.Committed {
			mark = " commit"
		}
		_, err := fmt.Fprintf(w, "%3d %-9v %-11v +%v %v phase=%v selection=%v inner=%v%s\n",
			i,
			step.Event.Kind,
			step.Event.Direction,
			step.Event.At.Sub(start),
			step.Event.Translation,
			step.Update.Phase,
			step.Update.Current,
			step.Inner,
			mark,
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "container=%v selection=%v inner=%v contained=%v\n",
		session.Container(),
		session.Selection(),
		session.Inner(),
		session.Contained(),
	)
	return err
}

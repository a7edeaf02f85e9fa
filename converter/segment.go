package converter

import (
	"github.com/theoremus-urban-solutions/fit2gpx/activity"
	"github.com/theoremus-urban-solutions/fit2gpx/formatter"
)

// SegmentState is whether a <trkseg> is currently open
type SegmentState uint8

const (
	SegmentClosed SegmentState = iota
	SegmentOpen
)

func (s SegmentState) String() string {
	if s == SegmentOpen {
		return "open"
	}
	return "closed"
}

// TimerTransition is a timer event that drives segment boundaries
type TimerTransition uint8

const (
	TimerStart TimerTransition = iota
	TimerStop
)

// Segments tracks open <trkseg> elements. A start while a segment is already
// open opens a nested one, so Depth can exceed one; every open segment is
// closed again by a stop or by CloseAll.
type Segments struct {
	depth int
}

// State returns SegmentOpen while at least one segment is open
func (s Segments) State() SegmentState {
	if s.depth > 0 {
		return SegmentOpen
	}
	return SegmentClosed
}

// Depth returns the number of open segments
func (s Segments) Depth() int {
	return s.depth
}

// Apply returns the state after t and the write-events it produces.
// A stop with no open segment produces nothing.
func (s Segments) Apply(t TimerTransition) (Segments, []formatter.Event) {
	switch t {
	case TimerStart:
		return Segments{depth: s.depth + 1}, []formatter.Event{formatter.OpenEvent(elemSegment)}
	case TimerStop:
		if s.depth == 0 {
			return s, nil
		}
		return Segments{depth: s.depth - 1}, []formatter.Event{formatter.CloseEvent(elemSegment)}
	default:
		return s, nil
	}
}

// CloseAll returns the closed state and the events closing every open segment
func (s Segments) CloseAll() (Segments, []formatter.Event) {
	evs := make([]formatter.Event, 0, s.depth)
	for i := 0; i < s.depth; i++ {
		evs = append(evs, formatter.CloseEvent(elemSegment))
	}
	return Segments{}, evs
}

// timerTransition maps a timer start/stop event to a transition
func timerTransition(ev activity.Event) (TimerTransition, bool) {
	if ev.Kind != activity.EventKindTimer {
		return 0, false
	}
	switch ev.Type {
	case activity.EventTypeStart:
		return TimerStart, true
	case activity.EventTypeStop, activity.EventTypeStopAll:
		return TimerStop, true
	default:
		return 0, false
	}
}

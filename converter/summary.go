package converter

import (
	"github.com/theoremus-urban-solutions/fit2gpx/utils"
)

// summaryBuilder accumulates a Summary as points are emitted. Distance is
// only measured between consecutive points of the same segment; points
// written directly under <trk> never start or extend a run.
type summaryBuilder struct {
	s    Summary
	last *Point
}

func (b *summaryBuilder) addPoint(p Point, inSegment bool) {
	b.s.Points++
	if p.Time != nil {
		if b.s.Start.IsZero() {
			b.s.Start = *p.Time
		}
		b.s.End = *p.Time
	}
	if !inSegment {
		b.last = nil
		return
	}
	if b.last != nil {
		b.s.DistanceMeters += utils.HaversineMeters(b.last.Lat, b.last.Lon, p.Lat, p.Lon)
	}
	b.last = &p
}

func (b *summaryBuilder) addDropped() {
	b.s.Dropped++
}

// segmentBoundary ends the current distance run
func (b *summaryBuilder) segmentBoundary(t TimerTransition) {
	if t == TimerStart {
		b.s.Segments++
	}
	b.last = nil
}

func (b *summaryBuilder) summary() Summary {
	return b.s
}

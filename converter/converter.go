package converter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/fit2gpx/activity"
	"github.com/theoremus-urban-solutions/fit2gpx/formatter"
)

// Converter turns decoded activity messages into GPX write-events
type Converter struct {
	Opts ConverterOptions
}

// NewConverter creates a new converter instance
func NewConverter(opts ConverterOptions) *Converter {
	if opts.Creator == "" {
		opts.Creator = DefaultCreator
	}
	return &Converter{Opts: opts}
}

type flusher interface {
	Flush() error
}

// emitter forwards events to a sink and keeps the first error
type emitter struct {
	sink formatter.Sink
	err  error
}

func (e *emitter) emit(evs ...formatter.Event) {
	for _, ev := range evs {
		if e.err != nil {
			return
		}
		e.err = e.sink.Write(ev)
	}
}

// Convert walks src once, writing a complete GPX document to sink.
//
// Whatever status ends the message sequence, every element opened is closed
// before Convert returns, and the sink is flushed if it supports it. The
// returned error is non-nil only when the sink itself failed.
func (c *Converter) Convert(src Source, sink formatter.Sink) (Outcome, error) {
	e := &emitter{sink: sink}
	warnings := NewWarningAggregator()
	var (
		segs  Segments
		stats summaryBuilder
	)

	e.emit(prologueEvents(c.Opts.Creator)...)

	for index := 0; e.err == nil; index++ {
		msg, ok := src.Next()
		if !ok {
			break
		}
		switch m := msg.(type) {
		case activity.Record:
			p, ok := NewPoint(m)
			if !ok {
				stats.addDropped()
				warnings.Add(WarningNoPosition, messageID(index))
				continue
			}
			e.emit(p.Events()...)
			stats.addPoint(p, segs.State() == SegmentOpen)
		case activity.Event:
			t, ok := timerTransition(m)
			if !ok {
				continue
			}
			if t == TimerStart && segs.State() == SegmentOpen {
				warnings.Add(WarningNestedSegment, messageID(index))
			}
			if t == TimerStop && segs.State() == SegmentClosed {
				warnings.Add(WarningUnmatchedStop, messageID(index))
				continue
			}
			var evs []formatter.Event
			segs, evs = segs.Apply(t)
			e.emit(evs...)
			stats.segmentBoundary(t)
		}
	}

	if e.err != nil {
		return Outcome{Status: src.Status(), Summary: stats.summary(), Warnings: warnings}, fmt.Errorf("failed to write GPX: %w", e.err)
	}

	_, closing := segs.CloseAll()
	e.emit(closing...)
	e.emit(epilogueEvents()...)
	if f, ok := sink.(flusher); ok && e.err == nil {
		e.err = f.Flush()
	}
	if e.err != nil {
		return Outcome{Status: src.Status(), Summary: stats.summary(), Warnings: warnings}, fmt.Errorf("failed to write GPX: %w", e.err)
	}

	return Outcome{
		Status:   src.Status(),
		Summary:  stats.summary(),
		Warnings: warnings,
	}, nil
}

func messageID(index int) string {
	return fmt.Sprintf("message #%d", index)
}

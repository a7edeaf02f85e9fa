package converter

import (
	"time"

	"github.com/theoremus-urban-solutions/fit2gpx/activity"
)

// DefaultCreator is written to the gpx creator attribute when none is configured
const DefaultCreator = "StravaGPX"

// ConverterOptions contains all configuration needed for FIT to GPX conversion.
// This struct is data-source agnostic and has no dependencies on config files.
type ConverterOptions struct {
	// Creator is the value of the creator attribute on the gpx root element.
	// Defaults to DefaultCreator when empty.
	Creator string
}

// Source is a pull-based sequence of decoded activity messages.
//
// Next returns false once the sequence is exhausted; Status is only meaningful
// after that and reports how the sequence ended.
type Source interface {
	Next() (activity.Message, bool)
	Status() activity.Status
}

// Outcome is the result of converting one message sequence.
//
// When Convert also returns an error, Status is what the source reported at
// the moment writing failed; it is terminal only if the source had already
// ended.
type Outcome struct {
	Status   activity.Status
	Summary  Summary
	Warnings *WarningAggregator
}

// Summary describes the emitted track
type Summary struct {
	Points         int
	Segments       int
	Dropped        int
	Start          time.Time // zero when no point carried a timestamp
	End            time.Time
	DistanceMeters float64
}

// Duration returns the time between the first and last timestamped point
func (s Summary) Duration() time.Duration {
	if s.Start.IsZero() || s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}

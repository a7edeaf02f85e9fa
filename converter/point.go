package converter

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/fit2gpx/activity"
	"github.com/theoremus-urban-solutions/fit2gpx/formatter"
	"github.com/theoremus-urban-solutions/fit2gpx/utils"
)

// Point is a track point derived from one record, in GPX units
type Point struct {
	Lat         float64
	Lon         float64
	Elevation   *float64
	Time        *time.Time
	Temperature *int8
	HeartRate   *uint8
}

// NewPoint converts a record into a Point. It reports false when either
// coordinate is missing; such records produce no point at all.
func NewPoint(rec activity.Record) (Point, bool) {
	if !rec.HasPosition() {
		return Point{}, false
	}
	p := Point{
		Lat:         SemicirclesToDegrees(*rec.PositionLat),
		Lon:         SemicirclesToDegrees(*rec.PositionLong),
		Temperature: rec.Temperature,
		HeartRate:   rec.HeartRate,
	}
	if rec.Altitude != nil {
		ele := ElevationMeters(*rec.Altitude)
		p.Elevation = &ele
	}
	if rec.Timestamp != nil {
		ts := TimestampUTC(*rec.Timestamp)
		p.Time = &ts
	}
	return p, true
}

// Events returns the write-events of the <trkpt> element for p
func (p Point) Events() []formatter.Event {
	evs := make([]formatter.Event, 0, 16)
	evs = append(evs, formatter.OpenEvent(elemTrackPoint,
		formatter.Attr{Name: "lat", Value: FormatCoordinate(p.Lat)},
		formatter.Attr{Name: "lon", Value: FormatCoordinate(p.Lon)},
	))
	if p.Elevation != nil {
		evs = append(evs, formatter.Element(elemElevation, FormatElevation(*p.Elevation))...)
	}
	if p.Time != nil {
		evs = append(evs, formatter.Element(elemTime, utils.Iso8601FromTime(*p.Time))...)
	}
	if p.Temperature != nil || p.HeartRate != nil {
		evs = append(evs, formatter.OpenEvent(elemExtensions), formatter.OpenEvent(elemTrackPointExtension))
		if p.Temperature != nil {
			evs = append(evs, formatter.Element(elemTemperature, strconv.Itoa(int(*p.Temperature)))...)
		}
		if p.HeartRate != nil {
			evs = append(evs, formatter.Element(elemHeartRate, strconv.Itoa(int(*p.HeartRate)))...)
		}
		evs = append(evs, formatter.CloseEvent(elemTrackPointExtension), formatter.CloseEvent(elemExtensions))
	}
	return append(evs, formatter.CloseEvent(elemTrackPoint))
}

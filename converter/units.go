package converter

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// 2^31 semicircles make up 180 degrees
const semicirclesToDegrees = 180.0 / (1 << 31)

// FITEpoch is the reference instant of FIT date_time values
var FITEpoch = time.Date(1989, time.December, 31, 0, 0, 0, 0, time.UTC)

// SemicirclesToDegrees converts a FIT semicircle angle to decimal degrees
func SemicirclesToDegrees(raw int32) float64 {
	return float64(raw) * semicirclesToDegrees
}

// DegreesToSemicircles converts decimal degrees in [-180, 180) to semicircles
func DegreesToSemicircles(deg float64) int32 {
	return int32(int64(math.Round(deg / semicirclesToDegrees)))
}

// ElevationMeters converts a raw FIT altitude (scale 5, offset 500) to meters
func ElevationMeters(raw uint16) float64 {
	return float64(raw)/5.0 - 500.0
}

// TimestampUTC converts seconds since the FIT epoch to an absolute instant
func TimestampUTC(raw uint32) time.Time {
	return FITEpoch.Add(time.Duration(raw) * time.Second)
}

// FormatCoordinate renders degrees with the shortest representation that
// round-trips, keeping at least one fractional digit
func FormatCoordinate(deg float64) string {
	s := strconv.FormatFloat(deg, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatElevation renders meters with exactly one fractional digit
func FormatElevation(m float64) string {
	return strconv.FormatFloat(m, 'f', 1, 64)
}

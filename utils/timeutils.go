package utils

import (
	"time"
)

// Iso8601Seconds is the GPX time layout: UTC, second precision, literal Z
const Iso8601Seconds = "2006-01-02T15:04:05Z"

// Iso8601FromTime formats t in UTC with second precision and a trailing Z
func Iso8601FromTime(t time.Time) string {
	return t.UTC().Format(Iso8601Seconds)
}

// PresentableDuration rounds d to whole seconds for display
func PresentableDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Second).String()
}

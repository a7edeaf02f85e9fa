// Package fitfile is the message source for FIT activity files.
//
// It wraps the github.com/muktihari/fit decoder and exposes the decoded stream
// as a pull-based converter.Source: record messages become activity.Record,
// event messages become activity.Event and everything else activity.Unknown.
// Messages are handed out one at a time while decoding, without retaining the
// file's messages in memory.
//
// Before decoding, the file header is checked so that truncated headers,
// non-FIT data and newer protocol versions are reported with their own status.
package fitfile

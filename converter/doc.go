// Package converter is the main entry point for FIT to GPX conversion.
//
// The converter consumes a Source of decoded activity messages (see package
// fitfile) and produces XML write-events for a formatter.Sink. It performs no
// I/O of its own.
//
// # Usage
//
//	src := fitfile.NewSource(in)
//	defer src.Close()
//
//	w := converter.NewGPXWriter(out, 0)
//	conv := converter.NewConverter(converter.ConverterOptions{Creator: "StravaGPX"})
//
//	outcome, err := conv.Convert(src, w)
//	if err != nil {
//	    // the output could not be written
//	}
//	fmt.Println(outcome.Status.Report("ride.fit"))
//
// # Conversion rules
//
// A single forward pass over the messages:
//   - Records with both coordinates become <trkpt> elements with optional <ele>,
//     <time> and Garmin TrackPointExtension children (atemp, hr)
//   - Records missing a coordinate are dropped and counted
//   - Timer start opens a <trkseg>; timer stop/stop_all closes the open one.
//     A stop with nothing open is ignored. A start while a segment is open
//     opens a nested segment, exactly as the recording says.
//   - Everything else is ignored
//
// When the sequence ends, for any Status, open segments, <trk> and <gpx> are
// closed so the output is always well-formed. The Status is relayed in the
// Outcome, together with a Summary and the aggregated warnings.
//
// # Architecture
//
//   - converter.go: Converter and the conversion loop
//   - units.go: semicircle, altitude and timestamp conversions and formatting
//   - point.go: Point derivation and its write-events
//   - segment.go: segment state machine
//   - document.go: GPX prologue, epilogue and writer layout
//   - summary.go: per-file track summary
//   - warnings.go: warning aggregation
//
// # Thread Safety
//
// A Converter holds only options; all per-file state lives inside Convert, so
// one Converter may convert several files concurrently, each with its own
// Source and Sink.
package converter

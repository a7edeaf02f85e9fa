package converter

import (
	"io"

	"github.com/theoremus-urban-solutions/fit2gpx/formatter"
)

// GPX element names
const (
	elemRoot                = "gpx"
	elemTrack               = "trk"
	elemSegment             = "trkseg"
	elemTrackPoint          = "trkpt"
	elemElevation           = "ele"
	elemTime                = "time"
	elemExtensions          = "extensions"
	elemTrackPointExtension = "gpxtpx:TrackPointExtension"
	elemTemperature         = "gpxtpx:atemp"
	elemHeartRate           = "gpxtpx:hr"
)

// Namespaces declared on the gpx root element
const (
	NamespaceGPX           = "http://www.topografix.com/GPX/1/1"
	NamespaceXSI           = "http://www.w3.org/2001/XMLSchema-instance"
	NamespaceTrackPointExt = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"
	NamespaceGpxExtensions = "http://www.garmin.com/xmlschemas/GpxExtensions/v3"

	gpxVersion = "1.1"

	gpxSchemaLocation = NamespaceGPX + " http://www.topografix.com/GPX/1/1/gpx.xsd " +
		NamespaceGpxExtensions + " http://www.garmin.com/xmlschemas/GpxExtensionsv3.xsd " +
		NamespaceTrackPointExt + " http://www.garmin.com/xmlschemas/TrackPointExtensionv1.xsd"
)

// prologueEvents opens the document up to and including <trk>
func prologueEvents(creator string) []formatter.Event {
	return []formatter.Event{
		formatter.DeclarationEvent(),
		formatter.OpenEvent(elemRoot,
			formatter.Attr{Name: "xmlns:xsi", Value: NamespaceXSI},
			formatter.Attr{Name: "xsi:schemaLocation", Value: gpxSchemaLocation},
			formatter.Attr{Name: "creator", Value: creator},
			formatter.Attr{Name: "version", Value: gpxVersion},
			formatter.Attr{Name: "xmlns", Value: NamespaceGPX},
			formatter.Attr{Name: "xmlns:gpxtpx", Value: NamespaceTrackPointExt},
			formatter.Attr{Name: "xmlns:gpxx", Value: NamespaceGpxExtensions},
		),
		formatter.OpenEvent(elemTrack),
	}
}

// epilogueEvents closes <trk> and <gpx>; segments must already be closed
func epilogueEvents() []formatter.Event {
	return []formatter.Event{
		formatter.CloseEvent(elemTrack),
		formatter.CloseEvent(elemRoot),
	}
}

// NewGPXWriter returns a streaming writer laid out one point per line
func NewGPXWriter(w io.Writer, bufferSize int) *formatter.Writer {
	return formatter.NewWriter(w, formatter.WriterOptions{
		BufferSize:      bufferSize,
		BreakAfterOpen:  []string{elemRoot, elemTrack, elemSegment},
		BreakAfterClose: []string{elemRoot, elemTrack, elemSegment, elemTrackPoint},
	})
}

package activity

// Message is one decoded activity message: a Record, an Event or an Unknown.
type Message interface {
	activityMessage()
}

// RawRecord holds record fields exactly as decoded, sentinels included
type RawRecord struct {
	PositionLat  int32
	PositionLong int32
	Altitude     uint16
	Timestamp    uint32
	Temperature  int8
	HeartRate    uint8
}

// Record is a position record. A nil field was absent in the recording.
type Record struct {
	PositionLat  *int32  // semicircles
	PositionLong *int32  // semicircles
	Altitude     *uint16 // scale 5, offset 500
	Timestamp    *uint32 // seconds since the FIT epoch
	Temperature  *int8   // degrees Celsius
	HeartRate    *uint8  // beats per minute
}

// NewRecord converts raw decoded fields into a Record, dropping sentinel values
func NewRecord(raw RawRecord) Record {
	return Record{
		PositionLat:  OptionalSint32(raw.PositionLat),
		PositionLong: OptionalSint32(raw.PositionLong),
		Altitude:     OptionalUint16(raw.Altitude),
		Timestamp:    OptionalUint32(raw.Timestamp),
		Temperature:  OptionalSint8(raw.Temperature),
		HeartRate:    OptionalUint8(raw.HeartRate),
	}
}

// HasPosition reports whether both coordinates are present
func (r Record) HasPosition() bool {
	return r.PositionLat != nil && r.PositionLong != nil
}

// EventKind discriminates the event field of an event message
type EventKind uint8

const (
	EventKindOther EventKind = iota
	EventKindTimer
)

// EventType discriminates the event_type field of an event message
type EventType uint8

const (
	EventTypeOther EventType = iota
	EventTypeStart
	EventTypeStop
	EventTypeStopAll
)

// Event is an event message. Only timer start/stop events affect conversion.
type Event struct {
	Kind EventKind
	Type EventType
}

// Unknown is any message kind the converter does not handle
type Unknown struct {
	Num uint16
}

func (Record) activityMessage()  {}
func (Event) activityMessage()   {}
func (Unknown) activityMessage() {}

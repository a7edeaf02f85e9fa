package fitfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/profile/untyped/fieldnum"
	"github.com/muktihari/fit/profile/untyped/mesgnum"
	"github.com/muktihari/fit/proto"

	"github.com/theoremus-urban-solutions/fit2gpx/activity"
)

// FIT file header layout
const (
	headerSizeShort  = 12
	headerSizeLong   = 14
	dataTypeOffset   = 8
	dataTypeFIT      = ".FIT"
	maxProtocolMajor = 2
)

// Source pulls decoded messages from a FIT stream
type Source struct {
	next   func() (activity.Message, bool)
	stop   func()
	status activity.Status
	err    error
}

// NewSource prepares a FIT stream for decoding. Nothing beyond the header is
// read until the first call to Next.
func NewSource(r io.Reader) *Source {
	s := &Source{}
	br := bufio.NewReader(r)
	if status, err := checkHeader(br); status != activity.StatusOK {
		s.status, s.err = status, err
		return s
	}
	s.next, s.stop = iter.Pull(s.messages(br))
	return s
}

// Next returns the next decoded message, or false once the stream has ended
func (s *Source) Next() (activity.Message, bool) {
	if s.next == nil {
		return nil, false
	}
	msg, ok := s.next()
	if !ok {
		s.Close()
	}
	return msg, ok
}

// Status reports how the stream ended. Only meaningful once Next returned false.
func (s *Source) Status() activity.Status {
	return s.status
}

// Err returns the error behind a non-OK status, if any
func (s *Source) Err() error {
	return s.err
}

// Close stops decoding. It is safe to call more than once.
func (s *Source) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.next = nil
}

var errStopped = errors.New("decoding stopped")

// stoppableReader fails every read once the consumer has stopped pulling, so
// the decoder gives up instead of running to the end of the sequence
type stoppableReader struct {
	r       io.Reader
	stopped *bool
}

func (sr stoppableReader) Read(p []byte) (int, error) {
	if *sr.stopped {
		return 0, errStopped
	}
	return sr.r.Read(p)
}

type listenerFunc func(mesg proto.Message)

func (f listenerFunc) OnMesg(mesg proto.Message) { f(mesg) }

// messages pushes every decoded message of every FIT sequence in r to yield
func (s *Source) messages(r io.Reader) iter.Seq[activity.Message] {
	return func(yield func(activity.Message) bool) {
		stopped := false
		listener := listenerFunc(func(mesg proto.Message) {
			if stopped {
				return
			}
			if !yield(fromMesg(&mesg)) {
				stopped = true
			}
		})

		dec := decoder.New(stoppableReader{r: r, stopped: &stopped},
			decoder.WithMesgListener(listener),
			decoder.WithBroadcastOnly(),
		)
		for !stopped && dec.Next() {
			if _, err := dec.Decode(); err != nil {
				if stopped {
					return
				}
				s.status = classify(err)
				s.err = fmt.Errorf("failed to decode FIT: %w", err)
				return
			}
		}
	}
}

// fromMesg converts a decoded FIT message into an activity message
func fromMesg(mesg *proto.Message) activity.Message {
	switch mesg.Num {
	case mesgnum.Record:
		return activity.NewRecord(activity.RawRecord{
			PositionLat:  mesg.FieldValueByNum(fieldnum.RecordPositionLat).Int32(),
			PositionLong: mesg.FieldValueByNum(fieldnum.RecordPositionLong).Int32(),
			Altitude:     mesg.FieldValueByNum(fieldnum.RecordAltitude).Uint16(),
			Timestamp:    mesg.FieldValueByNum(fieldnum.RecordTimestamp).Uint32(),
			Temperature:  mesg.FieldValueByNum(fieldnum.RecordTemperature).Int8(),
			HeartRate:    mesg.FieldValueByNum(fieldnum.RecordHeartRate).Uint8(),
		})
	case mesgnum.Event:
		return activity.Event{
			Kind: eventKind(typedef.Event(mesg.FieldValueByNum(fieldnum.EventEvent).Uint8())),
			Type: eventType(typedef.EventType(mesg.FieldValueByNum(fieldnum.EventEventType).Uint8())),
		}
	default:
		return activity.Unknown{Num: uint16(mesg.Num)}
	}
}

func eventKind(e typedef.Event) activity.EventKind {
	if e == typedef.EventTimer {
		return activity.EventKindTimer
	}
	return activity.EventKindOther
}

func eventType(t typedef.EventType) activity.EventType {
	switch t {
	case typedef.EventTypeStart:
		return activity.EventTypeStart
	case typedef.EventTypeStop:
		return activity.EventTypeStop
	case typedef.EventTypeStopAll:
		return activity.EventTypeStopAll
	default:
		return activity.EventTypeOther
	}
}

// checkHeader inspects the file header without consuming it
func checkHeader(br *bufio.Reader) (activity.Status, error) {
	hdr, err := br.Peek(headerSizeShort)
	if err != nil {
		return activity.StatusIncomplete, fmt.Errorf("failed to read FIT header: %w", err)
	}
	if size := hdr[0]; size != headerSizeShort && size != headerSizeLong {
		return activity.StatusDecodeError, fmt.Errorf("invalid FIT header size %d", size)
	}
	if dataType := string(hdr[dataTypeOffset : dataTypeOffset+len(dataTypeFIT)]); dataType != dataTypeFIT {
		return activity.StatusUnsupportedData, fmt.Errorf("unsupported data type %q", dataType)
	}
	if major := hdr[1] >> 4; major > maxProtocolMajor {
		return activity.StatusUnsupportedProtocolVersion, fmt.Errorf("unsupported FIT protocol version %d.%d", major, hdr[1]&0x0F)
	}
	return activity.StatusOK, nil
}

// classify maps a decoder error to a terminal status
func classify(err error) activity.Status {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return activity.StatusIncomplete
	}
	return activity.StatusDecodeError
}

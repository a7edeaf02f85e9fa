package activity

import "fmt"

// Status is the terminal condition reported by a message source
type Status int

const (
	StatusOK Status = iota
	StatusIncomplete
	StatusDecodeError
	StatusUnsupportedData
	StatusUnsupportedProtocolVersion
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIncomplete:
		return "incomplete"
	case StatusDecodeError:
		return "decode_error"
	case StatusUnsupportedData:
		return "unsupported_data"
	case StatusUnsupportedProtocolVersion:
		return "unsupported_protocol_version"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Report returns the console line describing how the conversion of file ended
func (s Status) Report(file string) string {
	switch s {
	case StatusOK:
		return "OK: " + file
	case StatusIncomplete:
		return "Incomplete file: " + file
	case StatusDecodeError:
		return "Error while parsing file: " + file
	case StatusUnsupportedData:
		return "Unsupported data in file: " + file
	case StatusUnsupportedProtocolVersion:
		return "Unsupported protocol version in file: " + file
	default:
		return fmt.Sprintf("Unknown status %d for file: %s", int(s), file)
	}
}

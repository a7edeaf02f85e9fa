package formatter

// EventKind identifies the kind of XML write-event
type EventKind uint8

const (
	KindDeclaration EventKind = iota
	KindOpen
	KindText
	KindClose
)

func (k EventKind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindOpen:
		return "open"
	case KindText:
		return "text"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

// Attr is a single attribute of an opening tag
type Attr struct {
	Name  string
	Value string
}

// Event is one XML write-event
type Event struct {
	Kind  EventKind
	Name  string // element name for Open and Close
	Attrs []Attr // Open only
	Text  string // Text only
}

// Sink consumes XML write-events in order
type Sink interface {
	Write(ev Event) error
}

// DeclarationEvent returns the UTF-8 XML declaration event
func DeclarationEvent() Event {
	return Event{Kind: KindDeclaration}
}

// OpenEvent returns an event opening element name with attrs
func OpenEvent(name string, attrs ...Attr) Event {
	return Event{Kind: KindOpen, Name: name, Attrs: attrs}
}

// TextEvent returns a character-data event
func TextEvent(text string) Event {
	return Event{Kind: KindText, Text: text}
}

// CloseEvent returns an event closing element name
func CloseEvent(name string) Event {
	return Event{Kind: KindClose, Name: name}
}

// Element returns the three events of a leaf element holding text
func Element(name, text string) []Event {
	return []Event{OpenEvent(name), TextEvent(text), CloseEvent(name)}
}

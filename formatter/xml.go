package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// DefaultBufferSize is used when WriterOptions.BufferSize is not positive
const DefaultBufferSize = 64 * 1024

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// WriterOptions controls buffering and line layout of a Writer
type WriterOptions struct {
	BufferSize int

	// Elements followed by a newline after their opening tag
	BreakAfterOpen []string

	// Elements followed by a newline after their closing tag
	BreakAfterClose []string
}

// Writer serializes XML write-events to an underlying io.Writer as they arrive.
//
// The first write error is kept and returned by every later Write and by Flush.
// Closing an element other than the innermost open one panics: the event stream
// is produced by code, so a mismatch is a bug rather than bad input.
type Writer struct {
	bw         *bufio.Writer
	open       []string
	breakOpen  map[string]bool
	breakClose map[string]bool
	started    bool
	rootClosed bool
	err        error
}

// NewWriter creates a streaming XML writer on w
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Writer{
		bw:         bufio.NewWriterSize(w, size),
		breakOpen:  toSet(opts.BreakAfterOpen),
		breakClose: toSet(opts.BreakAfterClose),
	}
}

// Write serializes one event
func (w *Writer) Write(ev Event) error {
	if w.err != nil {
		return w.err
	}
	switch ev.Kind {
	case KindDeclaration:
		if w.started {
			panic("formatter: XML declaration after content")
		}
		w.writeString(xmlDeclaration)
	case KindOpen:
		if w.rootClosed {
			panic(fmt.Sprintf("formatter: <%s> opened after the root element was closed", ev.Name))
		}
		w.writeOpen(ev.Name, ev.Attrs)
		w.open = append(w.open, ev.Name)
		if w.breakOpen[ev.Name] {
			w.writeString("\n")
		}
	case KindText:
		if len(w.open) == 0 {
			panic("formatter: text outside of any element")
		}
		w.writeString(xmlEscape(ev.Text))
	case KindClose:
		w.mustMatch(ev.Name)
		w.open = w.open[:len(w.open)-1]
		w.writeString("</")
		w.writeString(ev.Name)
		w.writeString(">")
		if w.breakClose[ev.Name] {
			w.writeString("\n")
		}
		if len(w.open) == 0 {
			w.rootClosed = true
		}
	default:
		panic(fmt.Sprintf("formatter: unknown event kind %d", ev.Kind))
	}
	w.started = true
	return w.err
}

// Flush writes any buffered data to the underlying io.Writer
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}

// Depth returns the number of elements currently open
func (w *Writer) Depth() int {
	return len(w.open)
}

func (w *Writer) writeOpen(name string, attrs []Attr) {
	w.writeString("<")
	w.writeString(name)
	for _, a := range attrs {
		w.writeString(" ")
		w.writeString(a.Name)
		w.writeString(`="`)
		w.writeString(xmlEscape(a.Value))
		w.writeString(`"`)
	}
	w.writeString(">")
}

func (w *Writer) mustMatch(name string) {
	if len(w.open) == 0 {
		panic(fmt.Sprintf("formatter: </%s> with no open element", name))
	}
	if top := w.open[len(w.open)-1]; top != name {
		panic(fmt.Sprintf("formatter: </%s> does not match open <%s>", name, top))
	}
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.WriteString(s)
}

// xmlEscape escapes markup characters. Invalid UTF-8 becomes U+FFFD and
// characters XML 1.0 does not allow are dropped.
func xmlEscape(s string) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	s = strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
	return xmlReplacer.Replace(s)
}

// isXMLChar reports whether r is in the XML 1.0 Char production
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= utf8.MaxRune
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

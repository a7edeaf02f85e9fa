package formatter

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
)

func writeAll(t *testing.T, w *Writer, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if err := w.Write(ev); err != nil {
			t.Fatalf("Write(%v) failed: %v", ev.Kind, err)
		}
	}
}

// assertWellFormed walks the document with encoding/xml until EOF
func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed: %v\n%s", err, doc)
		}
	}
}

func TestWriter_Layout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{
		BreakAfterOpen:  []string{"gpx", "trk"},
		BreakAfterClose: []string{"gpx", "trk", "trkpt"},
	})

	writeAll(t, w, DeclarationEvent(), OpenEvent("gpx", Attr{Name: "version", Value: "1.1"}), OpenEvent("trk"))
	writeAll(t, w, OpenEvent("trkpt", Attr{Name: "lat", Value: "45.0"}, Attr{Name: "lon", Value: "7.0"}))
	writeAll(t, w, Element("ele", "1000.0")...)
	writeAll(t, w, CloseEvent("trkpt"), CloseEvent("trk"), CloseEvent("gpx"))
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<gpx version="1.1">` + "\n" +
		"<trk>\n" +
		`<trkpt lat="45.0" lon="7.0"><ele>1000.0</ele></trkpt>` + "\n" +
		"</trk>\n" +
		"</gpx>\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
	assertWellFormed(t, buf.String())
}

func TestWriter_EscapesTextAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})

	writeAll(t, w,
		OpenEvent("note", Attr{Name: "by", Value: `"Tom" & <Jerry>`}),
		TextEvent(`a < b && c > 'd'`),
		CloseEvent("note"),
	)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := `<note by="&quot;Tom&quot; &amp; &lt;Jerry&gt;">a &lt; b &amp;&amp; c &gt; &apos;d&apos;</note>`
	if buf.String() != expected {
		t.Errorf("expected %s, got %s", expected, buf.String())
	}

	var parsed struct {
		By   string `xml:"by,attr"`
		Text string `xml:",chardata"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("escaped output does not parse: %v", err)
	}
	if parsed.By != `"Tom" & <Jerry>` || parsed.Text != `a < b && c > 'd'` {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
}

func TestWriter_SanitizesIllegalCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"control characters dropped", "a\x00b\x01c\x1Fd", "abcd"},
		{"whitespace kept", "a\tb\nc", "a\tb\nc"},
		{"invalid utf8 replaced", "ok\xffok", "ok\uFFFDok"},
		{"noncharacters dropped", "x\uFFFEy\uFFFFz", "xyz"},
		{"multibyte kept", "Zürich ✓", "Zürich ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, WriterOptions{})
			writeAll(t, w,
				OpenEvent("name", Attr{Name: "v", Value: tt.input}),
				TextEvent(tt.input),
				CloseEvent("name"),
			)
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}

			var parsed struct {
				V    string `xml:"v,attr"`
				Text string `xml:",chardata"`
			}
			if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
				t.Fatalf("output does not parse: %v\n%q", err, buf.String())
			}
			if parsed.Text != tt.expected {
				t.Errorf("expected text %q, got %q", tt.expected, parsed.Text)
			}
			if tt.name != "whitespace kept" && parsed.V != tt.expected {
				t.Errorf("expected attribute %q, got %q", tt.expected, parsed.V)
			}
		})
	}
}

func TestWriter_MismatchedClosePanics(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
	}{
		{"wrong name", []Event{OpenEvent("trk"), OpenEvent("trkseg"), CloseEvent("trk")}},
		{"nothing open", []Event{CloseEvent("trkseg")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(io.Discard, WriterOptions{})
			defer func() {
				if recover() == nil {
					t.Error("mismatched close should panic")
				}
			}()
			for _, ev := range tt.events {
				_ = w.Write(ev)
			}
		})
	}
}

func TestWriter_DepthTracksOpenElements(t *testing.T) {
	w := NewWriter(io.Discard, WriterOptions{})
	writeAll(t, w, OpenEvent("gpx"), OpenEvent("trk"))
	if w.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", w.Depth())
	}
	writeAll(t, w, CloseEvent("trk"))
	if w.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", w.Depth())
	}
}

func TestWriter_SecondRootPanics(t *testing.T) {
	w := NewWriter(io.Discard, WriterOptions{})
	writeAll(t, w, OpenEvent("gpx"), CloseEvent("gpx"))
	defer func() {
		if recover() == nil {
			t.Error("opening a second root should panic")
		}
	}()
	_ = w.Write(OpenEvent("gpx"))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{}, WriterOptions{BufferSize: 16})

	_ = w.Write(OpenEvent("gpx"))
	_ = w.Write(OpenEvent("a-rather-long-element-name-that-overflows-the-buffer"))

	if err := w.Flush(); err == nil {
		t.Fatal("Flush should report the underlying write error")
	}
	if err := w.Write(CloseEvent("a-rather-long-element-name-that-overflows-the-buffer")); err == nil {
		t.Error("Write after a failure should keep returning the error")
	}
}

func TestWriter_StreamsWithoutHoldingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{BufferSize: 64})

	writeAll(t, w, OpenEvent("trkseg"))
	for i := 0; i < 1000; i++ {
		writeAll(t, w, OpenEvent("trkpt", Attr{Name: "lat", Value: "1.0"}, Attr{Name: "lon", Value: "2.0"}), CloseEvent("trkpt"))
	}

	// Most of the output must already have reached the sink before the flush.
	if buf.Len() < 1000*20 {
		t.Errorf("expected streamed output before Flush, sink holds only %d bytes", buf.Len())
	}

	writeAll(t, w, CloseEvent("trkseg"))
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	assertWellFormed(t, buf.String())
}

func TestRecorder_Balanced(t *testing.T) {
	r := &Recorder{}
	_ = r.Write(OpenEvent("gpx"))
	_ = r.Write(OpenEvent("trk"))
	if r.Balanced() {
		t.Error("open elements should not be balanced")
	}
	_ = r.Write(CloseEvent("trk"))
	_ = r.Write(CloseEvent("gpx"))
	if !r.Balanced() {
		t.Error("matched elements should be balanced")
	}
	if r.Count(KindOpen, "trk") != 1 {
		t.Errorf("expected one <trk>, got %d", r.Count(KindOpen, "trk"))
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	if err := r.Replay(w); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	_ = w.Flush()
	if buf.String() != "<gpx><trk></trk></gpx>" {
		t.Errorf("unexpected replay output: %s", buf.String())
	}
}

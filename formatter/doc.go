// Package formatter provides streaming XML serialization for GPX documents.
//
// This package is organized into:
// - event.go: XML write-events (declaration, open, text, close) and the Sink interface
// - xml.go: Writer, a Sink that serializes events to an io.Writer as they arrive
// - recorder.go: Recorder, a Sink that captures events for inspection
//
// Serialization is done manually for precise control over output format. The Writer
// never holds more than its buffer and the stack of open element names, so documents
// of any length can be produced. Attribute values and text are always escaped, and characters
// that XML cannot carry are replaced or dropped.
package formatter

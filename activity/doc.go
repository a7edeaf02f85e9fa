// Package activity defines the decoded activity messages consumed by the converter.
//
// Messages arrive from a message source (see package fitfile) already free of any
// byte-level framing. Record fields that the recording device left unset carry a
// format-defined sentinel on the wire; NewRecord turns those sentinels into nil so
// that nothing downstream ever compares against magic values.
//
// The package is organized into:
//   - types.go: Message variants (Record, Event, Unknown)
//   - sentinel.go: invalid-value constants and optional conversions
//   - status.go: terminal status codes reported by a message source
package activity

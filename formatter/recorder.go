package formatter

// Recorder is a Sink that keeps every event it receives
type Recorder struct {
	Events []Event
}

// Write appends ev to the recorded events
func (r *Recorder) Write(ev Event) error {
	r.Events = append(r.Events, ev)
	return nil
}

// Count returns how many recorded events have the given kind and element name
func (r *Recorder) Count(kind EventKind, name string) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind && ev.Name == name {
			n++
		}
	}
	return n
}

// Balanced reports whether every Open has a matching Close in nesting order
func (r *Recorder) Balanced() bool {
	var stack []string
	for _, ev := range r.Events {
		switch ev.Kind {
		case KindOpen:
			stack = append(stack, ev.Name)
		case KindClose:
			if len(stack) == 0 || stack[len(stack)-1] != ev.Name {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// Replay writes every recorded event to sink
func (r *Recorder) Replay(sink Sink) error {
	for _, ev := range r.Events {
		if err := sink.Write(ev); err != nil {
			return err
		}
	}
	return nil
}

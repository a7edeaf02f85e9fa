package converter

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningNoPosition    = "no_position"
	WarningUnmatchedStop = "unmatched_stop"
	WarningNestedSegment = "nested_segment"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during conversion and outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Empty reports whether no warning was recorded
func (w *WarningAggregator) Empty() bool {
	return len(w.warnings) == 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(file string) {
	for _, message := range w.Messages(file) {
		log.Printf("%s", message)
	}
}

// Messages returns one consolidated line per warning type, sorted by type
func (w *WarningAggregator) Messages(file string) []string {
	if len(w.warnings) == 0 {
		return nil
	}

	types := make([]string, 0, len(w.warnings))
	for warningType := range w.warnings {
		types = append(types, warningType)
	}
	sort.Strings(types)

	messages := make([]string, 0, len(types))
	for _, warningType := range types {
		messages = append(messages, w.formatWarningMessage(warningType, file, w.warnings[warningType]))
	}
	return messages
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, file string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoPosition:
		description = "records without a valid position"
		action = "Skipping them without emitting a track point"
	case WarningUnmatchedStop:
		description = "timer stops with no open segment"
		action = "Ignoring them"
	case WarningNestedSegment:
		description = "timer starts while a segment was already open"
		action = "Opening a nested trkseg as recorded"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("File %s has %s (%d occurrences). %s. Examples: %s",
		file, description, info.count, action, examplesStr)
}

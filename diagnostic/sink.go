package diagnostic

import "slices"

// Sink is an ordered, append-only collector of diagnostics for one
// mapping call. The zero value is ready to use. A Sink is not safe for
// concurrent use; every call gets its own.
type Sink struct {
	entries []Diagnostic
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// PushMissingProperty records that the field at the given path is absent.
func (s *Sink) PushMissingProperty(at Path, suggestions ...string) {
	s.entries = append(s.entries, Diagnostic{
		Kind:        KindMissingProperty,
		Field:       at.Leaf(),
		Path:        at.String(),
		Suggestions: slices.Clone(suggestions),
	})
}

// PushTypeMismatch records that the field at the given path holds a value of
// type actual where expected was declared. Callers pass "null" as actual for
// null values.
func (s *Sink) PushTypeMismatch(at Path, expected, actual string) {
	s.entries = append(s.entries, Diagnostic{
		Kind:     KindTypeMismatch,
		Field:    at.Leaf(),
		Path:     at.String(),
		Expected: expected,
		Actual:   actual,
	})
}

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int {
	return len(s.entries)
}

// IsValid returns true if nothing was collected.
func (s *Sink) IsValid() bool {
	return len(s.entries) == 0
}

// Errors returns a snapshot of the collected messages in insertion order.
// The result is never nil.
func (s *Sink) Errors() []string {
	out := make([]string, 0, len(s.entries))
	for _, d := range s.entries {
		out = append(out, d.String())
	}

	return out
}

// Diagnostics returns a snapshot of the collected diagnostics.
// The result is never nil.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, 0, len(s.entries))
	for _, d := range s.entries {
		out = append(out, d.clone())
	}

	return out
}

// Merge appends all diagnostics of other after the ones already collected.
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}

	for _, d := range other.entries {
		s.entries = append(s.entries, d.clone())
	}
}

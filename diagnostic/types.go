package diagnostic

import (
	"fmt"
	"slices"
)

// Kind identifies what went wrong with a field.
type Kind int

const (
	KindMissingProperty Kind = iota + 1
	KindTypeMismatch
)

// String returns the diagnostic code.
func (k Kind) String() string {
	switch k {
	case KindMissingProperty:
		return "missing_property"
	case KindTypeMismatch:
		return "type_mismatch"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its code.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic represents a single finding of a mapping pass.
type Diagnostic struct {
	// Kind of the diagnostic.
	Kind Kind `json:"kind"`
	// Field is the name rendered in the message.
	Field string `json:"field"`
	// Path is the full position of the field, e.g. "friends[1].name".
	Path string `json:"path"`
	// Expected is the declared type name (type mismatches only).
	Expected string `json:"expected,omitempty"`
	// Actual is the type name of the offending value (type mismatches only).
	Actual string `json:"actual,omitempty"`
	// Suggestions are source keys that look like the missing field.
	Suggestions []string `json:"suggestions,omitempty"`
}

// String returns the human-readable message.
func (d Diagnostic) String() string {
	switch d.Kind {
	case KindTypeMismatch:
		return fmt.Sprintf("<%s> property expected to be a %s but it was %s", d.Field, d.Expected, d.Actual)
	default:
		return fmt.Sprintf("<%s> property is missing", d.Field)
	}
}

func (d Diagnostic) clone() Diagnostic {
	d.Suggestions = slices.Clone(d.Suggestions)
	return d
}

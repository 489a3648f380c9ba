// Package diagnostic collects the non-fatal findings of a mapping pass.
//
// Exactly two kinds of diagnostic exist:
//   - MissingProperty: the schema expects a field the source does not provide
//   - TypeMismatch: the field is present but its value has the wrong kind
//
// A Sink is created per mapping call and threaded through the walk. It is
// append-only; Errors and Diagnostics return snapshots, so callers never
// observe later appends.
//
// Every diagnostic renders to one of two fixed messages:
//
//	<name> property is missing
//	<name> property expected to be a String but it was Number
//
// where name is the schema key of the leaf, or field[index] for an element
// of a list of primitives. The full position is kept separately in Path.
package diagnostic

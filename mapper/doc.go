// Package mapper maps untrusted values onto a declared shape.
//
// A schema is declared once, compiled into an immutable tree of Nodes and
// then used to map any number of source values:
//
//	person := mapper.MustCompile(mapper.Fields{
//		{Name: "name", Decl: mapper.String},
//		{Name: "tags", Decl: []any{mapper.String}},
//		{Name: "friends", Decl: []any{mapper.Fields{
//			{Name: "id", Decl: mapper.Number},
//		}}},
//	})
//
//	res := person.MapFromObject(source)
//
// The result always has every declared field. A field whose source value is
// absent or of the wrong kind gets the kind's default ("", 0, false, {} or
// []) and one message is appended to res.Errors. Mapping never fails: an
// empty Errors list is the witness that the result is faithful to the source.
//
// # Node variants
//
//   - Primitive: String, Number, Boolean, Object (passthrough) or Array (passthrough)
//   - Object: an ordered list of named fields
//   - ArrayOfPrimitive: a list whose every element is one primitive kind
//   - ArrayOfObject: a list of records of one object shape
//
// Schemas can also be declared in YAML or JSON, see Parse:
//
//	name: String
//	tags: [String]
//	friends:
//	  - id: Number
//
// A compiled Schema is read-only and safe for concurrent use.
package mapper

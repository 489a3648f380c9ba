// Package gen generates Go struct types that mirror a compiled schema.
//
// Generation uses text/template + go/format. Every object node becomes a
// named struct; nested objects are named after their parent and field
// ("Person" + "location" -> "PersonLocation"). Every field carries a json
// tag with the schema key, so a mapping result encoded as JSON decodes into
// the generated type without loss.
//
// Type mapping:
//   - String  -> string
//   - Number  -> float64
//   - Boolean -> bool
//   - Object  -> map[string]any
//   - Array   -> []any
//   - [T]     -> []T
package gen

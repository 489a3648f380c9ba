// Package match finds source keys that look like a schema field name.
//
// Names are normalised (case-folded, CamelCase and separator insensitive)
// and scored by Levenshtein similarity; Suggest returns the keys that are
// close enough to be a likely typo or naming-convention mismatch.
package match

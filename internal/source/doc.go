// Package source gives guarded, read-only access to untrusted source values.
//
// Every access is preceded by a kind check so that nil, primitives, nil
// pointers and other unexpected shapes degrade to "not a record" or "not a
// list" instead of panicking.
package source

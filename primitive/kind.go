package primitive

import (
	"encoding/json"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -trimprefix=Kind -output=kind_string.go

// KindEnum is one of the fundamental value kinds a schema leaf can declare.
// The String form of every kind is the name used in diagnostics.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindNumber
	KindBoolean
	KindObject // any non-primitive value, passed through without nested validation
	KindArray  // any list value, passed through without element validation

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// NullName is the type name reported for null-like values.
const NullName = "null"

var jsonNumberType = reflect.TypeOf(json.Number(""))

// ParseKind resolves a declarator name such as "String" or "number".
func ParseKind(name string) (KindEnum, bool) {
	switch name {
	case "String", "string":
		return KindString, true
	case "Number", "number":
		return KindNumber, true
	case "Boolean", "boolean", "Bool", "bool":
		return KindBoolean, true
	case "Object", "object":
		return KindObject, true
	case "Array", "array":
		return KindArray, true
	default:
		return 0, false
	}
}

// IsValid returns true for the declared kinds, excluding the zero value.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Default returns a freshly allocated default value for the kind.
// Composite defaults are never shared between calls.
func (k KindEnum) Default() any {
	switch k {
	case KindString:
		return ""
	case KindNumber:
		return float64(0)
	case KindBoolean:
		return false
	case KindObject:
		return map[string]any{}
	case KindArray:
		return []any{}
	default:
		panic("no default value for invalid kind: " + k.String())
	}
}

// Matches reports whether value belongs to the kind. Null-like values never
// match, and no coercion is attempted: "1" is not a Number and 1 is not a
// Boolean. Object matches every non-null value that is not a String, Number
// or Boolean, lists included.
func (k KindEnum) Matches(value any) bool {
	of := Of(value)
	if of == 0 {
		return false
	}

	if k == KindObject {
		return of == KindObject || of == KindArray
	}

	return of == k
}

// Of classifies a value into the kind it would match most narrowly.
// Null-like values (nil, or a nil pointer, map, slice, func, channel or
// interface) yield the zero KindEnum.
func Of(value any) KindEnum {
	rv, ok := deref(value)
	if !ok {
		return 0
	}

	switch {
	case isNumber(rv):
		return KindNumber
	case rv.Kind() == reflect.String:
		return KindString
	case rv.Kind() == reflect.Bool:
		return KindBoolean
	case isList(rv):
		return KindArray
	default:
		return KindObject
	}
}

// TypeName returns the name of the value's own type as shown in diagnostics.
func TypeName(value any) string {
	switch k := Of(value); k {
	case 0:
		return NullName
	case KindNumber, KindString, KindBoolean:
		return k.String()
	}

	rv, _ := deref(value)
	t := rv.Type()

	if t.Kind() == reflect.Func {
		return "Function"
	}

	if t.Name() != "" && t.PkgPath() != "" {
		return t.Name()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray.String()
	case reflect.Map, reflect.Struct:
		return KindObject.String()
	default:
		return t.String()
	}
}

// deref follows non-nil pointers and interfaces, returning false for
// anything null-like on the way.
func deref(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(value)
	for {
		switch rv.Kind() {
		case reflect.Ptr, reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, false
			}

			rv = rv.Elem()

			continue
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return reflect.Value{}, false
			}
		case reflect.Invalid:
			return reflect.Value{}, false
		}

		return rv, true
	}
}

func isNumber(rv reflect.Value) bool {
	if rv.Type() == jsonNumberType {
		return true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isList(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

package source

import (
	"reflect"
	"sort"
	"strings"

	"schema-mapper/internal/common"
)

// Record is a keyed view over a source value.
type Record interface {
	// Lookup returns the value stored under name and whether the key exists.
	// A key that exists with a nil value is present.
	Lookup(name string) (any, bool)
	// Keys returns the visible keys in a deterministic order.
	Keys() []string
}

// AsRecord returns a Record view of value if it is a map keyed by strings,
// a struct, or a non-nil pointer to one of those.
func AsRecord(value any) (Record, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if v == nil {
			return nil, false
		}

		return mapRecord(v), true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		return reflectMap{rv: rv}, true
	case reflect.Struct:
		return structRecord{rv: rv}, true
	default:
		return nil, false
	}
}

type mapRecord map[string]any

func (m mapRecord) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapRecord) Keys() []string {
	return common.SortedKeys(m)
}

type reflectMap struct {
	rv reflect.Value
}

func (m reflectMap) Lookup(name string) (any, bool) {
	key := reflect.ValueOf(name).Convert(m.rv.Type().Key())

	v := m.rv.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

func (m reflectMap) Keys() []string {
	keys := make([]string, 0, m.rv.Len())
	for _, k := range m.rv.MapKeys() {
		keys = append(keys, k.String())
	}

	sort.Strings(keys)

	return keys
}

type structRecord struct {
	rv reflect.Value
}

func (s structRecord) Lookup(name string) (any, bool) {
	f, ok := matchField(s.rv.Type(), name)
	if !ok {
		return nil, false
	}

	v, err := s.rv.FieldByIndexErr(f.Index)
	if err != nil || !v.CanInterface() {
		// promoted through a nil embedded pointer
		return nil, false
	}

	return v.Interface(), true
}

func (s structRecord) Keys() []string {
	var keys []string

	for _, f := range visibleFields(s.rv.Type()) {
		keys = append(keys, fieldKey(f))
	}

	sort.Strings(keys)

	return keys
}

// matchField tries: `map:"name"` tag, json tag, exact name, case-insensitive name.
func matchField(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := visibleFields(t)

	for _, f := range fields {
		if tagName(f, "map") == name {
			return f, true
		}
	}

	for _, f := range fields {
		if tagName(f, "json") == name {
			return f, true
		}
	}

	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}

	return reflect.StructField{}, false
}

// visibleFields lists exported, non-embedded fields, including promoted ones.
func visibleFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		if f.Tag.Get("json") == "-" || f.Tag.Get("map") == "-" {
			continue
		}

		out = append(out, f)
	}

	return out
}

func fieldKey(f reflect.StructField) string {
	if n := tagName(f, "map"); n != "" {
		return n
	}

	if n := tagName(f, "json"); n != "" {
		return n
	}

	return f.Name
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag
}

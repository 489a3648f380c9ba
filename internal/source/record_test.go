package source

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Audit struct {
	CreatedBy string `json:"created_by"`
}

type Person struct {
	*Audit

	ID       int    `json:"id"`
	Name     string `map:"full_name" json:"name"`
	Nickname string
	Secret   string `json:"-"`
	internal string
}

func TestAsRecordMap(t *testing.T) {
	rec, ok := AsRecord(map[string]any{"b": 1, "a": nil})
	require.True(t, ok)

	v, ok := rec.Lookup("a")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = rec.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, rec.Keys())
}

func TestAsRecordTypedMap(t *testing.T) {
	type Key string

	rec, ok := AsRecord(map[Key]int{"x": 1})
	require.True(t, ok)

	v, ok := rec.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"x"}, rec.Keys())

	_, ok = AsRecord(map[int]string{1: "a"})
	assert.False(t, ok)
}

func TestAsRecordStruct(t *testing.T) {
	p := &Person{ID: 7, Name: "Hiro", Nickname: "H", Secret: "s", internal: "i"}

	rec, ok := AsRecord(p)
	require.True(t, ok)

	tests := []struct {
		key      string
		expected any
		found    bool
	}{
		{"full_name", "Hiro", true},
		{"name", "Hiro", true},
		{"id", 7, true},
		{"Nickname", "H", true},
		{"nickname", "H", true},
		{"Secret", nil, false},
		{"internal", nil, false},
		{"created_by", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := rec.Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, v)
		})
	}

	p.Audit = &Audit{CreatedBy: "root"}
	v, ok := rec.Lookup("created_by")
	assert.True(t, ok)
	assert.Equal(t, "root", v)

	assert.Equal(t, []string{"Nickname", "created_by", "full_name", "id"}, rec.Keys())
}

func TestAsRecordRejects(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *Person

	for name, v := range map[string]any{
		"nil":    nil,
		"nilMap": nilMap,
		"nilPtr": nilPtr,
		"number": 123,
		"string": "abc",
		"slice":  []any{1},
		"func":   func() {},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := AsRecord(v)
			assert.False(t, ok)
		})
	}
}

func TestAsRecordOpaqueStructs(t *testing.T) {
	for _, v := range []any{time.Now(), regexp.MustCompile("[a-z]")} {
		rec, ok := AsRecord(v)
		require.True(t, ok)
		assert.Empty(t, rec.Keys())

		_, found := rec.Lookup("name")
		assert.False(t, found)
	}
}

func TestAsList(t *testing.T) {
	items, ok := AsList([]any{1, "a"})
	require.True(t, ok)
	assert.Equal(t, []any{1, "a"}, items)

	items, ok = AsList([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, items)

	items, ok = AsList(&[2]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, items)

	items, ok = AsList([]any{})
	require.True(t, ok)
	assert.Empty(t, items)

	var nilSlice []string
	for _, v := range []any{nil, nilSlice, "abc", 1, map[string]any{}} {
		_, ok := AsList(v)
		assert.False(t, ok)
	}
}

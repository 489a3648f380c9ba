package mapper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
name: String
age: number
tags: [String]
friends:
  - id: Number
    name: String
location:
  city: String
  country: String
meta: Object
`

	s, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t,
		"{name: String, age: Number, tags: [String], friends: [{id: Number, name: String}], location: {city: String, country: String}, meta: Object}",
		s.String())
}

func TestParseJSON(t *testing.T) {
	s, err := Parse([]byte(`{"zeta": "String", "alpha": ["Number"], "nested": {"b": "Boolean"}}`))
	require.NoError(t, err)

	// key order is kept as written
	assert.Equal(t, "{zeta: String, alpha: [Number], nested: {b: Boolean}}", s.String())
}

func TestParseAnchors(t *testing.T) {
	yaml := `
home: &address
  street: String
work: *address
`

	s, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, "{home: {street: String}, work: {street: String}}", s.String())

	fields := s.Root().Fields()
	require.Len(t, fields, 2)
	assert.Same(t, fields[0].Node(), fields[1].Node())
}

func TestParseAliasExpansionLimit(t *testing.T) {
	var sb strings.Builder

	sb.WriteString("l0: &l0 {a: String, b: String, c: String, d: String}\n")

	for i := 1; i <= 9; i++ {
		prev := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&sb, "l%d: &l%d {a: %s, b: %s, c: %s, d: %s}\n", i, i, prev, prev, prev, prev)
	}

	done := make(chan error, 1)

	go func() {
		_, err := Parse([]byte(sb.String()))
		done <- err
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrInvalidSchema)
		assert.Contains(t, err.Error(), "schema expands to more than 65536 nodes")
	case <-time.After(5 * time.Second):
		t.Fatal("alias expansion is not bounded")
	}
}

func TestParseEmptyObject(t *testing.T) {
	s, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, s.Root().Fields())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"empty", "", "<root>: empty document"},
		{"scalar root", "String", "top-level declaration must be an object"},
		{"unknown type", "name: Date", `name: line 1, column 7: unknown type "Date"`},
		{"null type", "name: ~", `name: line 1, column 7: unknown type "~"`},
		{"empty sequence", "tags: []", "tags: line 1, column 7: array declaration must wrap exactly one element, got 0"},
		{"long sequence", "tags: [String, Number]", "got 2"},
		{"nested sequence", "tags: [[String]]", "array elements must be a primitive or an object"},
		{"deep", "a:\n  - b: Nope\n", `a[0].b: line 2, column 8: unknown type "Nope"`},
		{"alias cycle", "a: &x\n  b: *x\n", "a.b: line 2, column 6: alias *x refers to an enclosing node"},
		{"sequence alias cycle", "a: &x [*x]\n", "alias *x refers to an enclosing node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("a: [b"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), "failed to parse schema YAML")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "person.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: String\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{name: String}", s.String())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: Date\n"), 0o600))

	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), bad)
}

package primitive_test

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schema-mapper/primitive"
)

func Example() {
	type Status string

	fmt.Println(primitive.TypeName("x"))
	fmt.Println(primitive.TypeName(Status("open")))
	fmt.Println(primitive.TypeName(int8(3)))
	fmt.Println(primitive.TypeName(json.Number("1.5")))
	fmt.Println(primitive.TypeName([]string{"a"}))
	fmt.Println(primitive.TypeName(map[string]any{}))
	fmt.Println(primitive.TypeName(time.Time{}))
	fmt.Println(primitive.TypeName(regexp.MustCompile("[a-z]")))
	fmt.Println(primitive.TypeName(func() {}))
	fmt.Println(primitive.TypeName(nil))
	// Output:
	// String
	// String
	// Number
	// Number
	// Array
	// Object
	// Time
	// Regexp
	// Function
	// null
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		expected primitive.KindEnum
		ok       bool
	}{
		{"String", primitive.KindString, true},
		{"string", primitive.KindString, true},
		{"Number", primitive.KindNumber, true},
		{"Boolean", primitive.KindBoolean, true},
		{"bool", primitive.KindBoolean, true},
		{"Object", primitive.KindObject, true},
		{"Array", primitive.KindArray, true},
		{"Date", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := primitive.ParseKind(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "String", primitive.KindString.String())
	assert.Equal(t, "Number", primitive.KindNumber.String())
	assert.Equal(t, "Boolean", primitive.KindBoolean.String())
	assert.Equal(t, "Object", primitive.KindObject.String())
	assert.Equal(t, "Array", primitive.KindArray.String())
	assert.Equal(t, "KindEnum(0)", primitive.KindEnum(0).String())
}

func TestMatches(t *testing.T) {
	str := "boxed"
	var nilPtr *string
	var nilMap map[string]any
	var nilSlice []any

	values := map[string]any{
		"string":      "a",
		"emptyString": "",
		"boxedString": &str,
		"int":         1,
		"zero":        0,
		"float":       1.5,
		"jsonNumber":  json.Number("42"),
		"true":        true,
		"false":       false,
		"map":         map[string]any{"a": 1},
		"slice":       []any{1},
		"array":       [2]int{1, 2},
		"time":        time.Now(),
		"regexp":      regexp.MustCompile("x"),
		"func":        func() {},
		"nil":         nil,
		"nilPtr":      nilPtr,
		"nilMap":      nilMap,
		"nilSlice":    nilSlice,
	}

	expected := map[primitive.KindEnum][]string{
		primitive.KindString:  {"string", "emptyString", "boxedString"},
		primitive.KindNumber:  {"int", "zero", "float", "jsonNumber"},
		primitive.KindBoolean: {"true", "false"},
		primitive.KindObject:  {"map", "slice", "array", "time", "regexp", "func"},
		primitive.KindArray:   {"slice", "array"},
	}

	for kind, matching := range expected {
		for name, value := range values {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				assert.Equal(t, slices.Contains(matching, name), kind.Matches(value))
			})
		}
	}
}

func TestMatchesNoCoercion(t *testing.T) {
	assert.False(t, primitive.KindNumber.Matches("1"))
	assert.False(t, primitive.KindBoolean.Matches(1))
	assert.False(t, primitive.KindBoolean.Matches(0))
	assert.False(t, primitive.KindString.Matches(json.Number("1")))
	assert.False(t, primitive.KindArray.Matches("abc"))
}

func TestDefaultIsFresh(t *testing.T) {
	assert.Equal(t, "", primitive.KindString.Default())
	assert.Equal(t, float64(0), primitive.KindNumber.Default())
	assert.Equal(t, false, primitive.KindBoolean.Default())

	obj := primitive.KindObject.Default().(map[string]any)
	obj["x"] = 1
	assert.Empty(t, primitive.KindObject.Default())

	arr := primitive.KindArray.Default().([]any)
	assert.Empty(t, arr)
	assert.NotNil(t, arr)

	assert.Panics(t, func() { primitive.KindEnum(0).Default() })
}

func TestOf(t *testing.T) {
	assert.Equal(t, primitive.KindNumber, primitive.Of(uint16(3)))
	assert.Equal(t, primitive.KindString, primitive.Of("x"))
	assert.Equal(t, primitive.KindBoolean, primitive.Of(true))
	assert.Equal(t, primitive.KindArray, primitive.Of([]int{}))
	assert.Equal(t, primitive.KindObject, primitive.Of(struct{}{}))
	assert.Equal(t, primitive.KindEnum(0), primitive.Of(nil))
	assert.Equal(t, primitive.KindEnum(0), primitive.Of((*int)(nil)))
	assert.Equal(t, primitive.KindEnum(0), primitive.Of(map[string]any(nil)))
	assert.Equal(t, primitive.KindNumber, primitive.Of(0))
	assert.Equal(t, primitive.KindObject, primitive.Of(func() {}))
}

func TestMatchesFollowsOf(t *testing.T) {
	values := []any{nil, "", 1, 2.5, true, []any{}, map[string]any{}, struct{}{}, (*string)(nil)}

	for _, v := range values {
		of := primitive.Of(v)
		for k := primitive.KindString; int(k) < primitive.KindTotal; k++ {
			want := of != 0 && (of == k || (k == primitive.KindObject && of == primitive.KindArray))
			assert.Equal(t, want, k.Matches(v), "%s.Matches(%#v)", k, v)
		}
	}
}

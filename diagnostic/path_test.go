package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected string
		leaf     string
	}{
		{"root", Path{}, "", ""},
		{"field", Path{}.Field("name"), "name", "name"},
		{"nested", Path{}.Field("location").Field("city"), "location.city", "city"},
		{"element", Path{}.Field("tags").Index(2), "tags[2]", "tags[2]"},
		{"element field", Path{}.Field("friends").Index(0).Field("id"), "friends[0].id", "id"},
		{"root element", Path{}.Index(3).Field("name"), "[3].name", "name"},
		{"bare index", Path{}.Index(3), "[3]", "[3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.path.String())
			assert.Equal(t, tt.leaf, tt.path.Leaf())
		})
	}
}

func TestPathDoesNotAlias(t *testing.T) {
	base := Path{}.Field("a").Field("b")
	left := base.Field("left")
	right := base.Field("right")

	assert.Equal(t, "a.b.left", left.String())
	assert.Equal(t, "a.b.right", right.String())
	assert.Equal(t, "a.b", base.String())
	assert.False(t, right.IsRoot())
	assert.True(t, Path{}.IsRoot())
}

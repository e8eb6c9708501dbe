package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlang(t *testing.T) {
	assert.True(t, IsSlang("gonna", nil))
	assert.True(t, IsSlang("GONNA", nil))
	assert.False(t, IsSlang("going", nil))

	assert.True(t, IsSlang("zorp", []string{"Zorp"}))
	assert.False(t, IsSlang("zorp", nil))
}

func TestSlangFlags(t *testing.T) {
	flags := SlangFlags([]string{"gonna", "night", "Gonna"}, nil)

	assert.Len(t, flags, 2)
	assert.True(t, flags["gonna"])
	assert.False(t, flags["night"])
}

func TestSlangCount(t *testing.T) {
	tokens := []string{"gonna", "fly", "gonna", "night"}
	// Occurrences count, not unique words.
	assert.Equal(t, 3, SlangCount(tokens, nil))
	assert.Equal(t, 0, SlangCount(nil, nil))
}

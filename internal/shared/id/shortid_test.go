package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := NewShortCode()
		require.NoError(t, err)
		assert.True(t, IsValid(code, ShortCodeLength), code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestGenerate_DefaultLength(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("aZ09bY18", 8))
	assert.False(t, IsValid("aZ09bY1", 8))
	assert.False(t, IsValid("aZ09-Y18", 8))
}

package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	l, err := NewLink(1, "aB3dE5gH", "https://example.com/long/path", " Docs ")
	require.NoError(t, err)

	assert.Equal(t, "Docs", l.Title())
	assert.True(t, l.IsActive())
	assert.Zero(t, l.Clicks())

	l.Toggle()
	assert.False(t, l.IsActive())
}

func TestNewLink_Validation(t *testing.T) {
	_, err := NewLink(1, "short", "https://example.com", "")
	assert.ErrorIs(t, err, ErrInvalidShortCode)

	_, err = NewLink(1, "aB3dE5gH", "javascript:alert(1)", "")
	assert.ErrorIs(t, err, ErrInvalidTargetURL)

	_, err = NewLink(0, "aB3dE5gH", "https://example.com", "")
	assert.Error(t, err)
}

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient(1, Details{Name: "  Acme  ", City: " Lyon "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", c.Details().Name)
	assert.Equal(t, "Lyon", c.Details().City)

	_, err = NewClient(1, Details{Name: " "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestClient_Update(t *testing.T) {
	c, err := NewClient(1, Details{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, c.Update(Details{Name: "Acme SAS", Notes: "**net 30**"}))
	assert.Equal(t, "Acme SAS", c.Details().Name)
	assert.Equal(t, "**net 30**", c.Details().Notes)

	assert.ErrorIs(t, c.Update(Details{}), ErrNameRequired)
	assert.Equal(t, "Acme SAS", c.Details().Name)
}

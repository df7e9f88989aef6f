package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite(t *testing.T) {
	site, err := NewSite(1, " https://example.com/health ", " Main ")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/health", site.URL())
	assert.Equal(t, "Main", site.Label())
	assert.True(t, site.IsActive())
	assert.Equal(t, "Main", site.DisplayName())
}

func TestNewSite_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "example.com", "ftp://example.com", "http://"} {
		_, err := NewSite(1, raw, "")
		assert.ErrorIs(t, err, ErrInvalidSiteURL, raw)
	}
}

func TestSite_Toggle(t *testing.T) {
	site, err := NewSite(1, "https://example.com", "")
	require.NoError(t, err)

	site.Toggle()
	assert.False(t, site.IsActive())
	assert.Equal(t, "https://example.com", site.DisplayName())

	site.Toggle()
	assert.True(t, site.IsActive())
}

func TestNewCheckResult_AlwaysCarriesLatency(t *testing.T) {
	msg := "Timeout (10s)"
	r, err := NewCheckResult(3, time.Now(), Outcome{IsUp: false, LatencyMs: 10002, Error: &msg})
	require.NoError(t, err)

	require.NotNil(t, r.LatencyMs())
	assert.Equal(t, int64(10002), *r.LatencyMs())
	assert.Nil(t, r.StatusCode())
	assert.Equal(t, time.UTC, r.CheckedAt().Location())
}

func TestUptimeRatio(t *testing.T) {
	assert.Nil(t, UptimeRatio(0, 0))
	assert.InDelta(t, 0.75, *UptimeRatio(3, 4), 1e-9)
}

func TestScope(t *testing.T) {
	assert.True(t, All().IsAll())
	assert.False(t, ForUser(9).IsAll())
}

package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetNowFunc(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	restore := SetNowFunc(func() time.Time { return fixed })
	defer restore()

	assert.Equal(t, time.UTC, NowUTC().Location())
	assert.True(t, fixed.Equal(NowUTC()))
	assert.True(t, fixed.Add(-24*time.Hour).Equal(Since(24*time.Hour)))
}

func TestLocation_DefaultsToUTC(t *testing.T) {
	assert.Equal(t, "UTC", Location().String())
	// Init is once-only; later calls keep the first location.
	assert.NoError(t, Init("Europe/Paris"))
	assert.Equal(t, "UTC", Location().String())
}

// Package biztime centralizes wall-clock access. All storage and transport use
// UTC; the business location is only used to render day boundaries for
// dashboards.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no location is configured.
const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error

	nowMu   sync.RWMutex
	nowFunc = time.Now
)

// Init sets the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone, initializing the default lazily.
func Location() *time.Location {
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	nowMu.RLock()
	defer nowMu.RUnlock()
	return nowFunc().UTC()
}

// SetNowFunc replaces the clock and returns a restore function. Tests only.
func SetNowFunc(fn func() time.Time) func() {
	nowMu.Lock()
	prev := nowFunc
	nowFunc = fn
	nowMu.Unlock()
	return func() {
		nowMu.Lock()
		nowFunc = prev
		nowMu.Unlock()
	}
}

// Since returns the UTC instant d before now.
func Since(d time.Duration) time.Time {
	return NowUTC().Add(-d)
}

package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Budapest"

var (
	mu       sync.RWMutex
	fallback = DefaultTimezone
)

// SetDefault replaces the timezone used for stores without a valid one.
func SetDefault(tz string) {
	if !IsValid(tz) {
		return
	}
	mu.Lock()
	fallback = tz
	mu.Unlock()
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	mu.RLock()
	def := fallback
	mu.RUnlock()

	if loc, err := time.LoadLocation(def); err == nil {
		return loc
	}
	return time.UTC
}

// ParseDate reads YYYY-MM-DD as midnight in tz.
func ParseDate(tz, date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(tz))
}

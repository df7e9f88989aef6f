package plan

import (
	"encoding/json"
	"strconv"
)

// Limit is a per-resource ceiling. It is either a finite count or unlimited;
// unlimited is a distinct state rather than a large number, so it never takes
// part in arithmetic.
type Limit struct {
	max       int64
	unlimited bool
}

// Bounded returns a finite ceiling of n.
func Bounded(n int64) Limit {
	if n < 0 {
		n = 0
	}
	return Limit{max: n}
}

// Unlimited returns a ceiling with no bound.
func Unlimited() Limit {
	return Limit{unlimited: true}
}

func (l Limit) IsUnlimited() bool {
	return l.unlimited
}

// Max returns the finite ceiling and false when the limit is unlimited.
func (l Limit) Max() (int64, bool) {
	if l.unlimited {
		return 0, false
	}
	return l.max, true
}

// Allows reports whether one more resource may be created when current exist.
func (l Limit) Allows(current int64) bool {
	if l.unlimited {
		return true
	}
	return current < l.max
}

// Remaining returns how many more resources fit, and false when unlimited.
func (l Limit) Remaining(current int64) (int64, bool) {
	if l.unlimited {
		return 0, false
	}
	if current >= l.max {
		return 0, true
	}
	return l.max - current, true
}

func (l Limit) String() string {
	if l.unlimited {
		return "unlimited"
	}
	return strconv.FormatInt(l.max, 10)
}

// MarshalJSON renders a finite limit as a number and unlimited as null.
func (l Limit) MarshalJSON() ([]byte, error) {
	if l.unlimited {
		return []byte("null"), nil
	}
	return json.Marshal(l.max)
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = Unlimited()
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = Bounded(n)
	return nil
}

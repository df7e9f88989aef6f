// Package plan holds the plan catalog: subscription tiers, the resource kinds
// they meter, and the ceiling of each (tier, kind) pair.
package plan

import "fmt"

// Tier is a subscription level.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return t == TierFree || t == TierPremium
}

func (t Tier) IsPremium() bool {
	return t == TierPremium
}

// ParseTier maps a stored plan value to a Tier. Rows written before plans existed
// carry an empty value; they are free.
func ParseTier(s string) Tier {
	t := Tier(s)
	if t.IsValid() {
		return t
	}
	return TierFree
}

// ParseTierStrict is used for operator input, where an unknown value is an error.
func ParseTierStrict(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid plan tier: %q", s)
	}
	return t, nil
}

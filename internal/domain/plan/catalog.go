package plan

import "fmt"

var ceilings = map[Tier]map[ResourceKind]Limit{
	TierFree: {
		ResourceLinks:   Bounded(3),
		ResourceQRCodes: Bounded(3),
		ResourceSites:   Bounded(1),
		ResourceClients: Bounded(5),
	},
	TierPremium: {
		ResourceLinks:   Unlimited(),
		ResourceQRCodes: Unlimited(),
		ResourceSites:   Unlimited(),
		ResourceClients: Unlimited(),
	},
}

// Ceiling returns the maximum count of kind allowed on tier.
// An unknown tier or kind is a programming error and panics.
func Ceiling(tier Tier, kind ResourceKind) Limit {
	byKind, ok := ceilings[tier]
	if !ok {
		panic(fmt.Sprintf("plan: no ceilings for tier %q", tier))
	}
	limit, ok := byKind[kind]
	if !ok {
		panic(fmt.Sprintf("plan: no ceiling for resource %q on tier %q", kind, tier))
	}
	return limit
}

// Ceilings returns the full table for tier, keyed by kind.
func Ceilings(tier Tier) map[ResourceKind]Limit {
	out := make(map[ResourceKind]Limit, len(allResourceKinds))
	for _, kind := range allResourceKinds {
		out[kind] = Ceiling(tier, kind)
	}
	return out
}

package plan

import "fmt"

// ResourceKind classifies the countable entities subject to quota.
type ResourceKind string

const (
	ResourceLinks   ResourceKind = "links"
	ResourceQRCodes ResourceKind = "qr_codes"
	ResourceSites   ResourceKind = "sites"
	ResourceClients ResourceKind = "clients"
)

var allResourceKinds = []ResourceKind{
	ResourceLinks,
	ResourceQRCodes,
	ResourceSites,
	ResourceClients,
}

// AllResourceKinds returns every metered kind in display order.
func AllResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, len(allResourceKinds))
	copy(kinds, allResourceKinds)
	return kinds
}

func (k ResourceKind) String() string {
	return string(k)
}

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceLinks, ResourceQRCodes, ResourceSites, ResourceClients:
		return true
	}
	return false
}

// ParseResourceKind validates a kind coming from a request path or query.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid resource kind: %q", s)
	}
	return k, nil
}

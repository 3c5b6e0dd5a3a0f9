package enums

import "fmt"

// ListingKind identifies one of the three independent catalog categories.
type ListingKind string

const (
	ListingKindBuy        ListingKind = "buy"
	ListingKindCommercial ListingKind = "commercial"
	ListingKindOffPlan    ListingKind = "offplan"
)

var validListingKinds = []ListingKind{
	ListingKindBuy,
	ListingKindCommercial,
	ListingKindOffPlan,
}

// String implements fmt.Stringer.
func (k ListingKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known ListingKind.
func (k ListingKind) IsValid() bool {
	for _, candidate := range validListingKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseListingKind converts raw input into a ListingKind.
func ParseListingKind(value string) (ListingKind, error) {
	for _, candidate := range validListingKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid listing kind %q", value)
}

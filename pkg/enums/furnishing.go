package enums

import "fmt"

// Furnishing captures the furnishing state of a residential sale listing.
type Furnishing string

const (
	FurnishingFurnished     Furnishing = "furnished"
	FurnishingUnfurnished   Furnishing = "unfurnished"
	FurnishingSemiFurnished Furnishing = "semi-furnished"
)

var validFurnishings = []Furnishing{
	FurnishingFurnished,
	FurnishingUnfurnished,
	FurnishingSemiFurnished,
}

// String implements fmt.Stringer.
func (f Furnishing) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Furnishing.
func (f Furnishing) IsValid() bool {
	for _, candidate := range validFurnishings {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFurnishing converts raw input into a Furnishing.
func ParseFurnishing(value string) (Furnishing, error) {
	for _, candidate := range validFurnishings {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid furnishing %q", value)
}

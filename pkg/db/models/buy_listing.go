package models

import (
	"github.com/lib/pq"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
)

// BuyListing is a residential for-sale catalog record.
type BuyListing struct {
	ListingCore `gorm:"embedded"`

	Name             string           `gorm:"column:name;not null"`
	PropertyType     string           `gorm:"column:property_type;not null"`
	Beds             string           `gorm:"column:beds;not null"`
	Baths            string           `gorm:"column:baths;not null"`
	Sqft             string           `gorm:"column:sqft;not null"`
	Furnishing       enums.Furnishing `gorm:"column:furnishing;not null"`
	AmenitiesIndoor  pq.StringArray   `gorm:"column:amenities_indoor;type:text[];not null;default:ARRAY[]::text[]"`
	AmenitiesOutdoor pq.StringArray   `gorm:"column:amenities_outdoor;type:text[];not null;default:ARRAY[]::text[]"`
	Reference        string           `gorm:"column:reference;not null"`
	ZoneName         string           `gorm:"column:zone_name;not null"`
	DLDPermitNumber  string           `gorm:"column:dld_permit_number;not null"`
}

func (BuyListing) TableName() string { return "buy_listings" }

func (b *BuyListing) Core() *ListingCore { return &b.ListingCore }

func (b *BuyListing) ListingKind() enums.ListingKind { return enums.ListingKindBuy }

package models

import "github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"

// CommercialListing is a commercial catalog record. Its public payload
// exposes the QR artifact as qrCodeImage; the column stays uniform with the
// other kinds.
type CommercialListing struct {
	ListingCore `gorm:"embedded"`

	Name            string `gorm:"column:name;not null"`
	PropertyType    string `gorm:"column:property_type;not null"`
	Sqft            string `gorm:"column:sqft;not null"`
	Reference       string `gorm:"column:reference;not null"`
	ZoneName        string `gorm:"column:zone_name;not null"`
	DLDPermitNumber string `gorm:"column:dld_permit_number;not null"`
}

func (CommercialListing) TableName() string { return "commercial_listings" }

func (c *CommercialListing) Core() *ListingCore { return &c.ListingCore }

func (c *CommercialListing) ListingKind() enums.ListingKind { return enums.ListingKindCommercial }

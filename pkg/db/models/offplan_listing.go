package models

import "github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"

// OffPlanListing is a pre-construction catalog record. Title may carry a
// "|"-delimited project/sub-title composite; MainImage is a denormalized
// copy of Images[0] and is recomputed on every write.
type OffPlanListing struct {
	ListingCore `gorm:"embedded"`

	Title         string  `gorm:"column:title;not null"`
	Developer     string  `gorm:"column:developer;not null"`
	PropertyType  string  `gorm:"column:property_type;not null"`
	HandoverDate  string  `gorm:"column:handover_date;not null"`
	ProjectNumber string  `gorm:"column:project_number;not null"`
	MainImage     string  `gorm:"column:main_image;not null"`
	DownPayment   float64 `gorm:"column:down_payment;not null;default:0"`
	Installment1  string  `gorm:"column:installment1"`
	Installment2  string  `gorm:"column:installment2"`
}

func (OffPlanListing) TableName() string { return "offplan_listings" }

func (o *OffPlanListing) Core() *ListingCore { return &o.ListingCore }

func (o *OffPlanListing) ListingKind() enums.ListingKind { return enums.ListingKindOffPlan }

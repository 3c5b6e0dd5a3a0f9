package catalog

import (
	"fmt"
	"strconv"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
)

// BuySchema binds the residential for-sale kind.
func BuySchema() *Schema {
	return &Schema{
		Kind: enums.ListingKindBuy,
		Required: []string{
			"name", "propertyType", "price", "location", "description",
			"beds", "baths", "sqft", "furnishing",
			"reference", "zoneName", "dldPermitNumber",
		},
		New: func() Record { return &models.BuyListing{} },
		Apply: func(rec Record, fields Fields) error {
			row, ok := rec.(*models.BuyListing)
			if !ok {
				return fmt.Errorf("expected buy listing, got %T", rec)
			}
			furnishing, err := enums.ParseFurnishing(fields.Get("furnishing"))
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid furnishing").
					WithDetails(map[string]string{"field": "furnishing"})
			}
			applyCore(&row.ListingCore, fields)
			row.Name = fields.Get("name")
			row.PropertyType = fields.Get("propertyType")
			row.Beds = fields.Get("beds")
			row.Baths = fields.Get("baths")
			row.Sqft = fields.Get("sqft")
			row.Furnishing = furnishing
			row.AmenitiesIndoor = fields.List("amenitiesIndoor")
			row.AmenitiesOutdoor = fields.List("amenitiesOutdoor")
			row.Reference = fields.Get("reference")
			row.ZoneName = fields.Get("zoneName")
			row.DLDPermitNumber = fields.Get("dldPermitNumber")
			return nil
		},
		PropertyType: func(rec Record) string {
			if row, ok := rec.(*models.BuyListing); ok {
				return row.PropertyType
			}
			return ""
		},
		Beds: func(rec Record) (string, bool) {
			row, ok := rec.(*models.BuyListing)
			if !ok {
				return "", false
			}
			return row.Beds, true
		},
		SearchText: func(rec Record) []string {
			row, ok := rec.(*models.BuyListing)
			if !ok {
				return nil
			}
			return []string{row.Name, row.Location, row.PropertyType}
		},
	}
}

// CommercialSchema binds the commercial kind.
func CommercialSchema() *Schema {
	return &Schema{
		Kind: enums.ListingKindCommercial,
		Required: []string{
			"name", "propertyType", "price", "location", "description",
			"sqft", "reference", "zoneName", "dldPermitNumber",
		},
		New: func() Record { return &models.CommercialListing{} },
		Apply: func(rec Record, fields Fields) error {
			row, ok := rec.(*models.CommercialListing)
			if !ok {
				return fmt.Errorf("expected commercial listing, got %T", rec)
			}
			applyCore(&row.ListingCore, fields)
			row.Name = fields.Get("name")
			row.PropertyType = fields.Get("propertyType")
			row.Sqft = fields.Get("sqft")
			row.Reference = fields.Get("reference")
			row.ZoneName = fields.Get("zoneName")
			row.DLDPermitNumber = fields.Get("dldPermitNumber")
			return nil
		},
		PropertyType: func(rec Record) string {
			if row, ok := rec.(*models.CommercialListing); ok {
				return row.PropertyType
			}
			return ""
		},
		SearchText: func(rec Record) []string {
			row, ok := rec.(*models.CommercialListing)
			if !ok {
				return nil
			}
			return []string{row.Name, row.Location, row.PropertyType}
		},
	}
}

// OffPlanSchema binds the pre-construction kind. Finalize keeps the
// denormalized cover copy equal to images[0] on every write.
func OffPlanSchema() *Schema {
	return &Schema{
		Kind: enums.ListingKindOffPlan,
		Required: []string{
			"title", "developer", "propertyType", "price", "location",
			"description", "handoverDate", "projectNumber",
		},
		New: func() Record { return &models.OffPlanListing{} },
		Apply: func(rec Record, fields Fields) error {
			row, ok := rec.(*models.OffPlanListing)
			if !ok {
				return fmt.Errorf("expected off-plan listing, got %T", rec)
			}
			downPayment := float64(0)
			if raw := fields.Get("downPayment"); raw != "" {
				parsed, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid down payment").
						WithDetails(map[string]string{"field": "downPayment"})
				}
				downPayment = parsed
			}
			applyCore(&row.ListingCore, fields)
			row.Title = fields.Get("title")
			row.Developer = fields.Get("developer")
			row.PropertyType = fields.Get("propertyType")
			row.HandoverDate = fields.Get("handoverDate")
			row.ProjectNumber = fields.Get("projectNumber")
			row.DownPayment = downPayment
			row.Installment1 = fields.Get("installment1")
			row.Installment2 = fields.Get("installment2")
			return nil
		},
		Finalize: func(rec Record) {
			row, ok := rec.(*models.OffPlanListing)
			if !ok {
				return
			}
			row.MainImage = ""
			if len(row.Images) > 0 {
				row.MainImage = row.Images[0]
			}
		},
		PropertyType: func(rec Record) string {
			if row, ok := rec.(*models.OffPlanListing); ok {
				return row.PropertyType
			}
			return ""
		},
		SearchText: func(rec Record) []string {
			row, ok := rec.(*models.OffPlanListing)
			if !ok {
				return nil
			}
			return []string{row.Title, row.Location, row.PropertyType}
		},
	}
}

// SchemaFor resolves the schema for a kind token.
func SchemaFor(kind enums.ListingKind) (*Schema, error) {
	switch kind {
	case enums.ListingKindBuy:
		return BuySchema(), nil
	case enums.ListingKindCommercial:
		return CommercialSchema(), nil
	case enums.ListingKindOffPlan:
		return OffPlanSchema(), nil
	default:
		return nil, fmt.Errorf("unknown listing kind %q", kind)
	}
}

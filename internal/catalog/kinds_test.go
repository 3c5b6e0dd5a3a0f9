package catalog

import (
	"testing"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
)

func TestValidateNamesFirstMissingFieldInOrder(t *testing.T) {
	t.Parallel()

	schema := BuySchema()
	fields := buyFields()
	delete(fields, "propertyType")
	delete(fields, "reference")

	err := schema.Validate(fields)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected validation error")
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["field"] != "propertyType" {
		t.Fatalf("expected first missing field propertyType, got %v", typed.Details())
	}
}

func TestBuyApplyRejectsUnknownFurnishing(t *testing.T) {
	t.Parallel()

	schema := BuySchema()
	fields := buyFields()
	fields["furnishing"] = []string{"cozy"}

	err := schema.Apply(schema.New(), fields)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuyApplyCopiesAmenityTags(t *testing.T) {
	t.Parallel()

	schema := BuySchema()
	fields := buyFields()
	fields["amenitiesIndoor"] = []string{"gym", " sauna ", ""}
	fields["amenitiesOutdoor"] = []string{"pool"}

	rec := schema.New()
	if err := schema.Apply(rec, fields); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	row := rec.(*models.BuyListing)
	if len(row.AmenitiesIndoor) != 2 || row.AmenitiesIndoor[1] != "sauna" {
		t.Fatalf("indoor tags not trimmed/copied: %v", row.AmenitiesIndoor)
	}
	if len(row.AmenitiesOutdoor) != 1 || row.AmenitiesOutdoor[0] != "pool" {
		t.Fatalf("outdoor tags not copied: %v", row.AmenitiesOutdoor)
	}
}

func TestOffPlanApplyParsesDownPayment(t *testing.T) {
	t.Parallel()

	schema := OffPlanSchema()
	fields := Fields{
		"title":         {"Tower"},
		"developer":     {"Emaar"},
		"propertyType":  {"Apartment"},
		"price":         {"1"},
		"location":      {"Downtown"},
		"description":   {"d"},
		"handoverDate":  {"2027"},
		"projectNumber": {"PN-1"},
		"downPayment":   {"12.5"},
	}

	rec := schema.New()
	if err := schema.Apply(rec, fields); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.(*models.OffPlanListing).DownPayment != 12.5 {
		t.Fatalf("down payment not parsed")
	}

	fields["downPayment"] = []string{"twenty"}
	err := schema.Apply(schema.New(), fields)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSchemaForCoversEveryKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []enums.ListingKind{enums.ListingKindBuy, enums.ListingKindCommercial, enums.ListingKindOffPlan} {
		schema, err := SchemaFor(kind)
		if err != nil {
			t.Fatalf("SchemaFor(%s): %v", kind, err)
		}
		if schema.Kind != kind {
			t.Fatalf("schema kind mismatch: %s", schema.Kind)
		}
		if schema.New().ListingKind() != kind {
			t.Fatalf("record kind mismatch for %s", kind)
		}
	}

	if _, err := SchemaFor("rental"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

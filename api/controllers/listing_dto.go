package controllers

import (
	"strings"
	"time"

	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
)

type listingCoreDTO struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Images      []string  `json:"images"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type buyListingDTO struct {
	listingCoreDTO

	Name             string   `json:"name"`
	PropertyType     string   `json:"propertyType"`
	Beds             string   `json:"beds"`
	Baths            string   `json:"baths"`
	Sqft             string   `json:"sqft"`
	Furnishing       string   `json:"furnishing"`
	AmenitiesIndoor  []string `json:"amenitiesIndoor"`
	AmenitiesOutdoor []string `json:"amenitiesOutdoor"`
	Reference        string   `json:"reference"`
	ZoneName         string   `json:"zoneName"`
	DLDPermitNumber  string   `json:"dldPermitNumber"`
	QRCode           string   `json:"qrCode,omitempty"`
}

// commercialListingDTO keeps the historical qrCodeImage key for the
// public site.
type commercialListingDTO struct {
	listingCoreDTO

	Name            string `json:"name"`
	PropertyType    string `json:"propertyType"`
	Sqft            string `json:"sqft"`
	Reference       string `json:"reference"`
	ZoneName        string `json:"zoneName"`
	DLDPermitNumber string `json:"dldPermitNumber"`
	QRCodeImage     string `json:"qrCodeImage,omitempty"`
}

type offPlanListingDTO struct {
	listingCoreDTO

	Title         string  `json:"title"`
	ProjectName   string  `json:"projectName"`
	Subtitle      string  `json:"subtitle,omitempty"`
	Developer     string  `json:"developer"`
	PropertyType  string  `json:"propertyType"`
	HandoverDate  string  `json:"handoverDate"`
	ProjectNumber string  `json:"projectNumber"`
	MainImage     string  `json:"mainImage"`
	DownPayment   float64 `json:"downPayment"`
	Installment1  string  `json:"installment1,omitempty"`
	Installment2  string  `json:"installment2,omitempty"`
	QRCode        string  `json:"qrCode,omitempty"`
}

func coreDTO(core *models.ListingCore) listingCoreDTO {
	images := make([]string, len(core.Images))
	copy(images, core.Images)
	return listingCoreDTO{
		ID:          core.ID.String(),
		Status:      core.Status.String(),
		Images:      images,
		Price:       core.Price,
		Location:    core.Location,
		Description: core.Description,
		CreatedAt:   core.CreatedAt,
		UpdatedAt:   core.UpdatedAt,
	}
}

// listingDTO renders a catalog record as its public JSON shape.
func listingDTO(rec catalog.Record) any {
	switch row := rec.(type) {
	case *models.BuyListing:
		return buyListingDTO{
			listingCoreDTO:   coreDTO(row.Core()),
			Name:             row.Name,
			PropertyType:     row.PropertyType,
			Beds:             row.Beds,
			Baths:            row.Baths,
			Sqft:             row.Sqft,
			Furnishing:       row.Furnishing.String(),
			AmenitiesIndoor:  append([]string(nil), row.AmenitiesIndoor...),
			AmenitiesOutdoor: append([]string(nil), row.AmenitiesOutdoor...),
			Reference:        row.Reference,
			ZoneName:         row.ZoneName,
			DLDPermitNumber:  row.DLDPermitNumber,
			QRCode:           row.QRCode,
		}
	case *models.CommercialListing:
		return commercialListingDTO{
			listingCoreDTO:  coreDTO(row.Core()),
			Name:            row.Name,
			PropertyType:    row.PropertyType,
			Sqft:            row.Sqft,
			Reference:       row.Reference,
			ZoneName:        row.ZoneName,
			DLDPermitNumber: row.DLDPermitNumber,
			QRCodeImage:     row.QRCode,
		}
	case *models.OffPlanListing:
		project, subtitle := splitTitle(row.Title)
		return offPlanListingDTO{
			listingCoreDTO: coreDTO(row.Core()),
			Title:          row.Title,
			ProjectName:    project,
			Subtitle:       subtitle,
			Developer:      row.Developer,
			PropertyType:   row.PropertyType,
			HandoverDate:   row.HandoverDate,
			ProjectNumber:  row.ProjectNumber,
			MainImage:      row.MainImage,
			DownPayment:    row.DownPayment,
			Installment1:   row.Installment1,
			Installment2:   row.Installment2,
			QRCode:         row.QRCode,
		}
	}
	return rec
}

func listingDTOs(recs []catalog.Record) []any {
	out := make([]any, 0, len(recs))
	for _, rec := range recs {
		out = append(out, listingDTO(rec))
	}
	return out
}

// splitTitle breaks the stored "project|subtitle" composite apart. Storage
// keeps the composite; only the read payload splits it.
func splitTitle(title string) (string, string) {
	project, subtitle, found := strings.Cut(title, "|")
	if !found {
		return strings.TrimSpace(title), ""
	}
	return strings.TrimSpace(project), strings.TrimSpace(subtitle)
}

package controllers

import (
	"net/http"

	"github.com/Thilina-Shamika/property-stable-sub000/api/responses"
	"github.com/Thilina-Shamika/property-stable-sub000/api/validators"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/inquiries"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

type submitInquiryRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	PropertyID   string `json:"propertyId" validate:"required"`
	PropertyType string `json:"propertyType" validate:"required"`
}

// SubmitInquiry captures a public lead against a listing.
func SubmitInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inquiry service unavailable"))
			return
		}

		var body submitInquiryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		inquiry, err := svc.Submit(r.Context(), inquiries.SubmitInput{
			Name:         body.Name,
			Email:        body.Email,
			Phone:        body.Phone,
			Message:      body.Message,
			PropertyID:   body.PropertyID,
			PropertyType: body.PropertyType,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, inquiry)
	}
}

// ListInquiries returns every captured lead, newest first.
func ListInquiries(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inquiry service unavailable"))
			return
		}

		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

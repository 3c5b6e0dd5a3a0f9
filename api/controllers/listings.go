package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Thilina-Shamika/property-stable-sub000/api/responses"
	"github.com/Thilina-Shamika/property-stable-sub000/api/validators"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

// PublicListListings serves the public catalog for one kind. The search
// predicate is ignored on this surface.
func PublicListListings(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return listListings(svc, logg, catalog.ScopePublic)
}

// AdminListListings serves the back-office catalog, drafts included.
func AdminListListings(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return listListings(svc, logg, catalog.ScopeAdmin)
}

func listListings(svc catalog.Service, logg *logger.Logger, scope catalog.Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		recs, err := svc.List(r.Context(), scope, validators.ListingQuery(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listingDTOs(recs))
	}
}

// GetListing returns one record by id regardless of status.
func GetListing(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := listingID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listingDTO(rec))
	}
}

// CreateListing handles the admin multipart create for one kind.
func CreateListing(svc catalog.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		form, err := validators.ParseListingForm(r, maxUploadBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.Create(r.Context(), catalog.WriteInput{
			Fields: form.Fields,
			Images: form.Images,
			QRCode: form.QRCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, listingDTO(rec))
	}
}

// UpdateListing handles the admin multipart update, honoring the
// If-Unmodified-Since precondition when the client sends one.
func UpdateListing(svc catalog.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := listingID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		precondition, err := parsePrecondition(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := validators.ParseListingForm(r, maxUploadBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.Update(r.Context(), id, catalog.WriteInput{
			Fields:            form.Fields,
			Images:            form.Images,
			QRCode:            form.QRCode,
			RetainedImages:    form.RetainedImages,
			RetainedQRCode:    form.RetainedQRCode,
			IfUnmodifiedSince: precondition,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listingDTO(rec))
	}
}

type statusPatchRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateListingStatus flips the publication state without touching any
// descriptive field.
func UpdateListingStatus(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := listingID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body statusPatchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.SetStatus(r.Context(), id, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listingDTO(rec))
	}
}

// DeleteListing removes a record and cascades its media.
func DeleteListing(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := listingID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func listingID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid listing id")
	}
	return id, nil
}

func parsePrecondition(r *http.Request) (*time.Time, error) {
	raw := r.Header.Get("If-Unmodified-Since")
	if raw == "" {
		return nil, nil
	}
	at, err := http.ParseTime(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid If-Unmodified-Since header")
	}
	return &at, nil
}

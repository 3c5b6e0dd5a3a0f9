package inquiries

import (
	"context"
	"fmt"
	"strings"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

// Service captures buyer inquiries against a listing reference. The
// reference is deliberately unchecked: an inquiry may outlive the listing
// it points at.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
}

// SubmitInput is the public lead-capture payload.
type SubmitInput struct {
	Name         string
	Email        string
	Phone        string
	Message      string
	PropertyID   string
	PropertyType string
}

type repository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context) ([]models.Inquiry, error)
}

type service struct {
	repo repository
	logg *logger.Logger
}

// NewService constructs the inquiry service.
func NewService(repo repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inquiry repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Submit validates and stores one inquiry.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.Inquiry, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"propertyId", input.PropertyID},
		{"propertyType", input.PropertyType},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing required field "+field.name).
				WithDetails(map[string]string{"field": field.name})
		}
	}

	if _, err := enums.ParseListingKind(strings.TrimSpace(input.PropertyType)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property type").
			WithDetails(map[string]string{"field": "propertyType"})
	}

	inquiry := &models.Inquiry{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Message:      strings.TrimSpace(input.Message),
		PropertyID:   strings.TrimSpace(input.PropertyID),
		PropertyType: strings.TrimSpace(input.PropertyType),
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting inquiry")
	}

	s.logg.Info(s.logg.WithField(ctx, "inquiry_id", inquiry.ID.String()), "inquiry submitted")
	return inquiry, nil
}

// List returns every stored inquiry, newest first.
func (s *service) List(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing inquiries")
	}
	return rows, nil
}

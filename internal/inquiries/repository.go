package inquiries

import (
	"context"

	"gorm.io/gorm"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
)

// Repository persists buyer inquiries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new inquiry row.
func (r *Repository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// List fetches inquiries newest-first for the admin back office.
func (r *Repository) List(ctx context.Context) ([]models.Inquiry, error) {
	var rows []models.Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
)

// ListingCore carries the columns shared by every catalog kind. Each kind
// embeds it so the catalog service can mutate status, media, and timestamps
// without knowing the concrete row type.
type ListingCore struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Status      enums.ListingStatus `gorm:"column:status;not null;default:'draft'"`
	Images      pq.StringArray      `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	QRCode      string              `gorm:"column:qr_code"`
	Price       string              `gorm:"column:price;not null"`
	Location    string              `gorm:"column:location;not null"`
	Description string              `gorm:"column:description;not null"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a buyer lead referencing a listing. The reference is not
// checked against the catalog; inquiries may outlive the listing they
// point at.
type Inquiry struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null"`
	Phone        string    `gorm:"column:phone"`
	Message      string    `gorm:"column:message"`
	PropertyID   string    `gorm:"column:property_id;not null"`
	PropertyType string    `gorm:"column:property_type;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Inquiry) TableName() string { return "inquiries" }

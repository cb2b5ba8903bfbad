package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount represents a discount with a validity window
type Discount struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	Type       enum.DiscountType `gorm:"size:10;not null;default:'FLAT'" json:"type"`
	Value      decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"value"`
	ValidFrom  time.Time         `gorm:"not null" json:"valid_from"`
	ValidUntil time.Time         `gorm:"not null" json:"valid_until"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsActive reports whether the discount is valid at the given instant.
// Evaluated at read time, never cached.
func (d *Discount) IsActive(now time.Time) bool {
	return !now.Before(d.ValidFrom) && !now.After(d.ValidUntil)
}

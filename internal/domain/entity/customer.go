package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a customer profile attached to a user account
type Customer struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Membership enum.MembershipLevel `gorm:"size:10;not null;default:'BRONZE'" json:"membership"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Discount returns the discount percentage derived from the membership tier
func (c *Customer) Discount() float64 {
	return c.Membership.Discount()
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a product category. Categories form a tree through the
// self-referential ParentID; deleting a category deletes its whole subtree.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Parent        *Category  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Subcategories []Category `gorm:"foreignKey:ParentID" json:"-"`
	Products      []Product  `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// IsTopLevel reports whether the category has no parent
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}

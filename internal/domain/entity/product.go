package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplierShareRate is the cut of the product price that the supplier gets.
var SupplierShareRate = decimal.NewFromFloat(0.7)

// Product represents a product in the catalog
type Product struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID       *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Description      *string         `gorm:"type:text" json:"description,omitempty"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity    int             `gorm:"default:0" json:"stock_quantity"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	ReorderThreshold int             `gorm:"default:10" json:"reorder_threshold"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships. A product survives deletion of its category or
	// supplier, the reference is just nulled out.
	Category   *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Supplier   *Supplier   `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// NeedsReorder reports whether stock has fallen to the reorder threshold
func (p *Product) NeedsReorder() bool {
	return p.StockQuantity <= p.ReorderThreshold
}

// SupplierShare returns the part of the product price owed to the supplier
func (p *Product) SupplierShare() decimal.Decimal {
	return p.Price.Mul(SupplierShareRate)
}

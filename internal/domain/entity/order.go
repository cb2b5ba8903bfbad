package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a customer order
type Order struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status          enum.OrderStatus `gorm:"size:10;not null;default:'PENDING'" json:"status"`
	TotalPrice      decimal.Decimal  `gorm:"type:numeric(10,2);not null;default:0" json:"total_price"`
	DiscountApplied *decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_applied,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships. Items are owned by the order and go away with it.
	Customer *Customer   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// TotalFromItems recomputes the order total from its loaded items,
// applying the discount percentage when one is set.
func (o *Order) TotalFromItems() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if o.DiscountApplied != nil {
		total = total.Sub(total.Mul(o.DiscountApplied.Div(decimal.NewFromInt(100))))
	}
	return total.Round(2)
}

// OrderItem represents a line item in an order. Price is a snapshot of the
// product price taken when the item is created and is never recomputed.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Order   Order    `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// BeforeCreate generates a UUID and snapshots the product price
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	if oi.Price.IsZero() {
		var price decimal.Decimal
		if err := tx.Model(&Product{}).
			Select("price").
			Where("id = ?", oi.ProductID).
			Scan(&price).Error; err != nil {
			return err
		}
		oi.Price = price
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// TotalPrice returns the line total for this item
func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

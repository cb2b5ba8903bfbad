package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	Description      *string `json:"description"`
	Price            string  `json:"price" binding:"required"`
	StockQuantity    int     `json:"stock_quantity" binding:"omitempty,min=0"`
	IsActive         *bool   `json:"is_active"`
	CategoryID       *string `json:"category_id" binding:"omitempty,uuid"`
	SupplierID       *string `json:"supplier_id" binding:"omitempty,uuid"`
	ReorderThreshold *int    `json:"reorder_threshold" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	Description      *string `json:"description"`
	Price            string  `json:"price" binding:"required"`
	StockQuantity    int     `json:"stock_quantity" binding:"omitempty,min=0"`
	IsActive         *bool   `json:"is_active"`
	CategoryID       *string `json:"category_id" binding:"omitempty,uuid"`
	SupplierID       *string `json:"supplier_id" binding:"omitempty,uuid"`
	ReorderThreshold *int    `json:"reorder_threshold" binding:"omitempty,min=0"`
}

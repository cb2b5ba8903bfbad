package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

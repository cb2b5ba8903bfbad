package request

// CreateDiscountRequest represents a discount creation request
type CreateDiscountRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Type       string `json:"type" binding:"omitempty,oneof=FLAT"`
	Value      string `json:"value" binding:"required"`
	ValidFrom  string `json:"valid_from" binding:"required"`
	ValidUntil string `json:"valid_until" binding:"required"`
}

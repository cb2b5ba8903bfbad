package request

// CreateCustomerRequest represents a customer profile creation request
type CreateCustomerRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	Membership string `json:"membership" binding:"omitempty,oneof=BRONZE SILVER GOLD"`
}

// UpdateMembershipRequest represents a membership change request
type UpdateMembershipRequest struct {
	Membership string `json:"membership" binding:"required,oneof=BRONZE SILVER GOLD"`
}

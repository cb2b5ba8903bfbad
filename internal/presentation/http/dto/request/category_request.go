package request

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

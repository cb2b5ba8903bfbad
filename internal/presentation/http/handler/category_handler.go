package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/request"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/response"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /categories/. It returns the top-level categories, each
// with its immediate subcategories and their products.
func (h *CategoryHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.categoryService.ListTopLevel(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	trees := pagination.NewPaginatedResult(
		response.NewCategoryProductTrees(result.Items),
		result.Pagination,
	)
	response.SuccessWithPagination(c, 200, "Categories retrieved successfully", trees)
}

// Get handles GET /categories/:id/. It returns the category's full subtree
// without product listings.
func (h *CategoryHandler) Get(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	node, err := h.categoryService.MaterializeTree(c.Request.Context(), *id, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", response.NewCategoryTree(node))
}

// NestedProducts handles GET /categories/:id/nested-products/. It returns
// the category's full subtree with the products directly assigned to every
// node.
func (h *CategoryHandler) NestedProducts(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	node, err := h.categoryService.MaterializeTree(c.Request.Context(), *id, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category products retrieved successfully", response.NewCategoryProductTree(node))
}

// Create handles POST /categories/create/
func (h *CategoryHandler) Create(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateCategoryInput{Name: req.Name}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			response.BadRequest(c, "Invalid parent ID")
			return
		}
		input.ParentID = &parentID
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// Update handles PATCH /categories/:id/
func (h *CategoryHandler) Update(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateCategoryInput{ID: *id}
	if req.Name != nil {
		input.Name = *req.Name
	}
	// An omitted parent_id leaves the parent untouched; an empty string
	// detaches the category to top level.
	if req.ParentID != nil {
		input.ParentSet = true
		if *req.ParentID != "" {
			parentID, err := uuid.Parse(*req.ParentID)
			if err != nil {
				response.BadRequest(c, "Invalid parent ID")
				return
			}
			input.ParentID = &parentID
		}
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// Delete handles DELETE /categories/:id/
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), *id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/request"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/response"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products with optional filters
func (h *ProductHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
	}

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		params.CategoryID = &categoryID
	}
	if raw := c.Query("supplier_id"); raw != "" {
		supplierID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		params.SupplierID = &supplierID
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		params.IsActive = &active
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), *id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", gin.H{
		"product":        product,
		"needs_reorder":  product.NeedsReorder(),
		"supplier_share": product.SupplierShare().StringFixed(2),
	})
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := productInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	createReq := request.CreateProductRequest(req)
	base, err := productInputFromRequest(&createReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:               *id,
		Name:             base.Name,
		Description:      base.Description,
		Price:            base.Price,
		StockQuantity:    base.StockQuantity,
		IsActive:         base.IsActive,
		CategoryID:       base.CategoryID,
		SupplierID:       base.SupplierID,
		ReorderThreshold: base.ReorderThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), *id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// ReorderNeeded handles listing products at or below their reorder threshold
func (h *ProductHandler) ReorderNeeded(c *gin.Context) {
	products, err := h.productService.ListReorderNeeded(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reorder list retrieved successfully", products)
}

func productInputFromRequest(req *request.CreateProductRequest) (*service.CreateProductInput, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, apperror.NewValidationError("price", "price must be a valid decimal number")
	}

	input := &service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         price,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	if req.ReorderThreshold != nil {
		input.ReorderThreshold = *req.ReorderThreshold
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, apperror.NewValidationError("category_id", "category_id must be a valid UUID")
		}
		input.CategoryID = &categoryID
	}
	if req.SupplierID != nil {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, apperror.NewValidationError("supplier_id", "supplier_id must be a valid UUID")
		}
		input.SupplierID = &supplierID
	}
	return input, nil
}

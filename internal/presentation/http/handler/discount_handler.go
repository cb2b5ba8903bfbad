package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/request"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/response"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DiscountHandler handles discount-related HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// List handles listing discounts. active=true narrows to discounts whose
// validity window contains the current time.
func (h *DiscountHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	activeOnly := c.Query("active") == "true"

	result, err := h.discountService.ListDiscounts(c.Request.Context(), &pageParams, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Discounts retrieved successfully", result)
}

// Get handles retrieving a single discount
func (h *DiscountHandler) Get(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), *id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", gin.H{
		"discount":  discount,
		"is_active": discount.IsActive(time.Now()),
	})
}

// Create handles discount creation
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		response.Error(c, apperror.NewValidationError("value", "value must be a valid decimal number"))
		return
	}
	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		response.Error(c, apperror.NewValidationError("valid_from", "valid_from must be an RFC3339 timestamp"))
		return
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		response.Error(c, apperror.NewValidationError("valid_until", "valid_until must be an RFC3339 timestamp"))
		return
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), &service.CreateDiscountInput{
		Name:       req.Name,
		Type:       enum.DiscountType(req.Type),
		Value:      value,
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", discount)
}

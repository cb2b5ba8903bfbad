package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/request"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/response"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with optional membership filter and search
func (h *CustomerHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.CustomerFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
	}
	if raw := c.Query("membership"); raw != "" {
		membership := enum.MembershipLevel(raw)
		if !membership.Valid() {
			response.BadRequest(c, "Invalid membership level")
			return
		}
		params.Membership = &membership
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles retrieving a single customer with the discount derived from
// their membership level
func (h *CustomerHandler) Get(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), *id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", gin.H{
		"customer": customer,
		"discount": customer.Discount(),
	})
}

// Create handles attaching a customer profile to a user
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	membership := enum.MembershipBronze
	if req.Membership != "" {
		membership = enum.MembershipLevel(req.Membership)
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		UserID:     userID,
		Membership: membership,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// UpdateMembership handles changing a customer's membership level
func (h *CustomerHandler) UpdateMembership(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateMembership(c.Request.Context(), *id, enum.MembershipLevel(req.Membership))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership updated successfully", customer)
}

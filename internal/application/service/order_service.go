package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// OrderService handles read access to orders. Order creation and status
// transitions happen elsewhere; this API only reports on them.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with optional customer and status filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, apperror.NewValidationError("status", "status must be one of PENDING, COMPLETED, CANCELLED")
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// StatusFilter parses an optional status query value into a filter
func StatusFilter(s string) (*enum.OrderStatus, error) {
	if s == "" {
		return nil, nil
	}
	status := enum.OrderStatus(s)
	if !status.Valid() {
		return nil, apperror.NewValidationError("status", "status must be one of PENDING, COMPLETED, CANCELLED")
	}
	return &status, nil
}

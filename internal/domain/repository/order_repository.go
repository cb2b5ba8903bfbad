package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// OrderFilterParams holds filters for order listing
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	Status     *enum.OrderStatus
}

// OrderRepository defines data access for orders
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

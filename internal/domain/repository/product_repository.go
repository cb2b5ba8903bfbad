package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// ProductFilterParams holds filters for product listing
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	IsActive   *bool
}

// ProductRepository defines data access for products
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)

	// ListByCategory returns the products directly owned by a category,
	// newest first. Products are never inherited from parent or child
	// categories.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error)

	// ListReorderNeeded returns products whose stock has fallen to their
	// reorder threshold.
	ListReorderNeeded(ctx context.Context) ([]entity.Product, error)
}

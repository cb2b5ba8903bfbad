package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// DiscountFilterParams holds filters for discount listing
type DiscountFilterParams struct {
	Pagination *pagination.PaginationParams

	// ActiveAt filters to discounts whose validity window contains the
	// given instant.
	ActiveAt *time.Time
}

// DiscountRepository defines data access for discounts
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	List(ctx context.Context, params *DiscountFilterParams) ([]entity.Discount, int64, error)
}

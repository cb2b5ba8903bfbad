package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// CustomerFilterParams holds filters for customer listing
type CustomerFilterParams struct {
	Pagination *pagination.PaginationParams
	Membership *enum.MembershipLevel
	Search     string
}

// CustomerRepository defines data access for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
}

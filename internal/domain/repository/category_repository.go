package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// CategoryRepository defines data access for the category tree
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListRoots returns top-level categories (no parent), newest first.
	ListRoots(ctx context.Context, params *pagination.PaginationParams) ([]entity.Category, int64, error)

	// ListByParent returns the immediate children of a category, newest first.
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]entity.Category, error)
}

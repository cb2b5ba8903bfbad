package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// DiscountService handles discount-related operations
type DiscountService struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	Name       string
	Type       enum.DiscountType
	Value      decimal.Decimal
	ValidFrom  time.Time
	ValidUntil time.Time
}

// CreateDiscount creates a new discount
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("name", "name is required")
	}
	if input.Type == "" {
		input.Type = enum.DiscountTypeFlat
	}
	if !input.Type.Valid() {
		return nil, apperror.NewValidationError("type", "type must be FLAT")
	}
	if input.Value.IsNegative() {
		return nil, apperror.NewValidationError("value", "value must not be negative")
	}
	if input.ValidUntil.Before(input.ValidFrom) {
		return nil, apperror.NewValidationError("valid_until", "valid_until must not be before valid_from")
	}

	discount := &entity.Discount{
		Name:       input.Name,
		Type:       input.Type,
		Value:      input.Value,
		ValidFrom:  input.ValidFrom,
		ValidUntil: input.ValidUntil,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// ListDiscounts lists discounts, optionally only those active right now.
// Activity is evaluated against the clock at query time, never cached.
func (s *DiscountService) ListDiscounts(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) (*pagination.PaginatedResult[entity.Discount], error) {
	filter := &repository.DiscountFilterParams{Pagination: params}
	if activeOnly {
		now := time.Now()
		filter.ActiveAt = &now
	}

	discounts, total, err := s.discountRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(discounts, pag), nil
}

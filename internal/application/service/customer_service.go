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

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, userRepo repository.UserRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID     uuid.UUID
	Membership enum.MembershipLevel
}

// CreateCustomer attaches a customer profile to an existing user
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if !input.Membership.Valid() {
		return nil, apperror.NewValidationError("membership", "membership must be one of BRONZE, SILVER, GOLD")
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewValidationError("user_id", "user does not exist")
	}

	existing, err := s.customerRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("This user already has a customer profile")
	}

	customer := &entity.Customer{
		UserID:     input.UserID,
		Membership: input.Membership,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	customer.User = *user
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateMembership changes a customer's membership tier
func (s *CustomerService) UpdateMembership(ctx context.Context, id uuid.UUID, membership enum.MembershipLevel) (*entity.Customer, error) {
	if !membership.Valid() {
		return nil, apperror.NewValidationError("membership", "membership must be one of BRONZE, SILVER, GOLD")
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Membership = membership
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// ListCustomers lists customers with optional membership filter and search
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	if params.Membership != nil && !params.Membership.Valid() {
		return nil, apperror.NewValidationError("membership", "membership must be one of BRONZE, SILVER, GOLD")
	}

	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

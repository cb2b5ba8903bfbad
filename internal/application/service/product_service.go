package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, supplierRepo repository.SupplierRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name             string
	Description      *string
	Price            decimal.Decimal
	StockQuantity    int
	IsActive         bool
	CategoryID       *uuid.UUID
	SupplierID       *uuid.UUID
	ReorderThreshold int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("name", "name is required")
	}
	if input.Price.IsNegative() {
		return nil, apperror.NewValidationError("price", "price must not be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewValidationError("category_id", "category does not exist")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewValidationError("supplier_id", "supplier does not exist")
		}
	}

	product := &entity.Product{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		StockQuantity:    input.StockQuantity,
		IsActive:         input.IsActive,
		CategoryID:       input.CategoryID,
		SupplierID:       input.SupplierID,
		ReorderThreshold: input.ReorderThreshold,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID               uuid.UUID
	Name             string
	Description      *string
	Price            decimal.Decimal
	StockQuantity    int
	IsActive         bool
	CategoryID       *uuid.UUID
	SupplierID       *uuid.UUID
	ReorderThreshold int
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Price.IsNegative() {
		return nil, apperror.NewValidationError("price", "price must not be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewValidationError("category_id", "category does not exist")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewValidationError("supplier_id", "supplier does not exist")
		}
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.IsActive = input.IsActive
	product.CategoryID = input.CategoryID
	product.SupplierID = input.SupplierID
	product.ReorderThreshold = input.ReorderThreshold

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filters
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListReorderNeeded returns products whose stock has fallen to the reorder
// threshold
func (s *ProductService) ListReorderNeeded(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListReorderNeeded(ctx)
}

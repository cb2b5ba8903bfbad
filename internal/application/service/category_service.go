package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
)

// maxTreeDepth bounds subtree materialization. The data model cannot rule
// out a parent cycle, so recursion has to stop somewhere even on malformed
// rows that survived the write-time guard.
const maxTreeDepth = 64

// errMalformedTree is returned when materialization runs into a cycle or an
// implausibly deep chain.
var errMalformedTree = apperror.NewAppError(http.StatusInternalServerError, "category tree is malformed")

// CategoryNode is a materialized category subtree. Products is populated
// only when products were requested, and holds exactly the products whose
// category foreign key is this node, never those of ancestors or
// descendants.
type CategoryNode struct {
	Category      entity.Category
	Subcategories []*CategoryNode
	Products      []entity.Product
}

// CategoryService handles the category tree and its materialization
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name     string
	ParentID *uuid.UUID
}

// CreateCategory creates a new category, optionally under a parent
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("name", "name is required")
	}

	if input.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewValidationError("parent_id", "parent category does not exist")
		}
	}

	category := &entity.Category{
		Name:     input.Name,
		ParentID: input.ParentID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategoryInput represents the update category input. ParentSet
// distinguishes "reparent" (possibly to nil, detaching to top level) from
// "leave the parent alone"; a partial update that omits it never moves the
// category.
type UpdateCategoryInput struct {
	ID        uuid.UUID
	Name      string
	ParentID  *uuid.UUID
	ParentSet bool
}

// UpdateCategory renames and/or reparents a category. Reparenting rejects
// any parent whose ancestor chain already contains the category, so a cycle
// can never be written.
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.ParentSet && input.ParentID != nil {
		if *input.ParentID == category.ID {
			return nil, apperror.NewValidationError("parent_id", "category cannot be its own parent")
		}
		parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewValidationError("parent_id", "parent category does not exist")
		}
		wouldCycle, err := s.chainContains(ctx, parent, category.ID)
		if err != nil {
			return nil, err
		}
		if wouldCycle {
			return nil, apperror.NewValidationError("parent_id", "parent chain would contain the category itself")
		}
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.ParentSet {
		category.ParentID = input.ParentID
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// chainContains walks the ancestor chain starting at from and reports
// whether id appears in it.
func (s *CategoryService) chainContains(ctx context.Context, from *entity.Category, id uuid.UUID) (bool, error) {
	current := from
	for depth := 0; current != nil && current.ParentID != nil; depth++ {
		if depth >= maxTreeDepth {
			return false, errMalformedTree
		}
		if *current.ParentID == id {
			return true, nil
		}
		next, err := s.categoryRepo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return false, err
		}
		current = next
	}
	return false, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// DeleteCategory deletes a category together with its whole subtree. Soft
// delete only stamps deleted_at, so the database-level cascade never fires;
// the descendants are collected and removed explicitly, children before
// parents, to avoid stranding subtrees that stay reachable by id.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	ids, err := s.collectSubtree(ctx, id)
	if err != nil {
		return err
	}
	for i := len(ids) - 1; i >= 0; i-- {
		if err := s.categoryRepo.Delete(ctx, ids[i]); err != nil {
			return err
		}
	}
	return nil
}

// collectSubtree gathers a category id and all of its descendants in
// breadth-first order, with the same cycle and depth guards as
// materialization.
func (s *CategoryService) collectSubtree(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	visited := map[uuid.UUID]bool{}
	var ids []uuid.UUID

	frontier := []uuid.UUID{id}
	for depth := 0; len(frontier) > 0; depth++ {
		if depth >= maxTreeDepth {
			return nil, errMalformedTree
		}
		var next []uuid.UUID
		for _, current := range frontier {
			if visited[current] {
				return nil, errMalformedTree
			}
			visited[current] = true
			ids = append(ids, current)

			children, err := s.categoryRepo.ListByParent(ctx, current)
			if err != nil {
				return nil, err
			}
			for i := range children {
				next = append(next, children[i].ID)
			}
		}
		frontier = next
	}
	return ids, nil
}

// MaterializeTree resolves the full descendant subtree of a category. Every
// level is expanded, not just the immediate children. When withProducts is
// set, each node additionally carries the products directly attached to it.
func (s *CategoryService) MaterializeTree(ctx context.Context, id uuid.UUID, withProducts bool) (*CategoryNode, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	visited := map[uuid.UUID]bool{}
	return s.materialize(ctx, category, withProducts, visited, 0)
}

func (s *CategoryService) materialize(ctx context.Context, category *entity.Category, withProducts bool, visited map[uuid.UUID]bool, depth int) (*CategoryNode, error) {
	if depth >= maxTreeDepth || visited[category.ID] {
		return nil, errMalformedTree
	}
	visited[category.ID] = true

	node := &CategoryNode{
		Category:      *category,
		Subcategories: []*CategoryNode{},
	}

	if withProducts {
		products, err := s.productRepo.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []entity.Product{}
		}
		node.Products = products
	}

	children, err := s.categoryRepo.ListByParent(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	for i := range children {
		child, err := s.materialize(ctx, &children[i], withProducts, visited, depth+1)
		if err != nil {
			return nil, err
		}
		node.Subcategories = append(node.Subcategories, child)
	}

	return node, nil
}

// ListTopLevel returns paginated top-level categories, each carrying its
// immediate subcategories only. Every subcategory comes with its own
// directly attached products; deeper levels are not expanded here.
func (s *CategoryService) ListTopLevel(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*CategoryNode], error) {
	roots, total, err := s.categoryRepo.ListRoots(ctx, params)
	if err != nil {
		return nil, err
	}

	nodes := make([]*CategoryNode, 0, len(roots))
	for i := range roots {
		node := &CategoryNode{
			Category:      roots[i],
			Subcategories: []*CategoryNode{},
		}

		children, err := s.categoryRepo.ListByParent(ctx, roots[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range children {
			products, err := s.productRepo.ListByCategory(ctx, children[j].ID)
			if err != nil {
				return nil, err
			}
			if products == nil {
				products = []entity.Product{}
			}
			node.Subcategories = append(node.Subcategories, &CategoryNode{
				Category:      children[j],
				Subcategories: []*CategoryNode{},
				Products:      products,
			})
		}

		nodes = append(nodes, node)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(nodes, pag), nil
}

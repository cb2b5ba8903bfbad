package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo keeps categories in insertion order so child listings are
// deterministic.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	for i, c := range f.categories {
		if c.ID == category.ID {
			f.categories[i] = category
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) ListRoots(ctx context.Context, params *pagination.PaginationParams) ([]entity.Category, int64, error) {
	var roots []entity.Category
	for _, c := range f.categories {
		if c.ParentID == nil {
			roots = append(roots, *c)
		}
	}
	return roots, int64(len(roots)), nil
}

func (f *fakeCategoryRepo) ListByParent(ctx context.Context, parentID uuid.UUID) ([]entity.Category, error) {
	var children []entity.Category
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, *c)
		}
	}
	return children, nil
}

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListReorderNeeded(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}

func newCategory(name string, parentID *uuid.UUID) *entity.Category {
	return &entity.Category{ID: uuid.New(), Name: name, ParentID: parentID}
}

func newTestProduct(name string, categoryID uuid.UUID, active bool) entity.Product {
	return entity.Product{ID: uuid.New(), Name: name, CategoryID: &categoryID, IsActive: active}
}

// buildTestTree assembles:
//
//	electronics
//	├── computers
//	│   └── laptops
//	└── audio
func buildTestTree(catRepo *fakeCategoryRepo) (root, computers, laptops, audio *entity.Category) {
	root = newCategory("Electronics", nil)
	computers = newCategory("Computers", &root.ID)
	laptops = newCategory("Laptops", &computers.ID)
	audio = newCategory("Audio", &root.ID)
	catRepo.categories = append(catRepo.categories, root, computers, laptops, audio)
	return root, computers, laptops, audio
}

func TestMaterializeTreeRecursesAllLevels(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, laptops, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	node, err := svc.MaterializeTree(context.Background(), root.ID, false)
	require.NoError(t, err)

	assert.Equal(t, root.ID, node.Category.ID)
	require.Len(t, node.Subcategories, 2)

	var computersNode *CategoryNode
	for _, child := range node.Subcategories {
		if child.Category.ID == computers.ID {
			computersNode = child
		}
	}
	require.NotNil(t, computersNode)
	require.Len(t, computersNode.Subcategories, 1)
	assert.Equal(t, laptops.ID, computersNode.Subcategories[0].Category.ID)
	assert.Empty(t, computersNode.Subcategories[0].Subcategories)

	// Products were not requested, so no node carries any.
	assert.Nil(t, node.Products)
	assert.Nil(t, computersNode.Products)
}

func TestMaterializeTreeLeaf(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	_, _, laptops, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	node, err := svc.MaterializeTree(context.Background(), laptops.ID, false)
	require.NoError(t, err)
	assert.Equal(t, laptops.ID, node.Category.ID)
	assert.NotNil(t, node.Subcategories)
	assert.Empty(t, node.Subcategories)
}

func TestMaterializeTreeNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, &fakeProductRepo{})

	_, err := svc.MaterializeTree(context.Background(), uuid.New(), false)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMaterializeTreeProductsStayOnTheirNode(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, laptops, audio := buildTestTree(catRepo)

	prodRepo := &fakeProductRepo{products: []entity.Product{
		newTestProduct("Workstation", computers.ID, true),
		newTestProduct("Ultrabook", laptops.ID, true),
		newTestProduct("Discontinued Ultrabook", laptops.ID, false),
	}}
	svc := NewCategoryService(catRepo, prodRepo)

	node, err := svc.MaterializeTree(context.Background(), root.ID, true)
	require.NoError(t, err)

	// The root owns no products directly, so its list is present but empty.
	require.NotNil(t, node.Products)
	assert.Empty(t, node.Products)

	byID := map[uuid.UUID]*CategoryNode{}
	for _, child := range node.Subcategories {
		byID[child.Category.ID] = child
	}

	computersNode := byID[computers.ID]
	require.NotNil(t, computersNode)
	require.Len(t, computersNode.Products, 1)
	assert.Equal(t, "Workstation", computersNode.Products[0].Name)

	// Products of a descendant never bubble up to its parent.
	laptopsNode := computersNode.Subcategories[0]
	require.Len(t, laptopsNode.Products, 2)

	audioNode := byID[audio.ID]
	require.NotNil(t, audioNode)
	assert.Empty(t, audioNode.Products)
}

func TestMaterializeTreeIdempotent(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, _, _, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	first, err := svc.MaterializeTree(context.Background(), root.ID, false)
	require.NoError(t, err)
	second, err := svc.MaterializeTree(context.Background(), root.ID, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMaterializeTreeCycleGuard(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	a := newCategory("A", nil)
	b := newCategory("B", &a.ID)
	catRepo.categories = append(catRepo.categories, a, b)
	// Corrupt the tree behind the write-time guard's back.
	a.ParentID = &b.ID

	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	_, err := svc.MaterializeTree(context.Background(), a.ID, false)
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, &fakeProductRepo{})

	missing := uuid.New()
	_, err := svc.CreateCategory(context.Background(), &CreateCategoryInput{
		Name:     "Orphan",
		ParentID: &missing,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateCategoryRejectsSelfParent(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, _, _, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	_, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:        root.ID,
		ParentID:  &root.ID,
		ParentSet: true,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateCategoryRejectsCycle(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, _, laptops, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	// Reparenting the root under its own grandchild would close a loop.
	_, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:        root.ID,
		ParentID:  &laptops.ID,
		ParentSet: true,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateCategoryRenameKeepsParent(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, _, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	updated, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:   computers.ID,
		Name: "Computers & Accessories",
	})
	require.NoError(t, err)
	assert.Equal(t, "Computers & Accessories", updated.Name)
	require.NotNil(t, updated.ParentID, "rename-only update must not detach the category from its parent")
	assert.Equal(t, root.ID, *updated.ParentID)
}

func TestUpdateCategoryDetachToTopLevel(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	_, computers, _, _ := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	updated, err := svc.UpdateCategory(context.Background(), &UpdateCategoryInput{
		ID:        computers.ID,
		ParentSet: true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentID)
	assert.True(t, updated.IsTopLevel())
}

func TestDeleteCategoryRemovesSubtree(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, laptops, audio := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	require.NoError(t, svc.DeleteCategory(context.Background(), root.ID))

	for _, id := range []uuid.UUID{root.ID, computers.ID, laptops.ID, audio.ID} {
		got, err := catRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, got, "deleting a category must take its whole subtree with it")
	}
}

func TestDeleteCategoryLeavesSiblingsAlone(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, laptops, audio := buildTestTree(catRepo)
	svc := NewCategoryService(catRepo, &fakeProductRepo{})

	require.NoError(t, svc.DeleteCategory(context.Background(), computers.ID))

	for _, id := range []uuid.UUID{computers.ID, laptops.ID} {
		got, err := catRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	for _, id := range []uuid.UUID{root.ID, audio.ID} {
		got, err := catRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.NotNil(t, got)
	}
}

func TestListTopLevelShape(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	root, computers, laptops, audio := buildTestTree(catRepo)

	prodRepo := &fakeProductRepo{products: []entity.Product{
		newTestProduct("Workstation", computers.ID, true),
		newTestProduct("Ultrabook", laptops.ID, true),
	}}
	svc := NewCategoryService(catRepo, prodRepo)

	result, err := svc.ListTopLevel(context.Background(), &pagination.PaginationParams{Page: 1, PerPage: 15})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	node := result.Items[0]
	assert.Equal(t, root.ID, node.Category.ID)
	require.Len(t, node.Subcategories, 2)

	for _, child := range node.Subcategories {
		switch child.Category.ID {
		case computers.ID:
			require.Len(t, child.Products, 1)
			assert.Equal(t, "Workstation", child.Products[0].Name)
			// Only the immediate level is expanded here; laptops products
			// belong to a deeper node and must not appear.
			assert.Empty(t, child.Subcategories)
		case audio.ID:
			assert.NotNil(t, child.Products)
			assert.Empty(t, child.Products)
		default:
			t.Fatalf("unexpected child %s", child.Category.Name)
		}
	}
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategoryRepo struct {
	categories []*entity.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	s.categories = append(s.categories, category)
	return nil
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (s *stubCategoryRepo) ListRoots(ctx context.Context, params *pagination.PaginationParams) ([]entity.Category, int64, error) {
	var roots []entity.Category
	for _, c := range s.categories {
		if c.ParentID == nil {
			roots = append(roots, *c)
		}
	}
	return roots, int64(len(roots)), nil
}

func (s *stubCategoryRepo) ListByParent(ctx context.Context, parentID uuid.UUID) ([]entity.Category, error) {
	var children []entity.Category
	for _, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, *c)
		}
	}
	return children, nil
}

type stubProductRepo struct {
	products []entity.Product
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range s.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) ListReorderNeeded(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func newCategoryRouter(catRepo *stubCategoryRepo, prodRepo *stubProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(service.NewCategoryService(catRepo, prodRepo))
	router := gin.New()
	router.GET("/categories/", h.List)
	router.GET("/categories/:id/", h.Get)
	router.GET("/categories/:id/nested-products/", h.NestedProducts)
	router.POST("/categories/create/", h.Create)
	router.PATCH("/categories/:id/", h.Update)
	return router
}

func seedCategoryFixture() (*stubCategoryRepo, *stubProductRepo, *entity.Category, *entity.Category) {
	root := &entity.Category{ID: uuid.New(), Name: "Electronics"}
	child := &entity.Category{ID: uuid.New(), Name: "Computers", ParentID: &root.ID}
	catRepo := &stubCategoryRepo{categories: []*entity.Category{root, child}}

	prodRepo := &stubProductRepo{products: []entity.Product{
		{ID: uuid.New(), Name: "Workstation", CategoryID: &child.ID, IsActive: true},
	}}
	return catRepo, prodRepo, root, child
}

func TestGetCategoryTreeOmitsProducts(t *testing.T) {
	catRepo, prodRepo, root, child := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+root.ID.String()+"/", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)

	assert.Equal(t, "Electronics", data["name"])
	_, hasProducts := data["products"]
	assert.False(t, hasProducts)

	subs := data["subcategories"].([]any)
	require.Len(t, subs, 1)
	sub := subs[0].(map[string]any)
	assert.Equal(t, child.ID.String(), sub["id"])
	_, hasProducts = sub["products"]
	assert.False(t, hasProducts)
}

func TestNestedProductsTreeCarriesProducts(t *testing.T) {
	catRepo, prodRepo, root, _ := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+root.ID.String()+"/nested-products/", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)

	// The root owns no products, but the key is still present and empty.
	rootProducts, ok := data["products"].([]any)
	require.True(t, ok)
	assert.Empty(t, rootProducts)

	subs := data["subcategories"].([]any)
	require.Len(t, subs, 1)
	sub := subs[0].(map[string]any)
	subProducts := sub["products"].([]any)
	require.Len(t, subProducts, 1)
	product := subProducts[0].(map[string]any)
	assert.Equal(t, "Workstation", product["name"])
	assert.Equal(t, true, product["is_active"])
}

func TestGetCategoryNotFound(t *testing.T) {
	catRepo, prodRepo, _, _ := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+uuid.NewString()+"/", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCategory(t *testing.T) {
	catRepo, prodRepo, root, _ := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories/create/",
		jsonBody(`{"name":"Audio","parent_id":"`+root.ID.String()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "Audio", data["name"])
	assert.Equal(t, root.ID.String(), data["parent_id"])
}

func TestUpdateCategoryRenameOnlyKeepsParent(t *testing.T) {
	catRepo, prodRepo, root, child := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/categories/"+child.ID.String()+"/",
		jsonBody(`{"name":"Computers & Accessories"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "Computers & Accessories", data["name"])
	assert.Equal(t, root.ID.String(), data["parent_id"])
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	catRepo, prodRepo, _, _ := seedCategoryFixture()
	router := newCategoryRouter(catRepo, prodRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories/create/",
		jsonBody(`{"name":"Orphan","parent_id":"`+uuid.NewString()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

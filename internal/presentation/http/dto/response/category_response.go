package response

import (
	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/application/service"
)

// CategoryTree is the recursive category payload without product listings.
type CategoryTree struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	ParentID      *uuid.UUID      `json:"parent_id"`
	Subcategories []*CategoryTree `json:"subcategories"`
}

// NewCategoryTree converts a materialized category node into the plain
// recursive payload.
func NewCategoryTree(node *service.CategoryNode) *CategoryTree {
	if node == nil {
		return nil
	}
	tree := &CategoryTree{
		ID:            node.Category.ID,
		Name:          node.Category.Name,
		ParentID:      node.Category.ParentID,
		Subcategories: make([]*CategoryTree, 0, len(node.Subcategories)),
	}
	for _, child := range node.Subcategories {
		tree.Subcategories = append(tree.Subcategories, NewCategoryTree(child))
	}
	return tree
}

// ProductSummary is the short product payload embedded in category trees.
type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// CategoryProductTree is the recursive category payload with the products
// directly assigned to each node.
type CategoryProductTree struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	ParentID      *uuid.UUID             `json:"parent_id"`
	Subcategories []*CategoryProductTree `json:"subcategories"`
	Products      []ProductSummary       `json:"products"`
}

// NewCategoryProductTree converts a materialized category node into the
// product-bearing recursive payload. Nodes with no products render an empty
// list rather than null.
func NewCategoryProductTree(node *service.CategoryNode) *CategoryProductTree {
	if node == nil {
		return nil
	}
	tree := &CategoryProductTree{
		ID:            node.Category.ID,
		Name:          node.Category.Name,
		ParentID:      node.Category.ParentID,
		Subcategories: make([]*CategoryProductTree, 0, len(node.Subcategories)),
		Products:      make([]ProductSummary, 0, len(node.Products)),
	}
	for _, p := range node.Products {
		tree.Products = append(tree.Products, ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			IsActive: p.IsActive,
		})
	}
	for _, child := range node.Subcategories {
		tree.Subcategories = append(tree.Subcategories, NewCategoryProductTree(child))
	}
	return tree
}

// NewCategoryProductTrees converts a slice of nodes, preserving order.
func NewCategoryProductTrees(nodes []*service.CategoryNode) []*CategoryProductTree {
	trees := make([]*CategoryProductTree, 0, len(nodes))
	for _, node := range nodes {
		trees = append(trees, NewCategoryProductTree(node))
	}
	return trees
}

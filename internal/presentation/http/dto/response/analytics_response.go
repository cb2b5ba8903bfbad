package response

import "github.com/letashop/backoffice-api/internal/domain/repository"

// RevenueResponse carries the aggregated revenue as a fixed two-decimal
// string so the amount survives JSON without float rounding.
type RevenueResponse struct {
	TotalRevenue string `json:"total_revenue"`
}

// BestSellersResponse wraps the ranked product rows.
type BestSellersResponse struct {
	Products []repository.BestSellingProduct `json:"products"`
}

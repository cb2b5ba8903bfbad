package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BestSellingProduct represents a product's position in the sales ranking
type BestSellingProduct struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TotalSold int64     `json:"total_sold"`
}

// AnalyticsRepository defines read-only aggregation queries
type AnalyticsRepository interface {
	// TotalRevenue sums total_price over completed orders created within
	// [from, to]. Either bound may be nil. An empty set sums to zero.
	TotalRevenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error)

	// BestSellingProducts ranks products by total quantity sold across all
	// order items, descending, tie-broken by product id. Products with no
	// order items at all are excluded from the ranking.
	BestSellingProducts(ctx context.Context, limit int) ([]BestSellingProduct, error)
}

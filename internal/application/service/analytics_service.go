package service

import (
	"context"
	"time"

	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// DefaultBestSellersLimit is the fallback ranking size when no limit is
// configured or given.
const DefaultBestSellersLimit = 50

// AnalyticsService computes read-only sales aggregates
type AnalyticsService struct {
	analyticsRepo    repository.AnalyticsRepository
	bestSellersLimit int
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, bestSellersLimit int) *AnalyticsService {
	if bestSellersLimit <= 0 {
		bestSellersLimit = DefaultBestSellersLimit
	}
	return &AnalyticsService{
		analyticsRepo:    analyticsRepo,
		bestSellersLimit: bestSellersLimit,
	}
}

// TotalRevenue sums completed-order totals within an optional date range.
// Dates are calendar days: startDate is expanded to the start of its day and
// endDate to the end of its day, both inclusive. An empty result set sums to
// zero rather than failing.
func (s *AnalyticsService) TotalRevenue(ctx context.Context, startDate, endDate *time.Time) (decimal.Decimal, error) {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return decimal.Zero, apperror.NewValidationError("start_date", "start_date must not be after end_date")
	}

	var from, to *time.Time
	if startDate != nil {
		t := startOfDay(*startDate)
		from = &t
	}
	if endDate != nil {
		t := endOfDay(*endDate)
		to = &t
	}

	return s.analyticsRepo.TotalRevenue(ctx, from, to)
}

// BestSellingProducts ranks products by total quantity sold, descending.
// A nil limit falls back to the configured default; zero yields an empty
// ranking. Products that were never sold are excluded entirely.
func (s *AnalyticsService) BestSellingProducts(ctx context.Context, limit *int) ([]repository.BestSellingProduct, error) {
	n := s.bestSellersLimit
	if limit != nil {
		if *limit < 0 {
			return nil, apperror.NewValidationError("limit", "limit must be a non-negative integer")
		}
		n = *limit
	}

	if n == 0 {
		return []repository.BestSellingProduct{}, nil
	}

	results, err := s.analyticsRepo.BestSellingProducts(ctx, n)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []repository.BestSellingProduct{}
	}
	return results, nil
}

// startOfDay truncates t to 00:00:00 in its own location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay expands t to the last instant of its day
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

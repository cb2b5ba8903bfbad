package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/letashop/backoffice-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	revenue decimal.Decimal
	ranking []repository.BestSellingProduct

	revenueCalls int
	lastFrom     *time.Time
	lastTo       *time.Time

	rankingCalls int
	lastLimit    int
}

func (f *fakeAnalyticsRepo) TotalRevenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	f.revenueCalls++
	f.lastFrom = from
	f.lastTo = to
	return f.revenue, nil
}

func (f *fakeAnalyticsRepo) BestSellingProducts(ctx context.Context, limit int) ([]repository.BestSellingProduct, error) {
	f.rankingCalls++
	f.lastLimit = limit
	if limit < len(f.ranking) {
		return f.ranking[:limit], nil
	}
	return f.ranking, nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestTotalRevenueNoRange(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.RequireFromString("301.25")}
	svc := NewAnalyticsService(repo, 0)

	total, err := svc.TotalRevenue(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "301.25", total.StringFixed(2))
	assert.Nil(t, repo.lastFrom)
	assert.Nil(t, repo.lastTo)
}

func TestTotalRevenueExpandsCalendarDays(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.Zero}
	svc := NewAnalyticsService(repo, 0)

	_, err := svc.TotalRevenue(context.Background(), date(2026, time.March, 10), date(2026, time.March, 14))
	require.NoError(t, err)

	require.NotNil(t, repo.lastFrom)
	require.NotNil(t, repo.lastTo)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local), *repo.lastFrom)

	// End bound is the last representable instant of the 14th, so an order
	// at 23:59:59 still falls inside while midnight of the 15th does not.
	assert.Equal(t, 23, repo.lastTo.Hour())
	assert.Equal(t, 59, repo.lastTo.Minute())
	assert.Equal(t, 59, repo.lastTo.Second())
	assert.True(t, repo.lastTo.Before(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)))
	assert.True(t, repo.lastTo.After(time.Date(2026, time.March, 14, 23, 59, 59, 0, time.Local).Add(-time.Nanosecond)))
}

func TestTotalRevenueSingleBound(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.Zero}
	svc := NewAnalyticsService(repo, 0)

	_, err := svc.TotalRevenue(context.Background(), date(2026, time.January, 1), nil)
	require.NoError(t, err)
	assert.NotNil(t, repo.lastFrom)
	assert.Nil(t, repo.lastTo)

	_, err = svc.TotalRevenue(context.Background(), nil, date(2026, time.January, 1))
	require.NoError(t, err)
	assert.Nil(t, repo.lastFrom)
	assert.NotNil(t, repo.lastTo)
}

func TestTotalRevenueInvertedRange(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.RequireFromString("999.99")}
	svc := NewAnalyticsService(repo, 0)

	_, err := svc.TotalRevenue(context.Background(), date(2026, time.March, 14), date(2026, time.March, 10))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	// The repository must not be touched for an invalid range.
	assert.Zero(t, repo.revenueCalls)
}

func TestBestSellingProductsDefaultLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, 0)

	_, err := svc.BestSellingProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBestSellersLimit, repo.lastLimit)
}

func TestBestSellingProductsConfiguredLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, 25)

	_, err := svc.BestSellingProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.lastLimit)
}

func TestBestSellingProductsExplicitLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		ranking: []repository.BestSellingProduct{
			{ID: uuid.New(), Name: "Widget", TotalSold: 150},
			{ID: uuid.New(), Name: "Gadget", TotalSold: 120},
			{ID: uuid.New(), Name: "Gizmo", TotalSold: 7},
		},
	}
	svc := NewAnalyticsService(repo, 0)

	limit := 2
	products, err := svc.BestSellingProducts(context.Background(), &limit)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, int64(150), products[0].TotalSold)
	assert.Equal(t, "Gadget", products[1].Name)
}

func TestBestSellingProductsZeroLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		ranking: []repository.BestSellingProduct{{ID: uuid.New(), Name: "Widget", TotalSold: 1}},
	}
	svc := NewAnalyticsService(repo, 0)

	limit := 0
	products, err := svc.BestSellingProducts(context.Background(), &limit)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Zero(t, repo.rankingCalls)
}

func TestBestSellingProductsNegativeLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, 0)

	limit := -1
	_, err := svc.BestSellingProducts(context.Background(), &limit)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.rankingCalls)
}

func TestBestSellingProductsNeverNil(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, 0)

	products, err := svc.BestSellingProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

package repository

import (
	"context"
	"time"

	"github.com/letashop/backoffice-api/internal/domain/entity"
	"github.com/letashop/backoffice-api/internal/domain/enum"
	domainRepo "github.com/letashop/backoffice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status = ?", enum.OrderStatusCompleted)

	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var revenue decimal.Decimal
	err := query.Select("COALESCE(SUM(total_price), 0)").Scan(&revenue).Error
	return revenue, err
}

func (r *analyticsRepository) BestSellingProducts(ctx context.Context, limit int) ([]domainRepo.BestSellingProduct, error) {
	var results []domainRepo.BestSellingProduct

	// The inner join leaves out products with no order items at all. A
	// product that was never sold is absent from the ranking, not ranked
	// with zero.
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			SUM(oi.quantity) AS total_sold
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.deleted_at IS NULL AND p.deleted_at IS NULL
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC, p.id ASC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/letashop/backoffice-api/internal/application/service"
	"github.com/letashop/backoffice-api/internal/presentation/http/dto/response"
	"github.com/letashop/backoffice-api/pkg/apperror"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Revenue handles GET /analytics/revenue. Both start_date and end_date are
// optional YYYY-MM-DD values; each bound expands to the full calendar day.
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	total, err := h.analyticsService.TotalRevenue(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue retrieved successfully", response.RevenueResponse{
		TotalRevenue: total.StringFixed(2),
	})
}

// BestSellers handles GET /analytics/best-selling-products. The optional
// limit query caps the ranking size.
func (h *AnalyticsHandler) BestSellers(c *gin.Context) {
	var limit *int
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.NewValidationError("limit", "limit must be an integer"))
			return
		}
		limit = &n
	}

	products, err := h.analyticsService.BestSellingProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Best selling products retrieved successfully", response.BestSellersResponse{
		Products: products,
	})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter in server
// local time.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, apperror.NewValidationError(name, name+" must be a valid date in YYYY-MM-DD format")
	}
	return &t, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// AnalyticsHandler serves the admin-only aggregate endpoints. Both routes are
// read-only; all aggregation happens in the service.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Metrics returns catalog KPIs, stock data, and low-stock alerts.
//
// @Summary      Catalog metrics
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  ports.MetricsResult
// @Router       /api/analytics/metrics [get]
func (h *AnalyticsHandler) Metrics(c echo.Context) error {
	result, err := h.service.Metrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Dashboard returns the sales-over-time series and top selling products.
//
// @Summary      Sales dashboard
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  ports.DashboardResult
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	result, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/api/middleware"
	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// PageHandler resolves the data (props) for server-rendered admin pages. The
// routes are mounted behind the page guard, which redirects to /login on any
// auth failure; by the time a loader runs the identity is already in context
// and gets merged into the resolved props.
type PageHandler struct {
	products  ports.ProductService
	orders    ports.OrderService
	analytics ports.AnalyticsService
}

func NewPageHandler(products ports.ProductService, orders ports.OrderService, analytics ports.AnalyticsService) *PageHandler {
	return &PageHandler{products: products, orders: orders, analytics: analytics}
}

// AdminHome loads the dashboard page props.
func (h *PageHandler) AdminHome(c echo.Context) error {
	result, err := h.analytics.Metrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withIdentity(c, map[string]any{
		"metrics": result,
	}))
}

// AdminOrders loads the order-management page props.
func (h *PageHandler) AdminOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withIdentity(c, map[string]any{
		"orders": orders,
	}))
}

// AdminProducts loads the product-management page props.
func (h *PageHandler) AdminProducts(c echo.Context) error {
	result, err := h.products.ListProducts(c.Request().Context(), ports.ListProductsInput{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, withIdentity(c, map[string]any{
		"products": result.Items,
	}))
}

// withIdentity merges the guard-resolved identity into the page props.
func withIdentity(c echo.Context, props map[string]any) pageProps {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	roles, _ := c.Get(middleware.CtxRoles).([]domain.Role)
	return pageProps{
		User:  pageUser{ID: userID, Roles: roles},
		Props: props,
	}
}

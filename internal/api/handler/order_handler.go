package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/api/metrics"
	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// OrderHandler handles checkout and admin order management.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns all orders, newest first. Admin only.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}  domain.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create places a new order and decrements stock. Deliberately unguarded:
// checkout is open to anonymous shoppers.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createOrderRequest  true   "Order details"
// @Success      201              {object}  createOrderResponse
// @Failure      400              {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		metrics.OrdersRejectedTotal.WithLabelValues("invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required order information.")
	}

	input := ports.CreateOrderInput{
		Total: req.Total,
		ShippingAddress: domain.Address{
			FullName:     req.ShippingAddress.FullName,
			AddressLine1: req.ShippingAddress.AddressLine1,
			City:         req.ShippingAddress.City,
			PostalCode:   req.ShippingAddress.PostalCode,
			Country:      req.ShippingAddress.Country,
		},
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, ports.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.service.CreateOrder(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrMissingOrderInfo) {
			metrics.OrdersRejectedTotal.WithLabelValues("missing_fields").Inc()
		}
		return err
	}

	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, createOrderResponse{
			Message: "Order already created.",
			Order:   result.Order,
		})
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(result.Order.PaymentMethod)).Inc()
	return c.JSON(http.StatusCreated, createOrderResponse{
		Message: "Order created successfully!",
		Order:   result.Order,
	})
}

// UpdateStatus moves an order to a new status. Admin only.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status provided.")
	}

	order, err := h.service.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, order)
}

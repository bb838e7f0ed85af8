package ports

import (
	"context"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// OrderItemInput is one line of an incoming order request.
type OrderItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// CreateOrderInput carries all data needed to create an order.
type CreateOrderInput struct {
	Items           []OrderItemInput
	Total           float64
	ShippingAddress domain.Address
	PaymentMethod   domain.PaymentMethod
	// IdempotencyKey, when non-empty, makes replays of the same request
	// return the originally created order without side effects.
	IdempotencyKey string
}

// OrderResult is returned by CreateOrder.
type OrderResult struct {
	Order *domain.Order
	// AlreadyExisted is true when the idempotency key matched an existing order.
	AlreadyExisted bool
}

// OrderService defines the checkout and order-management use cases.
type OrderService interface {
	// CreateOrder validates the request, appends the order and decrements
	// stock for each matched product in a single persisted snapshot update.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	// UpdateOrderStatus moves an order to any of the five known states.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

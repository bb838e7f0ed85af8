package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every known status. There is no transition graph: any
// status may follow any other, only membership in this set is enforced.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the five known states.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderStatus = errors.New("invalid order status")
var ErrMissingOrderInfo = errors.New("missing required order information")

// PaymentMethod labels how the customer intends to pay. Orders are
// speculative: nothing is charged or verified.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCreditCard || m == PaymentCashOnDelivery
}

// OrderItem is one purchased line with the price captured at purchase time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Address is the shipping destination of an order.
type Address struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// Order is the aggregate created by the checkout workflow. Orders are never
// deleted; only their status and UpdatedAt change after creation.
type Order struct {
	ID              string        `json:"id"`
	Items           []OrderItem   `json:"items"`
	Total           float64       `json:"total"`
	ShippingAddress Address       `json:"shippingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          OrderStatus   `json:"status"`
	IdempotencyKey  string        `json:"idempotencyKey,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

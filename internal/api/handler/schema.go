package handler

import (
	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// messageResponse is the canonical body for outcomes that only carry a
// human-readable message (and for all 4xx/5xx responses).
type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	User *domain.UserView `json:"user"`
}

// --- Products ---

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Images      []string `json:"images"      validate:"required,min=1"`
	Category    string   `json:"category"    validate:"required"`
	Size        string   `json:"size"        validate:"required"`
	// Pointer so an explicit zero stock passes "required".
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// updateProductRequest is a partial update; absent fields keep their value.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Images      []string `json:"images"`
	Category    *string  `json:"category"`
	Size        *string  `json:"size"`
	Stock       *int     `json:"stock"`
}

// paginatedProductsResponse mirrors the envelope the admin product table
// expects when page/limit query parameters are present.
type paginatedProductsResponse struct {
	Products      []domain.Product `json:"products"`
	TotalProducts int              `json:"totalProducts"`
	TotalPages    int              `json:"totalPages"`
	CurrentPage   int              `json:"currentPage"`
}

// --- Orders ---

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type shippingAddressRequest struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items"`
	Total           float64                `json:"total"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type createOrderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// --- Pages ---

// pageProps is the payload a server-rendered admin page loader resolves: the
// page's own data plus the authenticated identity merged in by the guard.
type pageProps struct {
	User  pageUser       `json:"user"`
	Props map[string]any `json:"props"`
}

type pageUser struct {
	ID    string        `json:"id"`
	Roles []domain.Role `json:"roles"`
}

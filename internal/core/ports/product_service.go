package ports

import (
	"context"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// ListProductsInput carries the query parameters for the catalog listing.
type ListProductsInput struct {
	Search string // optional: case-insensitive match on name or category
	Page   int    // 1-based; 0 means "no pagination"
	Limit  int    // items per page; 0 means "no pagination"
}

// ListProductsResult is returned by ListProducts. When Paginated is false the
// caller should render Items as a bare array (the public products page
// contract); otherwise the pagination envelope applies.
type ListProductsResult struct {
	Items         []domain.Product
	Paginated     bool
	TotalProducts int
	TotalPages    int
	CurrentPage   int
}

// CreateProductInput carries all fields needed to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Images      []string
	Category    string
	Size        string
	Stock       int
}

// UpdateProductInput is a partial update: nil fields keep their current value.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Images      []string
	Category    *string
	Size        *string
	Stock       *int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// ProductService implements catalog reads and the admin CRUD operations.
type ProductService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewProductService(store ports.Store, log zerolog.Logger) *ProductService {
	return &ProductService{store: store, log: log}
}

// ListProducts returns the catalog, name-sorted for a stable ordering,
// optionally filtered by a case-insensitive search over name and category.
// When both page and limit are positive the result carries a pagination
// envelope; otherwise the full filtered list is returned.
func (s *ProductService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(snap.Products))
	copy(products, snap.Products)
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	if q := strings.ToLower(strings.TrimSpace(input.Search)); q != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if input.Page <= 0 || input.Limit <= 0 {
		return &ports.ListProductsResult{Items: products}, nil
	}

	total := len(products)
	totalPages := (total + input.Limit - 1) / input.Limit
	start := (input.Page - 1) * input.Limit
	if start > total {
		start = total
	}
	end := start + input.Limit
	if end > total {
		end = total
	}

	return &ports.ListProductsResult{
		Items:         products[start:end],
		Paginated:     true,
		TotalProducts: total,
		TotalPages:    totalPages,
		CurrentPage:   input.Page,
	}, nil
}

// GetProduct returns one product by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	p := snap.ProductByID(id)
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// CreateProduct appends a new catalog entry and persists the snapshot.
func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := domain.Product{
		ID:          fmt.Sprintf("prod_%d", time.Now().UnixMilli()),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Category:    input.Category,
		Size:        input.Size,
		Stock:       input.Stock,
	}

	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Products = append(snap.Products, product)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return &product, nil
}

// UpdateProduct applies a partial update: only the fields present in input
// change, everything else keeps its stored value.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	var updated domain.Product
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.ProductByID(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.Images != nil {
			p.Images = input.Images
		}
		if input.Category != nil {
			p.Category = *input.Category
		}
		if input.Size != nil {
			p.Size = *input.Size
		}
		if input.Stock != nil {
			p.Stock = *input.Stock
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product updated")
	return &updated, nil
}

// DeleteProduct removes a product and returns the deleted entry.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	var deleted domain.Product
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				deleted = snap.Products[i]
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return &deleted, nil
}

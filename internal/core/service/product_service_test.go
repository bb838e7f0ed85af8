package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func shelfSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Products: []domain.Product{
			{ID: "p1", Name: "Carafe", Category: "glassware", Price: 30, Stock: 8},
			{ID: "p2", Name: "Bowl", Category: "glassware", Price: 20, Stock: 15},
			{ID: "p3", Name: "Apron", Category: "textile", Price: 25, Stock: 3},
		},
	}
}

func TestProductService_List_SortedAndUnpaginated(t *testing.T) {
	svc := NewProductService(newMemStore(shelfSnapshot()), zerolog.Nop())

	result, err := svc.ListProducts(context.Background(), ports.ListProductsInput{})
	require.NoError(t, err)

	assert.False(t, result.Paginated)
	require.Len(t, result.Items, 3)
	assert.Equal(t, []string{"Apron", "Bowl", "Carafe"},
		[]string{result.Items[0].Name, result.Items[1].Name, result.Items[2].Name})
}

func TestProductService_List_Search(t *testing.T) {
	svc := NewProductService(newMemStore(shelfSnapshot()), zerolog.Nop())

	// Matches name and category, case-insensitively.
	result, err := svc.ListProducts(context.Background(), ports.ListProductsInput{Search: "GLASS"})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)

	result, err = svc.ListProducts(context.Background(), ports.ListProductsInput{Search: "apron"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "p3", result.Items[0].ID)
}

func TestProductService_List_Pagination(t *testing.T) {
	svc := NewProductService(newMemStore(shelfSnapshot()), zerolog.Nop())

	result, err := svc.ListProducts(context.Background(), ports.ListProductsInput{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.True(t, result.Paginated)
	assert.Equal(t, 3, result.TotalProducts)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Carafe", result.Items[0].Name)
}

func TestProductService_Get(t *testing.T) {
	svc := NewProductService(newMemStore(shelfSnapshot()), zerolog.Nop())

	p, err := svc.GetProduct(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Bowl", p.Name)

	_, err = svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductService_CreateUpdateDelete(t *testing.T) {
	store := newMemStore(domain.Snapshot{})
	svc := NewProductService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, ports.CreateProductInput{
		Name:     "Decanter",
		Price:    45,
		Images:   []string{"/img/decanter.jpg"},
		Category: "glassware",
		Size:     "L",
		Stock:    12,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, store.writes)

	updated, err := svc.UpdateProduct(ctx, created.ID, ports.UpdateProductInput{
		Price: f64Ptr(40),
		Stock: intPtr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.Price)
	assert.Equal(t, 9, updated.Stock)
	// Untouched fields keep their values.
	assert.Equal(t, "Decanter", updated.Name)
	assert.Equal(t, "glassware", updated.Category)

	renamed, err := svc.UpdateProduct(ctx, created.ID, ports.UpdateProductInput{Name: strPtr("Crystal Decanter")})
	require.NoError(t, err)
	assert.Equal(t, "Crystal Decanter", renamed.Name)
	assert.Equal(t, 40.0, renamed.Price)

	deleted, err := svc.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, store.snap.Products)

	_, err = svc.DeleteProduct(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// lowStockThreshold marks products that are running out but not yet gone.
const lowStockThreshold = 10

// salesWindowDays is how far back the sales-over-time series reaches.
const salesWindowDays = 30

// AnalyticsService computes the read-only aggregates behind the admin
// dashboard. Everything is derived from one snapshot read; nothing is cached
// or persisted.
type AnalyticsService struct {
	store ports.Store
	log   zerolog.Logger
	// now is swappable for deterministic tests.
	now func() time.Time
}

func NewAnalyticsService(store ports.Store, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, log: log, now: time.Now}
}

// WithNow overrides the clock. Intended for tests.
func (s *AnalyticsService) WithNow(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// Metrics returns catalog KPIs, the per-product stock series, and products
// below the low-stock threshold (out-of-stock items are excluded, ascending
// by remaining stock).
func (s *AnalyticsService) Metrics(ctx context.Context) (*ports.MetricsResult, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.MetricsResult{
		StockData:        make([]ports.StockDatum, 0, len(snap.Products)),
		LowStockProducts: []ports.LowStockProduct{},
	}

	var priceSum float64
	for _, p := range snap.Products {
		result.KPIs.TotalProducts++
		result.KPIs.TotalInventory += p.Stock
		priceSum += p.Price

		result.StockData = append(result.StockData, ports.StockDatum{
			ID:    p.ID,
			Name:  p.Name,
			Stock: p.Stock,
		})

		if p.Stock > 0 && p.Stock < lowStockThreshold {
			result.LowStockProducts = append(result.LowStockProducts, ports.LowStockProduct{
				ID:    p.ID,
				Name:  p.Name,
				Stock: p.Stock,
			})
		}
	}
	if result.KPIs.TotalProducts > 0 {
		result.KPIs.AveragePrice = priceSum / float64(result.KPIs.TotalProducts)
	}

	sort.Slice(result.LowStockProducts, func(i, j int) bool {
		return result.LowStockProducts[i].Stock < result.LowStockProducts[j].Stock
	})

	return result, nil
}

// Dashboard aggregates delivered orders into a daily revenue series covering
// the last 30 days (zero-filled, date-ascending) and the five best selling
// products by unit count.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*ports.DashboardResult, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -salesWindowDays)

	daily := make(map[string]float64, salesWindowDays)
	for i := 0; i < salesWindowDays; i++ {
		daily[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}

	sales := make(map[string]*ports.ProductSales)
	for _, order := range snap.Orders {
		if order.Status != domain.StatusDelivered {
			continue
		}

		if order.CreatedAt.After(windowStart) {
			day := order.CreatedAt.UTC().Format("2006-01-02")
			if _, ok := daily[day]; ok {
				daily[day] += order.Total
			}
		}

		for _, item := range order.Items {
			ps, ok := sales[item.ProductID]
			if !ok {
				name := item.Name
				if p := snap.ProductByID(item.ProductID); p != nil {
					name = p.Name
				}
				if name == "" {
					name = "Unknown Product"
				}
				ps = &ports.ProductSales{Name: name}
				sales[item.ProductID] = ps
			}
			ps.Quantity += item.Quantity
		}
	}

	result := &ports.DashboardResult{
		SalesOverTime:      make([]ports.DailySales, 0, len(daily)),
		TopSellingProducts: []ports.ProductSales{},
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		result.SalesOverTime = append(result.SalesOverTime, ports.DailySales{Date: day, Total: daily[day]})
	}

	for _, ps := range sales {
		result.TopSellingProducts = append(result.TopSellingProducts, *ps)
	}
	sort.Slice(result.TopSellingProducts, func(i, j int) bool {
		return result.TopSellingProducts[i].Quantity > result.TopSellingProducts[j].Quantity
	})
	if len(result.TopSellingProducts) > 5 {
		result.TopSellingProducts = result.TopSellingProducts[:5]
	}

	return result, nil
}

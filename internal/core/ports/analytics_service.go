package ports

import "context"

// KPIs are the headline catalog figures on the admin dashboard.
type KPIs struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalInventory int     `json:"totalInventory"`
	AveragePrice   float64 `json:"averagePrice"`
}

// StockDatum is one product's stock level for the stock chart.
type StockDatum struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// LowStockProduct flags a product running out (0 < stock < threshold).
type LowStockProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// MetricsResult is returned by the catalog metrics endpoint.
type MetricsResult struct {
	KPIs             KPIs              `json:"kpis"`
	StockData        []StockDatum      `json:"stockData"`
	LowStockProducts []LowStockProduct `json:"lowStockProducts"`
}

// DailySales is revenue from delivered orders on one calendar day.
type DailySales struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// ProductSales counts units sold of one product across delivered orders.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardResult is returned by the sales dashboard endpoint.
type DashboardResult struct {
	SalesOverTime      []DailySales   `json:"salesOverTime"`
	TopSellingProducts []ProductSales `json:"topSellingProducts"`
}

// AnalyticsService computes read-only aggregates for the admin back-office.
type AnalyticsService interface {
	Metrics(ctx context.Context) (*MetricsResult, error)
	Dashboard(ctx context.Context) (*DashboardResult, error)
}

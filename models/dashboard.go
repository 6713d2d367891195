package models

import (
	"time"

	"github.com/google/uuid"
)

// DashboardSummary is the per-admin dashboard snapshot.
type DashboardSummary struct {
	TotalProductCount    int               `json:"total_product_count"`    // products owned by the admin
	TotalSales           int               `json:"total_sales"`            // admin-scoped orders with status completed
	StatusCounts         map[string]int    `json:"status_counts"`          // order status -> distinct order count
	TopProducts          []TopProductEntry `json:"top_products"`           // top 3 by units sold
	TotalProductEarnings float64           `json:"total_product_earnings"` // Σ quantity × price over delivered items
}

// TopProductEntry is one ranked product with its catalog metadata and the
// total units sold across all of its order items.
type TopProductEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Price     float64   `json:"price"`
	Image     *string   `json:"image,omitempty"` // first image URL, if any
	CreatedAt time.Time `json:"created_at"`
	Sold      int       `json:"sold"`
}

// DailyEarning is one day of the trailing revenue series.
type DailyEarning struct {
	Date  string  `json:"date"` // ISO day, e.g. 2025-08-04
	Total float64 `json:"total"`
}

// StatusCount is one bucket of the order status distribution chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

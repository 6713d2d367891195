package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnauthorized is returned when no admin identity was supplied. It is
// surfaced to the caller unchanged and no partial data is ever returned.
var ErrUnauthorized = errors.New("unauthorized")

const (
	dailyWindowDays  = 28
	topProductsLimit = 3
)

// DashboardService computes the per-admin dashboard metrics. It is stateless
// and purely read-only: every call takes the admin identity explicitly and
// snapshots whatever is currently persisted. Query failures propagate
// unchanged, there is no retry and no degraded result.
type DashboardService struct{}

var dashboardService = &DashboardService{}

// GetDashboardService returns the shared dashboard service
func GetDashboardService() *DashboardService {
	return dashboardService
}

// ════════════════════════════════════════════════════════════
// Row shapes (query results before reduction)
// ════════════════════════════════════════════════════════════

// orderStatusRow is one distinct admin-scoped order.
type orderStatusRow struct {
	ID     uuid.UUID
	Status string
}

// earningItemRow is one order item of the admin's products together with its
// parent order's creation time.
type earningItemRow struct {
	Quantity       int
	Price          float64
	OrderCreatedAt time.Time
}

// productSalesRow is a product id with its total units sold.
type productSalesRow struct {
	ProductID uuid.UUID
	Sold      int
}

// ════════════════════════════════════════════════════════════
// Operations
// ════════════════════════════════════════════════════════════

// GetDashboardSummary builds the dashboard snapshot for one admin: product
// count, completed sales count, distinct-order status histogram, realized
// earnings and the top 3 products by units sold.
func (s *DashboardService) GetDashboardSummary(ctx context.Context, adminID uuid.UUID) (*models.DashboardSummary, error) {
	if adminID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	db := config.Gorm.WithContext(ctx)

	var productCount int64
	if err := db.Model(&models.Product{}).
		Where("admin_id = ?", adminID).
		Count(&productCount).Error; err != nil {
		return nil, err
	}

	// Orders that contain at least one of the admin's items. DISTINCT keeps
	// the status histogram per-order: an order with three of the admin's
	// items still counts once.
	var orders []orderStatusRow
	if err := db.Raw(`
			SELECT DISTINCT o.id, o.status
			FROM orders o
			INNER JOIN order_items oi ON oi.order_id = o.id
			INNER JOIN products p ON p.id = oi.product_id
			WHERE p.admin_id = ?
		`, adminID).
		Scan(&orders).Error; err != nil {
		return nil, err
	}

	// Items that realize revenue: delivered orders only, admin's products only.
	var deliveredItems []earningItemRow
	if err := db.Raw(`
			SELECT oi.quantity, oi.price, o.created_at AS order_created_at
			FROM order_items oi
			INNER JOIN orders o ON o.id = oi.order_id
			INNER JOIN products p ON p.id = oi.product_id
			WHERE o.status = ? AND p.admin_id = ?
		`, models.OrderStatusDelivered, adminID).
		Scan(&deliveredItems).Error; err != nil {
		return nil, err
	}

	// Units sold per product across ALL order items, delivered or not.
	// product_id ASC keeps ties deterministic (UUIDv7, so oldest wins).
	var sales []productSalesRow
	if err := db.Raw(`
			SELECT oi.product_id, SUM(oi.quantity)::int AS sold
			FROM order_items oi
			INNER JOIN products p ON p.id = oi.product_id
			WHERE p.admin_id = ?
			GROUP BY oi.product_id
			ORDER BY sold DESC, oi.product_id ASC
			LIMIT ?
		`, adminID, topProductsLimit).
		Scan(&sales).Error; err != nil {
		return nil, err
	}

	topProducts, err := s.loadTopProductDetails(ctx, sales)
	if err != nil {
		return nil, err
	}

	statusCounts, completed := countOrderStatuses(orders)

	return &models.DashboardSummary{
		TotalProductCount:    int(productCount),
		TotalSales:           completed,
		StatusCounts:         statusCounts,
		TopProducts:          topProducts,
		TotalProductEarnings: sumItemEarnings(deliveredItems),
	}, nil
}

// GetDailyEarningsLastMonth returns exactly 28 day buckets of realized
// revenue ending today (UTC), ascending and zero-filled. Items are bucketed
// by their ORDER's creation date, not the item's.
func (s *DashboardService) GetDailyEarningsLastMonth(ctx context.Context, adminID uuid.UUID) ([]models.DailyEarning, error) {
	if adminID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	now := time.Now().UTC()
	window := dailyWindow(now)
	windowStart := startOfDayUTC(now).AddDate(0, 0, -(dailyWindowDays - 1))

	var items []earningItemRow
	if err := config.Gorm.WithContext(ctx).Raw(`
			SELECT oi.quantity, oi.price, o.created_at AS order_created_at
			FROM order_items oi
			INNER JOIN orders o ON o.id = oi.order_id
			INNER JOIN products p ON p.id = oi.product_id
			WHERE o.status = ? AND o.created_at >= ? AND p.admin_id = ?
		`, models.OrderStatusDelivered, windowStart, adminID).
		Scan(&items).Error; err != nil {
		return nil, err
	}

	return bucketDailyEarnings(window, items), nil
}

// GetOrderStatusDistribution returns the admin-scoped order status histogram
// as a list, sorted by status name for a stable chart legend.
func (s *DashboardService) GetOrderStatusDistribution(ctx context.Context, adminID uuid.UUID) ([]models.StatusCount, error) {
	if adminID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	var orders []orderStatusRow
	if err := config.Gorm.WithContext(ctx).Raw(`
			SELECT DISTINCT o.id, o.status
			FROM orders o
			INNER JOIN order_items oi ON oi.order_id = o.id
			INNER JOIN products p ON p.id = oi.product_id
			WHERE p.admin_id = ?
		`, adminID).
		Scan(&orders).Error; err != nil {
		return nil, err
	}

	counts, _ := countOrderStatuses(orders)
	return statusDistribution(counts), nil
}

// loadTopProductDetails enriches ranked sales rows with catalog metadata.
// Input order is preserved; a product deleted since the ranking query simply
// drops out of the list.
func (s *DashboardService) loadTopProductDetails(ctx context.Context, sales []productSalesRow) ([]models.TopProductEntry, error) {
	entries := make([]models.TopProductEntry, 0, len(sales))

	for _, row := range sales {
		var product models.Product
		err := config.Gorm.WithContext(ctx).
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Where("id = ?", row.ProductID).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		entry := models.TopProductEntry{
			ProductID: product.ID,
			Title:     product.Title,
			Slug:      product.Slug,
			Price:     product.Price,
			CreatedAt: product.CreatedAt,
			Sold:      row.Sold,
		}
		if len(product.Images) > 0 {
			entry.Image = &product.Images[0].URL
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ════════════════════════════════════════════════════════════
// Pure reductions
// ════════════════════════════════════════════════════════════

// countOrderStatuses counts orders per status and returns the number of
// completed orders alongside. The map is never nil so an admin with no
// orders serializes as {}.
func countOrderStatuses(orders []orderStatusRow) (map[string]int, int) {
	counts := make(map[string]int)
	completed := 0
	for _, o := range orders {
		counts[o.Status]++
		if o.Status == models.OrderStatusCompleted {
			completed++
		}
	}
	return counts, completed
}

// sumItemEarnings totals quantity × unit price over the given items.
func sumItemEarnings(items []earningItemRow) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// dailyWindow returns the 28 ascending UTC day keys ending at now's day.
func dailyWindow(now time.Time) []string {
	keys := make([]string, 0, dailyWindowDays)
	start := startOfDayUTC(now).AddDate(0, 0, -(dailyWindowDays - 1))
	for i := 0; i < dailyWindowDays; i++ {
		keys = append(keys, formatDayKey(start.AddDate(0, 0, i)))
	}
	return keys
}

// bucketDailyEarnings folds items into the pre-initialized window buckets.
// Items whose order date falls outside the window are dropped. The query
// already filters by date, this is only a guard against boundary rows.
func bucketDailyEarnings(window []string, items []earningItemRow) []models.DailyEarning {
	totals := make(map[string]float64, len(window))
	for _, key := range window {
		totals[key] = 0
	}

	for _, item := range items {
		key := formatDayKey(item.OrderCreatedAt)
		if _, ok := totals[key]; ok {
			totals[key] += float64(item.Quantity) * item.Price
		}
	}

	series := make([]models.DailyEarning, 0, len(window))
	for _, key := range window {
		series = append(series, models.DailyEarning{Date: key, Total: totals[key]})
	}
	return series
}

// statusDistribution flattens a status histogram into sorted chart buckets.
func statusDistribution(counts map[string]int) []models.StatusCount {
	out := make([]models.StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, models.StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

package services

import (
	"testing"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad day literal %q: %v", value, err)
	}
	return parsed
}

func TestCountOrderStatusesEmpty(t *testing.T) {
	counts, completed := countOrderStatuses(nil)

	if counts == nil {
		t.Fatal("expected non-nil map for empty input")
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty map, got %v", counts)
	}
	if completed != 0 {
		t.Fatalf("expected 0 completed orders, got %d", completed)
	}
}

func TestCountOrderStatusesPerOrder(t *testing.T) {
	orders := []orderStatusRow{
		{Status: models.OrderStatusDelivered},
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusCompleted},
		{Status: models.OrderStatusCompleted},
		{Status: models.OrderStatusPending},
	}

	counts, completed := countOrderStatuses(orders)

	if counts[models.OrderStatusDelivered] != 1 {
		t.Errorf("delivered = %d, want 1", counts[models.OrderStatusDelivered])
	}
	if counts[models.OrderStatusPending] != 2 {
		t.Errorf("pending = %d, want 2", counts[models.OrderStatusPending])
	}
	if counts[models.OrderStatusCompleted] != 2 {
		t.Errorf("completed count = %d, want 2", counts[models.OrderStatusCompleted])
	}
	if completed != 2 {
		t.Errorf("completed total = %d, want 2", completed)
	}
	if len(counts) != 3 {
		t.Errorf("expected 3 distinct statuses, got %d", len(counts))
	}
}

func TestSumItemEarnings(t *testing.T) {
	// 3 x 10.00 + 1 x 5.00 = 35.00
	items := []earningItemRow{
		{Quantity: 3, Price: 10.00},
		{Quantity: 1, Price: 5.00},
	}

	if got := sumItemEarnings(items); got != 35.00 {
		t.Errorf("sumItemEarnings = %v, want 35.00", got)
	}
}

func TestSumItemEarningsEmpty(t *testing.T) {
	if got := sumItemEarnings(nil); got != 0 {
		t.Errorf("sumItemEarnings(nil) = %v, want 0", got)
	}
}

func TestDailyWindowShape(t *testing.T) {
	now := day(t, "2026-02-15").Add(13 * time.Hour)
	window := dailyWindow(now)

	if len(window) != 28 {
		t.Fatalf("expected 28 day keys, got %d", len(window))
	}
	if window[0] != "2026-01-19" {
		t.Errorf("first key = %s, want 2026-01-19", window[0])
	}
	if window[27] != "2026-02-15" {
		t.Errorf("last key = %s, want 2026-02-15", window[27])
	}

	// Ascending and contiguous
	for i := 1; i < len(window); i++ {
		prev := day(t, window[i-1])
		curr := day(t, window[i])
		if !curr.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("window not contiguous at %d: %s then %s", i, window[i-1], window[i])
		}
	}
}

func TestDailyWindowCrossesMonthBoundary(t *testing.T) {
	window := dailyWindow(day(t, "2026-03-05"))

	if window[0] != "2026-02-06" {
		t.Errorf("first key = %s, want 2026-02-06", window[0])
	}
	if window[27] != "2026-03-05" {
		t.Errorf("last key = %s, want 2026-03-05", window[27])
	}
}

func TestBucketDailyEarningsZeroFill(t *testing.T) {
	window := dailyWindow(day(t, "2026-02-15"))

	series := bucketDailyEarnings(window, nil)

	if len(series) != 28 {
		t.Fatalf("expected 28 buckets, got %d", len(series))
	}
	for _, entry := range series {
		if entry.Total != 0 {
			t.Errorf("bucket %s = %v, want 0", entry.Date, entry.Total)
		}
	}
}

func TestBucketDailyEarningsSumsByOrderDay(t *testing.T) {
	window := dailyWindow(day(t, "2026-02-15"))

	items := []earningItemRow{
		{Quantity: 3, Price: 10.00, OrderCreatedAt: day(t, "2026-02-10").Add(9 * time.Hour)},
		{Quantity: 1, Price: 5.00, OrderCreatedAt: day(t, "2026-02-10").Add(21 * time.Hour)},
		{Quantity: 2, Price: 7.50, OrderCreatedAt: day(t, "2026-02-15")},
	}

	series := bucketDailyEarnings(window, items)

	byDate := make(map[string]float64, len(series))
	for _, entry := range series {
		byDate[entry.Date] = entry.Total
	}

	if byDate["2026-02-10"] != 35.00 {
		t.Errorf("2026-02-10 = %v, want 35.00", byDate["2026-02-10"])
	}
	if byDate["2026-02-15"] != 15.00 {
		t.Errorf("2026-02-15 = %v, want 15.00", byDate["2026-02-15"])
	}
	if byDate["2026-02-11"] != 0 {
		t.Errorf("2026-02-11 = %v, want 0", byDate["2026-02-11"])
	}
}

func TestBucketDailyEarningsDropsOutOfWindowItems(t *testing.T) {
	window := dailyWindow(day(t, "2026-02-15"))

	items := []earningItemRow{
		// Day before the window opens
		{Quantity: 5, Price: 100.00, OrderCreatedAt: day(t, "2026-01-18")},
		// Day after the window closes
		{Quantity: 5, Price: 100.00, OrderCreatedAt: day(t, "2026-02-16")},
		// In window
		{Quantity: 1, Price: 12.00, OrderCreatedAt: day(t, "2026-01-19")},
	}

	series := bucketDailyEarnings(window, items)

	var total float64
	for _, entry := range series {
		total += entry.Total
	}
	if total != 12.00 {
		t.Errorf("window total = %v, want 12.00 (out-of-window items must be dropped)", total)
	}
}

func TestBucketDailyEarningsOutputFollowsWindowOrder(t *testing.T) {
	window := dailyWindow(day(t, "2026-02-15"))

	series := bucketDailyEarnings(window, nil)

	for i, entry := range series {
		if entry.Date != window[i] {
			t.Fatalf("series[%d] = %s, want %s", i, entry.Date, window[i])
		}
	}
}

func TestStatusDistributionSorted(t *testing.T) {
	counts := map[string]int{
		models.OrderStatusShipping:  2,
		models.OrderStatusCancelled: 1,
		models.OrderStatusPending:   4,
	}

	dist := statusDistribution(counts)

	if len(dist) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(dist))
	}
	want := []models.StatusCount{
		{Status: models.OrderStatusCancelled, Count: 1},
		{Status: models.OrderStatusPending, Count: 4},
		{Status: models.OrderStatusShipping, Count: 2},
	}
	for i, w := range want {
		if dist[i] != w {
			t.Errorf("dist[%d] = %+v, want %+v", i, dist[i], w)
		}
	}
}

func TestStartOfDayUTCNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 01:30 local on March 2 is 22:30 UTC on March 1
	local := time.Date(2026, 3, 2, 1, 30, 0, 0, loc)

	got := startOfDayUTC(local)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("startOfDayUTC = %v, want %v", got, want)
	}
}

func TestFormatDayKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 23:00 local on Jan 31 is 04:00 UTC on Feb 1
	local := time.Date(2026, 1, 31, 23, 0, 0, 0, loc)

	if got := formatDayKey(local); got != "2026-02-01" {
		t.Errorf("formatDayKey = %s, want 2026-02-01", got)
	}
}

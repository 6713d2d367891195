package dashboard_cache

import (
	"sync"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/google/uuid"
)

const TTL = time.Minute

// ── Per-admin summary cache ──────────────────────────────────────────────────
// The dashboard summary is a handful of aggregate queries; a short TTL keeps
// the landing page snappy without letting numbers go stale. Any product or
// order mutation invalidates the owning admin's entry.

type summaryEntry struct {
	summary   *models.DashboardSummary
	fetchedAt time.Time
}

var (
	mu        sync.RWMutex
	summaries = make(map[uuid.UUID]*summaryEntry)
)

func GetSummary(adminID uuid.UUID) (*models.DashboardSummary, bool) {
	mu.RLock()
	defer mu.RUnlock()
	entry, ok := summaries[adminID]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.summary, true
	}
	return nil, false
}

func SetSummary(adminID uuid.UUID, summary *models.DashboardSummary) {
	mu.Lock()
	defer mu.Unlock()
	summaries[adminID] = &summaryEntry{summary: summary, fetchedAt: time.Now()}
}

// Invalidate drops one admin's cached summary (call on product create,
// update, delete and on order status changes).
func Invalidate(adminID uuid.UUID) {
	mu.Lock()
	defer mu.Unlock()
	delete(summaries, adminID)
}

// InvalidateAll clears the whole cache. Order mutations can touch several
// admins' numbers at once (one order, many sellers), so they use this.
func InvalidateAll() {
	mu.Lock()
	defer mu.Unlock()
	summaries = make(map[uuid.UUID]*summaryEntry)
}

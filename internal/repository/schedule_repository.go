package repository

import (
	"context"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

// ScheduleRepo manages persistence for movie function schedules.
// Reservation creation reads schedules to backfill function details but
// never writes them; only the schedules handler group creates records.
type ScheduleRepo struct {
	table *store.Table
}

// NewScheduleRepo binds the repository to the schedules table.
func NewScheduleRepo(t *store.Table) *ScheduleRepo {
	return &ScheduleRepo{table: t}
}

// Create writes a schedule item keyed by (tenant_id, schedule_id).
func (r *ScheduleRepo) Create(ctx context.Context, item store.Item) error {
	return r.table.Put(ctx, item)
}

// Get fetches one schedule.  Returns store.ErrItemNotFound when absent.
func (r *ScheduleRepo) Get(ctx context.Context, tenantID, scheduleID string) (store.Item, error) {
	return r.table.Get(ctx, tenantID, scheduleID)
}

// ListByTenant returns every schedule the tenant has.
func (r *ScheduleRepo) ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error) {
	return r.table.QueryByTenant(ctx, tenantID)
}

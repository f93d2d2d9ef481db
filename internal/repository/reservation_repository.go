package repository

import (
	"context"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

// ReservationRepo manages persistence for reservations.  Like orders,
// reservations are immutable once created.
type ReservationRepo struct {
	table *store.Table
}

// NewReservationRepo binds the repository to the reservations table.
func NewReservationRepo(t *store.Table) *ReservationRepo {
	return &ReservationRepo{table: t}
}

// Create writes a reservation item.  Function details have already been
// backfilled from the schedule when the client omitted them.
func (r *ReservationRepo) Create(ctx context.Context, item store.Item) error {
	return r.table.Put(ctx, item)
}

// ListByEmail returns the tenant's reservations for one email via the
// secondary index.
func (r *ReservationRepo) ListByEmail(ctx context.Context, tenantID, email string) ([]store.Item, error) {
	return r.table.QueryByEmail(ctx, tenantID, email)
}

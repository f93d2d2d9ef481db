// Package repository layers entity-specific persistence over the
// generic table store.  Each repository binds one logical table and the
// handful of operations its handler group performs; no repository ever
// touches another repository's table.
package repository

import (
	"context"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

// OrderRepo manages persistence for purchase orders.  Orders are
// immutable once written: only Create and user-scoped listing exist.
type OrderRepo struct {
	table *store.Table
}

// NewOrderRepo binds the repository to the orders table.
func NewOrderRepo(t *store.Table) *OrderRepo {
	return &OrderRepo{table: t}
}

// Create writes a fully-assembled order item.  The caller has already
// generated order_id and computed total_price.
func (r *OrderRepo) Create(ctx context.Context, item store.Item) error {
	return r.table.Put(ctx, item)
}

// ListByUser returns the tenant's orders for one email, served by the
// (tenant_id, email) secondary index.
func (r *OrderRepo) ListByUser(ctx context.Context, tenantID, email string) ([]store.Item, error) {
	return r.table.QueryByEmail(ctx, tenantID, email)
}

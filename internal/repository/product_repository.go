package repository

import (
	"context"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

// ProductRepo manages persistence for catalog products.
type ProductRepo struct {
	table *store.Table
}

// NewProductRepo binds the repository to the products table.
func NewProductRepo(t *store.Table) *ProductRepo {
	return &ProductRepo{table: t}
}

// Create writes a product item keyed by (tenant_id, product_id).
func (r *ProductRepo) Create(ctx context.Context, item store.Item) error {
	return r.table.Put(ctx, item)
}

// ListByTenant returns every product the tenant has.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error) {
	return r.table.QueryByTenant(ctx, tenantID)
}

// Delete removes a product by composite key.  Removing a product that
// does not exist is not an error.
func (r *ProductRepo) Delete(ctx context.Context, tenantID, productID string) error {
	return r.table.Delete(ctx, tenantID, productID)
}

package repository

import (
	"context"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

// MovieRepo manages persistence for the movie catalog.
type MovieRepo struct {
	table *store.Table
}

// NewMovieRepo binds the repository to the movies table.
func NewMovieRepo(t *store.Table) *MovieRepo {
	return &MovieRepo{table: t}
}

// Create writes a movie item keyed by (tenant_id, movie_id).
func (r *MovieRepo) Create(ctx context.Context, item store.Item) error {
	return r.table.Put(ctx, item)
}

// Get fetches one movie.  Returns store.ErrItemNotFound when absent.
func (r *MovieRepo) Get(ctx context.Context, tenantID, movieID string) (store.Item, error) {
	return r.table.Get(ctx, tenantID, movieID)
}

// ListByTenant returns every movie the tenant has.
func (r *MovieRepo) ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error) {
	return r.table.QueryByTenant(ctx, tenantID)
}

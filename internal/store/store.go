// Package store implements the key-value table store that backs every
// entity in the API.  Each logical table keys items by the pair
// (tenant_id, item id) and keeps the full item as a JSON document.  An
// optional secondary index on the item's "email" attribute supports the
// per-user list queries.  The storage engine behind a Table is MySQL,
// but callers only ever see schemaless Items.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Item is a schemaless record as stored in and returned by a Table.
// Documents are decoded with json.Decoder.UseNumber, so numeric
// attributes arrive as json.Number until passed through Normalize.
type Item = map[string]any

// ErrItemNotFound is returned by Get when no item exists under the
// requested (tenant_id, id) key.
var ErrItemNotFound = errors.New("item not found")

// ErrMissingKey is returned by Put when the item lacks its tenant_id or
// id attribute.  Writes without a full composite key are never issued.
var ErrMissingKey = errors.New("item is missing a key attribute")

// Table provides single-item and query operations over one logical
// table.  The zero value is not usable; construct with New.
type Table struct {
	db      *sql.DB
	name    string // SQL table name, validated at construction
	keyAttr string // item attribute holding the id, e.g. "order_id"
}

// New builds a Table over db.  name is the SQL table name (taken from
// configuration) and keyAttr names the item attribute that carries the
// entity id.  New panics on an unsafe table name since names are only
// ever supplied by startup configuration.
func New(db *sql.DB, name, keyAttr string) *Table {
	if !safeName(name) {
		panic(fmt.Sprintf("store: unsafe table name %q", name))
	}
	if keyAttr == "" {
		panic("store: empty key attribute")
	}
	return &Table{db: db, name: name, keyAttr: keyAttr}
}

// Name returns the SQL table name the Table operates on.
func (t *Table) Name() string { return t.name }

// Put writes the item under its (tenant_id, keyAttr) composite key,
// replacing any existing item.  The email attribute, when present and a
// string, is mirrored into the indexed email column so QueryByEmail can
// find the item.
func (t *Table) Put(ctx context.Context, item Item) error {
	tenantID, _ := item["tenant_id"].(string)
	id, _ := item[t.keyAttr].(string)
	if tenantID == "" || id == "" {
		return ErrMissingKey
	}
	var email sql.NullString
	if e, ok := item["email"].(string); ok && e != "" {
		email = sql.NullString{String: e, Valid: true}
	}
	attrs, err := json.Marshal(item)
	if err != nil {
		return err
	}
	q := fmt.Sprintf("INSERT INTO `%s` (tenant_id, item_id, email, attrs) VALUES (?,?,?,?) ON DUPLICATE KEY UPDATE email=VALUES(email), attrs=VALUES(attrs)", t.name)
	_, err = t.db.ExecContext(ctx, q, tenantID, id, email, attrs)
	return err
}

// Get fetches a single item by composite key.  It returns
// ErrItemNotFound when the key has no item.
func (t *Table) Get(ctx context.Context, tenantID, id string) (Item, error) {
	q := fmt.Sprintf("SELECT attrs FROM `%s` WHERE tenant_id=? AND item_id=?", t.name)
	var raw []byte
	err := t.db.QueryRowContext(ctx, q, tenantID, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return decodeItem(raw)
}

// Delete removes the item under the composite key.  Deleting an absent
// key is not an error; the operation is idempotent.
func (t *Table) Delete(ctx context.Context, tenantID, id string) error {
	q := fmt.Sprintf("DELETE FROM `%s` WHERE tenant_id=? AND item_id=?", t.name)
	_, err := t.db.ExecContext(ctx, q, tenantID, id)
	return err
}

// QueryByTenant returns every item belonging to the tenant, ordered by
// item id for stable listings.  An empty result is a nil error with an
// empty slice.
func (t *Table) QueryByTenant(ctx context.Context, tenantID string) ([]Item, error) {
	q := fmt.Sprintf("SELECT attrs FROM `%s` WHERE tenant_id=? ORDER BY item_id", t.name)
	return t.queryItems(ctx, q, tenantID)
}

// QueryByEmail returns the tenant's items whose email attribute equals
// email, using the secondary index on the email column.
func (t *Table) QueryByEmail(ctx context.Context, tenantID, email string) ([]Item, error) {
	q := fmt.Sprintf("SELECT attrs FROM `%s` WHERE tenant_id=? AND email=? ORDER BY item_id", t.name)
	return t.queryItems(ctx, q, tenantID, email)
}

func (t *Table) queryItems(ctx context.Context, q string, args ...any) ([]Item, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Item{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		item, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// decodeItem unmarshals a stored JSON document.  UseNumber keeps
// numeric attributes as json.Number so integer values survive the round
// trip without being widened to float64 prematurely.
func decodeItem(raw []byte) (Item, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var item Item
	if err := dec.Decode(&item); err != nil {
		return nil, err
	}
	return item, nil
}

// safeName reports whether s is usable as a SQL identifier without
// quoting tricks.  Table names come from configuration, not requests,
// so this only guards against operator typos.
func safeName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

type fakeOrderStore struct {
	created []store.Item
	listed  []store.Item
	err     error
}

func (f *fakeOrderStore) Create(_ context.Context, item store.Item) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, item)
	return nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, tenantID, email string) ([]store.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}

func TestCreateOrderComputesTotalPrice(t *testing.T) {
	st := &fakeOrderStore{}
	pub := &recordingPublisher{}
	h := NewOrderHandler(st, pub)

	body := `{"tenant_id":"cinestar","email":"ana@example.com","products":[{"price":10},{"price":"5.5"}]}`
	c, rec := newContext(http.MethodPost, "/v1/orders", body)
	require.NoError(t, h.CreateOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "order created successfully", resp["message"])
	assert.NotEmpty(t, resp["order_id"])

	require.Len(t, st.created, 1)
	item := st.created[0]
	assert.Equal(t, 15.5, item["total_price"])
	assert.Equal(t, "cinestar", item["tenant_id"])
	assert.Equal(t, "ana@example.com", item["email"])
	assert.NotEmpty(t, item["created_at"])

	require.Len(t, pub.events, 1)
	assert.Equal(t, "order", pub.events[0].Kind)
	assert.Equal(t, 15.5, pub.events[0].TotalPrice)
}

func TestCreateOrderMissingPriceCountsAsZero(t *testing.T) {
	st := &fakeOrderStore{}
	h := NewOrderHandler(st, nil)

	body := `{"tenant_id":"t","email":"e@x.com","products":[{"name":"free sticker"},{"price":4}]}`
	c, rec := newContext(http.MethodPost, "/v1/orders", body)
	require.NoError(t, h.CreateOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, st.created, 1)
	assert.Equal(t, 4.0, st.created[0]["total_price"])
}

func TestCreateOrderGeneratesUniqueIDs(t *testing.T) {
	st := &fakeOrderStore{}
	h := NewOrderHandler(st, nil)

	body := `{"tenant_id":"t","email":"e@x.com","products":[{"price":1}]}`
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		c, rec := newContext(http.MethodPost, "/v1/orders", body)
		require.NoError(t, h.CreateOrder(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		id := decodeBody(t, rec)["order_id"].(string)
		assert.False(t, seen[id], "order_id %s issued twice", id)
		seen[id] = true
	}
}

func TestCreateOrderInvalidJSON(t *testing.T) {
	h := NewOrderHandler(&fakeOrderStore{}, nil)
	c, rec := newContext(http.MethodPost, "/v1/orders", `{"tenant_id":`)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", decodeBody(t, rec)["error"])
}

func TestCreateOrderMissingFields(t *testing.T) {
	h := NewOrderHandler(&fakeOrderStore{}, nil)
	// products has the wrong type and tenant_id/email are missing.
	c, rec := newContext(http.MethodPost, "/v1/orders", `{"products":"not-an-array"}`)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tenant_id, email and products are required", decodeBody(t, rec)["error"])
}

func TestCreateOrderRejectsNonNumericPrice(t *testing.T) {
	st := &fakeOrderStore{}
	h := NewOrderHandler(st, nil)

	body := `{"tenant_id":"t","email":"e@x.com","products":[{"price":"not-a-price"}]}`
	c, rec := newContext(http.MethodPost, "/v1/orders", body)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product price must be a valid number", decodeBody(t, rec)["error"])
	assert.Empty(t, st.created)
}

func TestCreateOrderStoreFailure(t *testing.T) {
	h := NewOrderHandler(&fakeOrderStore{err: errors.New("connection reset")}, nil)
	body := `{"tenant_id":"t","email":"e@x.com","products":[]}`
	c, rec := newContext(http.MethodPost, "/v1/orders", body)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "failed to create order", resp["error"])
	assert.Equal(t, "connection reset", resp["details"])
}

func TestListOrdersRequiresParams(t *testing.T) {
	h := NewOrderHandler(&fakeOrderStore{}, nil)
	c, rec := newContext(http.MethodGet, "/v1/orders?tenant_id=t", "")
	require.NoError(t, h.ListOrdersByUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tenant_id and email are required", decodeBody(t, rec)["error"])
}

func TestListOrdersNormalizesNumerics(t *testing.T) {
	st := &fakeOrderStore{listed: []store.Item{
		{"order_id": "o1", "total_price": json.Number("15.5"), "seats": json.Number("2")},
	}}
	h := NewOrderHandler(st, nil)

	c, rec := newContext(http.MethodGet, "/v1/orders?tenant_id=t&email=e@x.com", "")
	require.NoError(t, h.ListOrdersByUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	items := decodeList(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, 15.5, items[0]["total_price"])
	assert.Equal(t, float64(2), items[0]["seats"]) // JSON round-trip widens to float64
}

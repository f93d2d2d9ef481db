package handler

import (
	"context"  // request-scoped store calls
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/shopspring/decimal"

	"github.com/iliyamo/cinema-commerce-api/internal/queue"
	"github.com/iliyamo/cinema-commerce-api/internal/store"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// OrderStore is the slice of the persistence layer the order endpoints
// need.  *repository.OrderRepo satisfies it.
type OrderStore interface {
	Create(ctx context.Context, item store.Item) error
	ListByUser(ctx context.Context, tenantID, email string) ([]store.Item, error)
}

// OrderHandler serves the order endpoints.  All methods assume JWT
// authentication has already been performed by middleware.
type OrderHandler struct {
	Orders OrderStore
	Events EventPublisher // optional; nil disables event publishing
}

// NewOrderHandler constructs an OrderHandler.  The store must be
// non-nil; the publisher may be nil.
func NewOrderHandler(orders OrderStore, events EventPublisher) *OrderHandler {
	if orders == nil {
		panic("nil store passed to NewOrderHandler")
	}
	return &OrderHandler{Orders: orders, Events: events}
}

// createOrderRequest is the validated input of POST /v1/orders.
type createOrderRequest struct {
	TenantID string
	Email    string
	Products []any // product objects kept as decoded, stored verbatim
}

// parseCreateOrderRequest validates the raw payload before any business
// logic runs.  It returns a client-facing message when validation fails.
func parseCreateOrderRequest(raw map[string]any) (createOrderRequest, string) {
	req := createOrderRequest{
		TenantID: stringField(raw, "tenant_id"),
		Email:    stringField(raw, "email"),
	}
	products, ok := raw["products"].([]any)
	if req.TenantID == "" || req.Email == "" || !ok {
		return req, "tenant_id, email and products are required"
	}
	req.Products = products
	return req, ""
}

// CreateOrder handles POST /v1/orders.  It sums the per-product prices
// into total_price, generates a fresh order_id and persists the order
// with a UTC creation timestamp.  Orders are immutable once created.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	raw, err := bindJSON(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req, msg := parseCreateOrderRequest(raw)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	// total_price = sum of product prices at creation time.  A product
	// without a price contributes zero; a price that cannot be read as a
	// number rejects the whole order.
	total := decimal.Zero
	for _, p := range req.Products {
		m, ok := p.(map[string]any)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product price must be a valid number"})
		}
		v, present := m["price"]
		if !present {
			continue
		}
		price, err := utils.ParsePrice(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product price must be a valid number"})
		}
		total = total.Add(price)
	}

	orderID := utils.NewID()
	createdAt := utils.TimestampUTC()
	item := store.Item{
		"tenant_id":   req.TenantID,
		"order_id":    orderID,
		"email":       req.Email,
		"products":    req.Products,
		"total_price": total.InexactFloat64(),
		"created_at":  createdAt,
	}
	if err := h.Orders.Create(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order", "details": err.Error()})
	}

	publish(h.Events, c, queue.BookingCreatedEvent{
		Kind:       "order",
		TenantID:   req.TenantID,
		ResourceID: orderID,
		Email:      req.Email,
		TotalPrice: total.InexactFloat64(),
		CreatedAt:  createdAt,
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "order created successfully", "order_id": orderID})
}

// ListOrdersByUser handles GET /v1/orders?tenant_id&email.  Results come
// from the (tenant_id, email) secondary index and are normalized like
// every other list endpoint.
func (h *OrderHandler) ListOrdersByUser(c echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	email := c.QueryParam("email")
	if tenantID == "" || email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id and email are required"})
	}
	items, err := h.Orders.ListByUser(c.Request().Context(), tenantID, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list orders", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, store.NormalizeItems(items))
}

package handler // handler implements the HTTP endpoints for every entity group

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/queue"
)

// EventPublisher lets the create handlers announce new bookings to the
// message broker.  Publishing is best effort: a nil publisher or a
// failed publish never affects the HTTP response.
type EventPublisher interface {
	BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// bindJSON decodes a request body into a raw attribute map.  UseNumber
// keeps numeric fields as json.Number so prices survive undamaged and
// seats can be checked for integrality.  A decode failure means the
// body was not valid JSON.
func bindJSON(c echo.Context) (map[string]any, error) {
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// stringField reads a non-empty string attribute from a raw payload.
func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// publish fires a booking event when a publisher is wired.  Errors are
// already logged by the publisher; the request flow ignores them.
func publish(p EventPublisher, c echo.Context, ev queue.BookingCreatedEvent) {
	if p == nil {
		return
	}
	_ = p.BookingCreated(c.Request().Context(), ev)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/queue"
	"github.com/iliyamo/cinema-commerce-api/internal/store"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// ReservationStore is the persistence slice for reservations.
// *repository.ReservationRepo satisfies it.
type ReservationStore interface {
	Create(ctx context.Context, item store.Item) error
	ListByEmail(ctx context.Context, tenantID, email string) ([]store.Item, error)
}

// ScheduleReader provides the read-only schedule lookup reservation
// creation depends on.  *repository.ScheduleRepo satisfies it.
type ScheduleReader interface {
	Get(ctx context.Context, tenantID, scheduleID string) (store.Item, error)
}

// ReservationHandler serves the reservation endpoints.
type ReservationHandler struct {
	Reservations ReservationStore
	Schedules    ScheduleReader
	Events       EventPublisher // optional
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(reservations ReservationStore, schedules ScheduleReader, events EventPublisher) *ReservationHandler {
	if reservations == nil || schedules == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: reservations, Schedules: schedules, Events: events}
}

// createReservationRequest is the validated input of POST /v1/reservations.
type createReservationRequest struct {
	TenantID     string
	Email        string
	Seats        int64
	ScheduleID   string
	FunctionDate string // optional; backfilled from the schedule
	MovieTitle   string // optional; backfilled from the schedule
}

// parseCreateReservationRequest validates the raw payload.  seats uses a
// defined-check (the field must be present) and then a numeric check:
// the value must be a positive whole number.  Fractional seat counts are
// rejected, matching the "positive integer" the error message promises.
func parseCreateReservationRequest(raw map[string]any) (createReservationRequest, string) {
	req := createReservationRequest{
		TenantID:     stringField(raw, "tenant_id"),
		Email:        stringField(raw, "email"),
		ScheduleID:   stringField(raw, "schedule_id"),
		FunctionDate: stringField(raw, "function_date"),
		MovieTitle:   stringField(raw, "movie_title"),
	}
	seatsVal, defined := raw["seats"]
	if req.TenantID == "" || req.Email == "" || !defined || req.ScheduleID == "" {
		return req, "tenant_id, email, seats and schedule_id are required"
	}
	seats, ok := parseSeats(seatsVal)
	if !ok {
		return req, "seats must be a positive integer"
	}
	req.Seats = seats
	return req, ""
}

// parseSeats accepts a JSON number that is whole and strictly positive.
func parseSeats(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, i > 0
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), f > 0
}

// CreateReservation handles POST /v1/reservations.  When the client
// omits function_date or movie_title the handler fetches the referenced
// schedule and backfills the missing fields; supplying both skips the
// lookup entirely.  At most one store read and one store write happen
// per invocation.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	raw, err := bindJSON(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req, msg := parseCreateReservationRequest(raw)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx := c.Request().Context()
	if req.FunctionDate == "" || req.MovieTitle == "" {
		schedule, err := h.Schedules.Get(ctx, req.TenantID, req.ScheduleID)
		if err != nil {
			if errors.Is(err, store.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "function not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch function details", "details": err.Error()})
		}
		if req.FunctionDate == "" {
			req.FunctionDate = stringField(schedule, "function_date")
		}
		if req.MovieTitle == "" {
			req.MovieTitle = stringField(schedule, "movie_title")
		}
		if req.FunctionDate == "" || req.MovieTitle == "" {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "incomplete function details"})
		}
	}

	reservationID := utils.NewID()
	createdAt := utils.TimestampUTC()
	item := store.Item{
		"tenant_id":      req.TenantID,
		"reservation_id": reservationID,
		"email":          req.Email,
		"seats":          req.Seats,
		"schedule_id":    req.ScheduleID,
		"function_date":  req.FunctionDate,
		"movie_title":    req.MovieTitle,
		"created_at":     createdAt,
	}
	if err := h.Reservations.Create(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation", "details": err.Error()})
	}

	publish(h.Events, c, queue.BookingCreatedEvent{
		Kind:       "reservation",
		TenantID:   req.TenantID,
		ResourceID: reservationID,
		Email:      req.Email,
		MovieTitle: req.MovieTitle,
		Seats:      req.Seats,
		CreatedAt:  createdAt,
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "reservation created successfully", "reservation_id": reservationID})
}

// ListReservationsByEmail handles GET /v1/reservations?tenant_id&email.
func (h *ReservationHandler) ListReservationsByEmail(c echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	email := c.QueryParam("email")
	if tenantID == "" || email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id and email are required"})
	}
	items, err := h.Reservations.ListByEmail(c.Request().Context(), tenantID, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list reservations", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, store.NormalizeItems(items))
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// ScheduleStore is the persistence slice for the schedule endpoints.
// *repository.ScheduleRepo satisfies it.
type ScheduleStore interface {
	Create(ctx context.Context, item store.Item) error
	ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error)
}

// ScheduleHandler serves the movie function schedule endpoints.
// Reservation creation reads these records to backfill function details.
type ScheduleHandler struct {
	Schedules ScheduleStore
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(schedules ScheduleStore) *ScheduleHandler {
	if schedules == nil {
		panic("nil store passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Schedules: schedules}
}

// createScheduleRequest is the validated input of POST /v1/schedules.
type createScheduleRequest struct {
	TenantID       string
	MovieID        string
	MovieTitle     string // optional; lets reservations backfill a title
	FunctionDate   string
	AvailableSeats int64
}

func parseCreateScheduleRequest(raw map[string]any) (createScheduleRequest, string) {
	req := createScheduleRequest{
		TenantID:     stringField(raw, "tenant_id"),
		MovieID:      stringField(raw, "movie_id"),
		MovieTitle:   stringField(raw, "movie_title"),
		FunctionDate: stringField(raw, "function_date"),
	}
	seatsVal, defined := raw["available_seats"]
	if req.TenantID == "" || req.MovieID == "" || req.FunctionDate == "" || !defined {
		return req, "tenant_id, movie_id, function_date and available_seats are required"
	}
	n, ok := seatsVal.(json.Number)
	if !ok {
		return req, "available_seats must be an integer"
	}
	seats, err := n.Int64()
	if err != nil || seats < 0 {
		return req, "available_seats must be an integer"
	}
	req.AvailableSeats = seats
	return req, ""
}

// ListSchedules handles GET /v1/schedules?tenant_id[&movie_id].  The
// optional movie filter is applied after the tenant query since the
// store only indexes by tenant and email.
func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}
	items, err := h.Schedules.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list schedules", "details": err.Error()})
	}
	if movieID := c.QueryParam("movie_id"); movieID != "" {
		filtered := []store.Item{}
		for _, it := range items {
			if stringField(it, "movie_id") == movieID {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	return c.JSON(http.StatusOK, store.NormalizeItems(items))
}

// CreateSchedule handles POST /v1/schedules.
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	raw, err := bindJSON(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req, msg := parseCreateScheduleRequest(raw)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	scheduleID := utils.NewID()
	item := store.Item{
		"tenant_id":       req.TenantID,
		"schedule_id":     scheduleID,
		"movie_id":        req.MovieID,
		"function_date":   req.FunctionDate,
		"available_seats": req.AvailableSeats,
		"created_at":      utils.TimestampUTC(),
	}
	if req.MovieTitle != "" {
		item["movie_title"] = req.MovieTitle
	}
	if err := h.Schedules.Create(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create schedule", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "schedule created successfully", "schedule_id": scheduleID})
}

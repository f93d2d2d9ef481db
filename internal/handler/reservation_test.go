package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

type fakeReservationStore struct {
	created []store.Item
	listed  []store.Item
	err     error
}

func (f *fakeReservationStore) Create(_ context.Context, item store.Item) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, item)
	return nil
}

func (f *fakeReservationStore) ListByEmail(_ context.Context, tenantID, email string) ([]store.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}

type fakeScheduleReader struct {
	item  store.Item
	err   error
	calls int
}

func (f *fakeScheduleReader) Get(_ context.Context, tenantID, scheduleID string) (store.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.item, nil
}

func TestCreateReservationBackfillsFromSchedule(t *testing.T) {
	st := &fakeReservationStore{}
	sched := &fakeScheduleReader{item: store.Item{
		"schedule_id":   "s1",
		"function_date": "2026-09-15T20:00:00Z",
		"movie_title":   "Dune",
	}}
	h := NewReservationHandler(st, sched, nil)

	body := `{"tenant_id":"t","email":"e@x.com","seats":3,"schedule_id":"s1"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, sched.calls)
	require.Len(t, st.created, 1)
	item := st.created[0]
	assert.Equal(t, "2026-09-15T20:00:00Z", item["function_date"])
	assert.Equal(t, "Dune", item["movie_title"])
	assert.Equal(t, int64(3), item["seats"])
}

func TestCreateReservationSkipsLookupWhenDetailsSupplied(t *testing.T) {
	st := &fakeReservationStore{}
	sched := &fakeScheduleReader{err: store.ErrItemNotFound}
	h := NewReservationHandler(st, sched, nil)

	body := `{"tenant_id":"t","email":"e@x.com","seats":2,"schedule_id":"s1",` +
		`"function_date":"2026-09-15T20:00:00Z","movie_title":"Dune"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, sched.calls, "schedule lookup must be skipped entirely")
}

func TestCreateReservationScheduleNotFound(t *testing.T) {
	h := NewReservationHandler(&fakeReservationStore{}, &fakeScheduleReader{err: store.ErrItemNotFound}, nil)
	body := `{"tenant_id":"t","email":"e@x.com","seats":3,"schedule_id":"missing"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "function not found", decodeBody(t, rec)["error"])
}

func TestCreateReservationIncompleteDetails(t *testing.T) {
	// Schedule exists but lacks a movie title and the request does not
	// supply one either.
	sched := &fakeScheduleReader{item: store.Item{"function_date": "2026-09-15T20:00:00Z"}}
	h := NewReservationHandler(&fakeReservationStore{}, sched, nil)

	body := `{"tenant_id":"t","email":"e@x.com","seats":1,"schedule_id":"s1"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "incomplete function details", decodeBody(t, rec)["error"])
}

func TestCreateReservationSeatsValidation(t *testing.T) {
	cases := []struct {
		name  string
		seats string
	}{
		{"zero", `0`},
		{"negative", `-3`},
		{"fractional", `2.5`},
		{"string", `"3"`},
		{"boolean", `true`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewReservationHandler(&fakeReservationStore{}, &fakeScheduleReader{}, nil)
			body := `{"tenant_id":"t","email":"e@x.com","seats":` + tc.seats + `,"schedule_id":"s1"}`
			c, rec := newContext(http.MethodPost, "/v1/reservations", body)
			require.NoError(t, h.CreateReservation(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "seats must be a positive integer", decodeBody(t, rec)["error"])
		})
	}
}

func TestCreateReservationMissingFields(t *testing.T) {
	h := NewReservationHandler(&fakeReservationStore{}, &fakeScheduleReader{}, nil)
	// seats is absent entirely, which is a missing-field error rather
	// than a seats validation error.
	body := `{"tenant_id":"t","email":"e@x.com","schedule_id":"s1"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tenant_id, email, seats and schedule_id are required", decodeBody(t, rec)["error"])
}

func TestCreateReservationPublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewReservationHandler(&fakeReservationStore{}, &fakeScheduleReader{}, pub)

	body := `{"tenant_id":"t","email":"e@x.com","seats":4,"schedule_id":"s1",` +
		`"function_date":"2026-09-15T20:00:00Z","movie_title":"Dune"}`
	c, rec := newContext(http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.CreateReservation(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "reservation", pub.events[0].Kind)
	assert.Equal(t, int64(4), pub.events[0].Seats)
	assert.Equal(t, "Dune", pub.events[0].MovieTitle)
}

func TestListReservationsRequiresParams(t *testing.T) {
	h := NewReservationHandler(&fakeReservationStore{}, &fakeScheduleReader{}, nil)
	c, rec := newContext(http.MethodGet, "/v1/reservations?email=e@x.com", "")
	require.NoError(t, h.ListReservationsByEmail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tenant_id and email are required", decodeBody(t, rec)["error"])
}

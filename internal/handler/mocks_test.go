package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler"
	"github.com/pkordes/itinerary/internal/handler/gen"
	"github.com/pkordes/itinerary/internal/service"
)

// Test doubles for the handler.*Servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockLocationServicer struct {
	create    func(ctx context.Context, loc domain.Location) (domain.Location, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Location, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error)
	update    func(ctx context.Context, loc domain.Location) (domain.Location, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLocationServicer) Create(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.create(ctx, l)
}
func (m *mockLocationServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Location, error) {
	return m.getByID(ctx, id)
}
func (m *mockLocationServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockLocationServicer) Update(ctx context.Context, l domain.Location) (domain.Location, error) {
	return m.update(ctx, l)
}
func (m *mockLocationServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockEventServicer struct {
	addToDay  func(ctx context.Context, tripID uuid.UUID, dayNumber int, in service.AddEventInput) (domain.Event, error)
	listByDay func(ctx context.Context, tripID uuid.UUID, dayNumber int) ([]domain.Event, error)
}

func (m *mockEventServicer) AddToDay(ctx context.Context, tripID uuid.UUID, dayNumber int, in service.AddEventInput) (domain.Event, error) {
	return m.addToDay(ctx, tripID, dayNumber, in)
}
func (m *mockEventServicer) ListByDay(ctx context.Context, tripID uuid.UUID, dayNumber int) ([]domain.Event, error) {
	return m.listByDay(ctx, tripID, dayNumber)
}

type mockExportServicer struct {
	export func(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, tripID)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.LocationServicer = (*mockLocationServicer)(nil)
	_ handler.EventServicer    = (*mockEventServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve runs req through the full router of a Server built from the given
// servicers, exactly as main.go mounts it.
func serve(srv *handler.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func newJSONRequest(t *testing.T, method, path string, v any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, jsonBody(t, v))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

var fixtureTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func locationFixture() domain.Location {
	return domain.Location{
		ID:        uuid.New(),
		Name:      "Louvre",
		Address:   "Rue de Rivoli, Paris",
		Latitude:  48.8606,
		Longitude: 2.3376,
		Ratings:   []float64{4.5, 5},
		Image:     "louvre.jpg",
		Duration:  "3h",
		Hours:     domain.WeeklyHours{Monday: "closed", Tuesday: "09:00-18:00"},
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
}

func eventFixture(tripID uuid.UUID, dayIndex, position int) domain.Event {
	loc := locationFixture()
	return domain.Event{
		ID:        uuid.New(),
		TripID:    tripID,
		DayIndex:  dayIndex,
		Position:  position,
		Title:     "Museum visit",
		StartTime: "09:05",
		EndTime:   "12:30",
		Location:  loc.Name,
		Address:   loc.Address,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Ratings:   loc.Ratings,
		Image:     loc.Image,
		Duration:  loc.Duration,
		Hours:     loc.Hours,
		CreatedAt: fixtureTime,
	}
}

func tripFixture(dayCount int) domain.Trip {
	return domain.Trip{
		ID:        uuid.New(),
		Name:      "Paris",
		Days:      domain.NewDays(dayCount),
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
}

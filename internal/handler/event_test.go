package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler"
	"github.com/pkordes/itinerary/internal/handler/gen"
	"github.com/pkordes/itinerary/internal/service"
)

func newEventServer(svc handler.EventServicer) *handler.Server {
	return handler.NewServer(nil, nil, svc, nil)
}

func eventsPath(tripID uuid.UUID, day string) string {
	return "/trips/" + tripID.String() + "/days/" + day + "/events"
}

func addEventBody(locationID uuid.UUID) map[string]any {
	return map[string]any{
		"location_id": locationID,
		"title":       "Museum visit",
		"start_time":  "09:05",
		"end_time":    "12:30",
	}
}

// ---- POST /trips/{tripId}/days/{dayNumber}/events --------------------------

func TestAddEvent_201(t *testing.T) {
	tripID, locID := uuid.New(), uuid.New()
	var (
		gotDay int
		gotIn  service.AddEventInput
	)
	svc := &mockEventServicer{
		addToDay: func(_ context.Context, id uuid.UUID, dayNumber int, in service.AddEventInput) (domain.Event, error) {
			assert.Equal(t, tripID, id)
			gotDay, gotIn = dayNumber, in
			return eventFixture(id, dayNumber-1, 0), nil
		},
	}

	rec := serve(newEventServer(svc), newJSONRequest(t, http.MethodPost, eventsPath(tripID, "2"), addEventBody(locID)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, gotDay)
	assert.Equal(t, locID, gotIn.LocationID)
	assert.Equal(t, "Museum visit", gotIn.Title)
	assert.Equal(t, domain.TimeOfDay{Hour: 9, Minute: 5}, gotIn.Start)
	assert.Equal(t, domain.TimeOfDay{Hour: 12, Minute: 30}, gotIn.End)

	var resp gen.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, tripID, resp.TripId)
	assert.Equal(t, 2, resp.DayNumber)
	assert.Equal(t, "09:05", resp.StartTime)
	assert.Equal(t, "Louvre", resp.Location)
	assert.Equal(t, []float64{4.5, 5}, resp.Ratings)
	require.NotNil(t, resp.Availability.Monday)
	assert.Equal(t, "closed", *resp.Availability.Monday)
}

func TestAddEvent_422_BadTime(t *testing.T) {
	tests := []struct{ name, start, end string }{
		{"unpadded start", "9:05", "10:00"},
		{"seconds", "09:05:00", "10:00"},
		{"hour out of range", "09:00", "24:00"},
		{"empty end", "09:00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := addEventBody(uuid.New())
			body["start_time"], body["end_time"] = tt.start, tt.end

			// The service must not be reached; a nil addToDay would panic.
			rec := serve(newEventServer(&mockEventServicer{}), newJSONRequest(t, http.MethodPost, eventsPath(uuid.New(), "1"), body))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, "HH:mm")
		})
	}
}

func TestAddEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "day out of range",
			err:         fmt.Errorf("repo.EventRepo.Append: day 5: %w", domain.ErrIndexOutOfBounds),
			wantStatus:  http.StatusNotFound,
			wantMessage: "day not found",
		},
		{
			name:        "unknown trip",
			err:         fmt.Errorf("repo.EventRepo.Append: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "trip not found",
		},
		{
			name:        "unknown location",
			err:         fmt.Errorf("service.EventService.AddToDay: %s: %w", uuid.New(), domain.ErrLocationNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "location not found",
		},
		{
			name:        "not found mentioning location is still the trip",
			err:         fmt.Errorf("repo.EventRepo.Append: location %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "trip not found",
		},
		{
			name:        "blank title",
			err:         fmt.Errorf("service.EventService.AddToDay: %w", domain.ErrInvalidTitle),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "title is required",
		},
		{
			name:        "duplicate id",
			err:         fmt.Errorf("repo.EventRepo.Append: %w", domain.ErrDuplicateEvent),
			wantStatus:  http.StatusConflict,
			wantMessage: "event already scheduled",
		},
		{
			name:        "unexpected",
			err:         fmt.Errorf("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockEventServicer{
				addToDay: func(context.Context, uuid.UUID, int, service.AddEventInput) (domain.Event, error) {
					return domain.Event{}, tt.err
				},
			}

			rec := serve(newEventServer(svc), newJSONRequest(t, http.MethodPost, eventsPath(uuid.New(), "1"), addEventBody(uuid.New())))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

func TestAddEvent_400_NonNumericDay(t *testing.T) {
	rec := serve(newEventServer(&mockEventServicer{}), newJSONRequest(t, http.MethodPost, eventsPath(uuid.New(), "first"), addEventBody(uuid.New())))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "bad_request", detail.Code)
	assert.Contains(t, detail.Message, "dayNumber")
}

func TestAddEvent_413_BodyTooLarge(t *testing.T) {
	req := newJSONRequest(t, http.MethodPost, eventsPath(uuid.New(), "1"), addEventBody(uuid.New()))
	req.Body = http.MaxBytesReader(nil, req.Body, 8)

	rec := serve(newEventServer(&mockEventServicer{}), req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", decodeError(t, rec).Code)
}

// Day numbers below 1 are passed through; the service owns the range check.
func TestAddEvent_ZeroDayReachesService(t *testing.T) {
	svc := &mockEventServicer{
		addToDay: func(_ context.Context, _ uuid.UUID, dayNumber int, _ service.AddEventInput) (domain.Event, error) {
			assert.Equal(t, 0, dayNumber)
			return domain.Event{}, domain.ErrIndexOutOfBounds
		},
	}

	rec := serve(newEventServer(svc), newJSONRequest(t, http.MethodPost, eventsPath(uuid.New(), "0"), addEventBody(uuid.New())))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{tripId}/days/{dayNumber}/events ---------------------------

func TestListDayEvents_200_InOrder(t *testing.T) {
	tripID := uuid.New()
	first, second := eventFixture(tripID, 0, 0), eventFixture(tripID, 0, 1)
	second.Title = "Lunch"
	svc := &mockEventServicer{
		listByDay: func(_ context.Context, _ uuid.UUID, dayNumber int) ([]domain.Event, error) {
			assert.Equal(t, 1, dayNumber)
			return []domain.Event{first, second}, nil
		},
	}

	rec := serve(newEventServer(svc), httptest.NewRequest(http.MethodGet, eventsPath(tripID, "1"), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []gen.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID, resp[0].Id)
	assert.Equal(t, "Lunch", resp[1].Title)
	assert.Equal(t, 1, resp[1].Position)
}

func TestListDayEvents_200_EmptyDayIsArray(t *testing.T) {
	svc := &mockEventServicer{
		listByDay: func(context.Context, uuid.UUID, int) ([]domain.Event, error) {
			return []domain.Event{}, nil
		},
	}

	rec := serve(newEventServer(svc), httptest.NewRequest(http.MethodGet, eventsPath(uuid.New(), "1"), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDayEvents_404_DayOutOfRange(t *testing.T) {
	svc := &mockEventServicer{
		listByDay: func(context.Context, uuid.UUID, int) ([]domain.Event, error) {
			return nil, fmt.Errorf("service.EventService.ListByDay: day 9 of 3: %w", domain.ErrIndexOutOfBounds)
		},
	}

	rec := serve(newEventServer(svc), httptest.NewRequest(http.MethodGet, eventsPath(uuid.New(), "9"), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "day not found", decodeError(t, rec).Message)
}

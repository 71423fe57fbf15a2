package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/service"
)

func tripRepoReturning(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
}

func TestExportService_Export_OneRowPerEventInDayOrder(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), Name: "Kyoto", Days: domain.NewDays(3)}
	e1 := domain.Event{ID: uuid.New(), Title: "Late", StartTime: "22:00", EndTime: "23:00", Location: "Gion"}
	e2 := domain.Event{ID: uuid.New(), Title: "Early", StartTime: "07:00", EndTime: "08:00", Location: "Nishiki"}
	e3 := domain.Event{ID: uuid.New(), Title: "Day three", StartTime: "12:00", EndTime: "13:00"}
	trip.Days[0].Events = []domain.Event{e1, e2}
	trip.Days[2].Events = []domain.Event{e3}

	rows, err := service.NewExportService(tripRepoReturning(trip)).Export(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, trip.ID.String(), rows[0].TripID)
	assert.Equal(t, "Kyoto", rows[0].TripName)
	assert.Equal(t, 1, rows[0].DayNumber)
	assert.Equal(t, 0, rows[0].Position)
	assert.Equal(t, "Late", rows[0].Title)
	assert.Equal(t, "Gion", rows[0].Location)

	assert.Equal(t, 1, rows[1].DayNumber)
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, "Early", rows[1].Title)

	assert.Equal(t, 3, rows[2].DayNumber, "empty day 2 contributes no rows")
	assert.Equal(t, e3.ID.String(), rows[2].EventID)
}

func TestExportService_Export_NoEvents(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), Name: "Empty", Days: domain.NewDays(2)}

	rows, err := service.NewExportService(tripRepoReturning(trip)).Export(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_TripNotFound(t *testing.T) {
	svc := service.NewExportService(&mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	})

	_, err := svc.Export(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

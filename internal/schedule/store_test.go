package schedule_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/schedule"
)

func tripWithDays(n int) *domain.Trip {
	return &domain.Trip{ID: uuid.New(), Name: "Kansai", Days: domain.NewDays(n)}
}

func mustEvent(t *testing.T, title string, start domain.TimeOfDay) domain.Event {
	t.Helper()
	ev, err := schedule.NewEvent(locationFixture(), title, start, start)
	require.NoError(t, err)
	return ev
}

func TestStore_AddEventToTrip_AppendsToDay(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(3)
	ev := mustEvent(t, "Temple", nineOhFive)

	err := store.AddEventToTrip(trip, 1, ev)

	require.NoError(t, err)
	require.Len(t, trip.Days[1].Events, 1)
	got := trip.Days[1].Events[0]
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, 1, got.DayIndex)
	assert.Equal(t, 0, got.Position)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Empty(t, trip.Days[0].Events)
	assert.Empty(t, trip.Days[2].Events)
}

// Two appends to the same day keep call order even when the second event
// starts earlier.
func TestStore_AddEventToTrip_PreservesCallOrder(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(3)
	a := mustEvent(t, "A", elevenThirtyP)
	b := mustEvent(t, "B", nineOhFive)

	require.NoError(t, store.AddEventToTrip(trip, 1, a))
	require.NoError(t, store.AddEventToTrip(trip, 1, b))

	require.Len(t, trip.Days[1].Events, 2)
	assert.Equal(t, a.ID, trip.Days[1].Events[0].ID)
	assert.Equal(t, b.ID, trip.Days[1].Events[1].ID)
	assert.Equal(t, 1, trip.Days[1].Events[1].Position)
	assert.Empty(t, trip.Days[0].Events)
	assert.Empty(t, trip.Days[2].Events)
}

func TestStore_AddEventToTrip_OutOfRange(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(3)
	before := trip.Clone()

	for _, idx := range []int{-1, 3, 100} {
		err := store.AddEventToTrip(trip, idx, mustEvent(t, "X", nineOhFive))
		assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds, "index %d", idx)
	}

	assert.Equal(t, before, *trip, "no mutation on rejected append")
}

func TestStore_AddEventToTrip_NoDays(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(0)

	err := store.AddEventToTrip(trip, 0, mustEvent(t, "X", nineOhFive))

	assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds)
}

func TestStore_AddEventToTrip_DuplicateID(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(2)
	ev := mustEvent(t, "X", nineOhFive)
	require.NoError(t, store.AddEventToTrip(trip, 0, ev))

	err := store.AddEventToTrip(trip, 1, ev)

	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
	assert.Empty(t, trip.Days[1].Events)
}

func TestStore_AddEventToTrip_StoresCopy(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(1)
	ev := mustEvent(t, "X", nineOhFive)
	require.NoError(t, store.AddEventToTrip(trip, 0, ev))

	ev.Ratings[0] = 0

	assert.Equal(t, 4.8, trip.Days[0].Events[0].Ratings[0])
}

func TestStore_AddEventToTrip_Concurrent(t *testing.T) {
	store := schedule.NewStore()
	trip := tripWithDays(2)

	const n = 50
	events := make([]domain.Event, n)
	for i := range events {
		events[i] = mustEvent(t, "Concurrent", nineOhFive)
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AddEventToTrip(trip, i%2, events[i]))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, trip.EventCount())
	for _, d := range trip.Days {
		for pos, e := range d.Events {
			assert.Equal(t, pos, e.Position)
		}
	}
}

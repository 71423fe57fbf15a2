package schedule_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/schedule"
)

// locationFixture returns a Location with every descriptive field populated.
func locationFixture() domain.Location {
	return domain.Location{
		ID:        uuid.New(),
		Name:      "Fushimi Inari Taisha",
		Address:   "68 Fukakusa Yabunouchicho, Kyoto",
		Latitude:  34.9671,
		Longitude: 135.7727,
		Ratings:   []float64{4.8, 4.5, 5},
		Image:     "https://img.example.com/fushimi.jpg",
		Duration:  "2h",
		Hours: domain.WeeklyHours{
			Monday:    "open",
			Tuesday:   "open",
			Wednesday: "open",
			Thursday:  "open",
			Friday:    "open",
			Saturday:  "06:00-18:00",
			Sunday:    "closed",
		},
	}
}

var (
	nineOhFive    = domain.TimeOfDay{Hour: 9, Minute: 5}
	elevenThirtyP = domain.TimeOfDay{Hour: 23, Minute: 30}
)

func TestNewEvent_CopiesLocationFields(t *testing.T) {
	loc := locationFixture()

	ev, err := schedule.NewEvent(loc, "Morning hike", nineOhFive, elevenThirtyP)

	require.NoError(t, err)
	assert.Equal(t, "Morning hike", ev.Title)
	assert.Equal(t, loc.Name, ev.Location)
	assert.Equal(t, loc.Address, ev.Address)
	assert.Equal(t, loc.Latitude, ev.Latitude)
	assert.Equal(t, loc.Longitude, ev.Longitude)
	assert.Equal(t, loc.Ratings, ev.Ratings)
	assert.Equal(t, loc.Image, ev.Image)
	assert.Equal(t, loc.Duration, ev.Duration)
	assert.Equal(t, loc.Hours, ev.Hours)
}

func TestNewEvent_FormatsTimes(t *testing.T) {
	ev, err := schedule.NewEvent(locationFixture(), "Dinner", nineOhFive, elevenThirtyP)

	require.NoError(t, err)
	assert.Equal(t, "09:05", ev.StartTime)
	assert.Equal(t, "23:30", ev.EndTime)
}

func TestNewEvent_EndBeforeStartAllowed(t *testing.T) {
	ev, err := schedule.NewEvent(locationFixture(), "Overnight", elevenThirtyP, nineOhFive)

	require.NoError(t, err)
	assert.Equal(t, "23:30", ev.StartTime)
	assert.Equal(t, "09:05", ev.EndTime)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for range 200 {
		ev, err := schedule.NewEvent(locationFixture(), "Visit", nineOhFive, nineOhFive)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, ev.ID)
		require.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
	}
}

func TestNewEvent_IsSnapshot(t *testing.T) {
	loc := locationFixture()
	ev, err := schedule.NewEvent(loc, "Visit", nineOhFive, nineOhFive)
	require.NoError(t, err)

	loc.Ratings[0] = 1
	loc.Name = "Renamed"

	assert.Equal(t, 4.8, ev.Ratings[0], "ratings must not alias the location's slice")
	assert.Equal(t, "Fushimi Inari Taisha", ev.Location)
}

func TestNewEvent_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		_, err := schedule.NewEvent(locationFixture(), title, nineOhFive, nineOhFive)
		assert.ErrorIs(t, err, domain.ErrInvalidTitle)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestNewEvent_InvalidTime(t *testing.T) {
	_, err := schedule.NewEvent(locationFixture(), "Visit", domain.TimeOfDay{Hour: 25}, nineOhFive)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventDraftFrom_LeavesIdentityEmpty(t *testing.T) {
	draft := schedule.EventDraftFrom(locationFixture())

	assert.Equal(t, uuid.Nil, draft.ID)
	assert.Empty(t, draft.Title)
	assert.Empty(t, draft.StartTime)
	assert.Empty(t, draft.EndTime)
}

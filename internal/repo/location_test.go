package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/repo"
)

func TestLocationRepo_Create(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		input := locationFixture()

		got, err := r.Locations.Create(context.Background(), input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, input.Name, got.Name)
		assert.Equal(t, input.Address, got.Address)
		assert.Equal(t, input.Latitude, got.Latitude)
		assert.Equal(t, input.Longitude, got.Longitude)
		assert.Equal(t, input.Ratings, got.Ratings)
		assert.Equal(t, input.Image, got.Image)
		assert.Equal(t, input.Duration, got.Duration)
		assert.Equal(t, input.Hours, got.Hours)
		assert.False(t, got.CreatedAt.IsZero())
	})
}

func TestLocationRepo_Create_NilRatings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		input := locationFixture()
		input.Ratings = nil

		got, err := r.Locations.Create(context.Background(), input)

		require.NoError(t, err)
		assert.NotNil(t, got.Ratings)
		assert.Empty(t, got.Ratings)
	})
}

func TestLocationRepo_GetByID_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Locations.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLocationRepo_ListPaged_OrderedByName(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		for _, name := range []string{"Nara Park", "Arashiyama", "Gion"} {
			l := locationFixture()
			l.Name = name
			_, err := r.Locations.Create(ctx, l)
			require.NoError(t, err)
		}

		got, total, err := r.Locations.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, got, 3)
		assert.Equal(t, "Arashiyama", got[0].Name)
		assert.Equal(t, "Gion", got[1].Name)
		assert.Equal(t, "Nara Park", got[2].Name)
	})
}

func TestLocationRepo_Update(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		created, err := r.Locations.Create(ctx, locationFixture())
		require.NoError(t, err)

		created.Name = "Kiyomizu Temple"
		created.Ratings = []float64{3}
		created.Hours.Sunday = "open"
		updated, err := r.Locations.Update(ctx, created)

		require.NoError(t, err)
		assert.Equal(t, "Kiyomizu Temple", updated.Name)
		assert.Equal(t, []float64{3}, updated.Ratings)
		assert.Equal(t, "open", updated.Hours.Sunday)
	})
}

func TestLocationRepo_Update_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		l := locationFixture()
		l.ID = uuid.New()

		_, err := r.Locations.Update(context.Background(), l)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// Events snapshot their location, so editing the location afterwards must
// not change what is already scheduled.
func TestLocationRepo_Update_DoesNotTouchEvents(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		trip := mustCreateTrip(t, r, 1)
		_, err := r.Events.Append(ctx, trip.ID, 0, mustNewEvent(t, "Visit", morning, night))
		require.NoError(t, err)

		loc, err := r.Locations.Create(ctx, locationFixture())
		require.NoError(t, err)
		loc.Name = "Renamed"
		_, err = r.Locations.Update(ctx, loc)
		require.NoError(t, err)

		got, err := r.Trips.GetByID(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Kiyomizu-dera", got.Days[0].Events[0].Location)
	})
}

func TestLocationRepo_Delete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		created, err := r.Locations.Create(ctx, locationFixture())
		require.NoError(t, err)

		require.NoError(t, r.Locations.Delete(ctx, created.ID))

		_, err = r.Locations.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, r.Locations.Delete(ctx, created.ID), domain.ErrNotFound)
	})
}

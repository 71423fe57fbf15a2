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

func TestTripRepo_Create(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		got := mustCreateTrip(t, r, 3)

		assert.NotEqual(t, uuid.Nil, got.ID, "ID should be generated")
		assert.Equal(t, "Kansai Loop", got.Name)
		require.Len(t, got.Days, 3)
		for i, d := range got.Days {
			assert.Equal(t, i, d.Index)
			assert.Empty(t, d.Events)
		}
		assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})
}

func TestTripRepo_GetByID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		created := mustCreateTrip(t, r, 2)

		got, err := r.Trips.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Name, got.Name)
		assert.Len(t, got.Days, 2)
	})
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Trips.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTripRepo_GetByID_ReturnsCopy(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		created := mustCreateTrip(t, r, 1)

		first, err := r.Trips.GetByID(ctx, created.ID)
		require.NoError(t, err)
		first.Days[0].Events = append(first.Days[0].Events, domain.Event{ID: uuid.New()})

		second, err := r.Trips.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, second.Days[0].Events, "mutating a fetched trip must not change the store")
	})
}

func TestTripRepo_ListPaged(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		for range 3 {
			mustCreateTrip(t, r, 1)
		}

		page1, total, err := r.Trips.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, page1, 2)

		page2, _, err := r.Trips.ListPaged(ctx, domain.PaginationParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, page2, 1)
		assert.NotContains(t, []uuid.UUID{page1[0].ID, page1[1].ID}, page2[0].ID)
		assert.Len(t, page2[0].Days, 1)

		page9, _, err := r.Trips.ListPaged(ctx, domain.PaginationParams{Page: 9, Limit: 2})
		require.NoError(t, err)
		assert.NotNil(t, page9, "should return empty slice, not nil")
		assert.Empty(t, page9)
	})
}

func TestTripRepo_Delete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		created := mustCreateTrip(t, r, 1)

		require.NoError(t, r.Trips.Delete(ctx, created.ID))

		_, err := r.Trips.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		err := r.Trips.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

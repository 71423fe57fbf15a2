package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/repo"
	"github.com/pkordes/itinerary/testutil"
)

// backends lists every Repos implementation. Each test runs once per backend
// so the in-memory store and Postgres honour the same contract.
var backends = map[string]func(t *testing.T) repo.Repos{
	"memory": func(t *testing.T) repo.Repos {
		return repo.NewMemoryRepos()
	},
	// postgres opens a transaction that is rolled back when the test
	// finishes, giving free per-test isolation. Skips without TEST_DATABASE_URL.
	"postgres": func(t *testing.T) repo.Repos {
		t.Helper()
		pool := testutil.NewPool(t)

		tx, err := pool.Begin(context.Background())
		require.NoError(t, err, "begin transaction")
		t.Cleanup(func() {
			_ = tx.Rollback(context.Background())
		})

		return repo.NewPostgresRepos(tx)
	},
}

// forEachBackend runs fn as a subtest against every backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, r repo.Repos)) {
	t.Helper()
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, open(t))
		})
	}
}

// mustCreateTrip inserts a trip with dayCount empty days.
func mustCreateTrip(t *testing.T, r repo.Repos, dayCount int) domain.Trip {
	t.Helper()
	trip, err := r.Trips.Create(context.Background(), domain.Trip{
		Name: "Kansai Loop",
		Days: domain.NewDays(dayCount),
	})
	require.NoError(t, err, "create trip")
	return trip
}

// locationFixture returns a Location ready for insertion.
func locationFixture() domain.Location {
	return domain.Location{
		Name:      "Kiyomizu-dera",
		Address:   "1-294 Kiyomizu, Higashiyama Ward, Kyoto",
		Latitude:  34.9949,
		Longitude: 135.7850,
		Ratings:   []float64{4.7, 4.9},
		Image:     "https://img.example.com/kiyomizu.jpg",
		Duration:  "90m",
		Hours: domain.WeeklyHours{
			Monday:   "06:00-18:00",
			Saturday: "06:00-21:00",
			Sunday:   "closed",
		},
	}
}

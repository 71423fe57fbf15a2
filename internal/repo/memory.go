package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/schedule"
)

// memoryState is the shared backing store for the in-memory repos.
// mu guards the maps; appends to a trip's days additionally go through the
// schedule.Store, which owns day/event mutation. eventIDs holds the id of
// every scheduled event across all trips.
type memoryState struct {
	mu        sync.RWMutex
	sched     *schedule.Store
	trips     map[uuid.UUID]*domain.Trip
	locations map[uuid.UUID]domain.Location
	eventIDs  map[uuid.UUID]struct{}
	now       func() time.Time
}

// NewMemoryRepos returns Repos that keep all state in process memory.
// State is lost on restart; use it for local development and tests.
func NewMemoryRepos() Repos {
	st := &memoryState{
		sched:     schedule.NewStore(),
		trips:     make(map[uuid.UUID]*domain.Trip),
		locations: make(map[uuid.UUID]domain.Location),
		eventIDs:  make(map[uuid.UUID]struct{}),
		now:       func() time.Time { return time.Now().UTC() },
	}
	return Repos{
		Trips:     &memoryTripRepo{st: st},
		Locations: &memoryLocationRepo{st: st},
		Events:    &memoryEventRepo{st: st},
	}
}

// ---- trips -----------------------------------------------------------------

type memoryTripRepo struct {
	st *memoryState
}

func (r *memoryTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := r.st.now()
	stored := &domain.Trip{
		ID:        uuid.New(),
		Name:      trip.Name,
		Days:      domain.NewDays(len(trip.Days)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.st.trips[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *memoryTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, ok := r.st.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return t.Clone(), nil
}

func (r *memoryTripRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	all := make([]*domain.Trip, 0, len(r.st.trips))
	for _, t := range r.st.trips {
		all = append(all, t)
	}
	slices.SortFunc(all, func(a, b *domain.Trip) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	start, end := p.Window(len(all))
	out := make([]domain.Trip, 0, end-start)
	for _, t := range all[start:end] {
		out = append(out, t.Clone())
	}
	return out, int64(len(all)), nil
}

func (r *memoryTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	trip, ok := r.st.trips[id]
	if !ok {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	for _, day := range trip.Days {
		for _, ev := range day.Events {
			delete(r.st.eventIDs, ev.ID)
		}
	}
	delete(r.st.trips, id)
	return nil
}

// ---- locations -------------------------------------------------------------

type memoryLocationRepo struct {
	st *memoryState
}

func (r *memoryLocationRepo) Create(_ context.Context, loc domain.Location) (domain.Location, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	stored := loc.Clone()
	if stored.Ratings == nil {
		stored.Ratings = []float64{}
	}
	stored.ID = uuid.New()
	stored.CreatedAt = r.st.now()
	stored.UpdatedAt = stored.CreatedAt
	r.st.locations[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *memoryLocationRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Location, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	l, ok := r.st.locations[id]
	if !ok {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", domain.ErrNotFound)
	}
	return l.Clone(), nil
}

func (r *memoryLocationRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.Location, int64, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	all := make([]domain.Location, 0, len(r.st.locations))
	for _, l := range r.st.locations {
		all = append(all, l)
	}
	slices.SortFunc(all, func(a, b domain.Location) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	start, end := p.Window(len(all))
	out := make([]domain.Location, 0, end-start)
	for _, l := range all[start:end] {
		out = append(out, l.Clone())
	}
	return out, int64(len(all)), nil
}

func (r *memoryLocationRepo) Update(_ context.Context, loc domain.Location) (domain.Location, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	existing, ok := r.st.locations[loc.ID]
	if !ok {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Update: %w", domain.ErrNotFound)
	}
	stored := loc.Clone()
	if stored.Ratings == nil {
		stored.Ratings = []float64{}
	}
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.st.now()
	r.st.locations[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *memoryLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.locations[id]; !ok {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.st.locations, id)
	return nil
}

// ---- events ----------------------------------------------------------------

type memoryEventRepo struct {
	st *memoryState
}

// Append hands the stored trip to the schedule store, which validates the
// day index and performs the append.
func (r *memoryEventRepo) Append(_ context.Context, tripID uuid.UUID, dayIndex int, event domain.Event) (domain.Event, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	trip, ok := r.st.trips[tripID]
	if !ok {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: %w", domain.ErrNotFound)
	}

	// Ids are unique across trips. An out-of-range day still wins, as it
	// does in Postgres.
	if dayIndex >= 0 && dayIndex < len(trip.Days) {
		if _, taken := r.st.eventIDs[event.ID]; taken {
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: %w", domain.ErrDuplicateEvent)
		}
	}

	if event.Ratings == nil {
		event.Ratings = []float64{}
	}
	event.CreatedAt = r.st.now()
	if err := r.st.sched.AddEventToTrip(trip, dayIndex, event); err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: %w", err)
	}
	r.st.eventIDs[event.ID] = struct{}{}
	trip.UpdatedAt = event.CreatedAt

	events := trip.Days[dayIndex].Events
	return events[len(events)-1].Clone(), nil
}

package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkordes/itinerary/internal/domain"
)

// Store is the only mutator of a Trip's day/event structure.
// All appends made through one Store are serialised, so a single Store can
// be shared by concurrent request handlers operating on the same trips.
type Store struct {
	mu  sync.Mutex
	now func() time.Time
}

// NewStore returns a ready-to-use Store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// AddEventToTrip appends event to trip.Days[dayIndex].Events.
//
// dayIndex is 0-based. If it is out of range, domain.ErrIndexOutOfBounds is
// returned and the trip is left untouched. An event whose id is already in
// the trip is rejected with domain.ErrDuplicateEvent.
//
// On success the stored copy carries the trip id, day index, its position
// within the day and a creation timestamp (unless one was already set).
// The trip is mutated in place; anyone holding the same *Trip sees the event.
func (s *Store) AddEventToTrip(trip *domain.Trip, dayIndex int, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dayIndex < 0 || dayIndex >= len(trip.Days) {
		return fmt.Errorf("schedule.Store.AddEventToTrip: day %d of %d: %w", dayIndex, len(trip.Days), domain.ErrIndexOutOfBounds)
	}
	if containsEvent(trip, event) {
		return fmt.Errorf("schedule.Store.AddEventToTrip: %s: %w", event.ID, domain.ErrDuplicateEvent)
	}

	day := &trip.Days[dayIndex]
	ev := event.Clone()
	ev.TripID = trip.ID
	ev.DayIndex = dayIndex
	ev.Position = len(day.Events)
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.now().UTC()
	}
	day.Events = append(day.Events, ev)
	return nil
}

func containsEvent(trip *domain.Trip, event domain.Event) bool {
	for _, d := range trip.Days {
		for _, e := range d.Events {
			if e.ID == event.ID {
				return true
			}
		}
	}
	return false
}

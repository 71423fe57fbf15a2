package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/repo"
	"github.com/pkordes/itinerary/internal/schedule"
)

// AddEventInput is what a client supplies to schedule a location on a day.
type AddEventInput struct {
	LocationID uuid.UUID
	Title      string
	Start      domain.TimeOfDay
	End        domain.TimeOfDay
}

// EventService schedules events on trip days.
// It needs the location repo because the event is built from a location
// snapshot, and the trip repo to read a day's schedule back.
type EventService struct {
	trips     repo.TripRepo
	locations repo.LocationRepo
	events    repo.EventRepo
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(trips repo.TripRepo, locations repo.LocationRepo, events repo.EventRepo) *EventService {
	return &EventService{trips: trips, locations: locations, events: events}
}

// AddToDay builds an event from the input's location and appends it to day
// dayNumber (1-based) of the trip.
//
// Returns domain.ErrIndexOutOfBounds if the trip has no such day,
// domain.ErrNotFound if the trip does not exist, domain.ErrLocationNotFound
// (which also matches domain.ErrNotFound) if the location does not, and
// domain.ErrValidation (domain.ErrInvalidTitle for a blank title) for bad input.
func (s *EventService) AddToDay(ctx context.Context, tripID uuid.UUID, dayNumber int, in AddEventInput) (domain.Event, error) {
	if dayNumber < 1 || dayNumber > MaxTripDays {
		return domain.Event{}, fmt.Errorf("service.EventService.AddToDay: day %d: %w", dayNumber, domain.ErrIndexOutOfBounds)
	}

	loc, err := s.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Event{}, fmt.Errorf("service.EventService.AddToDay: %s: %w", in.LocationID, domain.ErrLocationNotFound)
		}
		return domain.Event{}, fmt.Errorf("service.EventService.AddToDay: %w", err)
	}

	ev, err := schedule.NewEvent(loc, in.Title, in.Start, in.End)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.AddToDay: %w", err)
	}

	stored, err := s.events.Append(ctx, tripID, dayNumber-1, ev)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.AddToDay: %w", err)
	}
	return stored, nil
}

// ListByDay returns the events of day dayNumber (1-based) in append order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EventService) ListByDay(ctx context.Context, tripID uuid.UUID, dayNumber int) ([]domain.Event, error) {
	if dayNumber < 1 || dayNumber > MaxTripDays {
		return nil, fmt.Errorf("service.EventService.ListByDay: day %d: %w", dayNumber, domain.ErrIndexOutOfBounds)
	}
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.ListByDay: %w", err)
	}
	if dayNumber < 1 || dayNumber > len(trip.Days) {
		return nil, fmt.Errorf("service.EventService.ListByDay: day %d of %d: %w", dayNumber, len(trip.Days), domain.ErrIndexOutOfBounds)
	}
	events := trip.Days[dayNumber-1].Events
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

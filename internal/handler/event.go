package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
	"github.com/pkordes/itinerary/internal/service"
)

// AddEvent handles POST /trips/{tripId}/days/{dayNumber}/events.
// Times are "HH:mm" in 24-hour form.
func (s *Server) AddEvent(ctx context.Context, req gen.AddEventRequestObject) (gen.AddEventResponseObject, error) {
	if req.Body == nil {
		return gen.AddEvent422JSONResponse(errorBody(codeValidation, "request body is required")), nil
	}

	start, err := domain.ParseTimeOfDay(req.Body.StartTime)
	if err != nil {
		return gen.AddEvent422JSONResponse(validationBody(err)), nil
	}
	end, err := domain.ParseTimeOfDay(req.Body.EndTime)
	if err != nil {
		return gen.AddEvent422JSONResponse(validationBody(err)), nil
	}

	ev, err := s.events.AddToDay(ctx, req.TripId, req.DayNumber, service.AddEventInput{
		LocationID: req.Body.LocationId,
		Title:      req.Body.Title,
		Start:      start,
		End:        end,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexOutOfBounds):
			return gen.AddEvent404JSONResponse(notFoundBody("day not found")), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.AddEvent404JSONResponse(notFoundBody(notFoundMessage(err))), nil
		case errors.Is(err, domain.ErrDuplicateEvent):
			return gen.AddEvent409JSONResponse(conflictBody("event already scheduled")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.AddEvent422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.AddEvent201JSONResponse(eventToResponse(ev)), nil
}

// ListDayEvents handles GET /trips/{tripId}/days/{dayNumber}/events.
// Events are returned in the order they were added.
func (s *Server) ListDayEvents(ctx context.Context, req gen.ListDayEventsRequestObject) (gen.ListDayEventsResponseObject, error) {
	events, err := s.events.ListByDay(ctx, req.TripId, req.DayNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexOutOfBounds):
			return gen.ListDayEvents404JSONResponse(notFoundBody("day not found")), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.ListDayEvents404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.ListDayEvents200JSONResponse(eventsToResponse(events)), nil
}

// notFoundMessage names the missing resource of an AddEvent failure.
func notFoundMessage(err error) string {
	if errors.Is(err, domain.ErrLocationNotFound) {
		return "location not found"
	}
	return "trip not found"
}

// eventToResponse converts a domain.Event to the generated API response type.
// DayNumber is the 1-based form of DayIndex.
func eventToResponse(e domain.Event) gen.Event {
	return gen.Event{
		Id:           e.ID,
		TripId:       e.TripID,
		DayNumber:    e.DayIndex + 1,
		Position:     e.Position,
		Title:        e.Title,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Location:     e.Location,
		Address:      nilIfEmpty(e.Address),
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		Ratings:      nonNilRatings(e.Ratings),
		Image:        nilIfEmpty(e.Image),
		Duration:     nilIfEmpty(e.Duration),
		Availability: hoursToAvailability(e.Hours),
		CreatedAt:    e.CreatedAt,
	}
}

func eventsToResponse(events []domain.Event) []gen.Event {
	out := make([]gen.Event, len(events))
	for i, e := range events {
		out[i] = eventToResponse(e)
	}
	return out
}

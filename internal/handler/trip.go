package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
	"github.com/pkordes/itinerary/internal/service"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(errorBody(codeValidation, "request body is required")), nil
	}

	created, err := s.trips.Create(ctx, requestToTrip(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	trips, total, err := s.trips.ListPaged(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data:       data,
		Pagination: paginationToResponse(params, total),
	}, nil
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	if err := s.trips.Delete(ctx, req.TripId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}

// requestToTrip converts the generated request body into a domain.Trip.
// The service rejects counts outside 1..MaxTripDays. Clamp first so a
// hostile day_count can neither panic NewDays nor allocate a huge slice.
func requestToTrip(body gen.CreateTripRequest) domain.Trip {
	dayCount := min(max(body.DayCount, 0), service.MaxTripDays+1)
	return domain.Trip{Name: body.Name, Days: domain.NewDays(dayCount)}
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	days := make([]gen.Day, len(t.Days))
	for i, d := range t.Days {
		days[i] = gen.Day{DayNumber: i + 1, Events: eventsToResponse(d.Events)}
	}
	return gen.Trip{
		Id:        t.ID,
		Name:      t.Name,
		DayCount:  len(t.Days),
		Days:      days,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

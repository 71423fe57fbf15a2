package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
)

// CreateLocation handles POST /locations.
func (s *Server) CreateLocation(ctx context.Context, req gen.CreateLocationRequestObject) (gen.CreateLocationResponseObject, error) {
	if req.Body == nil {
		return gen.CreateLocation422JSONResponse(errorBody(codeValidation, "request body is required")), nil
	}

	created, err := s.locations.Create(ctx, requestToLocation(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateLocation422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateLocation201JSONResponse(locationToResponse(created)), nil
}

// ListLocations handles GET /locations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListLocations(ctx context.Context, req gen.ListLocationsRequestObject) (gen.ListLocationsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	locs, total, err := s.locations.ListPaged(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Location, len(locs))
	for i, l := range locs {
		data[i] = locationToResponse(l)
	}
	return gen.ListLocations200JSONResponse{
		Data:       data,
		Pagination: paginationToResponse(params, total),
	}, nil
}

// GetLocation handles GET /locations/{locationId}.
func (s *Server) GetLocation(ctx context.Context, req gen.GetLocationRequestObject) (gen.GetLocationResponseObject, error) {
	loc, err := s.locations.GetByID(ctx, req.LocationId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetLocation404JSONResponse(notFoundBody("location not found")), nil
		}
		return nil, err
	}

	return gen.GetLocation200JSONResponse(locationToResponse(loc)), nil
}

// UpdateLocation handles PUT /locations/{locationId}.
func (s *Server) UpdateLocation(ctx context.Context, req gen.UpdateLocationRequestObject) (gen.UpdateLocationResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateLocation422JSONResponse(errorBody(codeValidation, "request body is required")), nil
	}

	loc := requestToLocation(*req.Body)
	loc.ID = req.LocationId

	updated, err := s.locations.Update(ctx, loc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateLocation404JSONResponse(notFoundBody("location not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateLocation422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateLocation200JSONResponse(locationToResponse(updated)), nil
}

// DeleteLocation handles DELETE /locations/{locationId}.
func (s *Server) DeleteLocation(ctx context.Context, req gen.DeleteLocationRequestObject) (gen.DeleteLocationResponseObject, error) {
	if err := s.locations.Delete(ctx, req.LocationId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteLocation404JSONResponse(notFoundBody("location not found")), nil
		}
		return nil, err
	}

	return gen.DeleteLocation204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

func requestToLocation(body gen.LocationRequest) domain.Location {
	loc := domain.Location{
		Name:      body.Name,
		Address:   derefString(body.Address),
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Image:     derefString(body.Image),
		Duration:  derefString(body.Duration),
	}
	if body.Ratings != nil {
		loc.Ratings = *body.Ratings
	}
	if body.Availability != nil {
		loc.Hours = availabilityToHours(*body.Availability)
	}
	return loc
}

// locationToResponse converts a domain.Location to the generated API response type.
func locationToResponse(l domain.Location) gen.Location {
	return gen.Location{
		Id:           l.ID,
		Name:         l.Name,
		Address:      nilIfEmpty(l.Address),
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		Ratings:      nonNilRatings(l.Ratings),
		Image:        nilIfEmpty(l.Image),
		Duration:     nilIfEmpty(l.Duration),
		Availability: hoursToAvailability(l.Hours),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func availabilityToHours(a gen.Availability) domain.WeeklyHours {
	return domain.WeeklyHours{
		Monday:    derefString(a.Monday),
		Tuesday:   derefString(a.Tuesday),
		Wednesday: derefString(a.Wednesday),
		Thursday:  derefString(a.Thursday),
		Friday:    derefString(a.Friday),
		Saturday:  derefString(a.Saturday),
		Sunday:    derefString(a.Sunday),
	}
}

// hoursToAvailability leaves days without hours out of the JSON.
func hoursToAvailability(h domain.WeeklyHours) gen.Availability {
	return gen.Availability{
		Monday:    nilIfEmpty(h.Monday),
		Tuesday:   nilIfEmpty(h.Tuesday),
		Wednesday: nilIfEmpty(h.Wednesday),
		Thursday:  nilIfEmpty(h.Thursday),
		Friday:    nilIfEmpty(h.Friday),
		Saturday:  nilIfEmpty(h.Saturday),
		Sunday:    nilIfEmpty(h.Sunday),
	}
}

// derefString safely dereferences a *string, returning "" when nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nilIfEmpty converts an empty string to a nil pointer so optional fields
// are omitted from the response rather than sent as empty strings.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNilRatings(r []float64) []float64 {
	if r == nil {
		return []float64{}
	}
	return r
}

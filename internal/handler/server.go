// Package handler implements the HTTP API of the itinerary planner.
// Server implements gen.StrictServerInterface, which is generated from
// openapi.yaml. Methods are split into resource-specific files
// (trip.go, location.go, event.go, ...) but share the same Server struct.
package handler

//go:generate oapi-codegen --config=oapi-codegen.yaml ../../spec/openapi.yaml

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
	"github.com/pkordes/itinerary/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Interfaces are declared here, in the consumer package, so handler tests can
// inject mocks without touching the service or repo layers.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationServicer defines the operations the location handlers depend on.
type LocationServicer interface {
	Create(ctx context.Context, loc domain.Location) (domain.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Location, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error)
	Update(ctx context.Context, loc domain.Location) (domain.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventServicer defines the scheduling operations the event handlers depend on.
type EventServicer interface {
	AddToDay(ctx context.Context, tripID uuid.UUID, dayNumber int, in service.AddEventInput) (domain.Event, error)
	ListByDay(ctx context.Context, tripID uuid.UUID, dayNumber int) ([]domain.Event, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the dependencies of every HTTP handler.
type Server struct {
	trips     TripServicer
	locations LocationServicer
	events    EventServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
// Any servicer may be nil in tests that do not hit its routes.
func NewServer(trips TripServicer, locations LocationServicer, events EventServicer, export ExportServicer) *Server {
	return &Server{trips: trips, locations: locations, events: events, export: export}
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// Routes returns the API router: the generated chi routes adapted to Server
// through gen.NewStrictHandlerWithOptions, plus GET /openapi.yaml.
// Cross-cutting middleware (request IDs, logging, CORS) is applied by the
// caller around this handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/openapi.yaml", s.GetOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: paramError,
	})
}

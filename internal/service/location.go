package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/repo"
)

// LocationService implements business logic for the location catalog.
type LocationService struct {
	repo repo.LocationRepo
}

// NewLocationService constructs a LocationService backed by the provided repo.
func NewLocationService(r repo.LocationRepo) *LocationService {
	return &LocationService{repo: r}
}

// Create validates and persists a new location.
// Returns domain.ErrValidation if input violates business rules.
func (s *LocationService) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	if err := validateLocation(loc); err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Create: %w", err)
	}
	result, err := s.repo.Create(ctx, loc)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single location.
func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Location, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of locations ordered by name and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LocationService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error) {
	locs, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.LocationService.ListPaged: %w", err)
	}
	if locs == nil {
		locs = []domain.Location{}
	}
	return locs, total, nil
}

// Update validates and persists changes to an existing location.
// Events already scheduled from it are not changed.
func (s *LocationService) Update(ctx context.Context, loc domain.Location) (domain.Location, error) {
	if err := validateLocation(loc); err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Update: %w", err)
	}
	result, err := s.repo.Update(ctx, loc)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.LocationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a location from the catalog.
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.LocationService.Delete: %w", err)
	}
	return nil
}

// validateLocation enforces business rules common to Create and Update.
//   - Name must be non-empty.
//   - Latitude must be within [-90, 90] and longitude within [-180, 180].
//   - Every rating must be within [0, 5].
func validateLocation(loc domain.Location) error {
	if strings.TrimSpace(loc.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	for _, r := range loc.Ratings {
		if r < 0 || r > 5 {
			return fmt.Errorf("%w: ratings must be between 0 and 5", domain.ErrValidation)
		}
	}
	return nil
}

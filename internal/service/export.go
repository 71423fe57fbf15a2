package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/repo"
)

// ExportService flattens a trip's schedule for download.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per event of the trip, ordered by day and then
// by append position. A trip with no events yields an empty, non-nil slice.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, trip.EventCount())
	for i, day := range trip.Days {
		for pos, ev := range day.Events {
			rows = append(rows, domain.ExportRow{
				TripID:    trip.ID.String(),
				TripName:  trip.Name,
				DayNumber: i + 1,
				Position:  pos,
				EventID:   ev.ID.String(),
				Title:     ev.Title,
				StartTime: ev.StartTime,
				EndTime:   ev.EndTime,
				Location:  ev.Location,
				Address:   ev.Address,
				Latitude:  ev.Latitude,
				Longitude: ev.Longitude,
				Duration:  ev.Duration,
			})
		}
	}
	return rows, nil
}

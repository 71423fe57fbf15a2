// Package schedule holds the trip scheduling core: building Events from
// Locations and appending them to a Trip's days.
// It performs no I/O; persistence lives in the repo package.
package schedule

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
)

// EventDraftFrom maps the descriptive fields of a Location onto a new Event.
// It is the single place that decides which Location fields an Event
// snapshots; ID, Title and times are left zero for the caller to fill in.
func EventDraftFrom(loc domain.Location) domain.Event {
	return domain.Event{
		Location:  loc.Name,
		Address:   loc.Address,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Ratings:   slices.Clone(loc.Ratings),
		Image:     loc.Image,
		Duration:  loc.Duration,
		Hours:     loc.Hours,
	}
}

// NewEvent builds an Event for loc with a fresh id and start/end formatted
// as "HH:mm". End is not required to be after start.
// Returns domain.ErrInvalidTitle if title is empty or whitespace only, and a
// wrapped domain.ErrValidation if either time is outside a single day.
func NewEvent(loc domain.Location, title string, start, end domain.TimeOfDay) (domain.Event, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Event{}, domain.ErrInvalidTitle
	}
	if !start.Valid() || !end.Valid() {
		return domain.Event{}, fmt.Errorf("%w: start and end must be valid times of day", domain.ErrValidation)
	}

	ev := EventDraftFrom(loc)
	ev.ID = uuid.New()
	ev.Title = title
	ev.StartTime = start.String()
	ev.EndTime = end.String()
	return ev, nil
}

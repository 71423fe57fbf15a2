package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled visit to a Location within one Day of a Trip.
//
// The descriptive fields (Location through Hours) are a snapshot of the
// source Location taken at creation time. StartTime and EndTime are
// "HH:mm" wall-clock strings with no date or zone.
//
// TripID, DayIndex, Position and CreatedAt are assigned when the event is
// appended to a trip.
type Event struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	DayIndex  int
	Position  int
	Title     string
	StartTime string
	EndTime   string

	Location  string
	Address   string
	Latitude  float64
	Longitude float64
	Ratings   []float64
	Image     string
	Duration  string
	Hours     WeeklyHours

	CreatedAt time.Time
}

// Clone returns a copy of e that shares no slices with it.
func (e Event) Clone() Event {
	out := e
	out.Ratings = slices.Clone(e.Ratings)
	return out
}

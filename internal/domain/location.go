package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// WeeklyHours holds per-weekday availability for a Location.
// Values are opaque to this service (e.g. "09:00-17:00", "closed", "true").
type WeeklyHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Location is a point of interest that can be used as a template for Events.
// Duration is the expected visit length, kept as an opaque string.
type Location struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Ratings   []float64
	Image     string
	Duration  string
	Hours     WeeklyHours
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy of l that shares no slices with it.
func (l Location) Clone() Location {
	out := l
	out.Ratings = slices.Clone(l.Ratings)
	return out
}

// Package domain contains the core data types for the itinerary planner.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (schedule, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a planned itinerary: an ordered sequence of days.
// Days[i] is "day i+1" in the UI; storage and the schedule store use the
// 0-based index.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Days      []Day     `json:"days"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Day is one slot of a Trip. Events are kept in append order, not
// chronological order.
type Day struct {
	Index  int     `json:"index"`
	Events []Event `json:"events"`
}

// NewDays returns count empty days indexed 0..count-1.
func NewDays(count int) []Day {
	days := make([]Day, count)
	for i := range days {
		days[i] = Day{Index: i, Events: []Event{}}
	}
	return days
}

// EventCount returns the total number of events across all days.
func (t Trip) EventCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Events)
	}
	return n
}

// Clone returns a deep copy of the trip. Mutating the copy's days, events
// or ratings never affects the original.
func (t Trip) Clone() Trip {
	out := t
	out.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		events := make([]Event, len(d.Events))
		for j, e := range d.Events {
			events[j] = e.Clone()
		}
		out.Days[i] = Day{Index: d.Index, Events: events}
	}
	return out
}

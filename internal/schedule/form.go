package schedule

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary/internal/domain"
)

// Outcome tells the presenting layer what to do after a form action.
type Outcome int

const (
	// Continue keeps the form open (e.g. after a rejected save).
	Continue Outcome = iota
	// Dismiss closes the form.
	Dismiss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Dismiss:
		return "dismiss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// AddEventForm is the state of the "add to schedule" form.
// DayNumber is 1-based as shown to users.
type AddEventForm struct {
	Location  domain.Location
	Trip      *domain.Trip
	DayNumber int
	Title     string
	Start     domain.TimeOfDay
	End       domain.TimeOfDay
}

// FormController drives the add-event form against a Store.
type FormController struct {
	store *Store
}

// NewFormController returns a controller that appends through store.
func NewFormController(store *Store) *FormController {
	return &FormController{store: store}
}

// CanSave reports whether the save action should be enabled.
func (c *FormController) CanSave(form AddEventForm) bool {
	return strings.TrimSpace(form.Title) != ""
}

// Save builds the event and appends it to the form's trip.
// On success it returns Dismiss. On failure it returns Continue with the
// error, and the trip is unchanged.
func (c *FormController) Save(form AddEventForm) (Outcome, error) {
	if form.Trip == nil {
		return Continue, fmt.Errorf("schedule.FormController.Save: %w: trip is required", domain.ErrValidation)
	}
	ev, err := NewEvent(form.Location, form.Title, form.Start, form.End)
	if err != nil {
		return Continue, fmt.Errorf("schedule.FormController.Save: %w", err)
	}
	if err := c.store.AddEventToTrip(form.Trip, form.DayNumber-1, ev); err != nil {
		return Continue, fmt.Errorf("schedule.FormController.Save: %w", err)
	}
	return Dismiss, nil
}

// Back abandons the form. Nothing is mutated.
func (c *FormController) Back() Outcome {
	return Dismiss
}

package domain

// ExportRow is a single row in a trip schedule export.
// It is a flat, denormalized view: one row per event, with the trip fields
// repeated on every row. Days without events contribute no rows.
type ExportRow struct {
	TripID   string
	TripName string

	// DayNumber is 1-based, matching how days are presented to users.
	DayNumber int
	Position  int

	EventID   string
	Title     string
	StartTime string
	EndTime   string
	Location  string
	Address   string
	Latitude  float64
	Longitude float64
	Duration  string
}

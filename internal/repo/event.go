package repo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/itinerary/internal/domain"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for a unique constraint violation.
const pgUniqueViolation = "23505"

// EventRepo defines the persistence operations for scheduled Events.
type EventRepo interface {
	// Append adds event to the end of day dayIndex (0-based) of the trip and
	// returns the stored record with TripID, DayIndex, Position and CreatedAt set.
	// Returns domain.ErrNotFound if the trip does not exist,
	// domain.ErrIndexOutOfBounds if the trip has no such day, and
	// domain.ErrDuplicateEvent if an event with the same ID already exists.
	// Nothing is written when an error is returned.
	Append(ctx context.Context, tripID uuid.UUID, dayIndex int, event domain.Event) (domain.Event, error)
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

// eventColumns is the column list shared by every events SELECT and RETURNING
// clause. Its order must match scanEvent.
const eventColumns = `id, trip_id, day_position, position, title, start_time, end_time,
		location_name, address, latitude, longitude, ratings, image, duration,
		monday, tuesday, wednesday, thursday, friday, saturday, sunday, created_at`

// Append locks the target day row so concurrent appends to the same day
// serialise, then inserts the event at the next position.
func (r *pgEventRepo) Append(ctx context.Context, tripID uuid.UUID, dayIndex int, event domain.Event) (domain.Event, error) {
	const lockDay = `
		SELECT position
		FROM trip_days
		WHERE trip_id = @trip_id AND position = @day_position
		FOR UPDATE`

	const tripExists = `SELECT EXISTS (SELECT 1 FROM trips WHERE id = @trip_id)`

	const touchTrip = `UPDATE trips SET updated_at = now() WHERE id = @trip_id`

	insert := `
		INSERT INTO events (
			id, trip_id, day_position, position, title, start_time, end_time,
			location_name, address, latitude, longitude, ratings, image, duration,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES (
			@id, @trip_id, @day_position,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM events
			 WHERE trip_id = @trip_id AND day_position = @day_position),
			@title, @start_time, @end_time,
			@location_name, @address, @latitude, @longitude, @ratings, @image, @duration,
			@monday, @tuesday, @wednesday, @thursday, @friday, @saturday, @sunday)
		RETURNING ` + eventColumns

	// day_position is an integer column
	if dayIndex < 0 || dayIndex > math.MaxInt32 {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: day %d: %w", dayIndex, domain.ErrIndexOutOfBounds)
	}

	args := pgx.NamedArgs{
		"id":            event.ID,
		"trip_id":       tripID,
		"day_position":  dayIndex,
		"title":         event.Title,
		"start_time":    event.StartTime,
		"end_time":      event.EndTime,
		"location_name": event.Location,
		"address":       event.Address,
		"latitude":      event.Latitude,
		"longitude":     event.Longitude,
		"ratings":       nonNilRatings(event.Ratings),
		"image":         event.Image,
		"duration":      event.Duration,
		"monday":        event.Hours.Monday,
		"tuesday":       event.Hours.Tuesday,
		"wednesday":     event.Hours.Wednesday,
		"thursday":      event.Hours.Thursday,
		"friday":        event.Hours.Friday,
		"saturday":      event.Hours.Saturday,
		"sunday":        event.Hours.Sunday,
	}

	var result domain.Event
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var pos int
		err := tx.QueryRow(ctx, lockDay, args).Scan(&pos)
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, tripExists, args).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domain.ErrNotFound
			}
			return fmt.Errorf("day %d: %w", dayIndex, domain.ErrIndexOutOfBounds)
		}
		if err != nil {
			return err
		}

		result, err = scanEvent(tx.QueryRow(ctx, insert, args))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, touchTrip, args)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: %s: %w", event.ID, domain.ErrDuplicateEvent)
		}
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Append: %w", err)
	}
	return result, nil
}

// scanEvent maps a row selected with eventColumns into a domain.Event.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		e      domain.Event
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(
		&id, &tripID, &e.DayIndex, &e.Position, &e.Title, &e.StartTime, &e.EndTime,
		&e.Location, &e.Address, &e.Latitude, &e.Longitude, &e.Ratings, &e.Image, &e.Duration,
		&e.Hours.Monday, &e.Hours.Tuesday, &e.Hours.Wednesday, &e.Hours.Thursday,
		&e.Hours.Friday, &e.Hours.Saturday, &e.Hours.Sunday, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	return e, nil
}

// nonNilRatings returns r, or an empty slice if r is nil, so the NOT NULL
// ratings column receives '{}' rather than NULL.
func nonNilRatings(r []float64) []float64 {
	if r == nil {
		return []float64{}
	}
	return r
}

// Package repo contains all persistence logic for the itinerary API.
// Each resource has its own file with an interface and a Postgres
// implementation; memory.go implements the same interfaces in process.
// No business logic lives here, only storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/itinerary/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
// Begin on a pgx.Tx opens a savepoint, so repo methods that need their own
// transaction still work inside a test transaction.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repos bundles one implementation of every repository so callers can pick a
// backend in a single place.
type Repos struct {
	Trips     TripRepo
	Locations LocationRepo
	Events    EventRepo
}

// NewPostgresRepos returns Repos backed by the provided db connection.
func NewPostgresRepos(db db) Repos {
	return Repos{
		Trips:     NewTripRepo(db),
		Locations: NewLocationRepo(db),
		Events:    NewEventRepo(db),
	}
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip with len(trip.Days) empty days and returns the
	// persisted record. Events on the input are ignored.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a trip with all of its days and their events in
	// append order. Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of trips, most recently created first,
	// together with the total number of trips.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Delete removes a trip and everything scheduled on it.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts the trip row and its day rows in one transaction.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const insertTrip = `
		INSERT INTO trips (name)
		VALUES (@name)
		RETURNING id, name, created_at, updated_at`

	// generate_series(0, -1) yields no rows, so a zero-day trip is valid here.
	const insertDays = `
		INSERT INTO trip_days (trip_id, position)
		SELECT @trip_id, generate_series(0, @day_count - 1)`

	var result domain.Trip
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanTrip(tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{"name": trip.Name}))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, insertDays, pgx.NamedArgs{
			"trip_id":   result.ID,
			"day_count": len(trip.Days),
		})
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	result.Days = domain.NewDays(len(trip.Days))
	return result, nil
}

// GetByID retrieves a trip by primary key along with its schedule.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM trips
		WHERE id = @id`

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	trips := []domain.Trip{trip}
	if err := loadSchedules(ctx, r.db, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trips[0], nil
}

// ListPaged returns one page of trips ordered by created_at descending.
func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips`
	const q = `
		SELECT id, name, created_at, updated_at
		FROM trips
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	if err := loadSchedules(ctx, r.db, trips); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Delete removes a trip by primary key. Days and events cascade.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// loadSchedules fills Days (and their events) for every trip in trips.
// Two queries are issued regardless of how many trips are passed.
func loadSchedules(ctx context.Context, q db, trips []domain.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	ids := make([]string, len(trips))
	byID := make(map[uuid.UUID]*domain.Trip, len(trips))
	for i := range trips {
		ids[i] = trips[i].ID.String()
		byID[trips[i].ID] = &trips[i]
		trips[i].Days = []domain.Day{}
	}
	args := pgx.NamedArgs{"ids": ids}

	const daysQ = `
		SELECT trip_id, count(*)
		FROM trip_days
		WHERE trip_id = ANY(@ids::uuid[])
		GROUP BY trip_id`

	rows, err := q.Query(ctx, daysQ, args)
	if err != nil {
		return fmt.Errorf("days: %w", err)
	}
	for rows.Next() {
		var (
			tripID pgtype.UUID
			count  int
		)
		if err := rows.Scan(&tripID, &count); err != nil {
			rows.Close()
			return fmt.Errorf("days: scan: %w", err)
		}
		byID[uuid.UUID(tripID.Bytes)].Days = domain.NewDays(count)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("days: rows: %w", err)
	}

	eventsQ := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE trip_id = ANY(@ids::uuid[])
		ORDER BY trip_id, day_position, position`

	rows, err = q.Query(ctx, eventsQ, args)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return fmt.Errorf("events: scan: %w", err)
		}
		trip := byID[ev.TripID]
		if trip == nil || ev.DayIndex >= len(trip.Days) {
			return fmt.Errorf("events: event %s references missing day %d", ev.ID, ev.DayIndex)
		}
		day := &trip.Days[ev.DayIndex]
		day.Events = append(day.Events, ev)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("events: rows: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single trips row into a domain.Trip with no days loaded.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}

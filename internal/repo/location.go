package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/itinerary/internal/domain"
)

// LocationRepo defines the persistence operations for Locations, the points
// of interest events are created from.
type LocationRepo interface {
	// Create inserts a new location and returns the persisted record.
	Create(ctx context.Context, loc domain.Location) (domain.Location, error)

	// GetByID retrieves a location by ID.
	// Returns domain.ErrNotFound if no location with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Location, error)

	// ListPaged returns one page of locations ordered by name, plus the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error)

	// Update overwrites the mutable fields of a location.
	// Events already created from it keep their own snapshot.
	// Returns domain.ErrNotFound if no location with that ID exists.
	Update(ctx context.Context, loc domain.Location) (domain.Location, error)

	// Delete removes a location. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

const locationColumns = `id, name, address, latitude, longitude, ratings, image, duration,
		monday, tuesday, wednesday, thursday, friday, saturday, sunday, created_at, updated_at`

func locationArgs(loc domain.Location) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        loc.ID,
		"name":      loc.Name,
		"address":   loc.Address,
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
		"ratings":   nonNilRatings(loc.Ratings),
		"image":     loc.Image,
		"duration":  loc.Duration,
		"monday":    loc.Hours.Monday,
		"tuesday":   loc.Hours.Tuesday,
		"wednesday": loc.Hours.Wednesday,
		"thursday":  loc.Hours.Thursday,
		"friday":    loc.Hours.Friday,
		"saturday":  loc.Hours.Saturday,
		"sunday":    loc.Hours.Sunday,
	}
}

func (r *pgLocationRepo) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	q := `
		INSERT INTO locations (name, address, latitude, longitude, ratings, image, duration,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES (@name, @address, @latitude, @longitude, @ratings, @image, @duration,
			@monday, @tuesday, @wednesday, @thursday, @friday, @saturday, @sunday)
		RETURNING ` + locationColumns

	result, err := scanLocation(r.db.QueryRow(ctx, q, locationArgs(loc)))
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Location, error) {
	q := `SELECT ` + locationColumns + ` FROM locations WHERE id = @id`

	result, err := scanLocation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Location, int64, error) {
	const countQ = `SELECT count(*) FROM locations`
	q := `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	locs := []domain.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: scan: %w", err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: rows: %w", err)
	}
	return locs, total, nil
}

func (r *pgLocationRepo) Update(ctx context.Context, loc domain.Location) (domain.Location, error) {
	q := `
		UPDATE locations
		SET name      = @name,
		    address   = @address,
		    latitude  = @latitude,
		    longitude = @longitude,
		    ratings   = @ratings,
		    image     = @image,
		    duration  = @duration,
		    monday    = @monday,
		    tuesday   = @tuesday,
		    wednesday = @wednesday,
		    thursday  = @thursday,
		    friday    = @friday,
		    saturday  = @saturday,
		    sunday    = @sunday,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + locationColumns

	result, err := scanLocation(r.db.QueryRow(ctx, q, locationArgs(loc)))
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM locations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanLocation maps a row selected with locationColumns into a domain.Location.
func scanLocation(s scanner) (domain.Location, error) {
	var (
		l  domain.Location
		id pgtype.UUID
	)
	err := s.Scan(
		&id, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.Ratings, &l.Image, &l.Duration,
		&l.Hours.Monday, &l.Hours.Tuesday, &l.Hours.Wednesday, &l.Hours.Thursday,
		&l.Hours.Friday, &l.Hours.Saturday, &l.Hours.Sunday, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}

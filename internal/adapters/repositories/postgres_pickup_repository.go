package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"amor-service/internal/domain"
)

// Postgres-backed implementation of the PickupRepository port.
type PostgresPickupRepository struct{ DB *sql.DB }

func NewPostgresPickupRepository(db *sql.DB) *PostgresPickupRepository {
	return &PostgresPickupRepository{DB: db}
}

const pickupColumns = `
	p.id, p.salon_id, s.name, COALESCE(s.address, ''), s.lat, s.lng,
	p.estimated_kg, p.quantity_kg, p.status, p.collector_id,
	p.scheduled_at, p.completed_at, p.created_at
`

func scanPickup(row interface{ Scan(...any) error }) (*domain.Pickup, error) {
	var (
		p           domain.Pickup
		lat, lng    sql.NullFloat64
		actualKg    sql.NullFloat64
		collectorID sql.NullString
		scheduledAt sql.NullTime
		completedAt sql.NullTime
	)

	err := row.Scan(
		&p.ID, &p.SalonID, &p.SalonName, &p.Address, &lat, &lng,
		&p.EstimatedKg, &actualKg, &p.Status, &collectorID,
		&scheduledAt, &completedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Location = domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	if actualKg.Valid {
		v := actualKg.Float64
		p.ActualKg = &v
	}
	if collectorID.Valid {
		v := collectorID.String
		p.CollectorID = &v
	}
	if scheduledAt.Valid {
		v := scheduledAt.Time
		p.ScheduledAt = &v
	}
	if completedAt.Valid {
		v := completedAt.Time
		p.CompletedAt = &v
	}

	return &p, nil
}

func (r *PostgresPickupRepository) queryPickups(ctx context.Context, query string, args ...any) ([]*domain.Pickup, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query collector_pickups: %w", err)
	}
	defer rows.Close()

	pickups := make([]*domain.Pickup, 0, 32)
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pickup row: %w", err)
		}
		pickups = append(pickups, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pickup row iteration: %w", err)
	}

	return pickups, nil
}

func (r *PostgresPickupRepository) ListByStatus(ctx context.Context, status domain.PickupStatus) ([]*domain.Pickup, error) {
	q := `
	SELECT ` + pickupColumns + `
	FROM collector_pickups p
	JOIN salons s ON s.id = p.salon_id
	WHERE p.status = $1
	ORDER BY p.created_at DESC, p.id DESC;
	`
	pickups, err := r.queryPickups(ctx, q, string(status))
	if err != nil {
		return nil, fmt.Errorf("list pickups by status %q: %w", status, err)
	}
	return pickups, nil
}

func (r *PostgresPickupRepository) ListCompletedByCollector(ctx context.Context, collectorID string) ([]*domain.Pickup, error) {
	q := `
	SELECT ` + pickupColumns + `
	FROM collector_pickups p
	JOIN salons s ON s.id = p.salon_id
	WHERE p.status = 'completed' AND p.collector_id = $1
	ORDER BY p.completed_at DESC, p.id DESC;
	`
	pickups, err := r.queryPickups(ctx, q, collectorID)
	if err != nil {
		return nil, fmt.Errorf("list completed pickups for %q: %w", collectorID, err)
	}
	return pickups, nil
}

func (r *PostgresPickupRepository) Get(ctx context.Context, id int64) (*domain.Pickup, error) {
	q := `
	SELECT ` + pickupColumns + `
	FROM collector_pickups p
	JOIN salons s ON s.id = p.salon_id
	WHERE p.id = $1;
	`
	p, err := scanPickup(r.DB.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPickupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pickup %d: %w", id, err)
	}
	return p, nil
}

// Confirm performs the pending -> completed transition atomically: the
// guarded UPDATE only matches a pending row, so a second confirmation
// affects zero rows and fails without mutating anything.
func (r *PostgresPickupRepository) Confirm(
	ctx context.Context,
	id int64,
	collectorID string,
	actualKg float64,
	completedAt time.Time,
) (*domain.Pickup, error) {
	q := `
	UPDATE collector_pickups
	SET status = 'completed',
		quantity_kg = $2,
		completed_at = $3,
		collector_id = $4
	WHERE id = $1 AND status = 'pending';
	`
	res, err := r.DB.ExecContext(ctx, q, id, actualKg, completedAt, collectorID)
	if err != nil {
		return nil, fmt.Errorf("confirm pickup %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("confirm pickup %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		// Distinguish a missing pickup from one already completed.
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrPickupAlreadyCompleted
	}

	return r.Get(ctx, id)
}

func (r *PostgresPickupRepository) Create(ctx context.Context, salonID int64, estimatedKg float64) (*domain.Pickup, error) {
	q := `
	INSERT INTO collector_pickups (salon_id, estimated_kg, status)
	VALUES ($1, $2, 'pending')
	RETURNING id;
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, q, salonID, estimatedKg).Scan(&id); err != nil {
		return nil, fmt.Errorf("create pickup for salon %d: %w", salonID, err)
	}

	return r.Get(ctx, id)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"amor-service/internal/domain"
)

// Postgres-backed implementation of SalonRepository and LeaderboardStore.
type PostgresSalonRepository struct{ DB *sql.DB }

func NewPostgresSalonRepository(db *sql.DB) *PostgresSalonRepository {
	return &PostgresSalonRepository{DB: db}
}

func scanSalon(row interface{ Scan(...any) error }) (*domain.Salon, error) {
	var (
		s         domain.Salon
		profileID sql.NullString
		addr      sql.NullString
		phone     sql.NullString
		lat, lng  sql.NullFloat64
		weeks     [4]sql.NullFloat64
	)

	err := row.Scan(
		&s.ID, &profileID, &s.Name, &addr, &phone, &lat, &lng,
		&weeks[0], &weeks[1], &weeks[2], &weeks[3],
	)
	if err != nil {
		return nil, err
	}

	s.ProfileID = profileID.String
	s.Address = addr.String
	s.Phone = phone.String
	s.Location = domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	for i, w := range weeks {
		s.BaseWeeksKg[i] = w.Float64
	}

	return &s, nil
}

const salonColumns = `
	id, profile_id, name, address, phone, lat, lng,
	week1_kg, week2_kg, week3_kg, week4_kg
`

func (r *PostgresSalonRepository) ListSalons(ctx context.Context) ([]*domain.Salon, error) {
	q := `SELECT ` + salonColumns + ` FROM salons ORDER BY id;`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list salons: query salons table: %w", err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0, 16)
	for rows.Next() {
		s, err := scanSalon(rows)
		if err != nil {
			return nil, fmt.Errorf("list salons: scan row: %w", err)
		}
		salons = append(salons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list salons: row iteration: %w", err)
	}

	return salons, nil
}

func (r *PostgresSalonRepository) GetSalon(ctx context.Context, id int64) (*domain.Salon, error) {
	q := `SELECT ` + salonColumns + ` FROM salons WHERE id = $1;`

	s, err := scanSalon(r.DB.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get salon %d: %w", id, err)
	}
	return s, nil
}

func (r *PostgresSalonRepository) UpdateLocation(ctx context.Context, id int64, loc domain.Coordinates) error {
	if !loc.Valid() {
		return errors.New("update salon location: coordinates out of range")
	}

	res, err := r.DB.ExecContext(ctx,
		`UPDATE salons SET lat = $2, lng = $3 WHERE id = $1;`,
		id, loc.Lat, loc.Lng,
	)
	if err != nil {
		return fmt.Errorf("update salon %d location: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update salon %d location: rows affected: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrSalonNotFound
	}

	return nil
}

func (r *PostgresSalonRepository) CreateWasteLog(ctx context.Context, log *domain.WasteLog) (*domain.WasteLog, error) {
	q := `
	INSERT INTO salon_weekly_logs (salon_id, waste_kg, photo_url)
	VALUES ($1, $2, NULLIF($3, ''))
	RETURNING id;
	`
	created := *log
	if err := r.DB.QueryRowContext(ctx, q, log.SalonID, log.WeightKg, log.PhotoURL).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("create waste log for salon %d: %w", log.SalonID, err)
	}

	return &created, nil
}

// LeaderboardStore implementation: three reads mirrored by the merge in the
// leaderboard service.

func (r *PostgresSalonRepository) SalonBases(ctx context.Context) ([]*domain.Salon, error) {
	return r.ListSalons(ctx)
}

func (r *PostgresSalonRepository) WeeklyLogTotals(ctx context.Context) (map[string]float64, error) {
	q := `
	SELECT s.profile_id, SUM(l.waste_kg)
	FROM salon_weekly_logs l
	JOIN salons s ON s.id = l.salon_id
	WHERE s.profile_id IS NOT NULL
	GROUP BY s.profile_id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("weekly log totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var profileID string
		var kg float64
		if err := rows.Scan(&profileID, &kg); err != nil {
			return nil, fmt.Errorf("weekly log totals: scan row: %w", err)
		}
		totals[profileID] = kg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weekly log totals: row iteration: %w", err)
	}

	return totals, nil
}

func (r *PostgresSalonRepository) PickupTotals(ctx context.Context) (map[int64]float64, error) {
	q := `
	SELECT salon_id, SUM(quantity_kg)
	FROM collector_pickups
	WHERE quantity_kg IS NOT NULL
	GROUP BY salon_id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("pickup totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[int64]float64)
	for rows.Next() {
		var salonID int64
		var kg float64
		if err := rows.Scan(&salonID, &kg); err != nil {
			return nil, fmt.Errorf("pickup totals: scan row: %w", err)
		}
		totals[salonID] = kg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pickup totals: row iteration: %w", err)
	}

	return totals, nil
}

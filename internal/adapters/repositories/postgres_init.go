package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		role TEXT NOT NULL CHECK (role IN ('farmer', 'salon', 'collector', 'admin'))
	);
	`

	createSalonsQuery := `
	CREATE TABLE IF NOT EXISTS salons (
		id BIGSERIAL PRIMARY KEY,
		profile_id TEXT REFERENCES profiles(id),
		name TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		week1_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		week2_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		week3_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		week4_kg DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createPickupsQuery := `
	CREATE TABLE IF NOT EXISTS collector_pickups (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		collector_id TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed')),
		estimated_kg DOUBLE PRECISION NOT NULL,
		quantity_kg DOUBLE PRECISION,
		scheduled_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createWeeklyLogsQuery := `
	CREATE TABLE IF NOT EXISTS salon_weekly_logs (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		waste_kg DOUBLE PRECISION NOT NULL,
		photo_url TEXT,
		logged_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createProductsQuery := `
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		size TEXT NOT NULL,
		price_bdt BIGINT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		farmer_id TEXT NOT NULL,
		total_bdt BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrderItemsQuery := `
	CREATE TABLE IF NOT EXISTS order_items (
		order_id BIGINT NOT NULL REFERENCES orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		unit_price_bdt BIGINT NOT NULL,
		line_total_bdt BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_collector_pickups_status_created
	ON collector_pickups(status, created_at DESC);
	`

	statements := []string{
		createProfilesQuery,
		createSalonsQuery,
		createPickupsQuery,
		createWeeklyLogsQuery,
		createProductsQuery,
		createOrdersQuery,
		createOrderItemsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SalonSeed struct {
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Phone    string     `json:"phone"`
	Lat      float64    `json:"lat"`
	Lng      float64    `json:"lng"`
	WeeksKg  [4]float64 `json:"weeks_kg"`
	Pickups  []float64  `json:"pending_pickups_kg"`
}

type ProductSeed struct {
	Name        string `json:"name"`
	Size        string `json:"size"`
	PriceBDT    int64  `json:"price_bdt"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

type Seed struct {
	Salons   []SalonSeed   `json:"salons"`
	Products []ProductSeed `json:"products"`
}

// Populate the database with demo data from a JSON file. Seeding is
// idempotent per name: an existing salon or product is left alone.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, s := range data.Salons {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("seed: salon at index %d: name cannot be empty", i+1)
		}

		var salonID int64
		err := tx.QueryRow(`SELECT id FROM salons WHERE name = $1`, name).Scan(&salonID)
		if errors.Is(err, sql.ErrNoRows) {
			err = tx.QueryRow(`
			INSERT INTO salons (name, address, phone, lat, lng, week1_kg, week2_kg, week3_kg, week4_kg)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;
			`, name, s.Address, s.Phone, s.Lat, s.Lng, s.WeeksKg[0], s.WeeksKg[1], s.WeeksKg[2], s.WeeksKg[3]).Scan(&salonID)
			if err != nil {
				return fmt.Errorf("seed: insert salon %q: %w", name, err)
			}

			for _, kg := range s.Pickups {
				if kg <= 0 {
					return fmt.Errorf("seed: salon %q: pickup weight must be positive", name)
				}
				if _, err := tx.Exec(`
				INSERT INTO collector_pickups (salon_id, estimated_kg, status)
				VALUES ($1, $2, 'pending');
				`, salonID, kg); err != nil {
					return fmt.Errorf("seed: insert pickup for %q: %w", name, err)
				}
			}
		} else if err != nil {
			return fmt.Errorf("seed: look up salon %q: %w", name, err)
		}
	}

	for i, p := range data.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("seed: product at index %d: name cannot be empty", i+1)
		}
		if p.PriceBDT <= 0 {
			return fmt.Errorf("seed: product %q: price must be positive", name)
		}

		var exists int64
		err := tx.QueryRow(`SELECT id FROM products WHERE name = $1`, name).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			if _, err := tx.Exec(`
			INSERT INTO products (name, size, price_bdt, tag, description)
			VALUES ($1, $2, $3, $4, $5);
			`, name, p.Size, p.PriceBDT, p.Tag, p.Description); err != nil {
				return fmt.Errorf("seed: insert product %q: %w", name, err)
			}
		} else if err != nil {
			return fmt.Errorf("seed: look up product %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"amor-service/internal/domain"
)

// Postgres-backed implementation of the CatalogRepository port.
type PostgresCatalogRepository struct{ DB *sql.DB }

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

func (r *PostgresCatalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	q := `
	SELECT id, name, size, price_bdt, tag, description
	FROM products
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: query products table: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, 16)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Size, &p.PriceBDT, &p.Tag, &p.Description); err != nil {
			return nil, fmt.Errorf("list products: scan row: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: row iteration: %w", err)
	}

	return products, nil
}

func (r *PostgresCatalogRepository) GetProducts(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	if len(ids) == 0 {
		return map[int64]*domain.Product{}, nil
	}

	q := `
	SELECT id, name, size, price_bdt, tag, description
	FROM products
	WHERE id = ANY($1::bigint[]);
	`
	rows, err := r.DB.QueryContext(ctx, q, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: query products table: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]*domain.Product, len(ids))
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Size, &p.PriceBDT, &p.Tag, &p.Description); err != nil {
			return nil, fmt.Errorf("get products: scan row: %w", err)
		}
		out[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get products: row iteration: %w", err)
	}

	return out, nil
}

// CreateOrder persists the order header and its items in one transaction.
func (r *PostgresCatalogRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create order: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := *order
	err = tx.QueryRowContext(ctx, `
	INSERT INTO orders (farmer_id, total_bdt, created_at)
	VALUES ($1, $2, $3)
	RETURNING id;
	`, order.FarmerID, order.TotalBDT, order.CreatedAt).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("create order: insert header: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO order_items (order_id, product_id, quantity, unit_price_bdt, line_total_bdt)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return nil, fmt.Errorf("create order: prepare items insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range order.Items {
		if _, err := stmt.ExecContext(ctx, created.ID, item.ProductID, item.Quantity, item.UnitPriceBDT, item.LineTotalBDT); err != nil {
			return nil, fmt.Errorf("create order: insert item product_id=%d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create order: commit: %w", err)
	}

	return &created, nil
}

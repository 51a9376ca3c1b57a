package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type OrderLine struct {
	ProductID int64
	Quantity  int
}

// Checkout turns a farmer's cart into a persisted order. Line and order
// totals are computed from catalog prices on the server; client-supplied
// amounts are never trusted.
func Checkout(
	ctx context.Context,
	repo ports.CatalogRepository,
	farmerID string,
	lines []OrderLine,
	now time.Time,
) (*domain.Order, error) {
	if farmerID == "" {
		return nil, errors.New("checkout: farmer id must be non-empty")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("checkout: product %d: %w", l.ProductID, ErrInvalidQuantity)
		}
		ids = append(ids, l.ProductID)
	}

	products, err := repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("checkout: load products: %w", err)
	}

	order := &domain.Order{
		FarmerID:  farmerID,
		CreatedAt: now.UTC(),
	}
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("checkout: product %d: %w", l.ProductID, ErrUnknownProduct)
		}

		lineTotal := p.PriceBDT * int64(l.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:    p.ID,
			Quantity:     l.Quantity,
			UnitPriceBDT: p.PriceBDT,
			LineTotalBDT: lineTotal,
		})
		order.TotalBDT += lineTotal
	}

	created, err := repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("checkout: create order: %w", err)
	}

	return created, nil
}

package ports

import (
	"context"

	"amor-service/internal/domain"
)

// Port: boundary for the fertilizer catalog and farmer orders.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	// Retrieve products by id; missing ids are simply absent from the map.
	GetProducts(ctx context.Context, ids []int64) (map[int64]*domain.Product, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

package domain

import "time"

// Fertilizer product sold to farmers.
type Product struct {
	ID          int64
	Name        string
	Size        string
	PriceBDT    int64
	Tag         string
	Description string
}

type OrderItem struct {
	ProductID    int64
	Quantity     int
	UnitPriceBDT int64
	LineTotalBDT int64
}

// A farmer's checkout. Totals are computed server-side from catalog prices,
// never trusted from the client.
type Order struct {
	ID        int64
	FarmerID  string
	Items     []OrderItem
	TotalBDT  int64
	CreatedAt time.Time
}

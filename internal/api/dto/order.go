package dto

import "time"

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Size        string `json:"size"`
	PriceBDT    int64  `json:"price_bdt"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type OrderLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type OrderRequest struct {
	FarmerID string             `json:"farmer_id"`
	Items    []OrderLineRequest `json:"items"`
}

type OrderItemResponse struct {
	ProductID    int64 `json:"product_id"`
	Quantity     int   `json:"quantity"`
	UnitPriceBDT int64 `json:"unit_price_bdt"`
	LineTotalBDT int64 `json:"line_total_bdt"`
}

type OrderResponse struct {
	ID        int64               `json:"id"`
	FarmerID  string              `json:"farmer_id"`
	Items     []OrderItemResponse `json:"items"`
	TotalBDT  int64               `json:"total_bdt"`
	CreatedAt time.Time           `json:"created_at"`
}

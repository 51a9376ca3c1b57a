package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"amor-service/internal/api/dto"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// StoreHandler exposes the fertilizer catalog and farmer checkout.
type StoreHandler struct {
	Catalog ports.CatalogRepository
}

func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListProducts(r.Context())
	if err != nil {
		log.Printf("list products failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListProductsResponse{Products: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		res.Products = append(res.Products, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Size:        p.Size,
			PriceBDT:    p.PriceBDT,
			Tag:         p.Tag,
			Description: p.Description,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// CreateOrder turns a cart into an order; totals come from catalog prices.
func (h *StoreHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.FarmerID == "" {
		writeError(w, r, http.StatusBadRequest, "farmer_id is required")
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := services.Checkout(r.Context(), h.Catalog, req.FarmerID, lines, time.Now())
	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		writeError(w, r, http.StatusBadRequest, "order must contain at least one item")
		return
	case errors.Is(err, services.ErrUnknownProduct):
		writeError(w, r, http.StatusBadRequest, "order references an unknown product")
		return
	case errors.Is(err, services.ErrInvalidQuantity):
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	case err != nil:
		log.Printf("create order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.OrderResponse{
		ID:        order.ID,
		FarmerID:  order.FarmerID,
		TotalBDT:  order.TotalBDT,
		CreatedAt: order.CreatedAt,
		Items:     make([]dto.OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		res.Items = append(res.Items, dto.OrderItemResponse{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPriceBDT: item.UnitPriceBDT,
			LineTotalBDT: item.LineTotalBDT,
		})
	}

	writeJSON(w, r, http.StatusCreated, res)
}

package response

import (
	"inventory-backend/internal/data/entity"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	ReorderLevel int     `json:"reorder_level"`
}

// InventoryStats are the aggregates the dashboard renders, computed by a
// single pass over the product list.
type InventoryStats struct {
	TotalProducts   int     `json:"totalProducts"`
	LowStockItems   int     `json:"lowStockItems"`
	TotalValue      float64 `json:"totalValue"`
	TotalCategories int     `json:"totalCategories"`
}

type DashboardResponse struct {
	Status    string            `json:"status"`
	Inventory []ProductResponse `json:"inventory"`
	Stats     InventoryStats    `json:"stats"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID.String(),
		Name:         product.Name,
		SKU:          product.SKU,
		Category:     product.Category,
		Stock:        product.Stock,
		Price:        product.Price,
		ReorderLevel: product.ReorderLevel,
	}
}

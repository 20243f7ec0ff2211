package request

// Stock and Price are pointers so that an explicit zero passes the
// required check while an absent field fails it.
type ProductRequest struct {
	Name         string   `json:"name" validate:"required"`
	SKU          string   `json:"sku" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Stock        *int     `json:"stock" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	ReorderLevel int      `json:"reorder_level"`
}

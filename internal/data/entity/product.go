package entity

type Product struct {
	Base
	Name         string  `db:"name"`
	SKU          string  `db:"sku"`
	Category     string  `db:"category"`
	Stock        int     `db:"stock"`
	Price        float64 `db:"price"`
	ReorderLevel int     `db:"reorder_level"`
}

package models

type Product struct {
	ID                int64  `json:"id" db:"id"`
	SKU               string `json:"sku" db:"sku"`
	Name              string `json:"name" db:"name"`
	LowStockThreshold int    `json:"low_stock_threshold" db:"low_stock_threshold"`
}

// LowStockProduct is a product whose total stock across a company's
// warehouses fell below its threshold.
type LowStockProduct struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	Threshold  int    `json:"threshold"`
	TotalStock int    `json:"total_stock"`
}

package models

// InventoryLevel is the quantity on hand for one (product, warehouse) pair.
// Unique per pair; mutated externally and read-only here.
type InventoryLevel struct {
	ProductID   int64 `json:"product_id" db:"product_id"`
	WarehouseID int64 `json:"warehouse_id" db:"warehouse_id"`
	Quantity    int   `json:"quantity" db:"quantity"`
}

// WarehouseShortfall is one per-warehouse threshold violation, produced only
// in per-warehouse alert mode. Warehouse fields are nil for products with no
// inventory rows at any of the company's warehouses.
type WarehouseShortfall struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	SKU           string  `json:"sku"`
	Threshold     int     `json:"threshold"`
	WarehouseID   *int64  `json:"warehouse_id"`
	WarehouseName *string `json:"warehouse_name"`
	Quantity      int     `json:"quantity"`
}

package models

type Warehouse struct {
	ID        int64  `json:"id" db:"id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	Name      string `json:"name" db:"name"`
}

// WarehouseStock is one warehouse's holding of a single product.
type WarehouseStock struct {
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int    `json:"quantity"`
}

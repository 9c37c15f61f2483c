package models

import "time"

// SaleEvent is one row of the append-only sales log.
type SaleEvent struct {
	ID           int64     `json:"id" db:"id"`
	ProductID    int64     `json:"product_id" db:"product_id"`
	WarehouseID  int64     `json:"warehouse_id" db:"warehouse_id"`
	QuantitySold int       `json:"quantity_sold" db:"quantity_sold"`
	SaleDate     time.Time `json:"sale_date" db:"sale_date"`
}

package models

// AlertSupplier is the supplier block on an alert. ID is null and the display
// fields read "N/A" when the product has no supplier linked.
type AlertSupplier struct {
	ID           *int64 `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// AlertRecord is a single low-stock alert. CurrentStock is the quantity at
// the reported (worst) warehouse; the stockout projection is computed from
// the company-wide total.
type AlertRecord struct {
	ProductID         int64         `json:"product_id"`
	ProductName       string        `json:"product_name"`
	SKU               string        `json:"sku"`
	WarehouseID       int64         `json:"warehouse_id"`
	WarehouseName     string        `json:"warehouse_name"`
	CurrentStock      int           `json:"current_stock"`
	Threshold         int           `json:"threshold"`
	DaysUntilStockout int           `json:"days_until_stockout"`
	Supplier          AlertSupplier `json:"supplier"`
}

type AlertList struct {
	Alerts      []AlertRecord `json:"alerts"`
	TotalAlerts int           `json:"total_alerts"`
}

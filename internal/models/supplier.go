package models

type Supplier struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	ContactEmail string `json:"contact_email" db:"contact_email"`
}

// ProductSupplier links a product to one of its suppliers.
type ProductSupplier struct {
	ProductID  int64 `json:"product_id" db:"product_id"`
	SupplierID int64 `json:"supplier_id" db:"supplier_id"`
}

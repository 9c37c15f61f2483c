package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*models.Supplier, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db DBTX
}

func NewSupplierRepository(db DBTX) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, name, contact_email
		FROM suppliers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) List(ctx context.Context, limit, offset int) ([]*models.Supplier, error) {
	query := `
		SELECT id, name, contact_email
		FROM suppliers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier := &models.Supplier{}
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

// ListByProduct returns every supplier linked to the product, ordered by
// supplier id so callers that pick the first get a deterministic choice.
func (r *supplierRepo) ListByProduct(ctx context.Context, productID int64) ([]*models.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = $1
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier := &models.Supplier{}
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type InventoryRepository interface {
	GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID int64) (*models.InventoryLevel, error)
	ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*models.InventoryLevel, error)
	TotalByProduct(ctx context.Context, companyID, productID int64) (int, error)
}

type inventoryRepo struct {
	db DBTX
}

func NewInventoryRepository(db DBTX) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID int64) (*models.InventoryLevel, error) {
	level := &models.InventoryLevel{}
	query := `
		SELECT product_id, warehouse_id, quantity
		FROM inventory
		WHERE warehouse_id = $1 AND product_id = $2
	`
	err := r.db.QueryRow(ctx, query, warehouseID, productID).Scan(&level.ProductID, &level.WarehouseID, &level.Quantity)
	if err != nil {
		return nil, err
	}
	return level, nil
}

func (r *inventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64, limit, offset int) ([]*models.InventoryLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity
		FROM inventory
		WHERE warehouse_id = $1
		ORDER BY product_id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*models.InventoryLevel
	for rows.Next() {
		level := &models.InventoryLevel{}
		if err := rows.Scan(&level.ProductID, &level.WarehouseID, &level.Quantity); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// TotalByProduct sums a product's quantity across the company's warehouses.
// Products with no inventory rows at the company total zero.
func (r *inventoryRepo) TotalByProduct(ctx context.Context, companyID, productID int64) (int, error) {
	var total int
	query := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1 AND i.product_id = $2
	`
	err := r.db.QueryRow(ctx, query, companyID, productID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

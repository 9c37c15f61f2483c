package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"stockwatch/internal/models"
)

// AlertsRepository exposes the read queries behind the low-stock alert
// derivation. Snapshot binds them to one repeatable-read, read-only
// transaction so a single request never observes a mix of before- and
// after-write states for the same entity.
type AlertsRepository interface {
	Snapshot(ctx context.Context) (AlertsSnapshot, error)
}

// AlertsSnapshot is the query set of one consistent snapshot. Callers must
// Close it when done; the backing transaction is read-only and is always
// rolled back.
type AlertsSnapshot interface {
	// ActiveProductIDs returns the distinct products with at least one sale
	// at any of the company's warehouses on or after the cutoff.
	ActiveProductIDs(ctx context.Context, companyID int64, since time.Time) ([]int64, error)

	// LowStockTotals sums stock per product across the company's warehouses
	// and keeps products strictly below their threshold, ordered by product id.
	LowStockTotals(ctx context.Context, companyID int64, productIDs []int64) ([]*models.LowStockProduct, error)

	// SalesTotalSince sums units sold for the product on or after the cutoff,
	// across all warehouses regardless of company.
	SalesTotalSince(ctx context.Context, productID int64, since time.Time) (int, error)

	// PrimarySupplier returns the linked supplier with the lowest id, or nil
	// when the product has no suppliers.
	PrimarySupplier(ctx context.Context, productID int64) (*models.Supplier, error)

	// WorstWarehouse returns the company warehouse holding the least positive
	// quantity of the product, ties broken by lowest warehouse id, or nil
	// when no holding is strictly positive.
	WorstWarehouse(ctx context.Context, companyID, productID int64) (*models.WarehouseStock, error)

	// WarehouseShortfalls lists per-warehouse holdings below the product
	// threshold, including products with no holdings at all (nil warehouse).
	WarehouseShortfalls(ctx context.Context, companyID int64) ([]*models.WarehouseShortfall, error)

	Close(ctx context.Context) error
}

type alertsRepo struct {
	db DBTX
}

func NewAlertsRepository(db DBTX) AlertsRepository {
	return &alertsRepo{db: db}
}

func (r *alertsRepo) Snapshot(ctx context.Context) (AlertsSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	return &alertsSnapshot{tx: tx}, nil
}

type alertsSnapshot struct {
	tx pgx.Tx
}

func (s *alertsSnapshot) Close(ctx context.Context) error {
	err := s.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func (s *alertsSnapshot) ActiveProductIDs(ctx context.Context, companyID int64, since time.Time) ([]int64, error) {
	query := `
		SELECT DISTINCT s.product_id
		FROM sales s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.company_id = $1 AND s.sale_date >= $2
	`
	rows, err := s.tx.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *alertsSnapshot) LowStockTotals(ctx context.Context, companyID int64, productIDs []int64) ([]*models.LowStockProduct, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.low_stock_threshold, SUM(i.quantity) AS total_stock
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.id = ANY($1) AND w.company_id = $2
		GROUP BY p.id, p.name, p.sku, p.low_stock_threshold
		HAVING SUM(i.quantity) < p.low_stock_threshold
		ORDER BY p.id
	`
	rows, err := s.tx.Query(ctx, query, productIDs, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.LowStockProduct
	for rows.Next() {
		product := &models.LowStockProduct{}
		if err := rows.Scan(&product.ProductID, &product.Name, &product.SKU, &product.Threshold, &product.TotalStock); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *alertsSnapshot) SalesTotalSince(ctx context.Context, productID int64, since time.Time) (int, error) {
	var total int
	query := `
		SELECT COALESCE(SUM(quantity_sold), 0)
		FROM sales
		WHERE product_id = $1 AND sale_date >= $2
	`
	err := s.tx.QueryRow(ctx, query, productID, since).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *alertsSnapshot) PrimarySupplier(ctx context.Context, productID int64) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT s.id, s.name, s.contact_email
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = $1
		ORDER BY s.id
		LIMIT 1
	`
	err := s.tx.QueryRow(ctx, query, productID).Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *alertsSnapshot) WorstWarehouse(ctx context.Context, companyID, productID int64) (*models.WarehouseStock, error) {
	stock := &models.WarehouseStock{}
	query := `
		SELECT w.id, w.name, i.quantity
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.product_id = $1 AND w.company_id = $2 AND i.quantity > 0
		ORDER BY i.quantity ASC, w.id ASC
		LIMIT 1
	`
	err := s.tx.QueryRow(ctx, query, productID, companyID).Scan(&stock.WarehouseID, &stock.WarehouseName, &stock.Quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *alertsSnapshot) WarehouseShortfalls(ctx context.Context, companyID int64) ([]*models.WarehouseShortfall, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.low_stock_threshold, w.id, w.name, COALESCE(i.quantity, 0)
		FROM products p
		LEFT JOIN (inventory i JOIN warehouses w ON w.id = i.warehouse_id AND w.company_id = $1)
			ON i.product_id = p.id
		WHERE COALESCE(i.quantity, 0) < p.low_stock_threshold
		ORDER BY p.id, w.id
	`
	rows, err := s.tx.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shortfalls []*models.WarehouseShortfall
	for rows.Next() {
		shortfall := &models.WarehouseShortfall{}
		if err := rows.Scan(&shortfall.ProductID, &shortfall.ProductName, &shortfall.SKU, &shortfall.Threshold,
			&shortfall.WarehouseID, &shortfall.WarehouseName, &shortfall.Quantity); err != nil {
			return nil, err
		}
		shortfalls = append(shortfalls, shortfall)
	}
	return shortfalls, rows.Err()
}

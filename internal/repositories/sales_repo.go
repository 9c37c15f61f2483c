package repositories

import (
	"context"
	"time"

	"stockwatch/internal/models"
)

type SalesRepository interface {
	ListByCompanySince(ctx context.Context, companyID int64, since time.Time, limit, offset int) ([]*models.SaleEvent, error)
	TotalByProductSince(ctx context.Context, productID int64, since time.Time) (int, error)
}

type salesRepo struct {
	db DBTX
}

func NewSalesRepository(db DBTX) SalesRepository {
	return &salesRepo{db: db}
}

func (r *salesRepo) ListByCompanySince(ctx context.Context, companyID int64, since time.Time, limit, offset int) ([]*models.SaleEvent, error) {
	query := `
		SELECT s.id, s.product_id, s.warehouse_id, s.quantity_sold, s.sale_date
		FROM sales s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.company_id = $1 AND s.sale_date >= $2
		ORDER BY s.sale_date DESC, s.id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, companyID, since, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.SaleEvent
	for rows.Next() {
		sale := &models.SaleEvent{}
		if err := rows.Scan(&sale.ID, &sale.ProductID, &sale.WarehouseID, &sale.QuantitySold, &sale.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// TotalByProductSince sums units sold for the product on or after the cutoff,
// across all warehouses regardless of company.
func (r *salesRepo) TotalByProductSince(ctx context.Context, productID int64, since time.Time) (int, error) {
	var total int
	query := `
		SELECT COALESCE(SUM(quantity_sold), 0)
		FROM sales
		WHERE product_id = $1 AND sale_date >= $2
	`
	err := r.db.QueryRow(ctx, query, productID, since).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
}

type productRepo struct {
	db DBTX
}

func NewProductRepository(db DBTX) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, low_stock_threshold
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.SKU, &product.Name, &product.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, low_stock_threshold
		FROM products
		WHERE sku = $1
	`
	err := r.db.QueryRow(ctx, query, sku).Scan(&product.ID, &product.SKU, &product.Name, &product.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT id, sku, name, low_stock_threshold
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.LowStockThreshold); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

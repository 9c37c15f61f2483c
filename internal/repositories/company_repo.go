package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context, limit, offset int) ([]*models.Company, error)
}

type companyRepo struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, name
		FROM companies
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) List(ctx context.Context, limit, offset int) ([]*models.Company, error) {
	query := `
		SELECT id, name
		FROM companies
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

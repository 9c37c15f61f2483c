package services

import (
	"context"
	"errors"

	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
)

type WarehouseService interface {
	GetByID(ctx context.Context, id int64) (*models.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*models.Warehouse, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
	}
}

func (s *warehouseService) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	if id <= 0 {
		return nil, errors.New("warehouse id must be positive")
	}
	return s.warehouseRepo.GetByID(ctx, id)
}

func (s *warehouseService) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*models.Warehouse, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}
	return s.warehouseRepo.ListByCompany(ctx, companyID, limit, offset)
}

package services

import (
	"context"
	"log"

	"stockwatch/internal/caching"
	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
)

type SupplierService interface {
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*models.Supplier, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
	cacheService caching.CacheService
}

func NewSupplierService(supplierRepo repositories.SupplierRepository, cacheService caching.CacheService) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		cacheService: cacheService,
	}
}

func (s *supplierService) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	cached, err := s.cacheService.GetSupplier(ctx, id)
	if err != nil {
		log.Printf("Supplier cache read failed for %d: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetSupplier(ctx, supplier, catalogCacheTTL); cacheErr != nil {
		log.Printf("Supplier cache write failed for %d: %v", id, cacheErr)
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context, limit, offset int) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx, limit, offset)
}

func (s *supplierService) ListByProduct(ctx context.Context, productID int64) ([]*models.Supplier, error) {
	return s.supplierRepo.ListByProduct(ctx, productID)
}

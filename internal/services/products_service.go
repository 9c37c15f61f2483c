package services

import (
	"context"
	"log"
	"time"

	"stockwatch/internal/caching"
	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
)

const catalogCacheTTL = 5 * time.Minute

type ProductService interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

// GetByID serves from cache when possible; cache failures degrade to the store.
func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	cached, err := s.cacheService.GetProduct(ctx, id)
	if err != nil {
		log.Printf("Product cache read failed for %d: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProduct(ctx, product, catalogCacheTTL); cacheErr != nil {
		log.Printf("Product cache write failed for %d: %v", id, cacheErr)
	}
	return product, nil
}

func (s *productService) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return s.productRepo.GetBySKU(ctx, sku)
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

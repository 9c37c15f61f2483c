package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stockwatch/internal/models"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	args := m.Called(ctx, product, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetSupplier(ctx context.Context, supplierID int64) (*models.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockCacheService) SetSupplier(ctx context.Context, supplier *models.Supplier, ttl time.Duration) error {
	args := m.Called(ctx, supplier, ttl)
	return args.Error(0)
}

func (m *MockCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) error {
	args := m.Called(ctx, key, window)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type ProductServiceTestSuite struct {
	suite.Suite
	repo    *MockProductRepository
	cache   *MockCacheService
	service ProductService
	ctx     context.Context
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.repo = &MockProductRepository{}
	suite.cache = &MockCacheService{}
	suite.service = NewProductService(suite.repo, suite.cache)
	suite.ctx = context.Background()
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (suite *ProductServiceTestSuite) TestGetByID_CacheHit() {
	product := &models.Product{ID: 123, SKU: "WID-001", Name: "Widget A", LowStockThreshold: 20}
	suite.cache.On("GetProduct", mock.Anything, int64(123)).Return(product, nil)

	got, err := suite.service.GetByID(suite.ctx, 123)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product, got)
	suite.repo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestGetByID_CacheMissPopulatesCache() {
	product := &models.Product{ID: 123, SKU: "WID-001", Name: "Widget A", LowStockThreshold: 20}
	suite.cache.On("GetProduct", mock.Anything, int64(123)).Return(nil, nil)
	suite.repo.On("GetByID", mock.Anything, int64(123)).Return(product, nil)
	suite.cache.On("SetProduct", mock.Anything, product, catalogCacheTTL).Return(nil)

	got, err := suite.service.GetByID(suite.ctx, 123)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product, got)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGetByID_CacheFailureDegradesToStore() {
	product := &models.Product{ID: 123, SKU: "WID-001", Name: "Widget A", LowStockThreshold: 20}
	suite.cache.On("GetProduct", mock.Anything, int64(123)).Return(nil, errors.New("redis down"))
	suite.repo.On("GetByID", mock.Anything, int64(123)).Return(product, nil)
	suite.cache.On("SetProduct", mock.Anything, product, catalogCacheTTL).Return(errors.New("redis down"))

	got, err := suite.service.GetByID(suite.ctx, 123)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product, got)
}

func (suite *ProductServiceTestSuite) TestGetByID_StoreError() {
	storeErr := errors.New("connection refused")
	suite.cache.On("GetProduct", mock.Anything, int64(55)).Return(nil, nil)
	suite.repo.On("GetByID", mock.Anything, int64(55)).Return(nil, storeErr)

	got, err := suite.service.GetByID(suite.ctx, 55)
	assert.ErrorIs(suite.T(), err, storeErr)
	assert.Nil(suite.T(), got)
	suite.cache.AssertNotCalled(suite.T(), "SetProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestGetBySKU_BypassesCache() {
	product := &models.Product{ID: 123, SKU: "WID-001", Name: "Widget A", LowStockThreshold: 20}
	suite.repo.On("GetBySKU", mock.Anything, "WID-001").Return(product, nil)

	got, err := suite.service.GetBySKU(suite.ctx, "WID-001")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product, got)
	suite.cache.AssertNotCalled(suite.T(), "GetProduct", mock.Anything, mock.Anything)
}

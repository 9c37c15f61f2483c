package jobs

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

type MockAlertsService struct {
	mock.Mock
}

func (m *MockAlertsService) GetLowStockAlerts(ctx context.Context, companyID int64, now time.Time) (*models.AlertList, error) {
	args := m.Called(ctx, companyID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlertList), args.Error(1)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context, limit, offset int) ([]*models.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReportService) UploadAlertReport(ctx context.Context, companyID int64, generatedAt time.Time, list *models.AlertList) (string, error) {
	args := m.Called(ctx, companyID, generatedAt, list)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) GetPresignedURL(objectName string, expiry time.Duration) (string, error) {
	args := m.Called(objectName, expiry)
	return args.String(0), args.Error(1)
}

type LowStockSweepTestSuite struct {
	suite.Suite
	alertsService *MockAlertsService
	companyRepo   *MockCompanyRepository
	reportSvc     *MockReportService
	ctx           context.Context
}

func (suite *LowStockSweepTestSuite) SetupTest() {
	suite.alertsService = &MockAlertsService{}
	suite.companyRepo = &MockCompanyRepository{}
	suite.reportSvc = &MockReportService{}
	suite.ctx = context.Background()
}

func TestLowStockSweepTestSuite(t *testing.T) {
	suite.Run(t, new(LowStockSweepTestSuite))
}

func (suite *LowStockSweepTestSuite) TestRun_UploadsOnlyNonEmptyLists() {
	companies := []*models.Company{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
	}
	suite.companyRepo.On("List", mock.Anything, 100, 0).Return(companies, nil)

	withAlerts := &models.AlertList{
		Alerts: []models.AlertRecord{
			{ProductID: 123, ProductName: "Widget A", SKU: "WID-001", WarehouseID: 456, CurrentStock: 5, Threshold: 20},
		},
		TotalAlerts: 1,
	}
	suite.alertsService.On("GetLowStockAlerts", mock.Anything, int64(1), mock.Anything).Return(withAlerts, nil)
	suite.alertsService.On("GetLowStockAlerts", mock.Anything, int64(2), mock.Anything).
		Return(&models.AlertList{Alerts: []models.AlertRecord{}}, nil)
	suite.reportSvc.On("UploadAlertReport", mock.Anything, int64(1), mock.Anything, withAlerts).
		Return("alerts/1/2025-08-02-report.json", nil)

	sweep := NewLowStockSweep(suite.alertsService, suite.companyRepo, suite.reportSvc)
	err := sweep.Run(suite.ctx)

	assert.NoError(suite.T(), err)
	suite.reportSvc.AssertNumberOfCalls(suite.T(), "UploadAlertReport", 1)
	suite.alertsService.AssertExpectations(suite.T())
}

func (suite *LowStockSweepTestSuite) TestRun_ContinuesPastCompanyFailure() {
	companies := []*models.Company{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
	}
	suite.companyRepo.On("List", mock.Anything, 100, 0).Return(companies, nil)

	suite.alertsService.On("GetLowStockAlerts", mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("snapshot failed"))
	suite.alertsService.On("GetLowStockAlerts", mock.Anything, int64(2), mock.Anything).
		Return(&models.AlertList{Alerts: []models.AlertRecord{}}, nil)

	sweep := NewLowStockSweep(suite.alertsService, suite.companyRepo, nil)
	err := sweep.Run(suite.ctx)

	assert.NoError(suite.T(), err)
	suite.alertsService.AssertCalled(suite.T(), "GetLowStockAlerts", mock.Anything, int64(2), mock.Anything)
}

func (suite *LowStockSweepTestSuite) TestRun_NoReportServiceConfigured() {
	companies := []*models.Company{{ID: 1, Name: "Acme"}}
	suite.companyRepo.On("List", mock.Anything, 100, 0).Return(companies, nil)
	suite.alertsService.On("GetLowStockAlerts", mock.Anything, int64(1), mock.Anything).Return(&models.AlertList{
		Alerts:      []models.AlertRecord{{ProductID: 5, ProductName: "Widget", SKU: "WID-005"}},
		TotalAlerts: 1,
	}, nil)

	sweep := NewLowStockSweep(suite.alertsService, suite.companyRepo, nil)
	assert.NoError(suite.T(), sweep.Run(suite.ctx))
}

func (suite *LowStockSweepTestSuite) TestRun_CompanyListErrorAborts() {
	listErr := errors.New("connection refused")
	suite.companyRepo.On("List", mock.Anything, 100, 0).Return(nil, listErr)

	sweep := NewLowStockSweep(suite.alertsService, suite.companyRepo, suite.reportSvc)
	err := sweep.Run(suite.ctx)

	assert.ErrorIs(suite.T(), err, listErr)
	suite.alertsService.AssertNotCalled(suite.T(), "GetLowStockAlerts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LowStockSweepTestSuite) TestRun_PagesThroughCompanies() {
	first := make([]*models.Company, 100)
	for i := range first {
		first[i] = &models.Company{ID: int64(i + 1), Name: "Co"}
	}
	second := []*models.Company{{ID: 101, Name: "Last"}}

	suite.companyRepo.On("List", mock.Anything, 100, 0).Return(first, nil)
	suite.companyRepo.On("List", mock.Anything, 100, 100).Return(second, nil)
	suite.alertsService.On("GetLowStockAlerts", mock.Anything, mock.Anything, mock.Anything).
		Return(&models.AlertList{Alerts: []models.AlertRecord{}}, nil)

	sweep := NewLowStockSweep(suite.alertsService, suite.companyRepo, nil)
	assert.NoError(suite.T(), sweep.Run(suite.ctx))

	suite.alertsService.AssertNumberOfCalls(suite.T(), "GetLowStockAlerts", 101)
}

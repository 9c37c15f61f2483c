package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
	"stockwatch/internal/services"
)

// LowStockSweep periodically computes low-stock alerts for every company and
// logs a summary. When a report service is configured, non-empty alert lists
// are archived as JSON reports. The sweep only reads; it reuses the same
// derivation the HTTP surface exposes.
type LowStockSweep struct {
	alertsService services.AlertsService
	companyRepo   repositories.CompanyRepository
	reportSvc     services.ReportService // nil when object storage is not configured
}

func NewLowStockSweep(alertsService services.AlertsService, companyRepo repositories.CompanyRepository, reportSvc services.ReportService) *LowStockSweep {
	return &LowStockSweep{
		alertsService: alertsService,
		companyRepo:   companyRepo,
		reportSvc:     reportSvc,
	}
}

// Run sweeps all companies once. Per-company failures are logged and skipped
// so one broken company never blocks the rest of the sweep.
func (s *LowStockSweep) Run(ctx context.Context) error {
	const pageSize = 100
	now := time.Now().UTC()
	runID := uuid.NewString()
	log.Printf("Low stock sweep %s starting", runID)

	var swept, failed int
	for offset := 0; ; offset += pageSize {
		companies, err := s.companyRepo.List(ctx, pageSize, offset)
		if err != nil {
			return fmt.Errorf("list companies: %w", err)
		}
		if len(companies) == 0 {
			break
		}

		for _, company := range companies {
			if err := s.sweepCompany(ctx, company, now); err != nil {
				log.Printf("Low stock sweep failed for company %d: %v", company.ID, err)
				failed++
				continue
			}
			swept++
		}

		if len(companies) < pageSize {
			break
		}
	}

	log.Printf("Low stock sweep %s completed: %d companies swept, %d failed", runID, swept, failed)
	return nil
}

func (s *LowStockSweep) sweepCompany(ctx context.Context, company *models.Company, now time.Time) error {
	list, err := s.alertsService.GetLowStockAlerts(ctx, company.ID, now)
	if err != nil {
		return err
	}
	if list.TotalAlerts == 0 {
		return nil
	}

	s.logAlerts(company, list)

	if s.reportSvc != nil {
		objectName, err := s.reportSvc.UploadAlertReport(ctx, company.ID, now, list)
		if err != nil {
			return fmt.Errorf("upload report: %w", err)
		}
		log.Printf("Low stock report for company %d stored as %s", company.ID, objectName)
	}
	return nil
}

func (s *LowStockSweep) logAlerts(company *models.Company, list *models.AlertList) {
	log.Printf("Low stock alerts for company %d (%s):", company.ID, company.Name)
	for _, alert := range list.Alerts {
		log.Printf("- Product '%s' (%s) at warehouse %d has %d units (threshold: %d, days until stockout: %d)",
			alert.ProductName,
			alert.SKU,
			alert.WarehouseID,
			alert.CurrentStock,
			alert.Threshold,
			alert.DaysUntilStockout)
	}
}

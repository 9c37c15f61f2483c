package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"stockwatch/internal/config"
	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
)

// ErrInvalidCompanyID is returned before any query runs when the company id
// is not a positive integer.
var ErrInvalidCompanyID = errors.New("company id must be a positive integer")

type AlertsService interface {
	// GetLowStockAlerts computes the alert list for the company as of now.
	// Unknown companies and companies with no recent sales yield an empty
	// list, not an error. The result is deterministic for a fixed snapshot:
	// alerts are ordered by ascending product id (then warehouse id in
	// per-warehouse mode).
	GetLowStockAlerts(ctx context.Context, companyID int64, now time.Time) (*models.AlertList, error)
}

type alertsService struct {
	alertsRepo repositories.AlertsRepository
	mode       string
	windowDays int
}

func NewAlertsService(alertsRepo repositories.AlertsRepository, cfg config.AlertsConfig) AlertsService {
	mode := cfg.Mode
	if mode == "" {
		mode = config.AlertModeTotal
	}
	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}
	return &alertsService{
		alertsRepo: alertsRepo,
		mode:       mode,
		windowDays: windowDays,
	}
}

func (s *alertsService) GetLowStockAlerts(ctx context.Context, companyID int64, now time.Time) (*models.AlertList, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}

	snap, err := s.alertsRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin alert snapshot: %w", err)
	}
	defer func() {
		if closeErr := snap.Close(ctx); closeErr != nil {
			log.Printf("Failed to close alert snapshot: %v", closeErr)
		}
	}()

	if s.mode == config.AlertModePerWarehouse {
		return s.perWarehouseAlerts(ctx, snap, companyID)
	}
	return s.totalStockAlerts(ctx, snap, companyID, now)
}

// totalStockAlerts is the default derivation: a trailing-window activity gate,
// a company-wide stock aggregate against the product threshold, then per
// product a stockout projection, one supplier, and the worst warehouse.
func (s *alertsService) totalStockAlerts(ctx context.Context, snap repositories.AlertsSnapshot, companyID int64, now time.Time) (*models.AlertList, error) {
	since := now.AddDate(0, 0, -s.windowDays)

	activeIDs, err := snap.ActiveProductIDs(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("active products: %w", err)
	}
	if len(activeIDs) == 0 {
		return &models.AlertList{Alerts: []models.AlertRecord{}}, nil
	}

	lowStock, err := snap.LowStockTotals(ctx, companyID, activeIDs)
	if err != nil {
		return nil, fmt.Errorf("low stock totals: %w", err)
	}

	alerts := make([]models.AlertRecord, 0, len(lowStock))
	for _, product := range lowStock {
		sold, err := snap.SalesTotalSince(ctx, product.ProductID, since)
		if err != nil {
			return nil, fmt.Errorf("sales total for product %d: %w", product.ProductID, err)
		}
		rate := float64(sold) / float64(s.windowDays)

		// rate == 0 means "not depleting", not "out now"; callers must not
		// read the resulting 0 as zero-stock urgency.
		daysUntilStockout := 0
		if rate > 0 {
			daysUntilStockout = int(float64(product.TotalStock) / rate)
		}

		supplier, err := snap.PrimarySupplier(ctx, product.ProductID)
		if err != nil {
			return nil, fmt.Errorf("supplier for product %d: %w", product.ProductID, err)
		}

		worst, err := snap.WorstWarehouse(ctx, companyID, product.ProductID)
		if err != nil {
			return nil, fmt.Errorf("worst warehouse for product %d: %w", product.ProductID, err)
		}
		if worst == nil {
			// Every holding is zero: the total-stock view flagged the product
			// but there is no single warehouse to act on, so no alert.
			continue
		}

		alerts = append(alerts, models.AlertRecord{
			ProductID:         product.ProductID,
			ProductName:       product.Name,
			SKU:               product.SKU,
			WarehouseID:       worst.WarehouseID,
			WarehouseName:     worst.WarehouseName,
			CurrentStock:      worst.Quantity,
			Threshold:         product.Threshold,
			DaysUntilStockout: daysUntilStockout,
			Supplier:          supplierBlock(supplier),
		})
	}

	return &models.AlertList{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// perWarehouseAlerts is the simplified alternate mode: each holding below the
// threshold is its own alert, with no recency gate and no stockout
// projection. Products with no holdings at the company surface once with
// zero stock and no warehouse attribution.
func (s *alertsService) perWarehouseAlerts(ctx context.Context, snap repositories.AlertsSnapshot, companyID int64) (*models.AlertList, error) {
	shortfalls, err := snap.WarehouseShortfalls(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("warehouse shortfalls: %w", err)
	}

	suppliers := make(map[int64]models.AlertSupplier)
	alerts := make([]models.AlertRecord, 0, len(shortfalls))
	for _, row := range shortfalls {
		block, ok := suppliers[row.ProductID]
		if !ok {
			supplier, err := snap.PrimarySupplier(ctx, row.ProductID)
			if err != nil {
				return nil, fmt.Errorf("supplier for product %d: %w", row.ProductID, err)
			}
			block = supplierBlock(supplier)
			suppliers[row.ProductID] = block
		}

		record := models.AlertRecord{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			SKU:          row.SKU,
			CurrentStock: row.Quantity,
			Threshold:    row.Threshold,
			Supplier:     block,
		}
		if row.WarehouseID != nil {
			record.WarehouseID = *row.WarehouseID
			record.WarehouseName = *row.WarehouseName
		}
		alerts = append(alerts, record)
	}

	return &models.AlertList{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

func supplierBlock(supplier *models.Supplier) models.AlertSupplier {
	if supplier == nil {
		return models.AlertSupplier{Name: "N/A", ContactEmail: "N/A"}
	}
	id := supplier.ID
	return models.AlertSupplier{ID: &id, Name: supplier.Name, ContactEmail: supplier.ContactEmail}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stockwatch/internal/caching"
	"stockwatch/internal/config"
	"stockwatch/internal/handlers"
	"stockwatch/internal/jobs"
	"stockwatch/internal/jobs/background"
	"stockwatch/internal/middleware"
	"stockwatch/internal/repositories"
	"stockwatch/internal/services"
	"stockwatch/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Create database connection pool
	pool, err := database.NewPool(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Object storage for sweep reports is optional
	var reportSvc services.ReportService
	if cfg.Minio.Endpoint != "" {
		reportSvc, err = services.NewMinioReportService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL, cfg.Minio.Bucket)
		if err != nil {
			log.Fatalf("Failed to initialize report service: %v", err)
		}
		if err := reportSvc.EnsureBucketExists(context.Background()); err != nil {
			log.Printf("WARNING: Failed to ensure report bucket exists: %v", err)
		}
	}

	// Create repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	salesRepo := repositories.NewSalesRepository(pool)
	alertsRepo := repositories.NewAlertsRepository(pool)

	// Create services
	alertsService := services.NewAlertsService(alertsRepo, cfg.Alerts)
	productSvc := services.NewProductService(productRepo, cacheSvc)
	supplierSvc := services.NewSupplierService(supplierRepo, cacheSvc)
	warehouseSvc := services.NewWarehouseService(warehouseRepo)

	// Create handlers
	alertsHandlers := handlers.NewAlertsHandlers(alertsService)
	companyHandlers := handlers.NewCompanyHandlers(companyRepo)
	productHandlers := handlers.NewProductHandlers(productSvc)
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryRepo)
	salesHandlers := handlers.NewSalesHandlers(salesRepo)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background sweep
	if cfg.Alerts.SweepEnabled {
		sweep := jobs.NewLowStockSweep(alertsService, companyRepo, reportSvc)
		scheduler, err := background.NewJobScheduler(sweep, time.Duration(cfg.Alerts.SweepIntervalMinutes)*time.Minute)
		if err != nil {
			log.Fatalf("Failed to create job scheduler: %v", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				log.Printf("Failed to stop job scheduler: %v", err)
			}
		}()
	}

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Version middleware
	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")
	v1.Use(versionMiddleware.VersionHeader("v1"))

	rateLimit := middleware.NewRateLimitMiddleware(cacheSvc, cfg.Server.RateLimitPerMinute, time.Minute)
	v1.Use(rateLimit.Limit())

	// Alert routes
	v1.GET("/companies/:company_id/alerts/low-stock", alertsHandlers.GetLowStockAlerts)

	// Catalog read routes
	v1.GET("/companies", companyHandlers.ListCompanies)
	v1.GET("/companies/:id", companyHandlers.GetCompany)
	v1.GET("/warehouses", warehouseHandlers.ListWarehouses)
	v1.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)
	v1.GET("/products", productHandlers.ListProducts)
	v1.GET("/products/:id", productHandlers.GetProduct)
	v1.GET("/products/:id/suppliers", supplierHandlers.GetProductSuppliers)
	v1.GET("/suppliers", supplierHandlers.ListSuppliers)
	v1.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	v1.GET("/inventory", inventoryHandlers.ListInventory)
	v1.GET("/sales", salesHandlers.ListSales)

	log.Printf("Stockwatch server v%s starting on port %d (alert mode: %s)", version, cfg.Server.Port, cfg.Alerts.Mode)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}

// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/electromart/electromart-be/internal/adapters/db"
	redis_a "github.com/electromart/electromart-be/internal/adapters/redis_adapter"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/core/services"
	"github.com/electromart/electromart-be/internal/handlers"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
	"github.com/electromart/electromart-be/internal/pkg/config"
	"github.com/electromart/electromart-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting electromart inventory ledger",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	if cfg.IsProduction() {
		if err := applyProductionSecrets(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to apply secrets", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	invoiceHandler *handlers.InvoiceHandler
	returnsHandler *handlers.ReturnsHandler
	stockHandler   *handlers.StockHandler
	productHandler *handlers.ProductHandler
	expenseHandler *handlers.ExpenseHandler
	exportHandler  *handlers.ExportHandler
	importHandler  *handlers.ImportHandler
	healthHandler  *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		LockTimeout:        cfg.Database.LockTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	products := db.NewProductRepository(database, logger)
	purchases := db.NewPurchaseInvoiceRepository(database, logger)
	sales := db.NewSalesInvoiceRepository(database, logger)
	returns := db.NewReturnRepository(database, logger)
	ledger := db.NewLedgerRepository(database, logger)
	expenses := db.NewExpenseRepository(database, logger)
	transactor := db.NewTransactor(database, logger)

	// Services
	invoiceService := services.NewInvoiceService(products, purchases, sales, ledger, transactor, deps.cache, logger)
	returnsService := services.NewReturnsService(products, purchases, sales, returns, ledger, transactor, deps.cache, logger)
	stockService := services.NewStockService(ledger, products, logger)
	productService := services.NewProductService(products, logger)
	expenseService := services.NewExpenseService(expenses, logger)

	// Handlers
	deps.invoiceHandler = handlers.NewInvoiceHandler(invoiceService, logger)
	deps.returnsHandler = handlers.NewReturnsHandler(returnsService, logger)
	deps.stockHandler = handlers.NewStockHandler(stockService, deps.cache, cfg.Inventory.MovementPageLimit, logger)
	deps.productHandler = handlers.NewProductHandler(productService, logger)
	deps.expenseHandler = handlers.NewExpenseHandler(expenseService, logger)
	deps.exportHandler = handlers.NewExportHandler(deps.asynqClient, deps.cache, cfg, logger)

	maxFileSize := int64(cfg.FileProcessing.PDFMaxSizeMB) * 1024 * 1024
	deps.importHandler = handlers.NewImportHandler(deps.asynqClient, deps.cache, logger, maxFileSize, cfg.FileProcessing.TempDir)

	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps, cfg)

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux
	handler = middleware.Actor(cfg.Security.ActorIDHeader)(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}
	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	handler = middleware.Recovery(slogger.Logger)(handler)
	handler = middleware.Logger(slogger)(handler)
	handler = middleware.RequestID(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Catalog
	mux.HandleFunc("POST "+apiV1+"/products", deps.productHandler.CreateProduct)
	mux.HandleFunc("GET "+apiV1+"/products/{id}", deps.productHandler.GetProduct)
	mux.HandleFunc("PUT "+apiV1+"/products/{id}", deps.productHandler.UpdateProduct)
	mux.HandleFunc("DELETE "+apiV1+"/products/{id}", deps.productHandler.DeleteProduct)

	// Invoices; creation requires an authenticated actor
	mux.Handle("POST "+apiV1+"/invoices/purchase", middleware.RequireActor(http.HandlerFunc(deps.invoiceHandler.CreatePurchase)))
	mux.Handle("POST "+apiV1+"/invoices/sales", middleware.RequireActor(http.HandlerFunc(deps.invoiceHandler.CreateSales)))
	mux.HandleFunc("GET "+apiV1+"/invoices/purchase/{id}", deps.invoiceHandler.GetPurchase)
	mux.HandleFunc("GET "+apiV1+"/invoices/sales/{id}", deps.invoiceHandler.GetSales)

	// Returns
	mux.Handle("POST "+apiV1+"/returns/sales", middleware.RequireActor(http.HandlerFunc(deps.returnsHandler.CreateSalesReturn)))
	mux.Handle("POST "+apiV1+"/returns/purchase", middleware.RequireActor(http.HandlerFunc(deps.returnsHandler.CreatePurchaseReturn)))

	// Stock projection and movement ledger
	mux.HandleFunc("GET "+apiV1+"/stock/{productID}", deps.stockHandler.GetStock)
	mux.HandleFunc("GET "+apiV1+"/stock/{productID}/movements", deps.stockHandler.ListMovements)

	// Expenses
	mux.Handle("POST "+apiV1+"/expenses", middleware.RequireActor(http.HandlerFunc(deps.expenseHandler.CreateExpense)))
	mux.HandleFunc("GET "+apiV1+"/expenses/{id}", deps.expenseHandler.GetExpense)

	// Ledger exports
	mux.Handle("POST "+apiV1+"/exports/movements", middleware.RequireActor(http.HandlerFunc(deps.exportHandler.CreateExport)))
	mux.HandleFunc("GET "+apiV1+"/exports/movements/{jobID}", deps.exportHandler.GetExport)

	// Supplier invoice imports
	mux.Handle("POST "+apiV1+"/imports/invoice", middleware.RequireActor(http.HandlerFunc(deps.importHandler.ImportInvoicePDF)))
	mux.HandleFunc("GET "+apiV1+"/imports/invoice/{jobID}", deps.importHandler.ImportStatus)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func applyProductionSecrets(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	secretName := os.Getenv("AWS_SECRETS_NAME")
	if secretName == "" {
		logger.Warn("AWS_SECRETS_NAME not set, using environment configuration")
		return nil
	}

	sm, err := config.NewAWSSecretsManager(cfg.AWS.Region, secretName, logger)
	if err != nil {
		return fmt.Errorf("failed to create secrets manager: %w", err)
	}

	return cfg.ApplySecrets(ctx, sm)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrator, err := db.NewMigrator(&db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	return migrator.Up(ctx)
}

// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/electromart/electromart-be/internal/adapters/db"
	redis_a "github.com/electromart/electromart-be/internal/adapters/redis_adapter"
	"github.com/electromart/electromart-be/internal/adapters/storage"
	"github.com/electromart/electromart-be/internal/core/services"
	"github.com/electromart/electromart-be/internal/pkg/config"
	"github.com/electromart/electromart-be/internal/pkg/logger"
	"github.com/electromart/electromart-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	database, err := initDatabase(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slogger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger.Logger)

	storageClient, err := initStorage(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	// Repositories and services shared by the processors
	products := db.NewProductRepository(database, slogger.Logger)
	purchases := db.NewPurchaseInvoiceRepository(database, slogger.Logger)
	sales := db.NewSalesInvoiceRepository(database, slogger.Logger)
	ledger := db.NewLedgerRepository(database, slogger.Logger)
	transactor := db.NewTransactor(database, slogger.Logger)
	invoiceService := services.NewInvoiceService(products, purchases, sales, ledger, transactor, cache, slogger.Logger)

	srv := asynq.NewServer(
		asynqRedisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			HealthCheckFunc: healthCheck,
			Logger:          newAsynqLogger(slogger.Logger),
		},
	)

	mux := asynq.NewServeMux()

	reconcileProcessor := workers.NewReconcileProcessor(ledger, slogger.Logger)
	mux.HandleFunc(workers.TypeStockReconcile, reconcileProcessor.ReconcileLevels)

	lowStockProcessor := workers.NewLowStockProcessor(ledger, products, asynqClient, cfg, slogger.Logger)
	mux.HandleFunc(workers.TypeLowStockCheck, lowStockProcessor.CheckLowStock)

	exportProcessor := workers.NewExportProcessor(ledger, storageClient, cache, cfg, slogger.Logger)
	mux.HandleFunc(workers.TypeLedgerExport, exportProcessor.ProcessLedgerExport)

	pdfProcessor := workers.NewPDFProcessor(invoiceService, products, cache, cfg, slogger.Logger)
	mux.HandleFunc(workers.TypeInvoicePDFImport, pdfProcessor.ProcessPDF)

	notificationProcessor := workers.NewNotificationProcessor(cfg, slogger.Logger)
	mux.HandleFunc(workers.TypeSendEmail, notificationProcessor.SendEmail)

	cleanupProcessor := workers.NewCleanupProcessor(storageClient, cfg, slogger.Logger)
	mux.HandleFunc(workers.TypeCleanupExports, cleanupProcessor.CleanupExpiredExports)
	mux.HandleFunc(workers.TypeCleanupTempFiles, cleanupProcessor.CleanupTempFiles)

	scheduler, err := setupScheduler(asynqRedisOpt, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to set up scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// setupScheduler registers the periodic maintenance tasks: ledger
// reconciliation, low stock sweeps, and export/temp cleanup.
func setupScheduler(redisOpt asynq.RedisClientOpt, cfg *config.Config, slogger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(slogger),
	})

	if _, err := scheduler.Register(everySpec(cfg.Inventory.ReconcileInterval), workers.NewStockReconcileTask()); err != nil {
		return nil, fmt.Errorf("failed to register reconcile task: %w", err)
	}

	if _, err := scheduler.Register(everySpec(cfg.Inventory.LowStockCheckInterval), workers.NewLowStockCheckTask(), asynq.Queue("low")); err != nil {
		return nil, fmt.Errorf("failed to register low stock task: %w", err)
	}

	if _, err := scheduler.Register(everySpec(cfg.FileProcessing.CleanupInterval),
		asynq.NewTask(workers.TypeCleanupExports, nil), asynq.Queue("low")); err != nil {
		return nil, fmt.Errorf("failed to register export cleanup task: %w", err)
	}

	if _, err := scheduler.Register(everySpec(cfg.FileProcessing.CleanupInterval),
		asynq.NewTask(workers.TypeCleanupTempFiles, nil), asynq.Queue("low")); err != nil {
		return nil, fmt.Errorf("failed to register temp cleanup task: %w", err)
	}

	return scheduler, nil
}

func everySpec(interval time.Duration) string {
	if interval <= 0 {
		interval = time.Hour
	}
	return "@every " + interval.String()
}

func initDatabase(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*db.Database, error) {
	return db.NewDatabase(ctx, &db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		// Workers need far fewer connections than the API
		MaxConnections:     10,
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		LockTimeout:        cfg.Database.LockTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
}

func initStorage(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (storage.StorageClient, error) {
	if cfg.AWS.S3Bucket == "" {
		return storage.NewLocalStorage(cfg.FileProcessing.TempDir, slogger)
	}

	return storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger)
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

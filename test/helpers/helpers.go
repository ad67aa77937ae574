// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/electromart/electromart-be/internal/adapters/db"
	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_store",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_store",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		LockTimeout:        time.Second * 2,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run embedded migrations
	migrator, err := db.NewMigrator(&db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
	}, TestLogger())
	require.NoError(t, err, "Could not create migrator")

	err = migrator.Up(context.Background())
	require.NoError(t, err, "Could not run migrations")
	require.NoError(t, migrator.Close())

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_store",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			LockTimeout:        2 * time.Second,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Inventory: config.InventoryConfig{
			ReconcileInterval:     time.Hour,
			LowStockCheckInterval: time.Hour,
			ExportPrefix:          "exports/movements",
			ExportTTL:             24 * time.Hour,
			MovementPageLimit:     100,
		},
		FileProcessing: config.FileProcessingConfig{
			PDFMaxSizeMB:      50,
			ProcessingTimeout: 5 * time.Minute,
			TempDir:           "/tmp",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
			ActorIDHeader:     "X-User-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// PassthroughTransactor runs the function directly, without a database.
// Unit tests use it where the transaction scope itself is not under test.
type PassthroughTransactor struct{}

// WithinTx executes fn with the caller's context
func (PassthroughTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ ports.Transactor = PassthroughTransactor{}

// CreateTestProduct creates a test product
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	product := &domain.Product{
		ID:                  uuid.New(),
		Name:                "Test 55in OLED TV",
		SKU:                 "TV-OLED-55-001",
		CategoryID:          1,
		SupplierID:          1,
		DefaultCost:         decimal.NewFromFloat(720.00),
		DefaultSellingPrice: decimal.NewFromFloat(999.99),
		MinSellingPrice:     decimal.NewFromFloat(849.99),
		LowStockThreshold:   5,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	for _, override := range overrides {
		override(product)
	}

	return product
}

// CreateTestPurchaseInput creates a one-line purchase invoice input
func CreateTestPurchaseInput(productID uuid.UUID, overrides ...func(*ports.CreatePurchaseInvoiceInput)) ports.CreatePurchaseInvoiceInput {
	input := ports.CreatePurchaseInvoiceInput{
		SupplierID:  1,
		InvoiceDate: time.Now(),
		ActorID:     42,
		Lines: []ports.PurchaseLineInput{
			{
				ProductID: productID,
				Quantity:  10,
				UnitCost:  decimal.NewFromFloat(720.00),
			},
		},
	}

	for _, override := range overrides {
		override(&input)
	}

	return input
}

// CreateTestSalesInput creates a one-line sales invoice input
func CreateTestSalesInput(productID uuid.UUID, overrides ...func(*ports.CreateSalesInvoiceInput)) ports.CreateSalesInvoiceInput {
	input := ports.CreateSalesInvoiceInput{
		CustomerName:  "Walk-in",
		InvoiceDate:   time.Now(),
		DiscountTotal: decimal.Zero,
		PaymentMethod: domain.PaymentCash,
		ActorID:       42,
		Lines: []ports.SalesLineInput{
			{
				ProductID: productID,
				Quantity:  2,
				UnitPrice: decimal.NewFromFloat(999.99),
				Discount:  decimal.Zero,
			},
		},
	}

	for _, override := range overrides {
		override(&input)
	}

	return input
}

// CreateTestMovement creates a test ledger entry
func CreateTestMovement(productID uuid.UUID, overrides ...func(*domain.MovementEntry)) *domain.MovementEntry {
	entry := &domain.MovementEntry{
		ID:             uuid.New(),
		ProductID:      productID,
		Kind:           domain.MovementPurchase,
		QtyDelta:       10,
		UnitCost:       decimal.NewFromFloat(720.00),
		ReferenceTable: domain.RefPurchaseInvoices,
		ReferenceID:    uuid.New(),
		ActorID:        42,
		CreatedAt:      time.Now(),
	}

	for _, override := range overrides {
		override(entry)
	}

	return entry
}

// SeedTestProduct inserts a product row directly
func SeedTestProduct(t *testing.T, pool *pgxpool.Pool, product *domain.Product) {
	t.Helper()

	ctx := context.Background()
	query := `
		INSERT INTO products (
			id, name, sku, category_id, supplier_id,
			default_cost, default_selling_price, min_selling_price,
			low_stock_threshold, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := pool.Exec(ctx, query,
		product.ID, product.Name, product.SKU, product.CategoryID, product.SupplierID,
		product.DefaultCost, product.DefaultSellingPrice, product.MinSellingPrice,
		product.LowStockThreshold, product.CreatedAt, product.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed product")
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"sales_returns",
		"purchase_returns",
		"stock_movements",
		"stock_levels",
		"sales_invoice_details",
		"sales_invoices",
		"purchase_invoice_details",
		"purchase_invoices",
		"expenses",
		"products",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}

// cmd/seeder/main.go
//
// Catalog seeder. Reads a product catalog workbook (xlsx) and loads it into
// the database: one products row per SKU, plus an opening-stock adjustment in
// the movement ledger for rows that declare an opening quantity. Opening
// stock goes through the same append path the API uses, so seeded quantities
// are reconstructible from the ledger like everything else.
//
// A state file tracks which SKUs have already been seeded so the seeder can
// be re-run safely; -force reprocesses everything.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/electromart/electromart-be/internal/adapters/db"
	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/pkg/logger"
)

const (
	defaultStateFile = ".seed_state.json"
	seedNote         = "opening stock"
)

// catalogRow is one parsed line of the catalog workbook.
type catalogRow struct {
	SKU                 string
	Name                string
	CategoryID          int64
	SupplierID          int64
	DefaultCost         decimal.Decimal
	DefaultSellingPrice decimal.Decimal
	MinSellingPrice     decimal.Decimal
	LowStockThreshold   int
	OpeningQty          int
	OpeningUnitCost     decimal.Decimal
}

// seedRecord is what the state file remembers about a seeded SKU.
type seedRecord struct {
	ProductID  string    `json:"product_id"`
	OpeningQty int       `json:"opening_qty"`
	SeededAt   time.Time `json:"seeded_at"`
}

type seedState struct {
	Seeded map[string]seedRecord `json:"seeded"`
}

// seeder wires the repositories needed to load the catalog.
type seeder struct {
	products   ports.ProductRepository
	ledger     ports.LedgerRepository
	transactor ports.Transactor
	logger     *slog.Logger

	actorID int64
	dryRun  bool
	force   bool
}

type seedSummary struct {
	Created  int
	Existing int
	Skipped  int
	Stocked  int
	Failed   int
}

func main() {
	var (
		catalogPath = flag.String("file", "", "path to the catalog workbook (xlsx)")
		statePath   = flag.String("state", defaultStateFile, "path to the seed state file")
		actorID     = flag.Int64("actor", 1, "actor id recorded on opening-stock ledger entries")
		dryRun      = flag.Bool("dry-run", false, "parse and report without writing to the database")
		force       = flag.Bool("force", false, "reprocess SKUs already present in the state file")
		logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text")

	if *catalogPath == "" {
		slogger.Error("missing required -file flag")
		flag.Usage()
		os.Exit(2)
	}
	if *actorID <= 0 {
		slogger.Error("actor id must be positive", slog.Int64("actor", *actorID))
		os.Exit(2)
	}

	ctx := context.Background()

	rows, err := loadCatalog(*catalogPath)
	if err != nil {
		slogger.Error("failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slogger.Info("catalog loaded",
		slog.String("file", *catalogPath),
		slog.Int("rows", len(rows)),
	)

	state, err := loadState(*statePath)
	if err != nil {
		slogger.Error("failed to load seed state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := connectDatabase(ctx, slogger.Logger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	s := &seeder{
		products:   db.NewProductRepository(database, slogger.Logger),
		ledger:     db.NewLedgerRepository(database, slogger.Logger),
		transactor: db.NewTransactor(database, slogger.Logger),
		logger:     slogger.Logger,
		actorID:    *actorID,
		dryRun:     *dryRun,
		force:      *force,
	}

	summary := seedSummary{}
	for _, row := range rows {
		if _, done := state.Seeded[row.SKU]; done && !*force {
			summary.Skipped++
			continue
		}

		record, outcome, err := s.seedRow(ctx, row)
		if err != nil {
			summary.Failed++
			s.logger.Error("failed to seed product",
				slog.String("sku", row.SKU),
				slog.String("error", err.Error()),
			)
			continue
		}

		switch outcome {
		case rowCreated:
			summary.Created++
		case rowExisting:
			summary.Existing++
		}
		if row.OpeningQty > 0 {
			summary.Stocked++
		}

		if !*dryRun {
			state.Seeded[row.SKU] = record
			if err := saveState(*statePath, state); err != nil {
				s.logger.Error("failed to save seed state", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	slogger.Info("seeding complete",
		slog.Int("created", summary.Created),
		slog.Int("existing", summary.Existing),
		slog.Int("skipped", summary.Skipped),
		slog.Int("opening_stock", summary.Stocked),
		slog.Int("failed", summary.Failed),
		slog.Bool("dry_run", *dryRun),
	)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

type rowOutcome int

const (
	rowCreated rowOutcome = iota
	rowExisting
)

// seedRow upserts one catalog row. The product insert and its opening-stock
// ledger entry commit in a single transaction so a crash never leaves a
// product whose opening quantity is half-recorded.
func (s *seeder) seedRow(ctx context.Context, row catalogRow) (seedRecord, rowOutcome, error) {
	existing, err := s.products.FindBySKU(ctx, row.SKU)
	if err != nil {
		return seedRecord{}, rowExisting, fmt.Errorf("failed to look up sku %s: %w", row.SKU, err)
	}

	product := row.toProduct()
	outcome := rowCreated
	if existing != nil {
		product = existing
		outcome = rowExisting
	} else {
		if err := product.Validate(); err != nil {
			return seedRecord{}, rowCreated, err
		}
		product.PrepareForStorage()
	}

	if s.dryRun {
		s.logger.Info("dry run",
			slog.String("sku", row.SKU),
			slog.String("name", row.Name),
			slog.Bool("exists", existing != nil),
			slog.Int("opening_qty", row.OpeningQty),
		)
		return seedRecord{ProductID: product.ID.String(), OpeningQty: row.OpeningQty, SeededAt: time.Now()}, outcome, nil
	}

	err = s.transactor.WithinTx(ctx, func(txCtx context.Context) error {
		if existing == nil {
			if err := s.products.Save(txCtx, product); err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}
		}

		// Existing products keep whatever stock the ledger already says they
		// have; opening stock is only written for newly created rows.
		if existing == nil && row.OpeningQty > 0 {
			entry := &domain.MovementEntry{
				ProductID: product.ID,
				Kind:      domain.MovementAdjust,
				QtyDelta:  row.OpeningQty,
				UnitCost:  row.OpeningUnitCost,
				ActorID:   s.actorID,
				Note:      seedNote,
			}
			if err := s.ledger.Append(txCtx, entry); err != nil {
				return fmt.Errorf("failed to append opening stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return seedRecord{}, outcome, err
	}

	s.logger.Info("seeded product",
		slog.String("sku", row.SKU),
		slog.String("product_id", product.ID.String()),
		slog.Bool("created", existing == nil),
		slog.Int("opening_qty", row.OpeningQty),
	)

	return seedRecord{ProductID: product.ID.String(), OpeningQty: row.OpeningQty, SeededAt: time.Now()}, outcome, nil
}

func (r catalogRow) toProduct() *domain.Product {
	return &domain.Product{
		Name:                r.Name,
		SKU:                 r.SKU,
		CategoryID:          r.CategoryID,
		SupplierID:          r.SupplierID,
		DefaultCost:         r.DefaultCost,
		DefaultSellingPrice: r.DefaultSellingPrice,
		MinSellingPrice:     r.MinSellingPrice,
		LowStockThreshold:   r.LowStockThreshold,
	}
}

// loadCatalog reads the first sheet of the workbook. Expected columns, in
// order: sku, name, category_id, supplier_id, default_cost,
// default_selling_price, min_selling_price, low_stock_threshold,
// opening_qty, opening_unit_cost. The first row is treated as a header.
func loadCatalog(path string) ([]catalogRow, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	sheet := wb.Sheets[0]
	var (
		rows    []catalogRow
		rowNum  int
		rowErrs []string
	)

	err = sheet.ForEachRow(func(row *xlsx.Row) error {
		rowNum++
		if rowNum == 1 {
			return nil // header
		}

		parsed, perr := parseCatalogRow(row)
		if perr != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", rowNum, perr))
			return nil
		}
		if parsed.SKU == "" {
			return nil // trailing blank rows
		}
		rows = append(rows, parsed)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rowErrs) > 0 {
		return nil, fmt.Errorf("catalog has %d bad rows: %s", len(rowErrs), strings.Join(rowErrs, "; "))
	}
	if len(rows) == 0 {
		return nil, errors.New("catalog has no product rows")
	}

	return rows, nil
}

func parseCatalogRow(row *xlsx.Row) (catalogRow, error) {
	cell := func(i int) string {
		c := row.GetCell(i)
		if c == nil {
			return ""
		}
		v, err := c.FormattedValue()
		if err != nil {
			return c.Value
		}
		return strings.TrimSpace(v)
	}

	out := catalogRow{
		SKU:  strings.ToUpper(cell(0)),
		Name: cell(1),
	}
	if out.SKU == "" {
		return out, nil
	}
	if out.Name == "" {
		return out, errors.New("name is empty")
	}

	var err error
	if out.CategoryID, err = parseInt64(cell(2)); err != nil {
		return out, fmt.Errorf("category_id: %w", err)
	}
	if out.SupplierID, err = parseInt64(cell(3)); err != nil {
		return out, fmt.Errorf("supplier_id: %w", err)
	}
	if out.DefaultCost, err = parseDecimal(cell(4)); err != nil {
		return out, fmt.Errorf("default_cost: %w", err)
	}
	if out.DefaultSellingPrice, err = parseDecimal(cell(5)); err != nil {
		return out, fmt.Errorf("default_selling_price: %w", err)
	}
	if out.MinSellingPrice, err = parseDecimal(cell(6)); err != nil {
		return out, fmt.Errorf("min_selling_price: %w", err)
	}
	threshold, err := parseInt64(cell(7))
	if err != nil {
		return out, fmt.Errorf("low_stock_threshold: %w", err)
	}
	out.LowStockThreshold = int(threshold)
	qty, err := parseInt64(cell(8))
	if err != nil {
		return out, fmt.Errorf("opening_qty: %w", err)
	}
	out.OpeningQty = int(qty)
	if out.OpeningUnitCost, err = parseDecimal(cell(9)); err != nil {
		return out, fmt.Errorf("opening_unit_cost: %w", err)
	}
	if out.OpeningQty < 0 {
		return out, errors.New("opening_qty is negative")
	}

	return out, nil
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseInt(s, 10, 64)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$")
	return decimal.NewFromString(s)
}

func loadState(path string) (*seedState, error) {
	state := &seedState{Seeded: make(map[string]seedRecord)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("state file is corrupt: %w", err)
	}
	if state.Seeded == nil {
		state.Seeded = make(map[string]seedRecord)
	}
	return state, nil
}

func saveState(path string, state *seedState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func connectDatabase(ctx context.Context, slogger *slog.Logger) (*db.Database, error) {
	cfg := &db.Config{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", "electromart"),
		Password:       getEnv("DB_PASSWORD", "electromart_dev_2025"),
		Database:       getEnv("DB_NAME", "electromart_inventory"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		MaxConnections: 4,
		MinConnections: 1,
		ConnectTimeout: 10 * time.Second,
	}
	return db.NewDatabase(ctx, cfg, slogger)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

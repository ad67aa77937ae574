//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/electromart/electromart-be/internal/adapters/db"
	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/test/helpers"
)

type LedgerRepositorySuite struct {
	suite.Suite
	testDB   *helpers.TestDB
	repo     ports.LedgerRepository
	products ports.ProductRepository
	ctx      context.Context
}

func (s *LedgerRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewLedgerRepository(s.testDB.Database, helpers.TestLogger())
	s.products = db.NewProductRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *LedgerRepositorySuite) TearDownSuite() {
	// Cleanup handled by helpers.SetupTestDB
}

func (s *LedgerRepositorySuite) SetupTest() {
	// Clear data before each test
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *LedgerRepositorySuite) seedProduct() *domain.Product {
	product := helpers.CreateTestProduct()
	s.Require().NoError(s.products.Save(s.ctx, product))
	return product
}

func (s *LedgerRepositorySuite) TestAppend() {
	product := s.seedProduct()
	entry := helpers.CreateTestMovement(product.ID)

	err := s.repo.Append(s.ctx, entry)
	s.NoError(err)
	s.NotZero(entry.Sequence)

	// The append folds into the materialized level
	level, err := s.repo.Level(s.ctx, product.ID)
	s.NoError(err)
	s.NotNil(level)
	s.Equal(entry.QtyDelta, level.Quantity)

	entries, err := s.repo.ListForProduct(s.ctx, product.ID, domain.MovementFilter{})
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(entry.ID, entries[0].ID)
	s.Equal(domain.MovementPurchase, entries[0].Kind)
}

func (s *LedgerRepositorySuite) TestAppend_UnknownProduct() {
	entry := helpers.CreateTestMovement(uuid.New())

	err := s.repo.Append(s.ctx, entry)
	s.Error(err)

	var notFound *domain.NotFoundError
	s.True(errors.As(err, &notFound))
}

func (s *LedgerRepositorySuite) TestAppend_Immutable() {
	product := s.seedProduct()
	entry := helpers.CreateTestMovement(product.ID)
	s.Require().NoError(s.repo.Append(s.ctx, entry))

	// Mutating a ledger row trips the append-only trigger
	_, err := s.testDB.PgxPool.Exec(s.ctx,
		`UPDATE stock_movements SET qty_delta = 999 WHERE id = $1`, entry.ID)
	s.Error(err)
	s.Contains(err.Error(), "append-only")

	_, err = s.testDB.PgxPool.Exec(s.ctx,
		`DELETE FROM stock_movements WHERE id = $1`, entry.ID)
	s.Error(err)
}

func (s *LedgerRepositorySuite) TestSumForProduct() {
	product := s.seedProduct()

	movements := []*domain.MovementEntry{
		helpers.CreateTestMovement(product.ID),
		helpers.CreateTestMovement(product.ID, func(e *domain.MovementEntry) {
			e.Kind = domain.MovementSale
			e.QtyDelta = -4
			e.ReferenceTable = domain.RefSalesInvoices
		}),
		helpers.CreateTestMovement(product.ID, func(e *domain.MovementEntry) {
			e.Kind = domain.MovementReturnSale
			e.QtyDelta = 1
			e.ReferenceTable = domain.RefSalesReturns
		}),
	}
	for _, m := range movements {
		s.Require().NoError(s.repo.Append(s.ctx, m))
	}

	qty, err := s.repo.SumForProduct(s.ctx, product.ID)
	s.NoError(err)
	s.Equal(7, qty)

	// Ledger sum and materialized level agree
	level, err := s.repo.Level(s.ctx, product.ID)
	s.NoError(err)
	s.Equal(7, level.Quantity)
}

func (s *LedgerRepositorySuite) TestSumForProduct_NoMovements() {
	product := s.seedProduct()

	qty, err := s.repo.SumForProduct(s.ctx, product.ID)
	s.NoError(err)
	s.Equal(0, qty)
}

func (s *LedgerRepositorySuite) TestRebuildLevels() {
	product := s.seedProduct()
	s.Require().NoError(s.repo.Append(s.ctx, helpers.CreateTestMovement(product.ID)))

	// Introduce drift in the summary
	_, err := s.testDB.PgxPool.Exec(s.ctx,
		`UPDATE stock_levels SET quantity = 999 WHERE product_id = $1`, product.ID)
	s.Require().NoError(err)

	corrected, err := s.repo.RebuildLevels(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), corrected)

	level, err := s.repo.Level(s.ctx, product.ID)
	s.NoError(err)
	s.Equal(10, level.Quantity)
}

func TestLedgerRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(LedgerRepositorySuite))
}

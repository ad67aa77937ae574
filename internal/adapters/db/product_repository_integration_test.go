//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/electromart/electromart-be/internal/adapters/db"
	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/test/helpers"
)

type ProductRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	repo   ports.ProductRepository
	ctx    context.Context
}

func (s *ProductRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewProductRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *ProductRepositorySuite) TearDownSuite() {
	// Cleanup handled by helpers.SetupTestDB
}

func (s *ProductRepositorySuite) SetupTest() {
	// Clear data before each test
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *ProductRepositorySuite) TestSave() {
	product := helpers.CreateTestProduct()

	err := s.repo.Save(s.ctx, product)
	s.NoError(err)

	// Verify product was saved
	saved, err := s.repo.FindByID(s.ctx, product.ID)
	s.NoError(err)
	s.NotNil(saved)
	s.Equal(product.Name, saved.Name)
	s.Equal(product.SKU, saved.SKU)
	s.Equal(product.CategoryID, saved.CategoryID)
	s.Equal(product.SupplierID, saved.SupplierID)
	s.True(product.DefaultCost.Equal(saved.DefaultCost))
	s.True(product.DefaultSellingPrice.Equal(saved.DefaultSellingPrice))
	s.True(product.MinSellingPrice.Equal(saved.MinSellingPrice))
	s.Equal(product.LowStockThreshold, saved.LowStockThreshold)
}

func (s *ProductRepositorySuite) TestFindByID() {
	s.Run("existing_product", func() {
		product := helpers.CreateTestProduct()
		err := s.repo.Save(s.ctx, product)
		s.NoError(err)

		found, err := s.repo.FindByID(s.ctx, product.ID)
		s.NoError(err)
		s.NotNil(found)
		s.Equal(product.ID, found.ID)
		s.Equal(product.Name, found.Name)
	})

	s.Run("non_existent_product", func() {
		found, err := s.repo.FindByID(s.ctx, uuid.New())
		s.NoError(err)
		s.Nil(found)
	})

	s.Run("soft_deleted_product", func() {
		product := helpers.CreateTestProduct(func(p *domain.Product) {
			p.SKU = "TV-OLED-55-DEL"
		})
		err := s.repo.Save(s.ctx, product)
		s.NoError(err)

		err = s.repo.SoftDelete(s.ctx, product.ID)
		s.NoError(err)

		found, err := s.repo.FindByID(s.ctx, product.ID)
		s.NoError(err)
		s.Nil(found)
	})
}

func (s *ProductRepositorySuite) TestFindBySKU() {
	s.Run("existing_sku", func() {
		product := helpers.CreateTestProduct()
		err := s.repo.Save(s.ctx, product)
		s.NoError(err)

		found, err := s.repo.FindBySKU(s.ctx, product.SKU)
		s.NoError(err)
		s.NotNil(found)
		s.Equal(product.ID, found.ID)
		s.True(product.DefaultSellingPrice.Equal(found.DefaultSellingPrice))
	})

	s.Run("unknown_sku", func() {
		found, err := s.repo.FindBySKU(s.ctx, "NO-SUCH-SKU-001")
		s.NoError(err)
		s.Nil(found)
	})
}

func (s *ProductRepositorySuite) TestUpdate() {
	product := helpers.CreateTestProduct()
	err := s.repo.Save(s.ctx, product)
	s.NoError(err)

	product.Name = "Test 65in OLED TV"
	product.DefaultSellingPrice = decimal.NewFromFloat(1299.99)
	product.MinSellingPrice = decimal.NewFromFloat(1099.99)
	product.LowStockThreshold = 3

	err = s.repo.Update(s.ctx, product)
	s.NoError(err)

	updated, err := s.repo.FindByID(s.ctx, product.ID)
	s.NoError(err)
	s.Equal("Test 65in OLED TV", updated.Name)
	s.True(decimal.NewFromFloat(1299.99).Equal(updated.DefaultSellingPrice))
	s.True(decimal.NewFromFloat(1099.99).Equal(updated.MinSellingPrice))
	s.Equal(3, updated.LowStockThreshold)
}

func (s *ProductRepositorySuite) TestUpdate_NonExistent() {
	product := helpers.CreateTestProduct()

	err := s.repo.Update(s.ctx, product)
	s.Error(err)

	var notFound *domain.NotFoundError
	s.True(errors.As(err, &notFound))
}

func (s *ProductRepositorySuite) TestFindForUpdate() {
	first := helpers.CreateTestProduct(func(p *domain.Product) {
		p.SKU = "TV-OLED-55-A"
	})
	second := helpers.CreateTestProduct(func(p *domain.Product) {
		p.SKU = "TV-OLED-55-B"
	})
	s.NoError(s.repo.Save(s.ctx, first))
	s.NoError(s.repo.Save(s.ctx, second))

	locked, err := s.repo.FindForUpdate(s.ctx, []uuid.UUID{second.ID, first.ID})
	s.NoError(err)
	s.Len(locked, 2)
	s.Equal(first.SKU, locked[first.ID].SKU)
	s.Equal(second.SKU, locked[second.ID].SKU)
}

func TestProductRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductRepositorySuite))
}

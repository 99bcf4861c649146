package productrepo_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/productrepo"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("SKU-100", 5)

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	var count int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_RoundTripsAllFields() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("SKU-100", 5)
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, "SKU-100")
	suite.Require().NoError(err)

	suite.Equal("SKU-100", retrieved.ID())
	suite.Equal("Blue Hoodie", retrieved.Name())
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("62.75")))
	suite.Equal(5, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, "SKU-404")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_StockDecrement_Persists() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("SKU-100", 5)
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(testProduct.DecrementStock(3))
	suite.Require().NoError(suite.repository.Update(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, "SKU-100")
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("SKU-404", 5)

	err := suite.repository.Update(ctx, testProduct)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("SKU-100", 5)
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.GetForUpdate(ctx, "SKU-100")
	suite.Require().NoError(err)
	suite.Equal("SKU-100", retrieved.ID())
	suite.Equal(5, retrieved.Stock())
}

// createTestProduct creates a product with default name and price.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(id string, stock int) *product.Product {
	testProduct, err := product.NewProduct(id, "Blue Hoodie", decimal.RequireFromString("62.75"), stock)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}

package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
)

type SupplierRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo SupplierRepository
	ctx  context.Context
}

func (suite *SupplierRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = NewSupplierRepository(mock)
	suite.ctx = context.Background()
}

func (suite *SupplierRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSupplierRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierRepoTestSuite))
}

func (suite *SupplierRepoTestSuite) TestGetByID() {
	rows := pgxmock.NewRows([]string{"id", "name", "contact_email"}).
		AddRow(int64(789), "Supplier Corp", "orders@supplier.com")
	suite.mock.ExpectQuery(`SELECT id, name, contact_email\s+FROM suppliers\s+WHERE id = \$1`).
		WithArgs(int64(789)).
		WillReturnRows(rows)

	supplier, err := suite.repo.GetByID(suite.ctx, 789)
	suite.NoError(err)
	suite.Require().NotNil(supplier)
	suite.Equal(int64(789), supplier.ID)
	suite.Equal("Supplier Corp", supplier.Name)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SupplierRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, contact_email\s+FROM suppliers\s+WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	supplier, err := suite.repo.GetByID(suite.ctx, 404)
	suite.ErrorIs(err, pgx.ErrNoRows)
	suite.Nil(supplier)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SupplierRepoTestSuite) TestList() {
	rows := pgxmock.NewRows([]string{"id", "name", "contact_email"}).
		AddRow(int64(1), "Acme", "acme@example.com").
		AddRow(int64(2), "Globex", "globex@example.com")
	suite.mock.ExpectQuery(`FROM suppliers\s+ORDER BY id\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	suppliers, err := suite.repo.List(suite.ctx, 50, 0)
	suite.NoError(err)
	suite.Len(suppliers, 2)
	suite.Equal("Acme", suppliers[0].Name)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SupplierRepoTestSuite) TestListByProduct_OrderedBySupplierID() {
	rows := pgxmock.NewRows([]string{"id", "name", "contact_email"}).
		AddRow(int64(3), "Acme", "acme@example.com").
		AddRow(int64(9), "Globex", "globex@example.com")
	suite.mock.ExpectQuery(`JOIN product_suppliers ps ON ps\.supplier_id = s\.id\s+WHERE ps\.product_id = \$1\s+ORDER BY s\.id`).
		WithArgs(int64(123)).
		WillReturnRows(rows)

	suppliers, err := suite.repo.ListByProduct(suite.ctx, 123)
	suite.NoError(err)
	suite.Require().Len(suppliers, 2)
	suite.Equal(int64(3), suppliers[0].ID)
	suite.Equal(int64(9), suppliers[1].ID)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SupplierRepoTestSuite) TestListByProduct_Empty() {
	rows := pgxmock.NewRows([]string{"id", "name", "contact_email"})
	suite.mock.ExpectQuery(`WHERE ps\.product_id = \$1\s+ORDER BY s\.id`).
		WithArgs(int64(77)).
		WillReturnRows(rows)

	suppliers, err := suite.repo.ListByProduct(suite.ctx, 77)
	suite.NoError(err)
	suite.Empty(suppliers)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

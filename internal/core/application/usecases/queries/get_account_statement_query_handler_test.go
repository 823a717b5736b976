package queries_test

import (
	"context"
	"testing"
	"time"

	"cctexpress/internal/adapters/out/postgres/customerrepo"
	"cctexpress/internal/adapters/out/postgres/ledgerrepo"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/ledger"
	"cctexpress/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAccountStatementQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetAccountStatementQueryHandler
	customerRepo *customerrepo.GormCustomerRepository
	ledgerRepo   *ledgerrepo.GormLedgerRepository
}

func (suite *GetAccountStatementQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}, &ledgerrepo.LedgerEntryDTO{}))

	suite.handler = queries.NewGetAccountStatementQueryHandler(db)
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db)
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAccountStatementQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers, ledger_entries").Error)
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TestHandle_FreshAccount_ReturnsZeroBalancesAndNoEntries() {
	account := suite.createAccount("Alice")

	query, err := queries.NewGetAccountStatementQuery(account.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(account.ID(), result.CustomerID)
	suite.Equal("Alice", result.Name)
	suite.Equal("0.00", result.Balance.String())
	suite.Equal("0.00", result.TotalSpent.String())
	suite.Equal(0, result.OrderCount)
	suite.Equal(0, result.WarningCount)
	suite.False(result.Vip)
	suite.False(result.Blacklisted)
	suite.NotNil(result.Entries)
	suite.Empty(result.Entries)
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TestHandle_AfterDepositAndCharge_ReturnsSnapshotWithHistory() {
	ctx := context.Background()
	account := suite.createAccount("Bob")
	orderID := kernel.NewUUID()

	suite.Require().NoError(account.Deposit(suite.money("100.00")))
	suite.Require().NoError(account.ChargeForOrder(suite.money("57.00")))
	suite.Require().NoError(suite.customerRepo.Update(ctx, account))

	base := time.Now().UTC().Add(-time.Hour)
	suite.addEntry(account.ID(), nil, ledger.TypeDeposit, "100.00", base)
	suite.addEntry(account.ID(), &orderID, ledger.TypeOrderCharge, "57.00", base.Add(time.Minute))

	query, err := queries.NewGetAccountStatementQuery(account.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("43.00", result.Balance.String())
	suite.Equal("57.00", result.TotalSpent.String())
	suite.Equal(1, result.OrderCount)

	// History comes back newest first
	suite.Require().Len(result.Entries, 2)

	charge := result.Entries[0]
	suite.Equal("order_charge", charge.EntryType)
	suite.Equal("57.00", charge.Amount.String())
	suite.Require().NotNil(charge.OrderID)
	suite.Equal(orderID, *charge.OrderID)

	deposit := result.Entries[1]
	suite.Equal("deposit", deposit.EntryType)
	suite.Equal("100.00", deposit.Amount.String())
	suite.Nil(deposit.OrderID)
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TestHandle_VipAccount_ReflectsStatus() {
	ctx := context.Background()
	account := suite.createAccount("Carol")

	suite.Require().NoError(account.Deposit(suite.money("200.00")))
	suite.Require().NoError(account.ChargeForOrder(suite.money("150.00")))
	suite.Require().NoError(suite.customerRepo.Update(ctx, account))

	query, err := queries.NewGetAccountStatementQuery(account.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.Vip, "Account past the spend threshold should be VIP")
	suite.Equal("150.00", result.TotalSpent.String())
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TestHandle_UnknownCustomer_ReturnsNotFoundError() {
	query, err := queries.NewGetAccountStatementQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *GetAccountStatementQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAccountStatementQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAccountStatementQuery constructor")
}

func (suite *GetAccountStatementQueryHandlerTestSuite) money(value string) kernel.Money {
	amount, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return amount
}

func (suite *GetAccountStatementQueryHandlerTestSuite) createAccount(name string) *customer.Customer {
	account, err := customer.NewCustomer(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), account))
	return account
}

func (suite *GetAccountStatementQueryHandlerTestSuite) addEntry(
	customerID kernel.UUID,
	orderID *kernel.UUID,
	entryType ledger.EntryType,
	amount string,
	createdAt time.Time,
) {
	entry, err := ledger.RestoreEntry(kernel.NewUUID(), customerID, orderID, entryType, suite.money(amount), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(context.Background(), entry))
}

func TestGetAccountStatementQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAccountStatementQueryHandlerTestSuite))
}

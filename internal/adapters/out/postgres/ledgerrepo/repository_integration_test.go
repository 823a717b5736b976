package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"cctexpress/internal/adapters/out/postgres/ledgerrepo"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerRepositoryIntegrationTestSuite provides integration tests for LedgerRepository
// using PostgreSQL containers to verify the append-only entry storage.
type LedgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ledgerrepo.GormLedgerRepository
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.LedgerEntryDTO{}))
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ledger_entries").Error)

	suite.repository = ledgerrepo.NewGormLedgerRepository(suite.db)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAdd_DepositEntry_PersistsWithoutOrder() {
	ctx := context.Background()

	entry, err := ledger.NewDepositEntry(kernel.NewUUID(), kernel.NewUUID(), suite.money("100.00"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	var dto ledgerrepo.LedgerEntryDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", entry.ID().Bytes()).Error)
	suite.Equal("deposit", dto.EntryType)
	suite.Nil(dto.OrderID)
	suite.Equal("100.00", dto.Amount.StringFixed(2))
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAdd_OrderChargeEntry_ReferencesOrder() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	entry, err := ledger.NewOrderChargeEntry(kernel.NewUUID(), kernel.NewUUID(), orderID, suite.money("57.00"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	var dto ledgerrepo.LedgerEntryDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", entry.ID().Bytes()).Error)
	suite.Equal("order_charge", dto.EntryType)
	suite.Require().NotNil(dto.OrderID)
	suite.Equal(orderID.Bytes(), *dto.OrderID)
	suite.Equal("57.00", dto.Amount.StringFixed(2))
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAdd_EntriesAccumulate() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	for _, amount := range []string{"100.00", "25.00", "40.00"} {
		entry, err := ledger.NewDepositEntry(kernel.NewUUID(), customerID, suite.money(amount))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	var count int64
	suite.Require().NoError(suite.db.Model(&ledgerrepo.LedgerEntryDTO{}).
		Where("customer_id = ?", customerID.Bytes()).Count(&count).Error)
	suite.Equal(int64(3), count)
}

func (suite *LedgerRepositoryIntegrationTestSuite) money(value string) kernel.Money {
	amount, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return amount
}

func TestLedgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationTestSuite))
}

// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit event publishing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
// All repositories obtained from one unit of work share the same
// transaction, so a charge, its ledger entry and the order row either all
// land or none do:
//
//	if err := uow.CustomerRepository().Update(ctx, account); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.LedgerRepository().Add(ctx, entry); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Event Publishing:
//
// Orders tracked during the transaction produce status events after a
// successful commit. Publishing is best effort: a broker failure is logged
// and never undoes the committed business change.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Order and customer rows carry versions, so lost updates surface as
//     version errors rather than silent overwrites
package postgres

import (
	"context"
	"log/slog"
	"time"

	"cctexpress/internal/adapters/out/postgres/bidrepo"
	"cctexpress/internal/adapters/out/postgres/courierrepo"
	"cctexpress/internal/adapters/out/postgres/customerrepo"
	"cctexpress/internal/adapters/out/postgres/ledgerrepo"
	"cctexpress/internal/adapters/out/postgres/orderrepo"
	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/order"
	"cctexpress/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracked orders drive the post-commit status event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection is shared by all created instances.
// A nil publisher disables event publishing entirely, which is how the
// application runs when no message broker is configured.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}

	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction.
// After a successful commit, every tracked order produces one status event
// on the configured publisher.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.OrderEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// All tracked aggregates and their modifications become permanent in the
// database, and status events for tracked orders are published afterwards.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.tx = nil
		return err
	}
	uow.tx = nil

	uow.publishOrderEvents(ctx)
	return nil
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began, and no
// events are published for the discarded changes.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerRepository provides access to customer persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// The returned repository automatically tracks all order aggregates that are
// added or updated, so their status changes are published after commit.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CourierRepository provides access to courier persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// BidRepository provides access to bid persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) BidRepository() ports.BidRepository {
	return bidrepo.NewGormBidRepository(uow.conn(), uow)
}

// LedgerRepository provides access to ledger persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added or updated.
//
// Tracked orders are turned into status events after the transaction commits;
// other aggregate kinds are tracked for symmetry and currently produce nothing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the active transaction when one exists, the shared
// connection otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// publishOrderEvents emits one status event per tracked order.
// Publishing is best effort: failures are logged and the committed
// transaction stands.
func (uow *GormUnitOfWork) publishOrderEvents(ctx context.Context) {
	if uow.publisher == nil {
		return
	}

	for _, tracked := range uow.trackedAggregates {
		trackedOrder, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		event := ports.OrderStatusEvent{
			OrderID:     trackedOrder.ID().String(),
			CustomerID:  trackedOrder.CustomerID().String(),
			Status:      trackedOrder.Status().String(),
			FinalAmount: trackedOrder.FinalAmount().String(),
			OccurredAt:  time.Now().UTC(),
		}
		if courierID := trackedOrder.Courier(); courierID != nil {
			event.CourierID = courierID.String()
		}

		if err := uow.publisher.PublishStatusChanged(ctx, event); err != nil {
			uow.logger.WarnContext(ctx, "Order status event publish failed",
				"order_id", event.OrderID, "status", event.Status, "error", err)
		}
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
}

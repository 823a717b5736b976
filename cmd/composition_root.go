package cmd

import (
	"log/slog"

	httpin "cctexpress/internal/adapters/in/http"
	"cctexpress/internal/adapters/out/kafka"
	"cctexpress/internal/adapters/out/postgres"
	"cctexpress/internal/adapters/out/routing"
	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/ports"
	"cctexpress/internal/jobs"
	"cctexpress/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters to the application handlers.
// All handler factories share one unit of work factory, so every
// business operation runs against the same database with the same
// event publication behavior.
type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	publisher     ports.OrderEventPublisher
	routeFinder   ports.RouteFinder
	serverMetrics *metrics.ServerMetrics
	logger        *slog.Logger
}

// NewCompositionRoot builds the application graph from configuration.
// The Kafka publisher is only created when brokers are configured; the
// unit of work treats the absent publisher as "events disabled".
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.OrderEventPublisher
	if config.KafkaBrokers != "" {
		publisher = kafka.NewOrderEventPublisher(config.KafkaBrokers, config.KafkaOrderStatusTopic, logger)
	}

	var serverMetrics *metrics.ServerMetrics
	if config.MetricsEnabled {
		serverMetrics = metrics.NewServerMetrics("api")
	}

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		publisher:     publisher,
		routeFinder:   routing.NewOpenRouteServiceClient(config.RoutingBaseURL, config.RoutingAPIKey, logger),
		serverMetrics: serverMetrics,
		logger:        logger,
	}
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

// CreateServer builds the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateRegisterCourierCommandHandler(),
		c.CreateSetCourierActivityCommandHandler(),
		c.CreateDepositFundsCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateOpenBiddingCommandHandler(),
		c.CreateSubmitBidCommandHandler(),
		c.CreateResolveBiddingCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetBiddableOrdersQueryHandler(),
		c.CreateGetOrderBidsQueryHandler(),
		c.CreateGetAccountStatementQueryHandler(),
		c.CreateGetCouriersQueryHandler(),
		c.CreateGetDeliveryRouteQueryHandler(),
		c.serverMetrics,
	)
}

// CreateJobManager builds the scheduled sweeps enabled in configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateOpenPendingBiddingCommandHandler(),
		c.CreateAutoResolveBiddingCommandHandler(),
		c.config.BiddingAutoOpen,
		c.config.BiddingAutoResolve,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierActivityCommandHandler() commands.SetCourierActivityCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierActivityCommandHandler(f)
}

func (c *CompositionRoot) CreateDepositFundsCommandHandler() commands.DepositFundsCommandHandler {
	var f commands.AccountingUoWFactory = FuncAccountingUoWFactory(func() commands.AccountingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepositFundsCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenBiddingCommandHandler() commands.OpenBiddingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenBiddingCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenPendingBiddingCommandHandler() commands.OpenPendingBiddingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenPendingBiddingCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitBidCommandHandler() commands.SubmitBidCommandHandler {
	var f commands.BiddingUoWFactory = FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitBidCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveBiddingCommandHandler() commands.ResolveBiddingCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveBiddingCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoResolveBiddingCommandHandler() commands.AutoResolveBiddingCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoResolveBiddingCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBiddableOrdersQueryHandler() queries.GetBiddableOrdersQueryHandler {
	return queries.NewGetBiddableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBidsQueryHandler() queries.GetOrderBidsQueryHandler {
	return queries.NewGetOrderBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountStatementQueryHandler() queries.GetAccountStatementQueryHandler {
	return queries.NewGetAccountStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryRouteQueryHandler() queries.GetDeliveryRouteQueryHandler {
	return queries.NewGetDeliveryRouteQueryHandler(c.gormDB, c.routeFinder)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountingUoWFactory func() commands.AccountingUoW

func (f FuncAccountingUoWFactory) Create() commands.AccountingUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncBiddingUoWFactory func() commands.BiddingUoW

func (f FuncBiddingUoWFactory) Create() commands.BiddingUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

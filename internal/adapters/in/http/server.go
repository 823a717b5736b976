package http

import (
	"net/http"
	"strconv"
	"time"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server exposes the ordering platform over HTTP.
// It binds requests, dispatches to the command and query handlers and
// translates domain errors into status codes. Authentication happens
// upstream; the caller's identity arrives in the X-User-ID and
// X-User-Role headers.
type Server struct {
	// Command handlers
	registerCustomerHandler   commands.RegisterCustomerCommandHandler
	registerCourierHandler    commands.RegisterCourierCommandHandler
	setCourierActivityHandler commands.SetCourierActivityCommandHandler
	depositFundsHandler       commands.DepositFundsCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	openBiddingHandler        commands.OpenBiddingCommandHandler
	submitBidHandler          commands.SubmitBidCommandHandler
	resolveBiddingHandler     commands.ResolveBiddingCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getBiddableOrdersHandler   queries.GetBiddableOrdersQueryHandler
	getOrderBidsHandler        queries.GetOrderBidsQueryHandler
	getAccountStatementHandler queries.GetAccountStatementQueryHandler
	getCouriersHandler         queries.GetCouriersQueryHandler
	getDeliveryRouteHandler    queries.GetDeliveryRouteQueryHandler

	// metrics is optional; a nil value disables instrumentation.
	metrics *metrics.ServerMetrics
}

// NewServer creates an HTTP server wired to the given command and query
// handlers. Pass a nil ServerMetrics to run without instrumentation.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	setCourierActivityHandler commands.SetCourierActivityCommandHandler,
	depositFundsHandler commands.DepositFundsCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	openBiddingHandler commands.OpenBiddingCommandHandler,
	submitBidHandler commands.SubmitBidCommandHandler,
	resolveBiddingHandler commands.ResolveBiddingCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getBiddableOrdersHandler queries.GetBiddableOrdersQueryHandler,
	getOrderBidsHandler queries.GetOrderBidsQueryHandler,
	getAccountStatementHandler queries.GetAccountStatementQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
	getDeliveryRouteHandler queries.GetDeliveryRouteQueryHandler,
	serverMetrics *metrics.ServerMetrics,
) *Server {
	return &Server{
		registerCustomerHandler:    registerCustomerHandler,
		registerCourierHandler:     registerCourierHandler,
		setCourierActivityHandler:  setCourierActivityHandler,
		depositFundsHandler:        depositFundsHandler,
		placeOrderHandler:          placeOrderHandler,
		openBiddingHandler:         openBiddingHandler,
		submitBidHandler:           submitBidHandler,
		resolveBiddingHandler:      resolveBiddingHandler,
		completeOrderHandler:       completeOrderHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getBiddableOrdersHandler:   getBiddableOrdersHandler,
		getOrderBidsHandler:        getOrderBidsHandler,
		getAccountStatementHandler: getAccountStatementHandler,
		getCouriersHandler:         getCouriersHandler,
		getDeliveryRouteHandler:    getDeliveryRouteHandler,
		metrics:                    serverMetrics,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	api := e.Group("/api/v1")

	// Customer-facing routes.
	api.POST("/orders", s.PlaceOrder,
		s.instrumented("place_order"), s.requireRole(RoleCustomer))
	api.POST("/customers/:customerID/deposits", s.DepositFunds,
		s.instrumented("deposit_funds"), s.requireRole(RoleCustomer))
	api.GET("/customers/:customerID/statement", s.GetAccountStatement,
		s.instrumented("get_account_statement"), s.requireRole(RoleCustomer, RoleManager))

	// Delivery staff routes.
	api.GET("/orders/biddable", s.GetBiddableOrders,
		s.instrumented("get_biddable_orders"), s.requireRole(RoleDelivery))
	api.POST("/orders/:orderID/bids", s.SubmitBid,
		s.instrumented("submit_bid"), s.requireRole(RoleDelivery))
	api.POST("/orders/:orderID/complete", s.CompleteOrder,
		s.instrumented("complete_order"), s.requireRole(RoleDelivery))
	api.GET("/orders/:orderID/route", s.GetDeliveryRoute,
		s.instrumented("get_delivery_route"), s.requireRole(RoleDelivery, RoleManager))
	api.PATCH("/couriers/:courierID/activity", s.SetCourierActivity,
		s.instrumented("set_courier_activity"), s.requireRole(RoleDelivery, RoleManager))

	// Manager routes.
	api.POST("/customers", s.RegisterCustomer,
		s.instrumented("register_customer"), s.requireRole(RoleManager))
	api.POST("/couriers", s.RegisterCourier,
		s.instrumented("register_courier"), s.requireRole(RoleManager))
	api.GET("/couriers", s.GetCouriers,
		s.instrumented("get_couriers"), s.requireRole(RoleManager))
	api.GET("/orders/active", s.GetActiveOrders,
		s.instrumented("get_active_orders"), s.requireRole(RoleManager))
	api.GET("/orders/:orderID/bids", s.GetOrderBids,
		s.instrumented("get_order_bids"), s.requireRole(RoleManager))
	api.POST("/orders/:orderID/bidding", s.OpenBidding,
		s.instrumented("open_bidding"), s.requireRole(RoleManager))
	api.POST("/orders/:orderID/bidding/resolve", s.ResolveBidding,
		s.instrumented("resolve_bidding"), s.requireRole(RoleManager))
}

// Health handles GET /health for liveness probes.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// instrumented records request counts and latency for one route. Handlers
// write their own responses, so the response status is final by the time
// the next handler returns.
func (s *Server) instrumented(handler string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if s.metrics == nil {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)

			status := strconv.Itoa(ctx.Response().Status)
			s.metrics.Requests.WithLabelValues(handler, status).Inc()
			s.metrics.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

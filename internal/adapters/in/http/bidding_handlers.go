package http

import (
	"net/http"
	"time"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SubmitBidRequest is the body of POST /api/v1/orders/:orderID/bids.
// The bidding courier comes from the identity headers.
type SubmitBidRequest struct {
	Amount string `json:"amount"`
}

// BidSubmittedResponse returns the ID assigned to a new bid.
type BidSubmittedResponse struct {
	ID string `json:"id"`
}

// ResolveBiddingRequest is the body of POST /api/v1/orders/:orderID/bidding/resolve.
// The manager names the winning bid explicitly.
type ResolveBiddingRequest struct {
	BidID string `json:"bid_id"`
}

// BiddableOrderResponse is one order currently open for bids.
type BiddableOrderResponse struct {
	ID              string    `json:"id"`
	DeliveryAddress Location  `json:"delivery_address"`
	FinalAmount     string    `json:"final_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// BidResponse is one courier bid on an order, cheapest first in listings.
type BidResponse struct {
	ID          string    `json:"id"`
	CourierID   string    `json:"courier_id"`
	CourierName string    `json:"courier_name"`
	Amount      string    `json:"amount"`
	Selected    bool      `json:"selected"`
	CreatedAt   time.Time `json:"created_at"`
}

// OpenBidding handles POST /api/v1/orders/:orderID/bidding. Moves a
// confirmed order into the bidding stage.
func (s *Server) OpenBidding(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewOpenBiddingCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.openBiddingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitBid handles POST /api/v1/orders/:orderID/bids. A courier offers
// a delivery fee for an order with open bidding; one bid per courier per
// order.
func (s *Server) SubmitBid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request SubmitBidRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	amount, err := kernel.NewMoneyFromString(request.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSubmitBidCommand(orderID, callerIdentity(ctx).UserID, amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.submitBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BidSubmittedResponse{ID: cmd.BidID().String()})
}

// ResolveBidding handles POST /api/v1/orders/:orderID/bidding/resolve.
// Assigns the order to the courier behind the chosen bid.
func (s *Server) ResolveBidding(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ResolveBiddingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	bidID, err := kernel.UUIDFromString(request.BidID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResolveBiddingCommand(orderID, bidID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.resolveBiddingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBiddableOrders handles GET /api/v1/orders/biddable. Lists orders a
// courier can currently bid on, oldest auction first.
func (s *Server) GetBiddableOrders(ctx echo.Context) error {
	query := queries.NewGetBiddableOrdersQuery()

	orders, err := s.getBiddableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BiddableOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = BiddableOrderResponse{
			ID: order.ID.String(),
			DeliveryAddress: Location{
				Latitude:  order.DeliveryAddress.Latitude(),
				Longitude: order.DeliveryAddress.Longitude(),
			},
			FinalAmount: order.FinalAmount.String(),
			CreatedAt:   order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderBids handles GET /api/v1/orders/:orderID/bids. Lists all bids
// on an order sorted by amount so the best offer comes first.
func (s *Server) GetOrderBids(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderBidsQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bids, err := s.getOrderBidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BidResponse, len(bids))
	for i, orderBid := range bids {
		response[i] = BidResponse{
			ID:          orderBid.ID.String(),
			CourierID:   orderBid.CourierID.String(),
			CourierName: orderBid.CourierName,
			Amount:      orderBid.Amount.String(),
			Selected:    orderBid.Selected,
			CreatedAt:   orderBid.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

package http

import (
	"net/http"
	"time"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Location is a latitude and longitude pair in request and response bodies.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. The ordering
// customer comes from the identity headers, not the body.
type PlaceOrderRequest struct {
	DeliveryAddress Location           `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested dish line. The unit price is a
// decimal string; the VIP flag mirrors the menu entry the gateway
// resolved the dish from.
type OrderItemRequest struct {
	DishName  string `json:"dish_name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	VipOnly   bool   `json:"vip_only"`
}

// OrderPlacedResponse returns the ID assigned to a new order.
type OrderPlacedResponse struct {
	ID string `json:"id"`
}

// ActiveOrderResponse is one order still moving through the pipeline.
type ActiveOrderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	Status          string    `json:"status"`
	FinalAmount     string    `json:"final_amount"`
	DeliveryAddress Location  `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeliveryRouteResponse describes the assigned courier's route to the
// delivery address. Estimated is true when the figures are a
// straight-line fallback instead of a routed trip.
type DeliveryRouteResponse struct {
	OrderID         string   `json:"order_id"`
	CourierID       string   `json:"courier_id"`
	From            Location `json:"from"`
	To              Location `json:"to"`
	DistanceMeters  float64  `json:"distance_meters"`
	DurationSeconds float64  `json:"duration_seconds"`
	Estimated       bool     `json:"estimated"`
}

// PlaceOrder handles POST /api/v1/orders. The order is charged and
// confirmed in one transaction; an uncoverable bill is recorded as a
// rejected order plus a warning and reported as 402.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryAddress, err := kernel.NewGeoPoint(request.DeliveryAddress.Latitude, request.DeliveryAddress.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]commands.OrderItem, len(request.Items))
	for i, item := range request.Items {
		unitPrice, err := kernel.NewMoneyFromString(item.UnitPrice)
		if err != nil {
			return errorResponse(ctx, err)
		}

		items[i] = commands.OrderItem{
			DishName:  item.DishName,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
			VipOnly:   item.VipOnly,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(callerIdentity(ctx).UserID, deliveryAddress, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}

	return ctx.JSON(http.StatusCreated, OrderPlacedResponse{ID: cmd.OrderID().String()})
}

// GetActiveOrders handles GET /api/v1/orders/active. Returns every order
// not yet completed or rejected, oldest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = ActiveOrderResponse{
			ID:          order.ID.String(),
			CustomerID:  order.CustomerID.String(),
			Status:      order.Status,
			FinalAmount: order.FinalAmount.String(),
			DeliveryAddress: Location{
				Latitude:  order.DeliveryAddress.Latitude(),
				Longitude: order.DeliveryAddress.Longitude(),
			},
			CreatedAt: order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete. Only the
// courier the order is assigned to can complete it.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, callerIdentity(ctx).UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryRoute handles GET /api/v1/orders/:orderID/route. Returns the
// assigned courier's route to the delivery address; 409 when the order
// has no courier yet.
func (s *Server) GetDeliveryRoute(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryRouteQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	route, err := s.getDeliveryRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryRouteResponse{
		OrderID:   route.OrderID.String(),
		CourierID: route.CourierID.String(),
		From: Location{
			Latitude:  route.From.Latitude(),
			Longitude: route.From.Longitude(),
		},
		To: Location{
			Latitude:  route.To.Latitude(),
			Longitude: route.To.Longitude(),
		},
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Estimated:       route.Estimated,
	})
}

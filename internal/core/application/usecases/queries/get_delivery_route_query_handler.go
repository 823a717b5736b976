package queries

import (
	"context"
	"database/sql"
	"errors"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/ports"
	"cctexpress/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryRouteQueryHandler resolves delivery routes for assigned
// orders. The pickup point is the courier's last known location, the
// destination is the order's delivery address.
type GetDeliveryRouteQueryHandler struct {
	db     *gorm.DB
	routes ports.RouteFinder
}

// NewGetDeliveryRouteQueryHandler creates a handler for route queries.
func NewGetDeliveryRouteQueryHandler(db *gorm.DB, routes ports.RouteFinder) GetDeliveryRouteQueryHandler {
	return GetDeliveryRouteQueryHandler{db: db, routes: routes}
}

// Handle executes the route query.
// Returns an object not found error when the order does not exist and
// ErrOrderHasNoCourier when the order has no assigned courier yet.
func (h GetDeliveryRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRouteQuery,
) (GetDeliveryRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	var courierID *uuid.UUID
	var courierLatitude, courierLongitude *float64
	var deliveryLatitude, deliveryLongitude float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.courier_id,
			o.delivery_latitude,
			o.delivery_longitude,
			c.latitude,
			c.longitude
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&courierID,
		&deliveryLatitude,
		&deliveryLongitude,
		&courierLatitude,
		&courierLongitude,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryRouteQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID(), err)
	}
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	if courierID == nil {
		return GetDeliveryRouteQueryResponse{}, ErrOrderHasNoCourier
	}

	response := GetDeliveryRouteQueryResponse{OrderID: query.OrderID()}

	response.CourierID, err = kernel.UUIDFromBytes(courierID[:])
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	response.From, err = kernel.NewGeoPoint(*courierLatitude, *courierLongitude)
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	response.To, err = kernel.NewGeoPoint(deliveryLatitude, deliveryLongitude)
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	route, err := h.routes.FindRoute(ctx, response.From, response.To)
	if err != nil {
		return GetDeliveryRouteQueryResponse{}, err
	}

	response.DistanceMeters = route.DistanceMeters
	response.DurationSeconds = route.DurationSeconds
	response.Estimated = route.Estimated

	return response, nil
}

package http

import (
	"net/http"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCourierRequest is the body of POST /api/v1/couriers. The
// location is the courier's usual starting point.
type RegisterCourierRequest struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// CourierCreatedResponse returns the ID assigned to a new courier.
type CourierCreatedResponse struct {
	ID string `json:"id"`
}

// SetCourierActivityRequest is the body of PATCH /api/v1/couriers/:courierID/activity.
type SetCourierActivityRequest struct {
	Active bool `json:"active"`
}

// CourierResponse is one courier in the roster listing.
type CourierResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Active   bool     `json:"active"`
}

// RegisterCourier handles POST /api/v1/couriers. Managers enroll a new
// courier, active and ready to bid right away.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request RegisterCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoPoint(request.Location.Latitude, request.Location.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterCourierCommand(request.Name, location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierCreatedResponse{ID: cmd.CourierID().String()})
}

// SetCourierActivity handles PATCH /api/v1/couriers/:courierID/activity.
// Couriers toggle their own shift; managers can toggle anyone.
func (s *Server) SetCourierActivity(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	identity := callerIdentity(ctx)
	if identity.Role == RoleDelivery && identity.UserID != courierID {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Couriers can only change their own activity",
		})
	}

	var request SetCourierActivityRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetCourierActivityCommand(courierID, request.Active)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.setCourierActivityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers. Lists the full courier
// roster sorted by name.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetCouriersQuery()

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = CourierResponse{
			ID:   courier.ID.String(),
			Name: courier.Name,
			Location: Location{
				Latitude:  courier.Location.Latitude(),
				Longitude: courier.Location.Longitude(),
			},
			Active: courier.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

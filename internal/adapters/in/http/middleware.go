package http

import (
	"net/http"
	"slices"

	"cctexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Caller roles accepted in the X-User-Role header.
const (
	RoleCustomer = "customer"
	RoleDelivery = "delivery"
	RoleManager  = "manager"
)

// HeaderUserID and HeaderUserRole carry the caller identity established
// by the upstream gateway.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const identityContextKey = "caller-identity"

// Identity is the authenticated caller as asserted by the gateway.
type Identity struct {
	UserID kernel.UUID
	Role   string
}

// requireRole builds a middleware that rejects requests whose identity
// headers are missing or malformed (401) or whose role is not in the
// allowed set (403). On success the identity is stored on the request
// context for handlers to read via callerIdentity.
func (s *Server) requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + HeaderUserID + " header",
				})
			}

			role := ctx.Request().Header.Get(HeaderUserRole)
			if !slices.Contains(roles, role) {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Role is not allowed to perform this operation",
				})
			}

			ctx.Set(identityContextKey, Identity{UserID: userID, Role: role})
			return next(ctx)
		}
	}
}

// callerIdentity returns the identity stored by requireRole. Routes are
// always registered behind requireRole, so the value is present.
func callerIdentity(ctx echo.Context) Identity {
	identity, _ := ctx.Get(identityContextKey).(Identity)
	return identity
}

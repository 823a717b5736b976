package ports

import (
	"context"

	"cctexpress/internal/core/domain/model/kernel"
)

// Route describes a delivery route between two geographic points.
type Route struct {
	// DistanceMeters is the route length in meters.
	DistanceMeters float64

	// DurationSeconds is the expected travel time in seconds.
	DurationSeconds float64

	// Estimated is true when the external routing service was unavailable
	// and the numbers come from a straight-line estimate instead of real
	// road geometry.
	Estimated bool
}

// RouteFinder looks up a delivery route between two points.
// Implementations are expected to degrade gracefully: when the routing
// service cannot be reached they return a geodesic estimate with the
// Estimated flag set rather than failing the request.
type RouteFinder interface {
	// FindRoute returns the route from the pickup point to the destination.
	FindRoute(ctx context.Context, from, to kernel.GeoPoint) (Route, error)
}

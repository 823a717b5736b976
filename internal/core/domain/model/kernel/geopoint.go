package kernel

import (
	"errors"
	"fmt"
	"math"

	"cctexpress/internal/pkg/errs"
	"cctexpress/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in decimal degrees.
	GeoPointMinLatitude float64 = -90
	// GeoPointMaxLatitude is the maximum valid latitude in decimal degrees.
	GeoPointMaxLatitude float64 = 90
	// GeoPointMinLongitude is the minimum valid longitude in decimal degrees.
	GeoPointMinLongitude float64 = -180
	// GeoPointMaxLongitude is the maximum valid longitude in decimal degrees.
	GeoPointMaxLongitude float64 = 180

	earthRadiusMeters = 6371000
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure coordinates are valid.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate in decimal degrees (WGS 84).
// It is an immutable value object used for restaurant and delivery addresses,
// courier positions and route estimation.
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(55.7558, 37.6173)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(55.755800,37.617300)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [-90..90] and longitude within [-180..180],
// both in decimal degrees. Returns an error if either coordinate is
// outside the valid bounds.
//
// Parameters:
//   - latitude: north-south position in decimal degrees
//   - longitude: east-west position in decimal degrees
//
// Returns:
//   - GeoPoint: a valid geographic point
//   - error: validation error if coordinates are out of bounds
//
// Example:
//
//	point, err := NewGeoPoint(59.9343, 30.3351)
//	if err != nil {
//	    log.Fatal("Invalid coordinates:", err)
//	}
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation, even
// though (0, 0) is formally inside the coordinate bounds. A point at the zero
// value almost always means a forgotten constructor call rather than a real
// position in the Gulf of Guinea.
//
// Returns:
//   - error: ErrGeoPointIsNotConstructed if the point was not properly initialized, nil otherwise
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the north-south position in decimal degrees.
// The returned value is guaranteed to be within [-90..90] for properly
// constructed GeoPoint instances.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the east-west position in decimal degrees.
// The returned value is guaranteed to be within [-180..180] for properly
// constructed GeoPoint instances.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable string representation of the GeoPoint.
// The format is "GeoPoint(latitude,longitude)" with six decimal places,
// which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two geographic points for equality.
// Two points are considered equal if they have exactly the same latitude
// and longitude. Both points must be properly constructed (pass validation)
// for the comparison to succeed.
//
// Parameters:
//   - other: the GeoPoint to compare with
//
// Returns:
//   - bool: true if the points are equal, false otherwise
//   - error: validation error if either point is improperly constructed
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceMeters calculates the great-circle distance between two points
// using the haversine formula with a mean Earth radius of 6371 km. The
// result is an as-the-crow-flies estimate; the routing adapter refines it
// with road distances when the external service is reachable.
// Both points must be properly constructed (pass validation) for the
// calculation to succeed.
//
// Parameters:
//   - other: the GeoPoint to calculate distance to
//
// Returns:
//   - float64: the distance between the two points in meters
//   - error: validation error if either point is improperly constructed
//
// Example:
//
//	moscow, _ := NewGeoPoint(55.7558, 37.6173)
//	petersburg, _ := NewGeoPoint(59.9343, 30.3351)
//
//	distance, err := moscow.DistanceMeters(petersburg)
//	// distance is roughly 634000 meters
func (p GeoPoint) DistanceMeters(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(p.latitude)
	lat2 := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - p.latitude)
	deltaLon := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoPointMinLatitude || latitude > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoPointMinLongitude || longitude > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

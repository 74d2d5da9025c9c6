package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an
// improperly initialized Coordinates value.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic point as returned by the geocoding
// provider. It is an immutable value object; the zero value is invalid and
// fails validation.
//
// Example:
//
//	point, err := kernel.NewCoordinates(31.2304, 121.4737)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: 31.230400,121.473700
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates creates a validated Coordinates value.
// Latitude must be within [-90, 90] and longitude within [-180, 180] degrees.
func NewCoordinates(lat float64, lng float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate ensures the Coordinates value was created through NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Lat returns the latitude in degrees.
func (c Coordinates) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in degrees.
func (c Coordinates) Lng() float64 {
	return c.lng
}

// IsEqual compares two coordinate pairs for exact equality.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lng == other.lng
}

// String renders the point as "lat,lng", the format route-planning providers
// accept as origin/destination parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.lat, c.lng)
}

func (c *Coordinates) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	c.lng = lng
	return nil
}

package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// GeoClient resolves addresses to coordinates and measures delivery routes
// against the map provider.
type GeoClient interface {
	// ResolveCoordinates geocodes a free-text address. Returns an
	// AddressResolutionFailed error when the provider cannot resolve it.
	ResolveCoordinates(ctx context.Context, address string) (kernel.Coordinates, error)

	// RouteDistanceMeters returns the riding route length between two
	// points in meters.
	RouteDistanceMeters(ctx context.Context, from, to kernel.Coordinates) (int, error)
}

// Package geo provides the HTTP adapter for the map provider: forward
// geocoding of delivery addresses and riding route distances for the
// delivery range check at submission.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client implements ports.GeoClient against a Baidu-style map API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a geo client for the given provider base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// geocodeResponse is the provider's forward geocoding payload.
type geocodeResponse struct {
	Status int `json:"status"`
	Result struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"result"`
}

// routeResponse is the provider's route planning payload.
type routeResponse struct {
	Status int `json:"status"`
	Result struct {
		Routes []struct {
			Distance int `json:"distance"`
		} `json:"routes"`
	} `json:"result"`
}

// ResolveCoordinates geocodes a full-text address into a coordinate pair.
func (c *Client) ResolveCoordinates(ctx context.Context, address string) (kernel.Coordinates, error) {
	if address == "" {
		return kernel.Coordinates{}, errs.NewValueIsRequiredError("address")
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("output", "json")
	params.Set("ak", c.apiKey)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocoding/v3", params, &resp); err != nil {
		return kernel.Coordinates{}, errs.NewAddressResolutionFailedError(address, err)
	}
	if resp.Status != 0 {
		return kernel.Coordinates{}, errs.NewAddressResolutionFailedError(address,
			fmt.Errorf("provider status %d", resp.Status))
	}

	point, err := kernel.NewCoordinates(resp.Result.Location.Lat, resp.Result.Location.Lng)
	if err != nil {
		return kernel.Coordinates{}, errs.NewAddressResolutionFailedError(address, err)
	}

	return point, nil
}

// RouteDistanceMeters plans a riding route between two points and returns its
// length in meters.
func (c *Client) RouteDistanceMeters(ctx context.Context, from, to kernel.Coordinates) (int, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	params := url.Values{}
	params.Set("origin", from.String())
	params.Set("destination", to.String())
	params.Set("ak", c.apiKey)

	route := from.String() + " -> " + to.String()

	var resp routeResponse
	if err := c.get(ctx, "/directionlite/v1/riding", params, &resp); err != nil {
		return 0, errs.NewAddressResolutionFailedError(route, err)
	}
	if resp.Status != 0 {
		return 0, errs.NewAddressResolutionFailedError(route,
			fmt.Errorf("provider status %d", resp.Status))
	}
	if len(resp.Result.Routes) == 0 {
		return 0, errs.NewAddressResolutionFailedError(route, fmt.Errorf("provider returned no routes"))
	}

	return resp.Result.Routes[0].Distance, nil
}

// get issues a provider request and decodes the JSON payload.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

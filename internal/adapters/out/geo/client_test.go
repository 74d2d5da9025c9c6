package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodorder/internal/adapters/out/geo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ResolveCoordinates(t *testing.T) {
	t.Run("should resolve a valid address", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geocoding/v3", r.URL.Path)
			assert.Equal(t, "42 Garden Street", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("ak"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":0,"result":{"location":{"lat":31.2304,"lng":121.4737}}}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key")
		point, err := client.ResolveCoordinates(context.Background(), "42 Garden Street")
		require.NoError(t, err)
		assert.InDelta(t, 31.2304, point.Lat(), 1e-9)
		assert.InDelta(t, 121.4737, point.Lng(), 1e-9)
	})

	t.Run("should fail on provider error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":2}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key")
		_, err := client.ResolveCoordinates(context.Background(), "nowhere at all")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAddressResolutionFailed)
	})

	t.Run("should fail on HTTP error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key")
		_, err := client.ResolveCoordinates(context.Background(), "42 Garden Street")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAddressResolutionFailed)
	})

	t.Run("should require an address", func(t *testing.T) {
		client := geo.NewClient("http://unused", "test-key")
		_, err := client.ResolveCoordinates(context.Background(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_RouteDistanceMeters(t *testing.T) {
	from, err := kernel.NewCoordinates(31.2304, 121.4737)
	require.NoError(t, err)
	to, err := kernel.NewCoordinates(31.2400, 121.4800)
	require.NoError(t, err)

	t.Run("should return the first route's distance", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/directionlite/v1/riding", r.URL.Path)
			assert.Equal(t, from.String(), r.URL.Query().Get("origin"))
			assert.Equal(t, to.String(), r.URL.Query().Get("destination"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":0,"result":{"routes":[{"distance":3200},{"distance":4100}]}}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key")
		distance, err := client.RouteDistanceMeters(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, 3200, distance)
	})

	t.Run("should fail when the provider returns no routes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":0,"result":{"routes":[]}}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key")
		_, err := client.RouteDistanceMeters(context.Background(), from, to)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAddressResolutionFailed)
	})

	t.Run("should reject unconstructed coordinates", func(t *testing.T) {
		client := geo.NewClient("http://unused", "test-key")
		_, err := client.RouteDistanceMeters(context.Background(), kernel.Coordinates{}, to)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

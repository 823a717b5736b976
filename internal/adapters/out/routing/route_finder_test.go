package routing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cctexpress/internal/adapters/out/routing"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func routeJSON(distance, duration float64) string {
	return `{"features":[{"properties":{"summary":{"distance":` +
		jsonNumber(distance) + `,"duration":` + jsonNumber(duration) + `}}}]}`
}

func jsonNumber(value float64) string {
	data, _ := json.Marshal(value)
	return string(data)
}

func TestFindRoute_ReturnsRouteFromService(t *testing.T) {
	from := mustGeoPoint(t, 55.7601, 37.6189)
	to := mustGeoPoint(t, 55.7558, 37.6173)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/driving-car/json", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		var body struct {
			Coordinates [][2]float64 `json:"coordinates"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Coordinates, 2)
		// Longitude first, then latitude
		assert.InDelta(t, from.Longitude(), body.Coordinates[0][0], 0.000001)
		assert.InDelta(t, from.Latitude(), body.Coordinates[0][1], 0.000001)
		assert.InDelta(t, to.Longitude(), body.Coordinates[1][0], 0.000001)
		assert.InDelta(t, to.Latitude(), body.Coordinates[1][1], 0.000001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(routeJSON(2350, 540)))
	}))
	defer server.Close()

	client := routing.NewOpenRouteServiceClient(server.URL, "test-key", nil)

	route, err := client.FindRoute(context.Background(), from, to)

	require.NoError(t, err)
	assert.InDelta(t, 2350, route.DistanceMeters, 0.001)
	assert.InDelta(t, 540, route.DurationSeconds, 0.001)
	assert.False(t, route.Estimated)
}

func TestFindRoute_NoAPIKey_ReturnsEstimateWithoutCalling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("offline client should not call the routing service")
	}))
	defer server.Close()

	from := mustGeoPoint(t, 55.7601, 37.6189)
	to := mustGeoPoint(t, 55.7558, 37.6173)

	client := routing.NewOpenRouteServiceClient(server.URL, "", nil)

	route, err := client.FindRoute(context.Background(), from, to)

	require.NoError(t, err)
	assert.True(t, route.Estimated)

	straightLine, err := from.DistanceMeters(to)
	require.NoError(t, err)
	assert.InDelta(t, straightLine, route.DistanceMeters, 0.001)
	assert.Greater(t, route.DurationSeconds, 0.0)
}

func TestFindRoute_ServiceError_FallsBackToEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := routing.NewOpenRouteServiceClient(server.URL, "test-key", nil)

	route, err := client.FindRoute(context.Background(),
		mustGeoPoint(t, 55.7601, 37.6189), mustGeoPoint(t, 55.7558, 37.6173))

	require.NoError(t, err)
	assert.True(t, route.Estimated)
	assert.Greater(t, route.DistanceMeters, 0.0)
}

func TestFindRoute_NoRouteFound_FallsBackToEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := routing.NewOpenRouteServiceClient(server.URL, "test-key", nil)

	route, err := client.FindRoute(context.Background(),
		mustGeoPoint(t, 55.7601, 37.6189), mustGeoPoint(t, 55.7558, 37.6173))

	require.NoError(t, err)
	assert.True(t, route.Estimated)
}

func TestFindRoute_MalformedResponse_FallsBackToEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := routing.NewOpenRouteServiceClient(server.URL, "test-key", nil)

	route, err := client.FindRoute(context.Background(),
		mustGeoPoint(t, 55.7601, 37.6189), mustGeoPoint(t, 55.7558, 37.6173))

	require.NoError(t, err)
	assert.True(t, route.Estimated)
}

func TestFindRoute_CanceledContext_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(routeJSON(2350, 540)))
	}))
	defer server.Close()

	client := routing.NewOpenRouteServiceClient(server.URL, "test-key", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FindRoute(ctx, mustGeoPoint(t, 55.7601, 37.6189), mustGeoPoint(t, 55.7558, 37.6173))

	require.Error(t, err)
}

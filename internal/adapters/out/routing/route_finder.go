// Package routing resolves delivery routes through the OpenRouteService API.
// When the service is not configured or unreachable, routes degrade to a
// straight-line estimate so route lookups keep working offline.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/ports"
)

const (
	// requestTimeout bounds one routing API call.
	requestTimeout = 30 * time.Second

	// fallbackSpeedMetersPerSecond approximates city driving and turns a
	// straight-line distance into a duration estimate.
	fallbackSpeedMetersPerSecond = 8.3
)

// OpenRouteServiceClient finds driving routes via the OpenRouteService
// directions API. Implements ports.RouteFinder.
//
// An empty API key or base URL puts the client in offline mode: every
// lookup returns a straight-line estimate with the Estimated flag set.
type OpenRouteServiceClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenRouteServiceClient creates a route finder against the given API
// endpoint. The base URL points at the directions root, for example
// "https://api.openrouteservice.org/v2/directions".
func NewOpenRouteServiceClient(baseURL, apiKey string, logger *slog.Logger) *OpenRouteServiceClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &OpenRouteServiceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger.With("component", "route_finder"),
	}
}

// FindRoute returns the driving route from the pickup point to the
// destination. Service failures degrade to an estimate instead of an
// error; only invalid input or a canceled context fail the lookup.
func (c *OpenRouteServiceClient) FindRoute(ctx context.Context, from, to kernel.GeoPoint) (ports.Route, error) {
	if c.apiKey == "" || c.baseURL == "" {
		return c.estimate(from, to)
	}

	route, err := c.requestRoute(ctx, from, to)
	if err != nil {
		if ctx.Err() != nil {
			return ports.Route{}, err
		}

		c.logger.WarnContext(ctx, "Routing service unavailable, falling back to estimate", "error", err)
		return c.estimate(from, to)
	}

	return route, nil
}

type routeRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Format      string       `json:"format"`
}

type routeResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (c *OpenRouteServiceClient) requestRoute(ctx context.Context, from, to kernel.GeoPoint) (ports.Route, error) {
	// The API expects coordinates in longitude, latitude order.
	payload, err := json.Marshal(routeRequest{
		Coordinates: [][2]float64{
			{from.Longitude(), from.Latitude()},
			{to.Longitude(), to.Latitude()},
		},
		Format: "json",
	})
	if err != nil {
		return ports.Route{}, err
	}

	url := c.baseURL + "/driving-car/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return ports.Route{}, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.Route{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Route{}, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var parsed routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.Route{}, err
	}
	if len(parsed.Features) == 0 {
		return ports.Route{}, errors.New("routing service returned no route")
	}

	summary := parsed.Features[0].Properties.Summary
	return ports.Route{
		DistanceMeters:  summary.Distance,
		DurationSeconds: summary.Duration,
	}, nil
}

func (c *OpenRouteServiceClient) estimate(from, to kernel.GeoPoint) (ports.Route, error) {
	distance, err := from.DistanceMeters(to)
	if err != nil {
		return ports.Route{}, err
	}

	return ports.Route{
		DistanceMeters:  distance,
		DurationSeconds: distance / fallbackSpeedMetersPerSecond,
		Estimated:       true,
	}, nil
}

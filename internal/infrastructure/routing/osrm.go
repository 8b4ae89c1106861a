// Package routing adapts an OSRM-compatible directions API to the RouteProvider
// port. Requests use overview=false, so the provider returns distance and
// duration only; no route geometry is transferred or rendered.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
)

const defaultBaseURL = "https://router.project-osrm.org"

// OSRMClient queries an OSRM routing server for road distance and duration.
type OSRMClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewOSRMClient builds a client. timeout bounds each request so a stalled
// provider degrades instead of hanging the caller.
func NewOSRMClient(baseURL string, timeout time.Duration, log zerolog.Logger) *OSRMClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OSRMClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// osrmResponse is the subset of the OSRM route response we consume. Distance is
// meters, duration seconds.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route returns the driving distance/duration between two points. Coordinates
// go on the wire longitude first, per the OSRM URL format.
func (c *OSRMClient) Route(ctx context.Context, origin, destination domain.GeoPoint) (domain.RouteEstimate, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=false",
		c.baseURL, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("osrm request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("osrm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RouteEstimate{}, fmt.Errorf("osrm returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("osrm decode: %w", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return domain.RouteEstimate{}, fmt.Errorf("osrm: no route (code %q)", parsed.Code)
	}

	r := parsed.Routes[0]
	return domain.RouteEstimate{
		DistanceKm:  r.Distance / 1000,
		DurationMin: r.Duration / 60,
	}, nil
}

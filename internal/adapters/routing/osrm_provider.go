package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"amor-service/internal/domain"
	"amor-service/internal/platform/obs"
)

// OSRMRouteProvider implements RouteProvider against an OSRM-compatible
// routing server.
//
// OSRM speaks longitude-first on both the request path and the returned
// geometry; coordinates are reprojected to the system's latitude-first
// convention at this boundary. The provider issues exactly one request per
// call (no retries): the route planner degrades to a straight line on
// failure, so retrying here would only delay the fallback.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// GetRoute requests a full drivable path with duration and distance.
func (o *OSRMRouteProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (_ domain.Route, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s;%s",
		o.baseURL, o.profile, formatLonLat(origin), formatLonLat(destination),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Route{}, fmt.Errorf("get route: create request: %w", err)
	}

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	req.URL.RawQuery = q.Encode()

	resp, err := o.session.Do(req)
	if err != nil {
		return domain.Route{}, fmt.Errorf("get route: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Route{}, fmt.Errorf("get route: unexpected status %d", resp.StatusCode)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("get route: decode response: %w", err)
	}

	if decoded.Code != "Ok" {
		return domain.Route{}, fmt.Errorf("get route: service returned code %q", decoded.Code)
	}
	if len(decoded.Routes) == 0 {
		return domain.Route{}, fmt.Errorf("get route: no routes in response")
	}

	best := decoded.Routes[0]
	if len(best.Geometry.Coordinates) == 0 {
		return domain.Route{}, fmt.Errorf("get route: empty geometry")
	}

	path := make([]domain.Coordinates, 0, len(best.Geometry.Coordinates))
	for i, pt := range best.Geometry.Coordinates {
		if len(pt) != 2 {
			return domain.Route{}, fmt.Errorf("get route: invalid coordinate pair at index %d", i)
		}
		// lon-first on the wire, lat-first internally.
		path = append(path, domain.Coordinates{Lat: pt[1], Lng: pt[0]})
	}

	duration := best.Duration
	distance := best.Distance
	return domain.Route{
		Path:            path,
		DurationSeconds: &duration,
		DistanceMeters:  &distance,
	}, nil
}

func formatLonLat(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

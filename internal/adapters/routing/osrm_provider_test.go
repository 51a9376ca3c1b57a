package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"amor-service/internal/domain"
)

func TestOSRMGetRoute(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		// OSRM geometry is lon-first.
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"coordinates": [[90.38, 23.76], [90.39, 23.77], [90.41, 23.81]]},
				"duration": 420.5,
				"distance": 5200.0
			}]
		}`))
	}))
	defer srv.Close()

	provider := NewOSRMRouteProvider(srv.URL)
	origin := domain.Coordinates{Lat: 23.76, Lng: 90.38}
	dest := domain.Coordinates{Lat: 23.81, Lng: 90.41}

	route, err := provider.GetRoute(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "/route/v1/driving/90.38,23.76;90.41,23.81"; gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
	if want := "geometries=geojson&overview=full"; gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}

	if len(route.Path) != 3 {
		t.Fatalf("path length = %d, want 3", len(route.Path))
	}
	// Geometry must come back lat-first.
	if route.Path[0] != origin {
		t.Fatalf("first point = %+v, want %+v", route.Path[0], origin)
	}
	if route.Path[2] != dest {
		t.Fatalf("last point = %+v, want %+v", route.Path[2], dest)
	}
	if route.DurationSeconds == nil || *route.DurationSeconds != 420.5 {
		t.Fatalf("duration = %v, want 420.5", route.DurationSeconds)
	}
	if route.DistanceMeters == nil || *route.DistanceMeters != 5200 {
		t.Fatalf("distance = %v, want 5200", route.DistanceMeters)
	}
}

func TestOSRMGetRouteErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusBadGateway, ""},
		{"service code", http.StatusOK, `{"code": "NoRoute", "routes": []}`},
		{"no routes", http.StatusOK, `{"code": "Ok", "routes": []}`},
		{"empty geometry", http.StatusOK, `{"code": "Ok", "routes": [{"geometry": {"coordinates": []}}]}`},
		{"bad pair", http.StatusOK, `{"code": "Ok", "routes": [{"geometry": {"coordinates": [[90.38]]}}]}`},
		{"malformed json", http.StatusOK, `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			provider := NewOSRMRouteProvider(srv.URL)
			_, err := provider.GetRoute(context.Background(),
				domain.Coordinates{Lat: 23.76, Lng: 90.38},
				domain.Coordinates{Lat: 23.81, Lng: 90.41},
			)
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestOSRMGetRouteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	provider := NewOSRMRouteProvider(srv.URL)
	_, err := provider.GetRoute(context.Background(),
		domain.Coordinates{Lat: 23.76, Lng: 90.38},
		domain.Coordinates{Lat: 23.81, Lng: 90.41},
	)
	if err == nil {
		t.Fatal("expected an error for unreachable server")
	}
}

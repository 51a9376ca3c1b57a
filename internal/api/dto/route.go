package dto

import (
	"amor-service/internal/domain"
	"amor-service/internal/tracker"
)

type PositionRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SelectionRequest struct {
	PickupID int64 `json:"pickup_id"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteResponse struct {
	Path            []PointResponse `json:"path"`
	DurationSeconds *float64        `json:"duration_seconds"`
	DistanceMeters  *float64        `json:"distance_meters"`
}

// PlanResponse is the collector's current routing view: position, target
// pickup and route are all optional because "no pending pickups" is a
// normal terminal state rather than an error.
type PlanResponse struct {
	Position *PointResponse  `json:"position,omitempty"`
	Target   *PickupResponse `json:"target,omitempty"`
	Route    *RouteResponse  `json:"route,omitempty"`
}

func NewRouteResponse(r domain.Route) RouteResponse {
	out := RouteResponse{
		Path:            make([]PointResponse, 0, len(r.Path)),
		DurationSeconds: r.DurationSeconds,
		DistanceMeters:  r.DistanceMeters,
	}
	for _, p := range r.Path {
		out.Path = append(out.Path, PointResponse{Lat: p.Lat, Lng: p.Lng})
	}
	return out
}

func NewPlanResponse(plan tracker.Plan) PlanResponse {
	var res PlanResponse
	if plan.Position.Valid() {
		res.Position = &PointResponse{Lat: plan.Position.Lat, Lng: plan.Position.Lng}
	}
	if plan.Target != nil {
		target := NewPickupResponse(plan.Target)
		res.Target = &target
	}
	if plan.Route != nil {
		route := NewRouteResponse(*plan.Route)
		res.Route = &route
	}
	return res
}

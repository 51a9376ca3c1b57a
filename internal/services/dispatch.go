package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
	"amor-service/internal/tracker"
)

// FallbackPosition is the central-city default used when a collector's
// device has no location capability at all (central Dhaka).
var FallbackPosition = domain.Coordinates{Lat: 23.7591, Lng: 90.3805}

// Dispatcher drives pickup routing for collectors: it reacts to position
// updates, keeps at most one selected pickup per collector, and replans the
// route whenever the inputs change.
//
// Selection policy: a manual selection overrides nearest-selection and is
// kept across position and pending-set changes; SelectNearest only runs when
// no selection is active. A selection is dropped when its pickup leaves the
// pending set.
type Dispatcher struct {
	sessions *tracker.Hub
	pickups  ports.PickupRepository
	routes   ports.RouteProvider
	cache    ports.RouteCache
	fallback domain.Coordinates
}

// NewDispatcher wires the dispatcher. cache may be nil; caching the latest
// route is best-effort view state, never load-bearing.
func NewDispatcher(pickups ports.PickupRepository, routes ports.RouteProvider, cache ports.RouteCache) *Dispatcher {
	return &Dispatcher{
		sessions: tracker.NewHub(),
		pickups:  pickups,
		routes:   routes,
		cache:    cache,
		fallback: FallbackPosition,
	}
}

// ReportPosition records a fresh fix and replans.
func (d *Dispatcher) ReportPosition(ctx context.Context, collectorID string, pos domain.Coordinates) (tracker.Plan, error) {
	if !pos.Valid() {
		return tracker.Plan{}, errors.New("report position: coordinates out of range")
	}

	sess := d.sessions.Get(collectorID)
	seq := sess.ReportFix(pos)
	return d.replan(ctx, collectorID, sess, seq)
}

// ReportUnavailable handles a device without location capability. The
// fallback coordinate is published once; a last-good fix is kept untouched.
// This condition is non-fatal and produces no user-facing error.
func (d *Dispatcher) ReportUnavailable(ctx context.Context, collectorID string) (tracker.Plan, error) {
	sess := d.sessions.Get(collectorID)
	seq, changed := sess.ReportUnavailable(d.fallback)
	if !changed {
		latest, _ := sess.Latest()
		return latest, nil
	}
	return d.replan(ctx, collectorID, sess, seq)
}

// Select pins routing to a specific pending pickup (marker interaction).
func (d *Dispatcher) Select(ctx context.Context, collectorID string, pickupID int64) (tracker.Plan, error) {
	p, err := d.pickups.Get(ctx, pickupID)
	if err != nil {
		return tracker.Plan{}, fmt.Errorf("select pickup: %w", err)
	}
	if p.Status != domain.PickupPending {
		return tracker.Plan{}, fmt.Errorf("select pickup %d: %w", pickupID, domain.ErrPickupAlreadyCompleted)
	}

	sess := d.sessions.Get(collectorID)
	seq := sess.Select(pickupID)
	return d.replan(ctx, collectorID, sess, seq)
}

// ClearSelection returns the collector to automatic nearest-selection.
func (d *Dispatcher) ClearSelection(ctx context.Context, collectorID string) (tracker.Plan, error) {
	sess := d.sessions.Get(collectorID)
	seq := sess.ClearSelection()
	return d.replan(ctx, collectorID, sess, seq)
}

// Replan re-evaluates the route for the current inputs, e.g. after the
// pending set changed because a pickup was confirmed.
func (d *Dispatcher) Replan(ctx context.Context, collectorID string) (tracker.Plan, error) {
	sess := d.sessions.Get(collectorID)
	pos, ok := sess.Position()
	if !ok {
		return tracker.Plan{}, nil
	}
	seq := sess.ReportFix(pos)
	return d.replan(ctx, collectorID, sess, seq)
}

// LatestPlan returns the most recent plan for the collector, falling back to
// the route cache for sessions lost to a restart.
func (d *Dispatcher) LatestPlan(ctx context.Context, collectorID string) (tracker.Plan, bool, error) {
	sess := d.sessions.Get(collectorID)
	if plan, ok := sess.Latest(); ok {
		return plan, true, nil
	}

	if d.cache == nil {
		return tracker.Plan{}, false, nil
	}

	cached, ok, err := d.cache.GetLatest(ctx, collectorID)
	if err != nil {
		return tracker.Plan{}, false, fmt.Errorf("latest plan: read route cache: %w", err)
	}
	if !ok {
		return tracker.Plan{}, false, nil
	}

	plan := tracker.Plan{Route: &cached.Route}
	if cached.TargetPickupID != nil {
		if p, err := d.pickups.Get(ctx, *cached.TargetPickupID); err == nil {
			plan.Target = p
		}
	}
	return plan, true, nil
}

func (d *Dispatcher) replan(ctx context.Context, collectorID string, sess *tracker.Session, seq uint64) (tracker.Plan, error) {
	pos, ok := sess.Position()
	if !ok {
		return tracker.Plan{}, nil
	}

	pending, err := d.pickups.ListByStatus(ctx, domain.PickupPending)
	if err != nil {
		return tracker.Plan{}, fmt.Errorf("replan: list pending pickups: %w", err)
	}

	var target *domain.Pickup
	if sel := sess.Selection(); sel != nil {
		for _, p := range pending {
			if p.ID == *sel {
				target = p
				break
			}
		}
		if target == nil {
			// The selected pickup left the pending set; drop the pin and
			// fall back to automatic selection below.
			seq = sess.ClearSelection()
		}
	}
	if target == nil {
		target = SelectNearest(pending, pos)
	}

	plan := tracker.Plan{Position: pos}
	if target != nil {
		route := PlanRoute(ctx, d.routes, pos, target.Location)
		plan.Target = target
		plan.Route = &route
	}

	if !sess.StorePlan(seq, plan) {
		// A newer input arrived while the routing call was in flight.
		// The stale plan is discarded; whatever the fresher update stored
		// (or will store) is the plan on display.
		latest, _ := sess.Latest()
		return latest, nil
	}

	d.cachePlan(ctx, collectorID, plan)
	return plan, nil
}

func (d *Dispatcher) cachePlan(ctx context.Context, collectorID string, plan tracker.Plan) {
	if d.cache == nil || plan.Route == nil {
		return
	}

	cached := ports.CachedRoute{Route: *plan.Route}
	if plan.Target != nil {
		id := plan.Target.ID
		cached.TargetPickupID = &id
	}
	if err := d.cache.PutLatest(ctx, collectorID, cached); err != nil {
		log.Printf("route cache write failed: collector=%s err=%v", collectorID, err)
	}
}

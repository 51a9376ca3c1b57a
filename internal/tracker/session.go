package tracker

import (
	"sync"

	"amor-service/internal/domain"
)

// Plan is the ephemeral routing view state for one collector: where they
// are, which pickup is targeted, and the most recent route for it.
type Plan struct {
	Position domain.Coordinates
	Target   *domain.Pickup
	Route    *domain.Route
}

// Session tracks one collector's live position and selection.
//
// Every input change (position fix, selection change) bumps a sequence
// number. A plan computed for a superseded sequence is rejected at store
// time, so only the plan for the most recent input is ever retained —
// last-write-wins by input recency, not by response arrival order.
type Session struct {
	mu           sync.Mutex
	position     domain.Coordinates
	hasFix       bool
	fallbackUsed bool
	selection    *int64
	seq          uint64
	latest       *Plan
}

// ReportFix records a fresh position fix. The previous value is simply
// superseded; a position has no identity beyond "current value".
func (s *Session) ReportFix(pos domain.Coordinates) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = pos
	s.hasFix = true
	s.seq++
	return s.seq
}

// ReportUnavailable handles an absent or denied location capability.
// A last-good fix is kept as-is; otherwise the fixed fallback coordinate is
// applied exactly once. The boolean reports whether the position changed
// and a replan is warranted.
func (s *Session) ReportUnavailable(fallback domain.Coordinates) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasFix || s.fallbackUsed {
		return s.seq, false
	}

	s.position = fallback
	s.fallbackUsed = true
	s.seq++
	return s.seq, true
}

// Position returns the current coordinate; the boolean is false before any
// fix or fallback has been published.
func (s *Session) Position() (domain.Coordinates, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position, s.hasFix || s.fallbackUsed
}

// Select pins routing to one pickup, overriding automatic nearest-selection.
func (s *Session) Select(pickupID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := pickupID
	s.selection = &id
	s.seq++
	return s.seq
}

func (s *Session) ClearSelection() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = nil
	s.seq++
	return s.seq
}

func (s *Session) Selection() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return nil
	}
	id := *s.selection
	return &id
}

// StorePlan retains the plan only if no newer input arrived while it was
// being computed. Returns false when the plan was discarded as stale.
func (s *Session) StorePlan(seq uint64, p Plan) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	s.latest = &p
	return true
}

func (s *Session) Latest() (Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return Plan{}, false
	}
	return *s.latest, true
}

// Hub hands out one Session per collector id.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*Session)}
}

func (h *Hub) Get(collectorID string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[collectorID]
	if !ok {
		s = &Session{}
		h.sessions[collectorID] = s
	}
	return s
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"amor-service/internal/domain"
)

type stubPickupRepo struct {
	pickup *domain.Pickup
}

func (r *stubPickupRepo) ListByStatus(ctx context.Context, status domain.PickupStatus) ([]*domain.Pickup, error) {
	if r.pickup != nil && r.pickup.Status == status {
		return []*domain.Pickup{r.pickup}, nil
	}
	return nil, nil
}

func (r *stubPickupRepo) ListCompletedByCollector(ctx context.Context, collectorID string) ([]*domain.Pickup, error) {
	return nil, nil
}

func (r *stubPickupRepo) Get(ctx context.Context, id int64) (*domain.Pickup, error) {
	if r.pickup == nil || r.pickup.ID != id {
		return nil, domain.ErrPickupNotFound
	}
	return r.pickup, nil
}

func (r *stubPickupRepo) Confirm(ctx context.Context, id int64, collectorID string, actualKg float64, completedAt time.Time) (*domain.Pickup, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PickupPending {
		return nil, domain.ErrPickupAlreadyCompleted
	}
	p.Status = domain.PickupCompleted
	p.ActualKg = &actualKg
	p.CollectorID = &collectorID
	p.CompletedAt = &completedAt
	return p, nil
}

func (r *stubPickupRepo) Create(ctx context.Context, salonID int64, estimatedKg float64) (*domain.Pickup, error) {
	return nil, nil
}

func confirmRequest(t *testing.T, repo *stubPickupRepo, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := &PickupHandler{Repo: repo}
	r := mux.NewRouter()
	r.HandleFunc("/pickups/{id}/confirm", h.Confirm).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/pickups/"+id+"/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestConfirmEndpoint(t *testing.T) {
	repo := &stubPickupRepo{pickup: &domain.Pickup{ID: 1, Status: domain.PickupPending}}

	rec := confirmRequest(t, repo, "1", `{"collector_id": "c1", "actual_weight_kg": 4.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if repo.pickup.ActualKg == nil || *repo.pickup.ActualKg != 4.5 {
		t.Fatalf("actual kg = %v, want 4.5", repo.pickup.ActualKg)
	}
}

func TestConfirmEndpointErrorMapping(t *testing.T) {
	completed := &domain.Pickup{ID: 1, Status: domain.PickupCompleted}

	cases := []struct {
		name   string
		pickup *domain.Pickup
		id     string
		body   string
		want   int
	}{
		{"bad id", nil, "abc", `{"collector_id": "c1", "actual_weight_kg": 4.5}`, http.StatusBadRequest},
		{"bad body", nil, "1", `{`, http.StatusBadRequest},
		{"missing collector", nil, "1", `{"actual_weight_kg": 4.5}`, http.StatusBadRequest},
		{"zero weight", &domain.Pickup{ID: 1, Status: domain.PickupPending}, "1", `{"collector_id": "c1", "actual_weight_kg": 0}`, http.StatusBadRequest},
		{"not found", nil, "9", `{"collector_id": "c1", "actual_weight_kg": 4.5}`, http.StatusNotFound},
		{"already completed", completed, "1", `{"collector_id": "c1", "actual_weight_kg": 4.5}`, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := confirmRequest(t, &stubPickupRepo{pickup: tc.pickup}, tc.id, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

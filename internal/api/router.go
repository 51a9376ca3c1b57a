package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"amor-service/internal/api/handlers"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// Deps carries every external dependency the HTTP layer needs. Optional
// members (Diagnosis) may be nil; the corresponding endpoints degrade.
type Deps struct {
	Pickups     ports.PickupRepository
	Salons      ports.SalonRepository
	Leaderboard ports.LeaderboardStore
	Catalog     ports.CatalogRepository
	Dispatcher  *services.Dispatcher
	Diagnosis   ports.DiagnosisProvider
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	pickupHandler := &handlers.PickupHandler{Repo: deps.Pickups}
	collectorHandler := &handlers.CollectorHandler{
		Dispatcher: deps.Dispatcher,
		Pickups:    deps.Pickups,
	}
	salonHandler := &handlers.SalonHandler{
		Salons:  deps.Salons,
		Pickups: deps.Pickups,
	}
	leaderboardHandler := &handlers.LeaderboardHandler{Store: deps.Leaderboard}
	storeHandler := &handlers.StoreHandler{Catalog: deps.Catalog}
	diagnoseHandler := &handlers.DiagnoseHandler{Provider: deps.Diagnosis}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/pickups", pickupHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/pickups/{id}/confirm", pickupHandler.Confirm).Methods(http.MethodPost)

	r.HandleFunc("/collectors/{id}/position", collectorHandler.Position).Methods(http.MethodPost)
	r.HandleFunc("/collectors/{id}/position", collectorHandler.PositionUnavailable).Methods(http.MethodDelete)
	r.HandleFunc("/collectors/{id}/selection", collectorHandler.Select).Methods(http.MethodPost)
	r.HandleFunc("/collectors/{id}/selection", collectorHandler.ClearSelection).Methods(http.MethodDelete)
	r.HandleFunc("/collectors/{id}/route", collectorHandler.Route).Methods(http.MethodGet)
	r.HandleFunc("/collectors/{id}/summary", collectorHandler.Summary).Methods(http.MethodGet)

	r.HandleFunc("/salons", salonHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/salons/{id}/location", salonHandler.UpdateLocation).Methods(http.MethodPut)
	r.HandleFunc("/salons/{id}/waste-logs", salonHandler.LogWaste).Methods(http.MethodPost)
	r.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/products", storeHandler.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/orders", storeHandler.CreateOrder).Methods(http.MethodPost)

	r.HandleFunc("/diagnose", diagnoseHandler.Diagnose).Methods(http.MethodPost)

	r.HandleFunc("/navigation/{role}", handlers.Navigation).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
	})

	return loggingMiddleware(c.Handler(r))
}

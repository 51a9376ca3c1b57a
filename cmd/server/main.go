package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"amor-service/internal/adapters/cache"
	"amor-service/internal/adapters/diagnosis"
	"amor-service/internal/adapters/repositories"
	"amor-service/internal/adapters/routing"
	"amor-service/internal/api"
	"amor-service/internal/config"
	"amor-service/internal/platform/db"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, OSRM, Redis, Gemini) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	osrmBase := config.Get("OSRM_BASE_URL", "")

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	pickups := repositories.NewPostgresPickupRepository(conn)
	salons := repositories.NewPostgresSalonRepository(conn)
	catalog := repositories.NewPostgresCatalogRepository(conn)

	provider := routing.NewOSRMRouteProvider(osrmBase)

	// Redis is optional; without it the latest route plan only lives in memory
	// and does not survive a restart.
	var routeCache ports.RouteCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		routeCache = cache.NewRedisRouteCache(client, 0)
		log.Printf("Route cache enabled addr=%s", addr)
	}

	// Diagnosis is optional too; the endpoint reports unavailable without a key.
	var diagnoser ports.DiagnosisProvider
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := diagnosis.NewGeminiClient(key)
		if err != nil {
			log.Fatal(err)
		}
		diagnoser = client
	}

	dispatcher := services.NewDispatcher(pickups, provider, routeCache)

	router := api.NewRouter(api.Deps{
		Pickups:     pickups,
		Salons:      salons,
		Leaderboard: salons,
		Catalog:     catalog,
		Dispatcher:  dispatcher,
		Diagnosis:   diagnoser,
	})

	// Write timeout leaves headroom for external routing calls on cache misses.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

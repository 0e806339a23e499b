package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voyago/auth"
	"voyago/db"
	"voyago/itinerary"
	"voyago/ratelim"
	"voyago/rdx"
	"voyago/reviews"
	"voyago/routes"
	"voyago/spots"
	"voyago/status"
	"voyago/users"
	"voyago/utils"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request with a generated request id,
// method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := utils.GetUUID()
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s from %s – %v", reqID, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupRouter(store *db.Store, cache *rdx.Cache, baseURL string) *httprouter.Router {
	rateLimiter := ratelim.NewRateLimiter()

	router := httprouter.New()
	routes.AddAuthRoutes(router, auth.NewHandler(store, cache), rateLimiter)
	routes.AddUserRoutes(router, users.NewHandler(store, cache))
	routes.AddSpotRoutes(router, spots.NewHandler(store, cache, baseURL))
	routes.AddItineraryRoutes(router, itinerary.NewHandler(store))
	routes.AddReviewRoutes(router, reviews.NewHandler(store), rateLimiter)
	routes.AddStatusRoutes(router, status.NewHandler(store, cache))
	routes.AddStaticRoutes(router)
	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := envOr("PORT", ":8080")
	if port[0] != ':' {
		port = ":" + port
	}

	mongoURI := envOr("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOr("MONGO_DB", "voyago")
	baseURL := envOr("BACKEND_URL", "http://localhost"+port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, mongoURI, dbName)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}
	if os.Getenv("SEED_SPOTS") == "true" {
		if err := spots.EnsureSeedData(ctx, store); err != nil {
			log.Printf("Failed to seed spots: %v", err)
		}
	}
	cancel()

	// Redis is optional; without REDIS_ADDR every cache call is skipped.
	cache := rdx.New(os.Getenv("REDIS_ADDR"))

	router := setupRouter(store, cache, baseURL)

	// apply middleware: CORS → security headers → logging → router
	allowedOrigins := strings.Split(envOr("CORS_ORIGINS", "http://localhost:3000"), ",")
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		log.Printf("Failed to disconnect from MongoDB: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}

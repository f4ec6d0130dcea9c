package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/daybook-app/daybook-backend/internal/config"
	"github.com/daybook-app/daybook-backend/internal/database"
	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
	"github.com/daybook-app/daybook-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	if cfg.DatabaseURL == "" || cfg.SecretKey == "" {
		log.Fatal("DATABASE_URL and SECRET_KEY must be set in the environment")
	}

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	// Connect to Redis (backs the rate limiter)
	log.Printf("Connecting to Redis...")
	redisClient, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	st := store.New(db)
	tokens := services.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	h := handlers.New(st, st, tokens)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → GlobalRateLimit → LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimit(redisClient))
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.Setup(r, h, middleware.RequireAuth(tokens))

	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  POST   /users/")
	log.Println("  PUT    /users/{email}")
	log.Println("  POST   /token")
	log.Println("  GET    /journals/")
	log.Println("  POST   /journals/")
	log.Println("  GET    /journals/daily")
	log.Println("  GET    /journals/weekly")
	log.Println("  GET    /journals/monthly")
	log.Println("  PUT    /journals/{journal_id}")
	log.Println("  DELETE /journals/{journal_id}")

	log.Printf("🚀 Daybook backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

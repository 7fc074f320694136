package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/finadvisor/backend/docs"
	"github.com/finadvisor/backend/internal/config"
	"github.com/finadvisor/backend/internal/handler"
	"github.com/finadvisor/backend/internal/logger"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

// @title FinAdvisor API
// @version 1.0
// @description Personal finance tracking API for incomes, expenses, assets, liabilities and savings goals.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	lg := logger.Logger()

	// The database being down must not kill the server: demo-mode logins and
	// the degraded auth fallback still work without it.
	db, err := sqlx.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil {
		lg.Warn("Database unreachable at startup, continuing in degraded mode", "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	liabilityRepo := repository.NewLiabilityRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// Services
	userService := service.NewUserService(userRepo, cfg)
	incomeService := service.NewCrudService[model.Income](incomeRepo)
	expenseService := service.NewCrudService[model.Expense](expenseRepo)
	assetService := service.NewCrudService[model.Asset](assetRepo)
	liabilityService := service.NewCrudService[model.Liability](liabilityRepo)
	goalService := service.NewGoalService(goalRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	incomeHandler := handler.NewCrudHandler[model.Income](incomeService, "Income")
	expenseHandler := handler.NewCrudHandler[model.Expense](expenseService, "Expense")
	assetHandler := handler.NewCrudHandler[model.Asset](assetService, "Asset")
	liabilityHandler := handler.NewCrudHandler[model.Liability](liabilityService, "Liability")
	goalHandler := handler.NewGoalHandler(goalService)

	authMiddleware := handler.NewAuthMiddleware(userRepo, cfg)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public routes
	r.Get("/api/health-check", handler.HealthCheck)
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)

	if cfg.SeedEnabled {
		seedHandler := handler.NewSeedHandler(userService)
		r.Get("/api/seed/users", seedHandler.SeedUsers)
		lg.Info("Seed endpoint enabled")
	}

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/api/users/profile", authHandler.Profile)

		r.Route("/api/incomes", incomeHandler.Routes)
		r.Route("/api/expenses", expenseHandler.Routes)
		r.Route("/api/assets", assetHandler.Routes)
		r.Route("/api/liabilities", liabilityHandler.Routes)
		r.Route("/api/goals", goalHandler.Routes)
	})

	port := cfg.Port
	if cfg.PortProbe {
		start, err := strconv.Atoi(port)
		if err != nil {
			log.Fatalf("Invalid PORT for probing: %v", err)
		}
		free, err := config.FindAvailablePort(start, start+10)
		if err != nil {
			log.Fatalf("Port probing failed: %v", err)
		}
		if free != start {
			lg.Warn("Configured port busy, using fallback", "configured", start, "using", free)
		}
		port = strconv.Itoa(free)
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		lg.Info("Shutting down server...")
		if err := server.Shutdown(context.Background()); err != nil {
			lg.Error("Server shutdown error", "error", err)
		}
	}()

	lg.Info("Server starting", "port", port, "env", cfg.Env, "demo_mode", cfg.DemoMode)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}

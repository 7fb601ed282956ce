package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ledgerbook/backend/docs"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/credentials"
	"github.com/ledgerbook/backend/internal/database"
	"github.com/ledgerbook/backend/internal/handlers"
	"github.com/ledgerbook/backend/internal/logger"
	mW "github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/repository"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/session"
	"github.com/ledgerbook/backend/internal/token"
)

// @title Ledgerbook API
// @version 1.0
// @description Multi-tenant customer bookkeeping ledger
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.JSON)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port

	ctx := context.Background()

	var (
		store *repository.Store
		db    *sql.DB
	)
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("using in-memory storage, data is lost on restart")
		store = repository.NewMemory().Store()
	default:
		var err error
		db, err = database.InitDB(ctx, database.GetConfig())
		if err != nil {
			logger.Fatal("failed to initialize database", "error", err)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("failed to apply schema", "error", err)
		}
		store = repository.NewPostgres(db)
	}

	redisClient := database.InitRedis(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokenManager := token.NewManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	sessions := session.NewStore(redisClient, tokenManager.Expiry())
	revocations := session.NewRevocations(redisClient)

	hasher := credentials.NewHasher(cfg.Credentials.LegacySalt, cfg.Credentials.Iterations)
	accountService := services.NewAccountService(store.Users, hasher)
	customerService := services.NewCustomerService(store.Customers)
	ledgerService := services.NewLedgerService(store.Transactions)

	if err := accountService.EnsureBootstrapAccount(ctx); err != nil {
		logger.Fatal("failed to seed bootstrap account", "error", err)
	}

	api := &handlers.API{
		Auth:        handlers.NewAuthHandler(accountService, tokenManager, revocations, sessions),
		Customers:   handlers.NewCustomerHandler(customerService, sessions),
		Ledger:      handlers.NewLedgerHandler(customerService, ledgerService, sessions),
		Session:     handlers.NewSessionHandler(sessions, customerService, ledgerService),
		Tokens:      tokenManager,
		Revocations: revocations,
		LoginLimit:  mW.RateLimit(redisClient, cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow),
	}

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mW.Instrument)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "healthy", "redis": "disabled"}
		code := http.StatusOK
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				status["status"] = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		if redisClient != nil {
			status["redis"] = "up"
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		services.SendJSON(w, code, status)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", api.Mount)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting", "addr", server.Addr, "storage", cfg.Storage.Driver, "redis", redisClient != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

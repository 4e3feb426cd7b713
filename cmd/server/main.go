package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/azubi-tmp/checkout-api/internal/config"
	"github.com/azubi-tmp/checkout-api/internal/handlers"
	"github.com/azubi-tmp/checkout-api/internal/middleware"
	"github.com/azubi-tmp/checkout-api/internal/repository"
	"github.com/azubi-tmp/checkout-api/internal/service"
	"github.com/azubi-tmp/checkout-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting checkout api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"env", cfg.Env,
		"log_level", cfg.LogLevel,
	)

	// Initialize the catalog: an optional JSON file, else the built-in
	// product line. Read-only after this point.
	var catalogRepo repository.CatalogRepository
	if cfg.Catalog.File != "" {
		catalogRepo, err = repository.NewCatalogRepositoryFromFile(cfg.Catalog.File)
		if err != nil {
			log.Error("failed to load catalog file", "path", cfg.Catalog.File, "error", err)
			os.Exit(1)
		}
		log.Info("catalog loaded from file", "path", cfg.Catalog.File)
	} else {
		catalogRepo = repository.NewInMemoryCatalogRepository()
	}

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	orderService := service.NewOrderService(log, catalogRepo, cfg.BaseURL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	validateHandler := handlers.NewValidateHandler(log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS: only the storefront origins may call the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Order creation lives at the root, matching the storefront contract
	r.Post("/create-order", orderHandler.CreateOrder)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/catalog", catalogHandler.ListEntries)
		r.Get("/catalog/{itemId}", catalogHandler.GetEntry)

		// Advisory form validation for the checkout UI
		r.Post("/validate", validateHandler.ValidateForm)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

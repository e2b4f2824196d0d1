package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nswailem/sharedcart/internal/catalog"
	"github.com/nswailem/sharedcart/internal/config"
	"github.com/nswailem/sharedcart/internal/ledger"
	"github.com/nswailem/sharedcart/pkg/logging"
)

// @title           Shared Groceries Cart API
// @version         1.0
// @description     Shared-expense ledger for a student house: who added what, what the group owes, and how the delivery fee splits.
// @BasePath        /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Catalog is static: loaded once here, never mutated at runtime.
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		var err error
		cat, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			slog.Error("failed to load catalog", "path", cfg.CatalogFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("catalog loaded", "items", cat.Len(), "delivery_fee", cfg.DeliveryFee)

	// Shared cart ledger with its HTTP surface
	cartLedger := ledger.New(cat, cfg.DeliveryFee)
	cartHandler := ledger.NewHandler(cartLedger)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Mount("/api/v1", cartHandler.Routes())

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

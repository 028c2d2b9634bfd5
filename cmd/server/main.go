package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/frontdeskhq/frontdesk/internal/auth"
	"github.com/frontdeskhq/frontdesk/internal/billing"
	"github.com/frontdeskhq/frontdesk/internal/config"
	"github.com/frontdeskhq/frontdesk/internal/ledger"
	"github.com/frontdeskhq/frontdesk/internal/service"
	"github.com/frontdeskhq/frontdesk/internal/storage"
	"github.com/frontdeskhq/frontdesk/internal/storage/postgres"
	"github.com/frontdeskhq/frontdesk/internal/storage/sqlite"
	"github.com/frontdeskhq/frontdesk/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// DATABASE_URL selects PostgreSQL; otherwise local SQLite.
	var (
		store storage.Store
		err   error
	)
	if cfg.DatabaseURL != "" {
		store, err = postgres.New(context.Background(), cfg.DatabaseURL)
	} else {
		store, err = sqlite.New(cfg.DBPath)
	}
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "postgres", cfg.DatabaseURL != "")

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	router := service.NewRouter(
		service.NewAuthService(authenticator, jwtManager),
		service.NewDeskService(ledger.New(store), billing.NewEngine(store)),
		jwtManager,
	)

	// Wrap with h2c so clients can use HTTP/2 without TLS.
	handler := h2c.NewHandler(router, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tendant/transfer-notify/pkg/transfernotify/api"
	"github.com/tendant/transfer-notify/pkg/transfernotify/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	store, err := cfg.BuildStorage()
	if err != nil {
		slog.Error("Failed to build storage backend", "err", err)
		os.Exit(1)
	}

	handler, err := api.NewPresignHandler(cfg.StorageContext(store), cfg.HoursToExpire)
	if err != nil {
		slog.Error("Failed to build presign handler", "err", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", handler.Routes())

	slog.Info("Starting server", "port", cfg.Port, "bucket", cfg.Bucket)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "err", err)
		os.Exit(1)
	}
}

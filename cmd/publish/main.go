package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tendant/transfer-notify/pkg/transfernotify"
	"github.com/tendant/transfer-notify/pkg/transfernotify/config"
	"github.com/tendant/transfer-notify/pkg/transfernotify/wagon"
)

// publish uploads the files given as arguments through the wagon and
// reports a presigned URL for each completed transfer.
func main() {
	if len(os.Args) < 2 {
		slog.Error("usage: publish <file> [file...]")
		os.Exit(2)
	}

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

	notifier, err := cfg.BuildNotifier(store,
		transfernotify.WithLogger(transfernotify.NewSlogLogger(slog.Default())))
	if err != nil {
		slog.Error("Failed to build notifier", "err", err)
		os.Exit(1)
	}

	w, err := cfg.BuildWagon(store)
	if err != nil {
		slog.Error("Failed to build wagon", "err", err)
		os.Exit(1)
	}
	w.AddListener(notifier)

	ctx := context.Background()
	for _, path := range os.Args[1:] {
		if err := publishFile(ctx, w, path); err != nil {
			slog.Error("Publish failed", "file", path, "err", err)
			os.Exit(1)
		}
	}
}

func publishFile(ctx context.Context, w *wagon.Wagon, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	return w.Put(ctx, f, filepath.Base(path), info.Size())
}

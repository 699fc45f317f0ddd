// Package main provides the FrameFlow Core entry point. The core is a
// library that UI shells embed; this binary wires the configured backend
// and verifies the store is reachable.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/frameflow/frameflow-core/internal/config"
	"github.com/frameflow/frameflow-core/internal/kv"
	"github.com/frameflow/frameflow-core/internal/library"
	"github.com/frameflow/frameflow-core/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

func main() {
	fmt.Printf("FrameFlow Core v%s\n", Version)

	if err := run(); err != nil {
		logging.Error("frameflow core failed to start", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(os.Stdout, cfg.LogLevel)

	ctx := context.Background()
	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	if closeBackend != nil {
		defer closeBackend()
	}

	store := library.New(backend, logging.Get(), library.Options{
		AllowEmptyOnCreate: cfg.AllowEmptyOnCreate,
	})

	media, err := store.LoadMedia(ctx)
	if err != nil {
		return err
	}
	collections, err := store.LoadCollections(ctx)
	if err != nil {
		return err
	}

	logging.Info("library store ready", map[string]interface{}{
		"backend":     cfg.KVBackend,
		"media":       len(media),
		"collections": len(collections),
	})
	return nil
}

// openBackend builds the configured key-value backend.
func openBackend(ctx context.Context, cfg *config.Config) (kv.Store, func() error, error) {
	switch cfg.KVBackend {
	case config.BackendSQLite:
		store, err := kv.Open(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.BackendRedis:
		store, err := kv.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return kv.NewMemoryStore(), nil, nil
	}
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/mafl/internal/dashboard"
	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/storage"
	"github.com/MrSnakeDoc/mafl/internal/store"
)

func TestReloadPersistsLoadedConfig(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)

	source := storage.NewMemoryBackend()
	if err := source.Set(ctx, "config.yml", []byte(`
title: Home
services:
  Media:
    - title: Jellyfin
      url: https://jellyfin.domain.ext
`)); err != nil {
		t.Fatalf("failed to seed source: %v", err)
	}

	loader := dashboard.NewLoader(source, "config.yml", log)
	st := store.New(storage.NewMemoryBackend())

	cr := NewConfigReloader(loader, st, log, time.Hour, make(chan struct{}, 1))
	if err := cr.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	cfg, err := st.Read(ctx)
	if err != nil {
		t.Fatalf("Read() after reload error = %v", err)
	}
	if cfg.Title != "Home" {
		t.Errorf("persisted title = %q, want Home", cfg.Title)
	}
	if len(cfg.Services) != 1 || cfg.Services[0].Title != "Media" {
		t.Errorf("persisted services = %+v", cfg.Services)
	}

	index, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("Services() error = %v", err)
	}
	if len(index) != 1 {
		t.Errorf("index has %d entries, want 1", len(index))
	}
}

func TestReloadPersistsFallbackConfig(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)

	// No source document: the loader falls back to defaults with an error,
	// which is still a complete configuration worth persisting.
	loader := dashboard.NewLoader(storage.NewMemoryBackend(), "config.yml", log)
	st := store.New(storage.NewMemoryBackend())

	cr := NewConfigReloader(loader, st, log, time.Hour, make(chan struct{}, 1))
	if err := cr.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	cfg, err := st.Read(ctx)
	if err != nil {
		t.Fatalf("Read() after reload error = %v", err)
	}
	if cfg.Error == "" {
		t.Error("persisted fallback config should carry the load error")
	}
	if cfg.Title != "Mafl Home Page" {
		t.Errorf("persisted title = %q, want defaults", cfg.Title)
	}
}

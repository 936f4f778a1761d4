package dashboard

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/storage"
)

func newTestLoader(t *testing.T, backend storage.Backend) (*Loader, *int) {
	t.Helper()
	l := NewLoader(backend, "config.yml", logger.New("error", false))
	delays := new(int)
	l.sleep = func(context.Context, time.Duration) { *delays++ }
	return l, delays
}

func seedSource(t *testing.T, backend storage.Backend, src string) {
	t.Helper()
	if err := backend.Set(context.Background(), "config.yml", []byte(src)); err != nil {
		t.Fatalf("failed to seed source: %v", err)
	}
}

func TestLoadFlatList(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, `
title: Home
services:
  - title: Jellyfin
    url: https://jellyfin.domain.ext
  - title: AdGuard
    url: https://adguard.domain.ext
  - title: Grafana
    url: https://grafana.domain.ext
`)
	l, _ := newTestLoader(t, backend)

	cfg := l.Load(context.Background())

	if cfg.Error != "" {
		t.Fatalf("Load() set error: %s", cfg.Error)
	}
	if cfg.Title != "Home" {
		t.Errorf("title = %q, want Home", cfg.Title)
	}
	if len(cfg.Services) != 1 {
		t.Fatalf("flat list should yield 1 group, got %d", len(cfg.Services))
	}
	group := cfg.Services[0]
	if group.Title != "" {
		t.Errorf("flat list group should be untitled, got %q", group.Title)
	}
	if len(group.Items) != 3 {
		t.Fatalf("group has %d items, want 3", len(group.Items))
	}

	seen := make(map[string]bool)
	for _, svc := range group.Items {
		if svc.ID == "" || seen[svc.ID] {
			t.Errorf("ids must be non-empty and pairwise distinct, got %q", svc.ID)
		}
		seen[svc.ID] = true
	}
}

func TestLoadNamedGroupsKeepOrder(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, `
services:
  Media:
    - title: Jellyfin
  Infrastructure:
    - title: AdGuard
  Monitoring:
    - title: Grafana
`)
	l, _ := newTestLoader(t, backend)

	cfg := l.Load(context.Background())

	titles := []string{"Media", "Infrastructure", "Monitoring"}
	if len(cfg.Services) != len(titles) {
		t.Fatalf("got %d groups, want %d", len(cfg.Services), len(titles))
	}
	for i, want := range titles {
		if cfg.Services[i].Title != want {
			t.Errorf("group[%d].Title = %q, want %q", i, cfg.Services[i].Title, want)
		}
	}
}

func TestLoadReloadSameDocumentRegeneratesIDs(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, `
services:
  - title: Jellyfin
    url: https://jellyfin.domain.ext
`)
	l, _ := newTestLoader(t, backend)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	if first.Services[0].Items[0].ID == second.Services[0].Items[0].ID {
		t.Error("service ids must be regenerated on reload")
	}

	// Everything but the ids must be equal.
	a, b := *first, *second
	a.Services, b.Services = nil, nil
	if !reflect.DeepEqual(a, b) {
		t.Errorf("reload changed non-id fields: %+v vs %+v", a, b)
	}
	sa, sb := first.Services[0].Items[0], second.Services[0].Items[0]
	sa.ID, sb.ID = "", ""
	if !reflect.DeepEqual(sa, sb) {
		t.Errorf("reload changed non-id service fields: %+v vs %+v", sa, sb)
	}
}

func TestLoadMissingSourceFallsBackToDefaults(t *testing.T) {
	l, delays := newTestLoader(t, storage.NewMemoryBackend())

	cfg := l.Load(context.Background())

	if cfg.Error == "" {
		t.Error("fallback to defaults must carry a non-empty error")
	}
	if cfg.Title != "Mafl Home Page" || cfg.Theme != "system" {
		t.Errorf("fallback must equal defaults, got %+v", cfg)
	}
	if len(cfg.Services) != 0 {
		t.Errorf("fallback services must be empty, got %d groups", len(cfg.Services))
	}
	// 3 attempts, delay only between attempts.
	if *delays != 2 {
		t.Errorf("got %d inter-attempt delays, want 2", *delays)
	}
}

func TestLoadFallsBackToCachedConfig(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, `title: Cached Home`)
	l, _ := newTestLoader(t, backend)

	good := l.Load(context.Background())
	if good.Error != "" {
		t.Fatalf("priming load failed: %s", good.Error)
	}

	// Replace the source with an invalid document; the cached copy wins.
	seedSource(t, backend, `theme: neon`)

	cfg := l.Load(context.Background())
	if cfg != good {
		t.Error("fallback must return the cached instance as-is")
	}
	if cfg.Error != "" {
		t.Errorf("cached fallback must not set error, got %q", cfg.Error)
	}
}

func TestLoadValidationFailureReportsPrunedJSON(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, `theme: neon`)
	l, _ := newTestLoader(t, backend)

	cfg := l.Load(context.Background())

	if cfg.Error == "" {
		t.Fatal("validation failure with no cache must set error")
	}
	if !strings.Contains(cfg.Error, `"theme"`) {
		t.Errorf("error should be path-qualified, got %s", cfg.Error)
	}
	if strings.Contains(cfg.Error, `"_errors":[]`) {
		t.Errorf("error contains empty _errors leaves: %s", cfg.Error)
	}
}

func TestLoadUnparseableContentDegradesToDefaults(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seedSource(t, backend, "title: [unclosed")
	l, delays := newTestLoader(t, backend)

	cfg := l.Load(context.Background())

	// Parse failure is not a hard failure: the empty document is valid and
	// merges into plain defaults on the first attempt.
	if cfg.Error != "" {
		t.Errorf("parse failure should not set error, got %q", cfg.Error)
	}
	if *delays != 0 {
		t.Errorf("parse failure should succeed first attempt, got %d delays", *delays)
	}
	if cfg.Title != "Mafl Home Page" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

type unavailableBackend struct{ err error }

func (b *unavailableBackend) Exists(context.Context, string) (bool, error) { return false, b.err }
func (b *unavailableBackend) Get(context.Context, string) ([]byte, error)  { return nil, b.err }
func (b *unavailableBackend) Set(context.Context, string, []byte) error    { return b.err }
func (b *unavailableBackend) Keys(context.Context) ([]string, error)       { return nil, b.err }

func TestLoadStorageUnavailableUsesErrorText(t *testing.T) {
	backendErr := errors.New("connection refused")
	l, delays := newTestLoader(t, &unavailableBackend{err: backendErr})

	cfg := l.Load(context.Background())

	if !strings.Contains(cfg.Error, "connection refused") {
		t.Errorf("error should carry the failure message, got %q", cfg.Error)
	}
	if *delays != 2 {
		t.Errorf("got %d inter-attempt delays, want 2", *delays)
	}
}

package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	ok, err := b.Exists(ctx, "config.yml")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if ok {
		t.Error("Exists() = true before any Set")
	}

	if err := b.Set(ctx, "config.yml", []byte("title: test")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	ok, err = b.Exists(ctx, "config.yml")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !ok {
		t.Error("Exists() = false after Set")
	}

	got, err := b.Get(ctx, "config.yml")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "title: test" {
		t.Errorf("Get() = %q, want %q", got, "title: test")
	}
}

func TestMemoryBackendGetNotFound(t *testing.T) {
	b := NewMemoryBackend()

	_, err := b.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryBackendGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	if err := b.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	first, _ := b.Get(ctx, "k")
	first[0] = 'x'

	second, _ := b.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("stored value mutated through Get() result: %q", second)
	}
}

func TestMemoryBackendKeys(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	for _, k := range []string{"a", "b", "c"} {
		if err := b.Set(ctx, k, []byte("v")); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	keys, err := b.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("Keys() returned %d keys, want 3", len(keys))
	}
}

// Package store persists the active configuration and a precomputed
// service-by-id index in the runtime namespace. Unlike the loader it never
// falls back: Read returns exactly what was last saved, or not-found.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/mafl/internal/domain"
	"github.com/MrSnakeDoc/mafl/internal/storage"
)

type Store struct {
	backend storage.Backend
}

func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// Save persists cfg and rebuilds the id index from its full group sequence,
// overwriting any previous index.
func (s *Store) Save(ctx context.Context, cfg *domain.CompleteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := s.backend.Set(ctx, KeyConfig, data); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	index, err := json.Marshal(ExtractServices(cfg))
	if err != nil {
		return fmt.Errorf("failed to marshal service index: %w", err)
	}
	if err := s.backend.Set(ctx, KeyServices, index); err != nil {
		return fmt.Errorf("failed to save service index: %w", err)
	}

	return nil
}

// Read returns the last saved configuration, or storage.ErrNotFound when
// nothing has been saved yet.
func (s *Store) Read(ctx context.Context) (*domain.CompleteConfig, error) {
	data, err := s.backend.Get(ctx, KeyConfig)
	if err != nil {
		return nil, err
	}

	var cfg domain.CompleteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// Services returns the persisted service-by-id index.
func (s *Store) Services(ctx context.Context) (map[string]domain.Service, error) {
	data, err := s.backend.Get(ctx, KeyServices)
	if err != nil {
		return nil, err
	}

	var index map[string]domain.Service
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service index: %w", err)
	}
	return index, nil
}

// ExtractServices flattens every group's items into a service-by-id map.
func ExtractServices(cfg *domain.CompleteConfig) map[string]domain.Service {
	index := make(map[string]domain.Service)
	for _, group := range cfg.Services {
		for _, svc := range group.Items {
			index[svc.ID] = svc
		}
	}
	return index
}

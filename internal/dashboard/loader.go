package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/mafl/internal/domain"
	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/storage"
)

const (
	maxAttempts  = 3
	attemptDelay = 100 * time.Millisecond
)

// Loader fetches, validates and normalizes the dashboard document.
//
// Load never fails: when every attempt is exhausted it falls back to the
// last known good configuration, and failing that to the defaults with the
// triggering error recorded on the result.
type Loader struct {
	backend    storage.Backend
	validator  Validator
	normalizer *Normalizer
	cache      *Cache
	logger     logger.Logger
	sourceKey  string
	sleep      func(ctx context.Context, d time.Duration)
}

func NewLoader(backend storage.Backend, sourceKey string, log logger.Logger) *Loader {
	return &Loader{
		backend:    backend,
		validator:  NewSchemaValidator(),
		normalizer: NewNormalizer(),
		cache:      NewCache(),
		logger:     log,
		sourceKey:  sourceKey,
		sleep:      sleepContext,
	}
}

// Load runs the attempt/retry/fallback ladder and always returns a usable
// configuration.
func (l *Loader) Load(ctx context.Context) *domain.CompleteConfig {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cfg, err := l.attempt(ctx)
		if err == nil {
			l.cache.Put(cfg)
			l.logger.Info("configuration loaded",
				logger.String("key", l.sourceKey),
				logger.Int("groups", len(cfg.Services)))
			return cfg
		}

		lastErr = err
		l.logger.Warn("configuration load attempt failed",
			logger.Int("attempt", attempt),
			logger.Error(err))

		if attempt < maxAttempts {
			l.sleep(ctx, attemptDelay)
		}
	}

	if cached, ok := l.cache.Get(); ok {
		l.logger.Warn("serving last known good configuration",
			logger.Error(lastErr))
		return cached
	}

	cfg := domain.DefaultConfig()
	cfg.Error = failureMessage(lastErr)
	l.logger.Error("falling back to default configuration",
		logger.Error(lastErr))
	return cfg
}

func (l *Loader) attempt(ctx context.Context) (*domain.CompleteConfig, error) {
	exists, err := l.backend.Exists(ctx, l.sourceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check configuration source: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, l.sourceKey)
	}

	raw, err := l.backend.Get(ctx, l.sourceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch configuration source: %w", err)
	}

	// Unparseable or empty content degrades to the empty document; only
	// source absence and validation abort the attempt.
	node := parseDocument(raw)

	doc, err := l.validator.Validate(node)
	if err != nil {
		return nil, err
	}

	idx := BuildTagIndex(doc.Tags)
	groups := l.normalizer.NormalizeGroups(doc.Services, idx)

	return mergeWithDefaults(doc, groups), nil
}

// failureMessage renders the terminal failure for the Error field. A
// validation failure serializes its pruned report; anything else uses the
// error text.
func failureMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if data, mErr := json.Marshal(verr.Report); mErr == nil {
			return string(data)
		}
	}
	return err.Error()
}

// sleepContext waits for d without blocking past context cancellation.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/mafl/internal/dashboard"
	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/store"
)

// ConfigReloader periodically re-runs the load pipeline and persists the
// result so the read API serves a fresh configuration.
type ConfigReloader struct {
	loader        *dashboard.Loader
	store         *store.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

func NewConfigReloader(
	loader *dashboard.Loader,
	st *store.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ConfigReloader {
	return &ConfigReloader{
		loader:        loader,
		store:         st,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads once immediately, then keeps reloading on the interval or on
// manual trigger until the context ends or Stop is called.
func (cr *ConfigReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		// The loaded configuration is still cached in the loader; only
		// persistence failed. Keep running.
		cr.logger.Warn("initial configuration persist failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload configuration",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload configuration",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *ConfigReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the dashboard document and persists the resulting
// configuration. Load itself never fails; only the save can.
func (cr *ConfigReloader) Reload(ctx context.Context) error {
	cfg := cr.loader.Load(ctx)
	if cfg.Error != "" {
		cr.logger.Warn("loaded configuration carries a fallback error",
			logger.String("error", cfg.Error))
	}

	if err := cr.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to persist configuration: %w", err)
	}

	cr.logger.Info("configuration persisted",
		logger.Int("groups", len(cfg.Services)))
	return nil
}

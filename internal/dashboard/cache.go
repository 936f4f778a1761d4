package dashboard

import (
	"sync"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

// Cache is a single-slot holder for the last successfully loaded
// configuration. It is advisory: the loader consults it only as a fallback,
// and concurrent loaders overwrite it last-writer-wins.
type Cache struct {
	mu  sync.RWMutex
	cfg *domain.CompleteConfig
}

func NewCache() *Cache {
	return &Cache{}
}

// Put stores cfg as the last known good configuration.
func (c *Cache) Put(cfg *domain.CompleteConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg = cfg
}

// Get returns the last known good configuration, if any.
func (c *Cache) Get() (*domain.CompleteConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cfg == nil {
		return nil, false
	}
	return c.cfg, true
}

package dashboard

import (
	"sync"
	"testing"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

func TestCacheEmpty(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get(); ok {
		t.Error("empty cache should report no value")
	}
}

func TestCacheLastWriterWins(t *testing.T) {
	c := NewCache()

	first := domain.DefaultConfig()
	second := domain.DefaultConfig()
	second.Theme = "dark"

	c.Put(first)
	c.Put(second)

	got, ok := c.Get()
	if !ok {
		t.Fatal("cache should hold a value")
	}
	if got != second {
		t.Error("cache should hold the most recent value")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Put(domain.DefaultConfig())
		}()
		go func() {
			defer wg.Done()
			if cfg, ok := c.Get(); ok && cfg == nil {
				t.Error("Get() returned ok with nil value")
			}
		}()
	}
	wg.Wait()
}

package cache

import (
	"context"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

// Ключ кэша - дата и специальность через разделитель
const cacheKeySeparator = "|"

type CacheAdapter struct {
	cache  *lru.Cache[string, map[string][]string]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	slotsCache, err := lru.New[string, map[string][]string](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &CacheAdapter{
		cache:  slotsCache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func cacheKey(date, speciality string) string {
	return date + cacheKeySeparator + speciality
}

func (c *CacheAdapter) GetSlots(ctx context.Context, date, speciality string) (map[string][]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, exists := c.cache.Get(cacheKey(date, speciality))
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"date":       date,
			"speciality": speciality,
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"date":       date,
		"speciality": speciality,
		"doctors":    len(slots),
	})
	return slots, true
}

func (c *CacheAdapter) StoreSlots(ctx context.Context, date, speciality string, slots map[string][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.slots.store", out.LogFields{
		"date":       date,
		"speciality": speciality,
		"doctors":    len(slots),
	})

	c.cache.Add(cacheKey(date, speciality), slots)
}

// InvalidateDate удаляет записи всех специальностей на дату.
func (c *CacheAdapter) InvalidateDate(ctx context.Context, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := date + cacheKeySeparator
	for _, key := range c.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Remove(key)
		}
	}

	c.logger.Debug("cache.slots.invalidate_date", out.LogFields{
		"date": date,
	})
}

func (c *CacheAdapter) Purge(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()

	c.logger.Debug("cache.slots.purge", out.LogFields{})
}

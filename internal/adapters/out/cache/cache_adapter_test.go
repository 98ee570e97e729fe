package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields)       {}
func (l nopLogger) Info(event string, fields out.LogFields)        {}
func (l nopLogger) Warn(event string, fields out.LogFields)        {}
func (l nopLogger) Error(event string, fields out.LogFields)       {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestAdapter(t *testing.T) *CacheAdapter {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 16

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func TestNewCacheAdapterDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, adapter)
}

func TestCacheStoreAndGet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, exists := adapter.GetSlots(ctx, "2024-01-10", "Cardiology")
	assert.False(t, exists)

	slots := map[string][]string{"D1": {"09:00-09:30"}}
	adapter.StoreSlots(ctx, "2024-01-10", "Cardiology", slots)

	got, exists := adapter.GetSlots(ctx, "2024-01-10", "Cardiology")
	require.True(t, exists)
	assert.Equal(t, slots, got)

	// Другая специальность на ту же дату - отдельный ключ
	_, exists = adapter.GetSlots(ctx, "2024-01-10", "Neurology")
	assert.False(t, exists)
}

func TestCacheInvalidateDate(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	adapter.StoreSlots(ctx, "2024-01-10", "Cardiology", map[string][]string{"D1": {"09:00-09:30"}})
	adapter.StoreSlots(ctx, "2024-01-10", "Neurology", map[string][]string{"D2": {"10:00-10:30"}})
	adapter.StoreSlots(ctx, "2024-01-11", "Cardiology", map[string][]string{"D1": {"09:00-09:30"}})

	adapter.InvalidateDate(ctx, "2024-01-10")

	_, exists := adapter.GetSlots(ctx, "2024-01-10", "Cardiology")
	assert.False(t, exists)
	_, exists = adapter.GetSlots(ctx, "2024-01-10", "Neurology")
	assert.False(t, exists)

	// Соседняя дата не затронута
	_, exists = adapter.GetSlots(ctx, "2024-01-11", "Cardiology")
	assert.True(t, exists)
}

func TestCachePurge(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	adapter.StoreSlots(ctx, "2024-01-10", "Cardiology", map[string][]string{"D1": {"09:00-09:30"}})
	adapter.StoreSlots(ctx, "2024-01-11", "Cardiology", map[string][]string{"D1": {"09:00-09:30"}})

	adapter.Purge(ctx)

	_, exists := adapter.GetSlots(ctx, "2024-01-10", "Cardiology")
	assert.False(t, exists)
	_, exists = adapter.GetSlots(ctx, "2024-01-11", "Cardiology")
	assert.False(t, exists)
}

package scheduling_service

import (
	"context"

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

// mockCachePort records all cache calls and serves a fixed store.
type mockCachePort struct {
	store            map[string]map[string][]string
	getCalls         []string
	storeCalls       []string
	invalidatedDates []string
	purged           int
}

func newMockCachePort() *mockCachePort {
	return &mockCachePort{store: make(map[string]map[string][]string)}
}

func (m *mockCachePort) GetSlots(_ context.Context, date, speciality string) (map[string][]string, bool) {
	key := date + "|" + speciality
	m.getCalls = append(m.getCalls, key)
	slots, exists := m.store[key]
	return slots, exists
}

func (m *mockCachePort) StoreSlots(_ context.Context, date, speciality string, slots map[string][]string) {
	key := date + "|" + speciality
	m.storeCalls = append(m.storeCalls, key)
	m.store[key] = slots
}

func (m *mockCachePort) InvalidateDate(_ context.Context, date string) {
	m.invalidatedDates = append(m.invalidatedDates, date)
	for key := range m.store {
		if len(key) >= len(date) && key[:len(date)] == date {
			delete(m.store, key)
		}
	}
}

func (m *mockCachePort) Purge(_ context.Context) {
	m.purged++
	m.store = make(map[string]map[string][]string)
}

// mockEventPort records published lifecycle events.
type mockEventPort struct {
	booked    []out.AppointmentEvent
	accepted  []out.AppointmentEvent
	completed []out.AppointmentEvent
	err       error
}

func (m *mockEventPort) AppointmentBooked(_ context.Context, event out.AppointmentEvent) error {
	m.booked = append(m.booked, event)
	return m.err
}

func (m *mockEventPort) AppointmentAccepted(_ context.Context, event out.AppointmentEvent) error {
	m.accepted = append(m.accepted, event)
	return m.err
}

func (m *mockEventPort) AppointmentCompleted(_ context.Context, event out.AppointmentEvent) error {
	m.completed = append(m.completed, event)
	return m.err
}

type testEnv struct {
	service *SchedulingService
	cache   *mockCachePort
	events  *mockEventPort
}

func newTestEnv(cacheEnabled bool) *testEnv {
	cfg := &config.Config{}
	cfg.Cache.Enabled = cacheEnabled

	cachePort := newMockCachePort()
	eventPort := &mockEventPort{}

	var cache out.CachePort
	if cacheEnabled {
		cache = cachePort
	}

	return &testEnv{
		service: NewSchedulingService(cfg, cache, eventPort, nopLogger{}),
		cache:   cachePort,
		events:  eventPort,
	}
}

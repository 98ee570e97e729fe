package scheduling_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
)

func TestShowRate(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()
	registerCardiologist(t, env, "D1")

	_, err := env.service.AddDailySchedule(ctx, "D1", "2024-01-10", "09:00", "11:00", 30)
	require.NoError(t, err)

	bookSlot(t, env, "AAA", "D1", "2024-01-10", "09:00-09:30")
	bookSlot(t, env, "BBB", "D1", "2024-01-10", "09:30-10:00")
	bookSlot(t, env, "CCC", "D1", "2024-01-10", "10:00-10:30")

	env.service.SetCurrentDate(ctx, "2024-01-10")
	_, err = env.service.AcceptPatient(ctx, "AAA")
	require.NoError(t, err)
	_, err = env.service.AcceptPatient(ctx, "BBB")
	require.NoError(t, err)

	rate, err := env.service.ShowRate(ctx, "D1", "2024-01-10")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, rate, 1e-9)
}

// Завершенная запись остается пришедшей для расчета доли.
func TestShowRateCountsCompletedAsShowed(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()
	registerCardiologist(t, env, "D1")

	_, err := env.service.AddDailySchedule(ctx, "D1", "2024-01-10", "09:00", "10:00", 30)
	require.NoError(t, err)

	id := bookSlot(t, env, "AAA", "D1", "2024-01-10", "09:00-09:30")
	bookSlot(t, env, "BBB", "D1", "2024-01-10", "09:30-10:00")

	env.service.SetCurrentDate(ctx, "2024-01-10")
	_, err = env.service.AcceptPatient(ctx, "AAA")
	require.NoError(t, err)
	require.NoError(t, env.service.CompleteAppointment(ctx, "D1", id))

	rate, err := env.service.ShowRate(ctx, "D1", "2024-01-10")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)
}

func TestShowRateErrors(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()
	registerCardiologist(t, env, "D1")

	_, err := env.service.ShowRate(ctx, "missing", "2024-01-10")
	require.ErrorIs(t, err, domain.ErrUnknownDoctor)

	_, err = env.service.ShowRate(ctx, "D1", "2024-01-10")
	require.ErrorIs(t, err, domain.ErrNoAppointments)
}

func TestScheduleCompleteness(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology")
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology"))
	require.NoError(t, env.service.AddDoctor(ctx, "D2", "Bruno", "Bianchi", "Cardiology"))

	// 4 слота, одна запись
	_, err := env.service.AddDailySchedule(ctx, "D1", "2024-01-10", "09:00", "11:00", 30)
	require.NoError(t, err)
	bookSlot(t, env, "AAA", "D1", "2024-01-10", "09:00-09:30")

	completeness := env.service.ScheduleCompleteness(ctx)
	require.Len(t, completeness, 2)
	assert.InDelta(t, 0.25, completeness["D1"], 1e-9)
	// Врач без единого слота получает 0
	assert.Zero(t, completeness["D2"])
}

func TestScheduleCompletenessCountsAllDates(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()
	registerCardiologist(t, env, "D1")

	_, err := env.service.AddDailySchedule(ctx, "D1", "2024-01-10", "09:00", "10:00", 30)
	require.NoError(t, err)
	_, err = env.service.AddDailySchedule(ctx, "D1", "2024-01-11", "09:00", "10:00", 30)
	require.NoError(t, err)

	bookSlot(t, env, "AAA", "D1", "2024-01-10", "09:00-09:30")
	bookSlot(t, env, "BBB", "D1", "2024-01-11", "09:00-09:30")

	completeness := env.service.ScheduleCompleteness(ctx)
	assert.InDelta(t, 0.5, completeness["D1"], 1e-9)
}

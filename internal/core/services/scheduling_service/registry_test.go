package scheduling_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
)

func TestAddSpecialitiesIsIdempotent(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology", "Neurology")
	env.service.AddSpecialities(ctx, "Neurology", "Dermatology")

	assert.Equal(t, []string{"Cardiology", "Dermatology", "Neurology"}, env.service.GetSpecialities(ctx))
}

func TestAddDoctorRejectsUnknownSpeciality(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	err := env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology")
	require.ErrorIs(t, err, domain.ErrInvalidSpeciality)
}

func TestAddDoctorLastWriteWins(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology", "Neurology")
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology"))
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Bruno", "Bianchi", "Neurology"))

	doctor, err := env.service.GetDoctor(ctx, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Bruno", doctor.Name)
	assert.Equal(t, "Neurology", doctor.Speciality)
}

func TestGetDoctorUnknown(t *testing.T) {
	env := newTestEnv(false)

	_, err := env.service.GetDoctor(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUnknownDoctor)
}

func TestGetSpecialistsSortedByDoctorID(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology", "Neurology")
	require.NoError(t, env.service.AddDoctor(ctx, "D3", "Carla", "Verdi", "Cardiology"))
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology"))
	require.NoError(t, env.service.AddDoctor(ctx, "D2", "Bruno", "Bianchi", "Neurology"))

	assert.Equal(t, []string{"Anna", "Carla"}, env.service.GetSpecialists(ctx, "Cardiology"))
}

func TestGetSpecialistsUnknownSpecialityIsEmpty(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology")
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology"))

	assert.Empty(t, env.service.GetSpecialists(ctx, "Dermatology"))
}

func TestAddDoctorPurgesCache(t *testing.T) {
	env := newTestEnv(true)
	ctx := context.Background()

	env.service.AddSpecialities(ctx, "Cardiology")
	require.NoError(t, env.service.AddDoctor(ctx, "D1", "Anna", "Rossi", "Cardiology"))

	assert.Equal(t, 1, env.cache.purged)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDelayService(env *serviceEnv) DelayService {
	sync := NewSyncService(env.phases, env.schedules)
	return NewDelayService(env.projects, env.phases, env.exceptions, sync, env.uow)
}

func TestDelayService_ApplyGlobalDelay(t *testing.T) {
	env := newServiceEnv(t)
	svc := newDelayService(env)
	ctx := context.Background()

	project := testutil.NewTestProject("Smith Residence")
	require.NoError(t, env.projects.Create(ctx, project))

	early := testutil.NewTestPhase(project.ID, "Sitework", testutil.Date(2025, time.January, 1), 3)
	foundation := testutil.NewTestPhase(project.ID, "Foundation", testutil.Date(2025, time.January, 10), 5)
	framing := testutil.NewTestPhase(project.ID, "Framing", testutil.Date(2025, time.January, 20), 10)
	for _, p := range []*domain.ProjectPhase{early, foundation, framing} {
		require.NoError(t, env.phases.Create(ctx, p))
	}

	result, err := svc.ApplyGlobalDelay(ctx, testutil.Date(2025, time.January, 5), "ice storm", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProjectsAffected)
	assert.NotEmpty(t, result.ExceptionID)

	// Phase before the cutoff untouched, later phases shifted.
	got, err := env.phases.GetByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, time.January, 1), got.StartDate)

	got, err = env.phases.GetByID(ctx, foundation.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, time.January, 13), got.StartDate)
	assert.Equal(t, testutil.Date(2025, time.January, 17), got.EndDate)

	got, err = env.phases.GetByID(ctx, framing.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, time.January, 23), got.StartDate)

	// Audit trail: global exception, per-project snapshot, activity entry.
	globals, err := env.exceptions.ListGlobal(ctx)
	require.NoError(t, err)
	require.Len(t, globals, 1)
	assert.Equal(t, "ice storm", globals[0].Reason)
	assert.Equal(t, 3, globals[0].DelayDays)

	projExceptions, err := env.exceptions.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, projExceptions, 1)
	assert.Equal(t, result.ExceptionID, projExceptions[0].GlobalExceptionID)
	require.Len(t, projExceptions[0].PhasesAffected, 2)
	assert.Equal(t, "2025-01-10", projExceptions[0].PhasesAffected[0].OriginalStart)
	assert.Equal(t, "2025-01-13", projExceptions[0].PhasesAffected[0].NewStart)

	activities, err := env.activities.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "schedule_delayed", activities[0].Kind)

	// The customer schedule was resynchronized after the shift.
	sched, err := env.schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, sched.Phases, 3)
}

func TestDelayService_UnaffectedProjectSkipped(t *testing.T) {
	env := newServiceEnv(t)
	svc := newDelayService(env)
	ctx := context.Background()

	affected := testutil.NewTestProject("Smith Residence")
	untouched := testutil.NewTestProject("Jones Residence")
	require.NoError(t, env.projects.Create(ctx, affected))
	require.NoError(t, env.projects.Create(ctx, untouched))

	require.NoError(t, env.phases.Create(ctx,
		testutil.NewTestPhase(affected.ID, "Framing", testutil.Date(2025, time.March, 3), 10)))
	require.NoError(t, env.phases.Create(ctx,
		testutil.NewTestPhase(untouched.ID, "Closeout", testutil.Date(2025, time.January, 2), 2)))

	result, err := svc.ApplyGlobalDelay(ctx, testutil.Date(2025, time.February, 1), "flooding", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProjectsAffected)

	exceptions, err := env.exceptions.ListByProject(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Empty(t, exceptions, "no snapshot for a project with nothing to shift")
}

func TestDelayService_RejectsNonPositiveDelay(t *testing.T) {
	env := newServiceEnv(t)
	svc := newDelayService(env)
	ctx := context.Background()

	_, err := svc.ApplyGlobalDelay(ctx, testutil.Date(2025, time.January, 5), "nope", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")

	globals, err := env.exceptions.ListGlobal(ctx)
	require.NoError(t, err)
	assert.Empty(t, globals, "rejected delay records nothing")
}

func TestDelayService_NoProjects(t *testing.T) {
	env := newServiceEnv(t)
	svc := newDelayService(env)

	result, err := svc.ApplyGlobalDelay(context.Background(),
		testutil.Date(2025, time.January, 5), "ice storm", 1)
	require.NoError(t, err)
	assert.Zero(t, result.ProjectsAffected)
}

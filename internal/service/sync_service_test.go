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

func TestSyncService_SyncProject(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewSyncService(env.phases, env.schedules)
	ctx := context.Background()

	project := testutil.NewTestProject("Smith Residence")
	require.NoError(t, env.projects.Create(ctx, project))

	foundation := testutil.NewTestPhase(project.ID, "Foundation", testutil.Date(2025, time.January, 6), 5)
	framing := testutil.NewTestPhase(project.ID, "Framing", testutil.Date(2025, time.January, 13), 10)
	require.NoError(t, env.phases.Create(ctx, foundation))
	require.NoError(t, env.phases.Create(ctx, framing))

	sched, err := svc.SyncProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, sched.Phases, 2)
	require.NotNil(t, sched.ProjectStartDate)
	assert.Equal(t, testutil.Date(2025, time.January, 6), *sched.ProjectStartDate)
	assert.Equal(t, 19, sched.TotalDurationDays)

	// The projection is persisted.
	stored, err := env.schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, sched.Phases, stored.Phases)
	assert.Equal(t, sched.TotalDurationDays, stored.TotalDurationDays)
}

func TestSyncService_ExcludesUnpublishedAndZeroDuration(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewSyncService(env.phases, env.schedules)
	ctx := context.Background()

	project := testutil.NewTestProject("Smith Residence")
	require.NoError(t, env.projects.Create(ctx, project))

	visible := testutil.NewTestPhase(project.ID, "Foundation", testutil.Date(2025, time.January, 6), 5)
	hidden := testutil.NewTestPhase(project.ID, "Punch List", testutil.Date(2025, time.February, 3), 2,
		testutil.WithPublish(false))
	milestone := testutil.NewTestPhase(project.ID, "Permit", testutil.Date(2025, time.January, 6), 0)
	for _, p := range []*domain.ProjectPhase{visible, hidden, milestone} {
		require.NoError(t, env.phases.Create(ctx, p))
	}

	sched, err := svc.SyncProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, sched.Phases, 1)
	assert.Equal(t, "Foundation", sched.Phases[0].Name)
}

func TestSyncService_Idempotent(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewSyncService(env.phases, env.schedules)
	ctx := context.Background()

	project := testutil.NewTestProject("Smith Residence")
	require.NoError(t, env.projects.Create(ctx, project))
	phase := testutil.NewTestPhase(project.ID, "Foundation", testutil.Date(2025, time.January, 6), 5)
	require.NoError(t, env.phases.Create(ctx, phase))

	first, err := svc.SyncProject(ctx, project.ID)
	require.NoError(t, err)
	second, err := svc.SyncProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Phases, second.Phases)
	assert.Equal(t, first.TotalDurationDays, second.TotalDurationDays)
}

func TestSyncService_EmptyProject(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewSyncService(env.phases, env.schedules)
	ctx := context.Background()

	project := testutil.NewTestProject("Smith Residence")
	require.NoError(t, env.projects.Create(ctx, project))

	sched, err := svc.SyncProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, sched.Phases)
	assert.Nil(t, sched.ProjectStartDate)

	stored, err := env.schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Phases)
}

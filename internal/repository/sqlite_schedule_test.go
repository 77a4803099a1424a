package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	schedules := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	project := createProject(t, projects, "Smith Residence")
	start := testutil.Date(2025, time.January, 6)
	sched := &domain.ProjectSchedule{
		ProjectID:         project.ID,
		ProjectStartDate:  &start,
		TotalDurationDays: 19,
		Phases: []domain.SchedulePhase{
			{Name: "Foundation", Workdays: 5, StartDate: "2025-01-06", EndDate: "2025-01-10"},
			{Name: "Framing", Workdays: 10, StartDate: "2025-01-11", EndDate: "2025-01-24"},
		},
	}
	require.NoError(t, schedules.Upsert(ctx, sched))

	got, err := schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ProjectStartDate)
	assert.Equal(t, start, *got.ProjectStartDate)
	assert.Equal(t, 19, got.TotalDurationDays)
	require.Len(t, got.Phases, 2)
	assert.Equal(t, "Framing", got.Phases[1].Name)
	assert.Equal(t, "2025-01-11", got.Phases[1].StartDate)
}

func TestScheduleRepo_UpsertReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	schedules := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	project := createProject(t, projects, "Smith Residence")
	start := testutil.Date(2025, time.January, 6)
	require.NoError(t, schedules.Upsert(ctx, &domain.ProjectSchedule{
		ProjectID:         project.ID,
		ProjectStartDate:  &start,
		TotalDurationDays: 19,
		Phases: []domain.SchedulePhase{
			{Name: "Foundation", Workdays: 5, StartDate: "2025-01-06", EndDate: "2025-01-10"},
			{Name: "Framing", Workdays: 10, StartDate: "2025-01-11", EndDate: "2025-01-24"},
		},
	}))

	// A later sync replaces the row wholesale.
	newStart := testutil.Date(2025, time.January, 9)
	require.NoError(t, schedules.Upsert(ctx, &domain.ProjectSchedule{
		ProjectID:         project.ID,
		ProjectStartDate:  &newStart,
		TotalDurationDays: 5,
		Phases: []domain.SchedulePhase{
			{Name: "Foundation", Workdays: 5, StartDate: "2025-01-09", EndDate: "2025-01-15"},
		},
	}))

	got, err := schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, newStart, *got.ProjectStartDate)
	assert.Equal(t, 5, got.TotalDurationDays)
	assert.Len(t, got.Phases, 1)
}

func TestScheduleRepo_UpsertEmptySchedule(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	schedules := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	project := createProject(t, projects, "Smith Residence")
	require.NoError(t, schedules.Upsert(ctx, &domain.ProjectSchedule{ProjectID: project.ID}))

	got, err := schedules.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectStartDate)
	assert.Zero(t, got.TotalDurationDays)
	assert.Empty(t, got.Phases)
}

func TestScheduleRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	schedules := NewSQLiteScheduleRepo(database)

	_, err := schedules.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionRepo_GlobalRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteExceptionRepo(database)
	ctx := context.Background()

	global := &domain.GlobalException{
		ID:            uuid.New().String(),
		ExceptionDate: testutil.Date(2025, time.January, 5),
		Type:          domain.ExceptionWeather,
		Reason:        "ice storm",
		DelayDays:     3,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateGlobal(ctx, global))

	got, err := repo.ListGlobal(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, global.ID, got[0].ID)
	assert.Equal(t, testutil.Date(2025, time.January, 5), got[0].ExceptionDate)
	assert.Equal(t, domain.ExceptionWeather, got[0].Type)
	assert.Equal(t, "ice storm", got[0].Reason)
	assert.Equal(t, 3, got[0].DelayDays)
}

func TestExceptionRepo_ProjectExceptionSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	repo := NewSQLiteExceptionRepo(database)
	ctx := context.Background()

	project := createProject(t, projects, "Smith Residence")
	global := &domain.GlobalException{
		ID:            uuid.New().String(),
		ExceptionDate: testutil.Date(2025, time.January, 5),
		Type:          domain.ExceptionWeather,
		DelayDays:     3,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateGlobal(ctx, global))

	require.NoError(t, repo.CreateProject(ctx, &domain.ProjectException{
		ID:                uuid.New().String(),
		ProjectID:         project.ID,
		GlobalExceptionID: global.ID,
		PhasesAffected: []domain.PhaseShift{
			{
				PhaseID:       "p1",
				Name:          "Framing",
				OriginalStart: "2025-01-20",
				NewStart:      "2025-01-23",
				OriginalEnd:   "2025-01-29",
				NewEnd:        "2025-02-01",
			},
		},
		DelayAppliedDays: 3,
		CreatedAt:        time.Now().UTC(),
	}))

	got, err := repo.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, global.ID, got[0].GlobalExceptionID)
	assert.Equal(t, 3, got[0].DelayAppliedDays)
	require.Len(t, got[0].PhasesAffected, 1)
	assert.Equal(t, "Framing", got[0].PhasesAffected[0].Name)
	assert.Equal(t, "2025-01-23", got[0].PhasesAffected[0].NewStart)
}

func TestActivityRepo_AppendAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	project := createProject(t, projects, "Smith Residence")
	require.NoError(t, repo.Append(ctx, &domain.Activity{
		ID:        uuid.New().String(),
		ProjectID: &project.ID,
		Kind:      "schedule_generated",
		Message:   "generated 2 phases from template Standard Build",
		CreatedAt: time.Now().UTC(),
	}))

	got, err := repo.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "schedule_generated", got[0].Kind)
	require.NotNil(t, got[0].ProjectID)
	assert.Equal(t, project.ID, *got[0].ProjectID)
}

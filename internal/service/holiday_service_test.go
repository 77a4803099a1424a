package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService_SeedIsIdempotent(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHolidayService(env.holidays)
	ctx := context.Background()

	inserted := svc.SeedDefaultHolidays(ctx, []int{2025})
	assert.Equal(t, 9, inserted)

	inserted = svc.SeedDefaultHolidays(ctx, []int{2025})
	assert.Zero(t, inserted, "re-seeding the same year inserts nothing")

	holidays, err := svc.List(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, holidays, 9)
}

func TestHolidayService_SeedMultipleYears(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHolidayService(env.holidays)

	inserted := svc.SeedDefaultHolidays(context.Background(), []int{2025, 2026})
	assert.Equal(t, 18, inserted)
}

func TestHolidayService_ListFiltersByYear(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHolidayService(env.holidays)
	ctx := context.Background()

	svc.SeedDefaultHolidays(ctx, []int{2025, 2026})

	holidays, err := svc.List(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, holidays, 9)
	for _, h := range holidays {
		assert.Contains(t, h.Date, "2026-")
	}

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 18, "year 0 lists everything")
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mhutchins/crewcal/internal/calendar"
	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/repository"
)

type holidayService struct {
	holidays repository.HolidayRepo
	observer UseCaseObserver
}

func NewHolidayService(holidays repository.HolidayRepo, observers ...UseCaseObserver) HolidayService {
	return &holidayService{
		holidays: holidays,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SeedDefaultHolidays is best-effort: the first storage failure abandons the
// run without surfacing an error. A missing holiday only means that day is
// treated as a workday, which never breaks schedule computation.
func (s *holidayService) SeedDefaultHolidays(ctx context.Context, years []int) int {
	startedAt := time.Now().UTC()
	inserted := 0
	var seedErr error

	for _, year := range years {
		for _, h := range calendar.DefaultHolidays(year) {
			ok, err := s.holidays.InsertIfAbsent(ctx, h)
			if err != nil {
				seedErr = fmt.Errorf("seeding holidays for %d: %w", year, err)
				break
			}
			if ok {
				inserted++
			}
		}
		if seedErr != nil {
			break
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "seed-holidays",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   seedErr == nil,
		Err:       seedErr,
		Fields: map[string]any{
			"years":    len(years),
			"inserted": inserted,
		},
	})
	return inserted
}

func (s *holidayService) List(ctx context.Context, year int) ([]domain.Holiday, error) {
	all, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		return all, nil
	}
	prefix := fmt.Sprintf("%04d-", year)
	var filtered []domain.Holiday
	for _, h := range all {
		if strings.HasPrefix(h.Date, prefix) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
